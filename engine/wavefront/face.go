package wavefront

// countCorners counts the whitespace-delimited tokens after the face tag.
func countCorners(line []byte) int {
	s := NewScanner(line)
	s.Advance()
	s.SkipWhitespace()
	count := 0
	for !s.AtEnd() {
		count++
		s.NextField()
	}
	return count
}

// readOptionalIndex reads the texture or normal part of a corner, right
// after its slash. With the two-letter marker present the index is
// required; without it a missing index yields NoIndex.
func readOptionalIndex(s *Scanner, marker byte) (int, error) {
	if s.Peek() == 'v' && s.PeekAt(1) == marker {
		s.AdvanceN(2)
		idx, n, err := ParseIndex(s.Rest())
		if err != nil {
			return NoIndex, ErrMalformedFace
		}
		s.AdvanceN(n)
		return idx, nil
	}
	idx, n, err := ParseIndex(s.Rest())
	if err != nil {
		return NoIndex, nil
	}
	s.AdvanceN(n)
	return idx, nil
}

// parseCorner reads one v[/[vt]t][/[vn]n] group into corner i of f.
func parseCorner(s *Scanner, f *Face, i int) error {
	s.SkipWhitespace()
	if s.Peek() == 'v' {
		s.Advance()
	}
	idx, n, err := ParseIndex(s.Rest())
	if err != nil {
		return ErrMalformedFace
	}
	s.AdvanceN(n)
	f.VertexIndices[i] = idx

	if s.Peek() == '/' {
		s.Advance()
		if f.TextureIndices[i], err = readOptionalIndex(s, 't'); err != nil {
			return err
		}
		if s.Peek() == '/' {
			s.Advance()
			if f.NormalIndices[i], err = readOptionalIndex(s, 'n'); err != nil {
				return err
			}
		}
	}

	// Anything glued to the corner that the grammar did not consume.
	if c := s.Peek(); !isBlank(c) && !isStop(c) {
		return ErrMalformedFace
	}
	return nil
}

// ParseFaceLine parses an "f c1 c2 c3 ..." line. The index slices are sized
// from a pre-scan of the line and the filling pass must agree with it.
func ParseFaceLine(line []byte) (Face, error) {
	count := countCorners(line)
	f := newFace(count)

	s := NewScanner(line)
	s.Advance()
	filled := 0
	for s.SkipWhitespace(); !s.AtEnd(); s.SkipWhitespace() {
		if filled == count {
			return Face{}, ErrCountMismatch
		}
		if err := parseCorner(s, &f, filled); err != nil {
			return Face{}, err
		}
		filled++
	}
	if filled != count {
		return Face{}, ErrCountMismatch
	}
	return f, nil
}
