package wavefront

// readField parses one scalar at the cursor and leaves the cursor at the
// start of the next field.
func readField(s *Scanner) (float32, error) {
	f, _, err := ParseScalar(s.Rest())
	if err != nil {
		return 0, err
	}
	s.NextField()
	return f, nil
}

// readFields fills dst in order, stopping at the first field that does not
// parse.
func readFields(s *Scanner, dst ...*float32) error {
	for _, p := range dst {
		f, err := readField(s)
		if err != nil {
			return err
		}
		*p = f
	}
	return nil
}

// ParseVertexLine parses a "v x y z [w]" line.
func ParseVertexLine(line []byte) (Vertex, error) {
	s := NewScanner(line)
	s.Advance()
	s.SkipWhitespace()

	v := Vertex{W: 1}
	if err := readFields(s, &v.X, &v.Y, &v.Z); err != nil {
		return Vertex{}, ErrMalformedVertex
	}
	if !s.AtEnd() {
		w, err := readField(s)
		if err != nil {
			return Vertex{}, ErrMalformedVertex
		}
		v.W = w
	}
	return v, nil
}

// ParseTextureLine parses a "vt u v [w]" line.
func ParseTextureLine(line []byte) (TextureCoord, error) {
	s := NewScanner(line)
	s.AdvanceN(2)
	s.SkipWhitespace()

	var t TextureCoord
	if err := readFields(s, &t.U, &t.V); err != nil {
		return TextureCoord{}, ErrMalformedTexture
	}
	if !s.AtEnd() {
		w, err := readField(s)
		if err != nil {
			return TextureCoord{}, ErrMalformedTexture
		}
		t.W = w
	}
	return t, nil
}

// ParseNormalLine parses a "vn x y z" line.
func ParseNormalLine(line []byte) (Normal, error) {
	s := NewScanner(line)
	s.AdvanceN(2)
	s.SkipWhitespace()

	var n Normal
	if err := readFields(s, &n.X, &n.Y, &n.Z); err != nil {
		return Normal{}, ErrMalformedNormal
	}
	return n, nil
}
