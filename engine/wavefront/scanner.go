package wavefront

// Scanner is a cursor over a single line. None of its methods fail: every
// movement stops at the end of the line or at a NUL byte.
type Scanner struct {
	line []byte
	pos  int
}

func NewScanner(line []byte) *Scanner {
	return &Scanner{line: line}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isStop(c byte) bool {
	return c == 0 || c == '\n' || c == '\r'
}

// Pos returns the current offset into the line.
func (s *Scanner) Pos() int {
	return s.pos
}

// Peek returns the byte under the cursor, or 0 at the end of the line.
func (s *Scanner) Peek() byte {
	return s.PeekAt(0)
}

// PeekAt returns the byte off positions past the cursor, or 0 past the end.
func (s *Scanner) PeekAt(off int) byte {
	i := s.pos + off
	if i < 0 || i >= len(s.line) {
		return 0
	}
	return s.line[i]
}

// Rest returns the unread part of the line.
func (s *Scanner) Rest() []byte {
	return s.line[s.pos:]
}

// AtEnd reports whether nothing but a line terminator is left.
func (s *Scanner) AtEnd() bool {
	return isStop(s.Peek())
}

// Advance steps one byte forward.
func (s *Scanner) Advance() {
	if s.Peek() != 0 {
		s.pos++
	}
}

// AdvanceN steps up to n bytes forward, stopping early at a NUL byte.
func (s *Scanner) AdvanceN(n int) {
	for ; n > 0; n-- {
		s.Advance()
	}
}

// SkipWhitespace skips a run of spaces and tabs.
func (s *Scanner) SkipWhitespace() {
	for isBlank(s.Peek()) {
		s.pos++
	}
}

// SkipToWhitespace skips to the next space or tab, or to the end of the line.
func (s *Scanner) SkipToWhitespace() {
	for c := s.Peek(); !isBlank(c) && !isStop(c); c = s.Peek() {
		s.pos++
	}
}

// NextField moves past the current token and the whitespace after it.
func (s *Scanner) NextField() {
	s.SkipToWhitespace()
	s.SkipWhitespace()
}
