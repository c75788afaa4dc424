package netlist

// scanner walks netlist text byte by byte. Netlists are ASCII in practice;
// any non-ASCII byte is neither whitespace nor an identifier character, so it
// is stepped over like stray punctuation.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the byte at the cursor. Only valid when !eof().
func (s *scanner) peek() byte {
	return s.src[s.pos]
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// ident parses an identifier at the cursor, skipping leading whitespace.
// Two forms are recognized:
//
//   - plain: a maximal run of alphanumerics, '_' or '$'
//   - escaped: a backslash followed by all characters up to the next
//     whitespace; the backslash is part of the returned token
//
// On success the cursor sits just past the token, trailing whitespace not
// consumed. On failure the token is empty, ok is false and the cursor is
// left exactly where it was.
func (s *scanner) ident() (string, bool) {
	start := s.pos
	s.skipSpace()

	if s.pos < len(s.src) && s.src[s.pos] == '\\' {
		from := s.pos
		s.pos++
		for s.pos < len(s.src) && !isSpace(s.src[s.pos]) {
			s.pos++
		}
		return s.src[from:s.pos], true
	}

	from := s.pos
	for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == from {
		s.pos = start
		return "", false
	}
	return s.src[from:s.pos], true
}

// resync advances past the tail of an instantiation: everything up to and
// including the next ';', or up to a newline, which is left for the next
// scan iteration. Statement termination in the source is not grammar-checked;
// this is only a recovery point.
func (s *scanner) resync() {
	for s.pos < len(s.src) && s.src[s.pos] != ';' && s.src[s.pos] != '\n' {
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == ';' {
		s.pos++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
