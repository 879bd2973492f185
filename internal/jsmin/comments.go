package jsmin

import "strings"

// skipLineComment discards the rest of a "//" comment together with the
// line breaks that follow it.
func (s *scanner) skipLineComment() {
	for !s.in.atEnd() && !isNewline(s.in.peek()) {
		s.in.advance()
	}
	for isNewline(s.in.peek()) {
		s.in.advance()
	}
}

// blockComment consumes a comment after its opening "/*". Comments starting
// with "/*!" are written out followed by a newline; others are dropped.
// It reports whether a complete comment and its newline were written.
func (s *scanner) blockComment() bool {
	keep := s.in.peek() == '!'

	var body strings.Builder
	closed := false
	for {
		r := s.in.advance()
		if r == eof {
			break
		}
		if r == '*' && s.in.peek() == '/' {
			s.in.advance()
			closed = true
			break
		}
		if keep {
			body.WriteRune(r)
		}
	}

	if !keep {
		return false
	}
	s.out.raw("/*")
	s.out.raw(body.String())
	if !closed {
		return false
	}
	s.out.raw("*/\n")
	return true
}
