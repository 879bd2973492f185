package jsmin

import "strings"

// copyString copies a string literal whose opening quote has been read.
// A quote closes the literal when preceded by an even number of backslashes.
// At end of input the literal is written as far as it was read.
func (s *scanner) copyString(quote rune) {
	var lit strings.Builder
	lit.WriteRune(quote)

	backslashes := 0
	for {
		r := s.in.advance()
		if r == eof {
			break
		}
		lit.WriteRune(r)
		if r == quote && backslashes%2 == 0 {
			break
		}
		if r == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
	}
	s.out.literal(lit.String())
}

// copyRegex copies a regex literal whose opening '/' has been read, up to
// and including the closing '/'. Flags are left to the main loop.
func (s *scanner) copyRegex() {
	var lit strings.Builder
	lit.WriteByte('/')

	inClass := false
	for {
		r := s.in.advance()
		if r == eof {
			break
		}
		lit.WriteRune(r)
		if r == '/' && !inClass {
			break
		}
		switch r {
		case '\\':
			s.copyEscaped(&lit)
		case '[':
			// a class holds at least one rune, so "[]/]" stays open
			inClass = true
			if first := s.in.advance(); first != eof {
				lit.WriteRune(first)
				if first == '\\' {
					s.copyEscaped(&lit)
				}
			}
		case ']':
			inClass = false
		}
	}
	s.out.literal(lit.String())
}

func (s *scanner) copyEscaped(lit *strings.Builder) {
	if r := s.in.advance(); r != eof {
		lit.WriteRune(r)
	}
}
