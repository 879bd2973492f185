package jsmin

// pending is whitespace owed before the next emitted token.
// A newline supersedes a space.
type pending int

const (
	pendingNone pending = iota
	pendingSpace
	pendingNewline
)

// scanner holds the state of a single minification run
type scanner struct {
	cls classes
	in  *cursor
	out *sink

	// last rune read that is not a control or space character
	prevNonSpace rune
	owed         pending

	// a kept /*! comment just ended with its own newline
	afterKept bool
}

func newScanner(cls classes, in *cursor, out *sink) *scanner {
	return &scanner{
		cls:          cls,
		in:           in,
		out:          out,
		prevNonSpace: ';',
	}
}

func (s *scanner) run() error {
	for {
		ch := s.in.advance()
		if ch == eof {
			break
		}
		s.step(ch)
		if s.out.err != nil {
			return s.out.err
		}
	}
	if err := s.in.Err(); err != nil {
		return err
	}
	return s.out.err
}

// step dispatches on the rune just read
func (s *scanner) step(ch rune) {
	switch {
	case isNewline(ch):
		s.newline()
	case isBlank(ch):
		s.space()
	case ch == '/':
		s.slash()
	default:
		s.flush()
		if s.cls.isQuote(ch) {
			s.copyString(ch)
		} else {
			s.out.emit(ch)
		}
		s.prevNonSpace = ch
	}
}

// owe records whitespace to write before the next token
func (s *scanner) owe(p pending) {
	if p > s.owed {
		s.owed = p
	}
}

// flush writes any owed whitespace. Nothing is owed right after a kept
// comment: its trailing newline already separates the tokens.
func (s *scanner) flush() {
	if s.afterKept {
		s.afterKept = false
		s.owed = pendingNone
		return
	}
	switch s.owed {
	case pendingNewline:
		s.out.emit('\n')
	case pendingSpace:
		s.out.emit(' ')
	}
	s.owed = pendingNone
}

// space decides whether a run of blanks must leave a single space behind
func (s *scanner) space() {
	next := s.in.peek()
	prev := s.prevNonSpace
	switch {
	case isWordLike(prev) && isWordLike(next):
		s.owe(pendingSpace)
	case (prev == '+' || prev == '-') && next == prev:
		// keep "a + +b" and "a - -b" apart
		s.owe(pendingSpace)
	case next == '/' && s.out.afterReturn():
		s.owe(pendingSpace)
	}
}

// newline keeps a line break only where automatic semicolon insertion
// could change the meaning of the program. Blanks after the break are
// consumed while looking for the next significant rune.
func (s *scanner) newline() {
	if !s.cls.endsStatement(s.prevNonSpace) {
		return
	}
	for !s.in.atEnd() {
		next := s.in.peek()
		if !isBlank(next) {
			if s.cls.startsStatement(next) {
				s.owe(pendingNewline)
			}
			return
		}
		s.in.advance()
	}
}

// slash handles a '/' that opens a comment, a regex literal or is division
func (s *scanner) slash() {
	switch next := s.in.peek(); {
	case next == '/':
		s.in.advance()
		s.skipLineComment()
		s.newline()
	case next == '*':
		s.in.advance()
		if s.blockComment() {
			s.afterKept = true
		} else if isWordChar(s.prevNonSpace) {
			s.owe(pendingSpace)
		}
	case s.regexAllowed():
		s.flush()
		s.copyRegex()
		s.prevNonSpace = '/'
	default:
		s.flush()
		s.out.emit('/')
		s.prevNonSpace = '/'
	}
}

func (s *scanner) regexAllowed() bool {
	prev := s.prevNonSpace
	for _, r := range regexPrecursors {
		if r == prev {
			return true
		}
	}
	return s.out.afterReturn()
}
