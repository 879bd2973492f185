package jsmin

import "bufio"

const returnKeyword = "return"

// returnTracker follows the emitted text to tell whether the last word
// written was the keyword "return", possibly followed by whitespace.
type returnTracker struct {
	matched int // runes of the keyword matched by the current word, -1 once it diverges
	after   bool
}

func (t *returnTracker) active() bool {
	return t.after || t.matched == len(returnKeyword)
}

func (t *returnTracker) observe(r rune) {
	switch {
	case isBlank(r):
		t.after = t.active()
		t.matched = 0
		return
	case t.matched >= 0 && t.matched < len(returnKeyword) && rune(returnKeyword[t.matched]) == r:
		t.matched++
	case isWordLike(r):
		t.matched = -1
	default:
		t.matched = 0
	}
	t.after = false
}

func (t *returnTracker) reset() {
	t.matched = 0
	t.after = false
}

// sink writes minified output and remembers the first write error
type sink struct {
	w   *bufio.Writer
	ret returnTracker
	err error
}

func newSink(w *bufio.Writer) *sink {
	return &sink{w: w}
}

// emit writes a single token character
func (s *sink) emit(r rune) {
	s.ret.observe(r)
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteRune(r); err != nil {
		s.err = err
	}
}

// literal writes a string literal as one unit
func (s *sink) literal(text string) {
	s.ret.reset()
	s.raw(text)
}

// raw writes text without touching keyword tracking
func (s *sink) raw(text string) {
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteString(text); err != nil {
		s.err = err
	}
}

func (s *sink) afterReturn() bool {
	return s.ret.active()
}
