// Package jsmin removes comments and insignificant whitespace from
// JavaScript source in a single forward pass.
package jsmin

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultQuotes are the string delimiters recognized when none are configured
const DefaultQuotes = `'"`

var (
	ErrNoSource     = errors.New("jsmin: no input stream")
	ErrNoSink       = errors.New("jsmin: no output stream")
	ErrInvalidQuote = errors.New("jsmin: invalid quote character")
)

// Option configures a Minifier
type Option func(*Minifier)

// WithQuotes sets the characters treated as string delimiters.
// An empty string keeps the default quotes.
func WithQuotes(chars string) Option {
	return func(m *Minifier) {
		if chars != "" {
			m.quotes = chars
		}
	}
}

// Minifier holds the character classes for one quote configuration.
// It is safe to reuse, including concurrently: every run keeps its own state.
type Minifier struct {
	quotes string
	cls    classes
}

// New creates a Minifier
func New(opts ...Option) *Minifier {
	m := &Minifier{quotes: DefaultQuotes}
	for _, opt := range opts {
		opt(m)
	}
	m.cls = newClasses(m.quotes)
	return m
}

// Quotes returns the configured string delimiters
func (m *Minifier) Quotes() string {
	return m.quotes
}

// Minify reads JavaScript from r and writes the minified form to w.
// Errors returned by r or w are passed through unchanged.
func (m *Minifier) Minify(r io.Reader, w io.Writer) error {
	if r == nil {
		return ErrNoSource
	}
	if w == nil {
		return ErrNoSink
	}
	if err := validateQuotes(m.quotes); err != nil {
		return err
	}

	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	bw := bufio.NewWriter(w)

	s := newScanner(m.cls, newCursor(rr), newSink(bw))
	if err := s.run(); err != nil {
		return err
	}
	return bw.Flush()
}

// MinifyString minifies a complete source text
func (m *Minifier) MinifyString(src string) (string, error) {
	var out strings.Builder
	out.Grow(len(src))
	if err := m.Minify(strings.NewReader(src), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

var defaultMinifier = New()

// Minify minifies r into w using the default quotes
func Minify(r io.Reader, w io.Writer) error {
	return defaultMinifier.Minify(r, w)
}

// MinifyString minifies src using the default quotes. In-memory runs cannot fail.
func MinifyString(src string) string {
	out, _ := defaultMinifier.MinifyString(src)
	return out
}

func validateQuotes(quotes string) error {
	for _, q := range quotes {
		if q < '!' || q == '/' || q == '\\' {
			return fmt.Errorf("%w: %q", ErrInvalidQuote, q)
		}
	}
	return nil
}
