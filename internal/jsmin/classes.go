package jsmin

import "strings"

// Characters that may form part of an identifier, number or keyword.
// Anything above '~' is treated the same way.
const wordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_$\\"

const (
	lineStarters = "{[(+-"
	lineEnders   = "}])+-/"

	// a '/' after one of these starts a regex literal
	regexPrecursors = "{(,=:[?!&|;"
)

// classes groups the character sets derived from the quote configuration
type classes struct {
	quotes       string
	newlineStart string
	newlineEnd   string
}

func newClasses(quotes string) classes {
	return classes{
		quotes:       quotes,
		newlineStart: lineStarters + wordChars + quotes,
		newlineEnd:   lineEnders + wordChars + quotes,
	}
}

func isWordChar(r rune) bool {
	return r >= 0 && strings.ContainsRune(wordChars, r)
}

// isWordLike reports whether r glues to a neighbouring word character
func isWordLike(r rune) bool {
	return r > '~' || isWordChar(r)
}

func (c classes) isQuote(r rune) bool {
	return r >= 0 && strings.ContainsRune(c.quotes, r)
}

// endsStatement reports whether a newline after r may be significant
func (c classes) endsStatement(r rune) bool {
	return r > '~' || (r >= 0 && strings.ContainsRune(c.newlineEnd, r))
}

// startsStatement reports whether a newline before r may be significant
func (c classes) startsStatement(r rune) bool {
	return r > '~' || r == '/' || (r >= 0 && strings.ContainsRune(c.newlineStart, r))
}

func isNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

// isBlank covers control characters and ASCII space; eof counts as blank
func isBlank(r rune) bool {
	return r < '!'
}
