package jsmin

import "io"

const eof rune = -1

// cursor is a forward-only rune source with one rune of lookahead
type cursor struct {
	r    io.RuneReader
	next rune
	held bool
	err  error
}

func newCursor(r io.RuneReader) *cursor {
	return &cursor{r: r}
}

// peek returns the next rune without consuming it
func (c *cursor) peek() rune {
	if !c.held {
		c.next = c.read()
		c.held = true
	}
	return c.next
}

// advance consumes and returns the next rune
func (c *cursor) advance() rune {
	r := c.peek()
	if r != eof {
		c.held = false
	}
	return r
}

func (c *cursor) atEnd() bool {
	return c.peek() == eof
}

// Err returns the first read error other than io.EOF
func (c *cursor) Err() error {
	if c.err == io.EOF {
		return nil
	}
	return c.err
}

func (c *cursor) read() rune {
	if c.err != nil {
		return eof
	}
	r, _, err := c.r.ReadRune()
	if err != nil {
		c.err = err
		return eof
	}
	return r
}
