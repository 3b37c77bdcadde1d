package xdo

import "strings"

// Cursor is a forward-only reader over the lines of one batch's stdout.
// All parsers of a batch share one Cursor, each consuming the lines its
// sub-command printed.
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor splits output on newlines. The empty string after a final
// newline is not a line, so "" has no lines and "\n" has one empty line.
func NewCursor(output string) *Cursor {
	lines := strings.Split(output, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Cursor{lines: lines}
}

// Next returns the next line or ErrStreamExhausted.
func (c *Cursor) Next() (string, error) {
	if c.pos >= len(c.lines) {
		return "", ErrStreamExhausted
	}
	line := strings.TrimSuffix(c.lines[c.pos], "\r")
	c.pos++
	return line, nil
}

// Remaining reports how many lines are left.
func (c *Cursor) Remaining() int {
	return len(c.lines) - c.pos
}
