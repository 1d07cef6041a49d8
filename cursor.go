package comb

import (
	"strings"
	"unicode/utf8"
)

// A Cursor is a view over the unconsumed remainder of an input
// string. Parsers advance it in place as they consume characters.
//
// A Cursor is a plain value: copying one takes a snapshot, and
// assigning a snapshot back restores it. Nothing before the current
// position is ever observable again.
type Cursor struct {
	input  string
	offset int
}

func NewCursor(input string) Cursor {
	return Cursor{input: input}
}

// Rest returns the remaining unconsumed input as an owned string.
func (c Cursor) Rest() string {
	return c.input[c.offset:]
}

func (c Cursor) Empty() bool {
	return c.offset >= len(c.input)
}

func (c Cursor) Equal(o Cursor) bool {
	return c.input == o.input && c.offset == o.offset
}

// Peek returns the next rune without consuming it. The second result
// is false at end of input.
func (c Cursor) Peek() (rune, bool) {
	if c.Empty() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.offset:])
	return r, true
}

// Pop consumes and returns the next rune.
func (c *Cursor) Pop() (rune, bool) {
	if c.Empty() {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(c.input[c.offset:])
	c.offset += n
	return r, true
}

func (c Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.input[c.offset:], s)
}

// Advance discards the next n bytes of the remaining input and
// reports whether they were there to discard. A refused advance
// leaves the cursor where it was.
func (c *Cursor) Advance(n int) bool {
	if c.offset+n > len(c.input) {
		return false
	}
	c.offset += n
	return true
}

// SkipPrefix consumes s if it prefixes the remaining input and
// reports whether it did. Never consumes on a miss.
func (c *Cursor) SkipPrefix(s string) bool {
	if !c.HasPrefix(s) {
		return false
	}
	return c.Advance(len(s))
}

// TakeWhile consumes the maximal run of leading runes satisfying
// pred and returns it, possibly empty.
func (c *Cursor) TakeWhile(pred func(rune) bool) string {
	start := c.offset
	for {
		if c.Empty() {
			break
		}
		r, n := utf8.DecodeRuneInString(c.input[c.offset:])
		if !pred(r) {
			break
		}
		c.offset += n
	}
	return c.input[start:c.offset]
}
