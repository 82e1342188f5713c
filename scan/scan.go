/*
Package scan implements the input cursor shared by the markup and the
stylesheet parser.

Both parsers are recursive-descent parsers over a fully buffered string.
Every expectation violation aborts the parse: the first error wins and
there is no recovery.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cursor is a read position into an input text. Positions are byte offsets.
type Cursor struct {
	input string
	pos   int
}

// NewCursor creates a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// EOF is true if all of the input has been consumed.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.input)
}

// Next returns the next rune without consuming it.
func (c *Cursor) Next() (rune, error) {
	if c.EOF() {
		return 0, OutOfInput(c.pos, "unexpected end of input")
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, nil
}

// Peek returns the next rune, or 0 at the end of input.
func (c *Cursor) Peek() rune {
	r, err := c.Next()
	if err != nil {
		return 0
	}
	return r
}

// Consume returns the next rune and advances past it.
func (c *Cursor) Consume() (rune, error) {
	if c.EOF() {
		return 0, OutOfInput(c.pos, "unexpected end of input")
	}
	r, w := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += w
	return r, nil
}

// StartsWith checks if the unconsumed input starts with s.
func (c *Cursor) StartsWith(s string) bool {
	return strings.HasPrefix(c.input[c.pos:], s)
}

// ConsumeWhile consumes runes as long as pred holds and returns them.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) string {
	start := c.pos
	for !c.EOF() {
		r, w := utf8.DecodeRuneInString(c.input[c.pos:])
		if !pred(r) {
			break
		}
		c.pos += w
	}
	return c.input[start:c.pos]
}

// ConsumeWhitespace skips any Unicode white space.
func (c *Cursor) ConsumeWhitespace() {
	c.ConsumeWhile(unicode.IsSpace)
}

// Expect consumes the next rune and checks that it equals want.
func (c *Cursor) Expect(want rune) error {
	at := c.pos
	r, err := c.Consume()
	if err != nil {
		return OutOfInput(at, "expected %q, input exhausted", want)
	}
	if r != want {
		return Malformed(at, "expected %q, found %q", want, r)
	}
	return nil
}

// ExpectString consumes the literal s.
func (c *Cursor) ExpectString(s string) error {
	for _, r := range s {
		if err := c.Expect(r); err != nil {
			return err
		}
	}
	return nil
}
