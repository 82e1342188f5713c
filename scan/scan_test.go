package scan

import (
	"errors"
	"testing"
	"unicode"
)

func TestCursorConsumeWhile(t *testing.T) {
	c := NewCursor("abc123 def")
	word := c.ConsumeWhile(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
	if word != "abc123" {
		t.Errorf("expected word to be 'abc123', is %q", word)
	}
	c.ConsumeWhitespace()
	if !c.StartsWith("def") {
		t.Errorf("expected cursor to be at 'def', is at offset %d", c.Pos())
	}
}

func TestCursorExpect(t *testing.T) {
	c := NewCursor("ab")
	if err := c.Expect('a'); err != nil {
		t.Fatalf("expected 'a' to be accepted, got %v", err)
	}
	err := c.Expect('x')
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected malformed input error, got %v", err)
	}
	err = c.Expect('x')
	if !errors.Is(err, ErrOutOfInput) {
		t.Errorf("expected out-of-input error, got %v", err)
	}
}

func TestCursorMultibyte(t *testing.T) {
	c := NewCursor("ü<")
	r, err := c.Consume()
	if err != nil || r != 'ü' {
		t.Fatalf("expected to consume 'ü', got %q, %v", r, err)
	}
	if c.Pos() != 2 {
		t.Errorf("expected byte offset 2, is %d", c.Pos())
	}
	if c.Peek() != '<' {
		t.Errorf("expected next rune '<', is %q", c.Peek())
	}
}

func TestNextAtEnd(t *testing.T) {
	c := NewCursor("")
	if _, err := c.Next(); !errors.Is(err, ErrOutOfInput) {
		t.Errorf("expected out-of-input at end, got %v", err)
	}
	if c.Peek() != 0 {
		t.Error("expected Peek to return 0 at end of input")
	}
}
