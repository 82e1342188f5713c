package scan

import (
	"errors"
	"fmt"
)

// Sentinels for the two failure classes of a parse. Errors returned by
// parsers match one of them with errors.Is.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrOutOfInput     = errors.New("out of input")
)

// Error is a fatal parse error at a byte offset.
type Error struct {
	Kind error // ErrMalformedInput or ErrOutOfInput
	Pos  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Pos, e.Msg)
}

// Unwrap lets errors.Is see the kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Malformed creates a Malformed-Input error.
func Malformed(pos int, format string, args ...interface{}) error {
	return &Error{Kind: ErrMalformedInput, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// OutOfInput creates an Out-of-Input error.
func OutOfInput(pos int, format string, args ...interface{}) error {
	return &Error{Kind: ErrOutOfInput, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
