package parse

import (
	"errors"
	"fmt"

	"github.com/mirrordat/datmirror/token"
)

var (
	ErrParse      = errors.New("parse error")
	ErrUnbalanced = fmt.Errorf("%w: close with no open record", ErrParse)
	ErrTruncated  = fmt.Errorf("%w: key with no value", ErrParse)
)

// Error ties a structural parse failure to its input position.
type Error struct {
	Err error
	Pos token.Pos
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Error() string {
	return fmt.Sprintf("%v at %s", e.Err, e.Pos)
}
