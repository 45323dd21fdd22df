package token

import (
	"errors"
	"fmt"
)

var ErrUnterminated = errors.New("unterminated quoted value")

// ScanError ties a scan failure to its input position.
type ScanError struct {
	Err error
	Pos Pos
}

func (e *ScanError) Unwrap() error { return e.Err }

func (e *ScanError) Error() string {
	return fmt.Sprintf("%v at %s", e.Err, e.Pos)
}
