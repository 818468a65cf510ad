package cpu

import (
	"errors"
	"fmt"
)

// Execution failures. Use errors.Is to test for them; the engine wraps
// them in *Error to record where execution stopped.
var (
	// ErrProcessing reports an opcode outside the instruction set.
	ErrProcessing = errors.New("there was a processing error")

	// ErrOutOfBounds reports a read or write outside memory, including
	// running off the end of memory without reaching HALT.
	ErrOutOfBounds = errors.New("memory access out of bounds")

	// ErrOverflow reports an ADD or MUL result that does not fit in a cell.
	ErrOverflow = errors.New("arithmetic overflow")
)

// Error defines a runtime error.
type Error struct {
	Cursor int    // Address of the instruction being executed.
	Msg    string // Detail about the failing instruction.
	Err    error  // Wraps ErrProcessing, ErrOutOfBounds or ErrOverflow.
}

// NewError creates a new, formatted error for the instruction at cursor.
func NewError(cursor int, err error, f string, argv ...interface{}) *Error {
	return &Error{
		Cursor: cursor,
		Msg:    fmt.Sprintf(f, argv...),
		Err:    err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04d: %s: %v", e.Cursor, e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
