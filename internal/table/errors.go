package table

import (
	"errors"
	"fmt"
)

// Load error kinds.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrMalformedInput = errors.New("malformed input")
	ErrTypeCoercion   = errors.New("type coercion failure")
	ErrNoRecords      = errors.New("no valid records found")
)

// CoercionError describes a cell that could not be converted to an integer.
// It matches ErrTypeCoercion under errors.Is.
type CoercionError struct {
	Line   int    // 1-based line in the input, header is line 1
	Column string // column name
	Value  string // raw cell text
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: line %d: column %q: %q is not an integer",
		ErrTypeCoercion, e.Line, e.Column, e.Value)
}

func (e *CoercionError) Is(target error) bool {
	return target == ErrTypeCoercion
}
