package models

import "fmt"

// PanicError wraps a recovered panic value so it can be reported as a
// regular error event with a stable "PanicError" type identifier.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// NewPanicError wraps a recovered panic value
func NewPanicError(value any) *PanicError {
	return &PanicError{Value: value}
}
