package models

import (
	"reflect"
	"runtime"
)

const maxCapturedFrames = 64

// CaptureError builds an ErrorEvent from a Go error value. The exception
// type identifier is the error's concrete type name, the source location is
// the caller's frame, and the full stack is captured now but resolved to
// frames lazily. skip counts additional stack frames to drop above the
// caller of CaptureError.
func CaptureError(err error, skip int) *ErrorEvent {
	builder := NewErrorEventBuilder(errorTypeName(err)).
		WithMessage(err.Error())

	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		builder = builder.WithSource(file, line)
	}

	pcs := make([]uintptr, maxCapturedFrames)
	// +2 drops runtime.Callers and CaptureError itself
	n := runtime.Callers(skip+2, pcs)
	pcs = pcs[:n]

	return builder.WithStackProducer(func() []StackFrame {
		return resolveFrames(pcs)
	}).Build()
}

// errorTypeName derives a stable short type identifier from an error value
func errorTypeName(err error) string {
	t := reflect.TypeOf(err)
	if t == nil {
		return "UnknownError"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// resolveFrames expands program counters into stack frames
func resolveFrames(pcs []uintptr) []StackFrame {
	if len(pcs) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs)
	resolved := make([]StackFrame, 0, len(pcs))
	for {
		frame, more := frames.Next()
		resolved = append(resolved, StackFrame{
			File:     frame.File,
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}
	return resolved
}
