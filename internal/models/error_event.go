package models

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// StackFrame is a single frame of a captured stack trace
type StackFrame struct {
	File     string
	Line     int
	Function string
}

// String renders the frame as "file:line function"
func (sf StackFrame) String() string {
	return fmt.Sprintf("%s:%d %s", sf.File, sf.Line, sf.Function)
}

// ErrorEvent represents a reportable error captured by the host application.
// The stack trace is produced lazily on first access because most events are
// filtered out before anything renders it.
type ErrorEvent struct {
	ID         string
	Type       string // stable exception type identifier, e.g. "RuntimeFailure"
	Message    string
	File       string
	Line       int
	StatusCode int // HTTP-style status code, 0 when not applicable
	OccurredAt time.Time

	framesOnce sync.Once
	framesFn   func() []StackFrame
	frames     []StackFrame
}

// StackFrames returns the captured stack frames, resolving them on first call
func (e *ErrorEvent) StackFrames() []StackFrame {
	e.framesOnce.Do(func() {
		if e.framesFn != nil {
			e.frames = e.framesFn()
		}
	})
	return e.frames
}

// StackTraceText renders the stack frames as newline-separated text
func (e *ErrorEvent) StackTraceText() string {
	frames := e.StackFrames()
	if len(frames) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, frame := range frames {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(frame.String())
	}
	return sb.String()
}
