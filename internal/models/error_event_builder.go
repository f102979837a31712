package models

import (
	"time"

	"github.com/google/uuid"
)

// ErrorEventBuilder helps in constructing ErrorEvent objects
type ErrorEventBuilder struct {
	event *ErrorEvent
}

// NewErrorEventBuilder creates a new error event builder
func NewErrorEventBuilder(exceptionType string) *ErrorEventBuilder {
	return &ErrorEventBuilder{
		event: &ErrorEvent{
			ID:         uuid.NewString(),
			Type:       exceptionType,
			OccurredAt: time.Now(),
		},
	}
}

// WithMessage sets the human-readable error message
func (b *ErrorEventBuilder) WithMessage(message string) *ErrorEventBuilder {
	b.event.Message = message
	return b
}

// WithSource sets the source file and line where the error originated
func (b *ErrorEventBuilder) WithSource(file string, line int) *ErrorEventBuilder {
	b.event.File = file
	b.event.Line = line
	return b
}

// WithStatusCode sets the HTTP-style status code associated with the error
func (b *ErrorEventBuilder) WithStatusCode(statusCode int) *ErrorEventBuilder {
	b.event.StatusCode = statusCode
	return b
}

// WithOccurredAt overrides the occurrence timestamp
func (b *ErrorEventBuilder) WithOccurredAt(occurredAt time.Time) *ErrorEventBuilder {
	b.event.OccurredAt = occurredAt
	return b
}

// WithStackFrames sets pre-resolved stack frames
func (b *ErrorEventBuilder) WithStackFrames(frames []StackFrame) *ErrorEventBuilder {
	b.event.framesFn = func() []StackFrame { return frames }
	return b
}

// WithStackProducer sets a function that resolves stack frames on demand
func (b *ErrorEventBuilder) WithStackProducer(producer func() []StackFrame) *ErrorEventBuilder {
	b.event.framesFn = producer
	return b
}

// Build returns the constructed ErrorEvent
func (b *ErrorEventBuilder) Build() *ErrorEvent {
	return b.event
}
