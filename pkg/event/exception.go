package event

import (
	"errors"
	"fmt"
)

// Cause-chain links followed before the remainder is replaced by a marker
const MaxExceptionDepth int = 64

const truncatedMessage string = "exception chain truncated"

// Plain-value copy of an error and its causes, independent of the original error's lifetime
type ExceptionRecord struct {
	Type      string           `json:"type"`
	Message   string           `json:"message"`
	Code      int              `json:"code"`
	File      string           `json:"file,omitempty"`
	Line      int              `json:"line,omitempty"`
	Trace     []StackFrame     `json:"trace,omitempty"`
	Previous  *ExceptionRecord `json:"previous,omitempty"`
	Truncated bool             `json:"truncated,omitempty"`
}

// Optional behaviours an error may expose to enrich its record
type (
	coder interface {
		Code() int
	}
	locator interface {
		Location() (file string, line int)
	}
	tracer interface {
		StackTrace() []StackFrame
	}
)

// Flattens err and its cause chain. Returns nil for a nil error.
// Chains deeper than MaxExceptionDepth end in a record with Truncated set.
func FromError(err error) (record *ExceptionRecord) {
	if err == nil {
		return
	}

	record = flattenOne(err)
	current := record
	link := err

	for depth := 1; ; depth++ {
		link = cause(link)
		if link == nil {
			return
		}
		if depth >= MaxExceptionDepth {
			current.Previous = &ExceptionRecord{
				Type:      "truncated",
				Message:   truncatedMessage,
				Truncated: true,
			}
			return
		}
		current.Previous = flattenOne(link)
		current = current.Previous
	}
}

// Builds a record for a recovered panic value, locating it with the given frames
func FromPanic(value any, frames []StackFrame) (record *ExceptionRecord) {
	if err, ok := value.(error); ok {
		record = FromError(err)
	} else {
		record = &ExceptionRecord{
			Type:    fmt.Sprintf("%T", value),
			Message: fmt.Sprint(value),
		}
	}

	if record.File == "" && len(frames) > 0 {
		record.File = frames[0].File
		record.Line = frames[0].Line
	}
	if len(record.Trace) == 0 {
		record.Trace = frames
	}
	return
}

func flattenOne(err error) (record *ExceptionRecord) {
	record = &ExceptionRecord{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}

	if exc, ok := err.(*Exception); ok {
		record.Message = exc.message
	}
	if withCode, ok := err.(coder); ok {
		record.Code = withCode.Code()
	}
	if withLocation, ok := err.(locator); ok {
		record.File, record.Line = withLocation.Location()
	}
	if withTrace, ok := err.(tracer); ok {
		record.Trace = withTrace.StackTrace()
	}
	return
}

// Next link of the chain: Unwrap() error, or the first of Unwrap() []error
func cause(err error) (next error) {
	next = errors.Unwrap(err)
	if next != nil {
		return
	}
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		for _, candidate := range multi.Unwrap() {
			if candidate != nil {
				next = candidate
				return
			}
		}
	}
	return
}
