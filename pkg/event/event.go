// Log event records, call-site capture and error chain flattening
package event

import (
	"loglib/pkg/level"
	"time"
)

// One log occurrence. Message, level and timestamp are fixed at construction;
// backtrace and exception may each be attached once afterwards.
type Event struct {
	message   string
	level     level.Level
	timestamp time.Time

	backtrace    []StackFrame
	hasBacktrace bool
	exception    *ExceptionRecord
}

// Creates an event stamped with the current time
func New(message string, lvl level.Level) (event *Event) {
	event = NewAt(message, lvl, time.Now())
	return
}

// Creates an event with an explicit timestamp
func NewAt(message string, lvl level.Level, timestamp time.Time) (event *Event) {
	event = &Event{
		message:   message,
		level:     lvl,
		timestamp: timestamp,
	}
	return
}

func (event *Event) Message() string {
	return event.message
}

func (event *Event) Level() level.Level {
	return event.level
}

func (event *Event) Timestamp() time.Time {
	return event.timestamp
}

// Captured call frames, innermost first. Nil when never captured.
func (event *Event) Backtrace() []StackFrame {
	return event.backtrace
}

// Reports whether a backtrace (possibly empty) has been attached
func (event *Event) HasBacktrace() bool {
	return event.hasBacktrace
}

func (event *Event) Exception() *ExceptionRecord {
	return event.exception
}

// Attaches frames unless a backtrace is already present
func (event *Event) SetBacktrace(frames []StackFrame) (attached bool) {
	if event.hasBacktrace {
		return
	}
	event.backtrace = frames
	event.hasBacktrace = true
	attached = true
	return
}

// Attaches an exception record unless one is already present
func (event *Event) SetException(record *ExceptionRecord) (attached bool) {
	if event.exception != nil || record == nil {
		return
	}
	event.exception = record
	attached = true
	return
}
