// Process-level error, panic and signal reporting into the logging pipeline
package lifecycle

import (
	"errors"
	"fmt"
	"loglib/internal/global"
	"loglib/pkg/event"
	"loglib/pkg/level"
)

// Destination for hook events
type Reporter interface {
	Emit(application string, evt *event.Event) (err error)
}

// Logs a recovered panic value at FATAL under the runtime application.
// Frames should be captured inside the deferred function so they include the panic site.
func ReportPanic(reporter Reporter, value any, frames []event.StackFrame) (err error) {
	message := fmt.Sprint(value)
	if message == "" {
		message = fmt.Sprintf("panic: %T", value)
	}

	evt := event.New(message, level.Fatal)
	evt.SetBacktrace(frames)
	evt.SetException(event.FromPanic(value, frames))

	err = emit(reporter, global.RuntimeApplication, evt)
	return
}

// Logs a non-fatal runtime error at WARNING, or ERROR when severe
func ReportError(reporter Reporter, err error, severe bool) (reportErr error) {
	if err == nil {
		return
	}

	lvl := level.Warning
	if severe {
		lvl = level.Error
	}
	reportErr = reportWith(reporter, global.RuntimeApplication, lvl, err)
	return
}

// Logs an error that is ending the process at ERROR under the fatal-error application
func ReportFatal(reporter Reporter, err error) (reportErr error) {
	if err == nil {
		return
	}
	reportErr = reportWith(reporter, global.FatalErrorApplication, level.Error, err)
	return
}

func reportWith(reporter Reporter, application string, lvl level.Level, err error) (reportErr error) {
	message := err.Error()
	if message == "" {
		message = fmt.Sprintf("%T", err)
	}

	evt := event.New(message, lvl)
	evt.SetBacktrace(event.CaptureBacktrace())
	evt.SetException(event.FromError(err))

	reportErr = emit(reporter, application, evt)
	return
}

// Hooks never propagate a panic raised while logging
func emit(reporter Reporter, application string, evt *event.Event) (err error) {
	if reporter == nil {
		err = errors.New("no reporter for runtime hook")
		return
	}

	defer func() {
		if fault := recover(); fault != nil {
			err = fmt.Errorf("%w: runtime hook panicked: %v", global.ErrLogging, fault)
		}
	}()

	err = reporter.Emit(application, evt)
	return
}
