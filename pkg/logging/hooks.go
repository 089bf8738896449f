package logging

import (
	"context"
	"loglib/internal/lifecycle"
	"loglib/pkg/event"
)

// Deferred at the top of a goroutine: logs a panic at FATAL under "Runtime", then re-panics
//
//	defer log.RecoverPanic()
func (log *Log) RecoverPanic() {
	value := recover()
	if value == nil {
		return
	}
	// Captured here so the trace still contains the panicking frames
	_ = lifecycle.ReportPanic(log, value, event.CaptureBacktrace())
	panic(value)
}

// Logs a runtime error under "Runtime": WARNING, or ERROR when severe
func (log *Log) ReportError(err error, severe bool) (reportErr error) {
	reportErr = lifecycle.ReportError(log, err, severe)
	return
}

// Logs an error that ends the process at ERROR under "Fatal Error"
func (log *Log) ReportFatal(err error) (reportErr error) {
	reportErr = lifecycle.ReportFatal(log, err)
	return
}

// Blocks until a termination signal (logged under "Runtime") or ctx is done.
// shutdown runs only for signals.
func (log *Log) HandleSignals(ctx context.Context, shutdown func()) {
	lifecycle.SignalHandler(ctx, log, shutdown)
}
