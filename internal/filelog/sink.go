// Daily rotating per-application log files
package filelog

import (
	"fmt"
	"loglib/internal/filelock"
	"loglib/internal/global"
	"loglib/internal/logctx"
	"loglib/pkg/event"
	"loglib/pkg/level"
	"os"
	"sync"
	"time"
)

type Sink struct {
	Namespace []string
	mu        sync.Mutex
	clock     func() time.Time
	locks     map[string]*filelock.Lock // key=application name, value=lock on the current dated file
	lockStats filelock.Stats
	metrics   MetricStorage
	// overrides for the lock intervals, zero keeps defaults
	retryInterval        time.Duration
	confirmationInterval time.Duration
}

// Creates new file sink using the wall clock
func New(namespace []string) (sink *Sink) {
	sink = &Sink{
		Namespace: append(append([]string(nil), namespace...), global.NSFile),
		clock:     time.Now,
		locks:     make(map[string]*filelock.Lock),
	}
	return
}

// Replaces the clock used for file dating (tests, replay)
func (sink *Sink) SetClock(clock func() time.Time) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if clock == nil {
		clock = time.Now
	}
	sink.clock = clock
}

// Overrides lock retry and confirmation intervals for newly opened files
func (sink *Sink) SetLockIntervals(retry, confirmation time.Duration) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.retryInterval = retry
	sink.confirmationInterval = confirmation
}

// Writes the event to the application's file if the file threshold allows it
func (sink *Sink) Render(app global.Application, evt *event.Event) (err error) {
	allowed, err := level.IsAllowed(evt.Level(), app.FileLevel)
	if err != nil {
		err = fmt.Errorf("%w: file threshold for %q: %w", global.ErrInvalidArgument, app.Name, err)
		return
	}
	if !allowed {
		return
	}

	sink.mu.Lock()
	now := sink.clock()
	sink.mu.Unlock()

	err = os.MkdirAll(app.FileDirectory, global.LogDirPerm)
	if err != nil {
		sink.metrics.Failures.Add(1)
		err = fmt.Errorf("%w: failed to create log directory %q: %w", global.ErrLogging, app.FileDirectory, err)
		return
	}

	lock := sink.lockFor(app.Name, ResolvePath(app.FileDirectory, app.Name, now))

	err = lock.Append([]byte(FormatEntry(app, evt)))
	if err != nil {
		sink.metrics.Failures.Add(1)
		return
	}
	sink.metrics.LinesWritten.Add(1)

	if app.DumpExceptions && evt.Exception() != nil {
		_, err = sink.dumpException(app, evt.Exception(), now)
		if err != nil {
			sink.metrics.Failures.Add(1)
			return
		}
	}
	return
}

// Returns the application's lock, replacing it when the dated path moved on
func (sink *Sink) lockFor(name string, path string) (lock *filelock.Lock) {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	lock, exists := sink.locks[name]
	if exists && lock.Path == path {
		return
	}
	if exists {
		sink.metrics.Rotations.Add(1)
	}

	lock = filelock.New(path, &sink.lockStats)
	if sink.retryInterval > 0 {
		lock.RetryInterval = sink.retryInterval
	}
	if sink.confirmationInterval > 0 {
		lock.ConfirmationInterval = sink.confirmationInterval
	}
	sink.locks[name] = lock
	return
}

// Builds the newline-terminated file text for one event.
// Callsite and exception block are included at VERBOSE thresholds and above.
func FormatEntry(app global.Application, evt *event.Event) (text string) {
	line := logctx.Line{
		Timestamp:   logctx.PadTimestamp(evt.Timestamp()),
		Application: app.Name,
		Severity:    evt.Level().String(),
		Message:     evt.Message(),
	}

	detailed, _ := level.IsAllowed(level.Verbose, app.FileLevel)
	if detailed {
		line.Callsite = event.TraceString(evt.Backtrace(), false)
	}

	text = line.Format() + "\n"
	if detailed && evt.Exception() != nil {
		text += logctx.ExceptionBlock(evt.Exception(), false)
	}
	return
}
