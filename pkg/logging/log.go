// Per-application leveled logging to the console and to daily log files
package logging

import (
	"fmt"
	"io"
	"loglib/internal/config"
	"loglib/internal/console"
	"loglib/internal/filelog"
	"loglib/internal/global"
	"loglib/internal/metrics"
	"loglib/internal/registry"
	"loglib/pkg/event"
	"loglib/pkg/level"
	"sync"
	"time"
)

// Configuration of one application's sinks
type Application = global.Application

// Counter snapshot of one sink
type Metric = metrics.Metric

// Process defaults applied to applications that log before being registered
type Options struct {
	Level          level.Level // console threshold
	ANSI           bool
	Console        bool
	ConsoleWriter  io.Writer // nil prints to stdout when it is a terminal
	FileEnabled    bool
	FileLevel      level.Level
	Directory      string
	DumpExceptions bool
}

// Dispatcher state: registry plus one console and one file sink
type Log struct {
	defaults Options
	registry *registry.Registry
	console  *console.Sink
	file     *filelog.Sink
	totals   *metrics.Registry
}

var (
	defaultLog  *Log
	defaultOnce sync.Once
)

// Options resolved from command line arguments, environment and terminal detection
func OptionsFromEnvironment() (opts Options) {
	opts = fromConfig(config.FromProcess())
	return
}

// Options from explicit option values (names without dashes), then environment and defaults
func OptionsFromArgs(args map[string]string) (opts Options) {
	opts = fromConfig(config.FromArgs(args))
	return
}

func fromConfig(resolved config.Options) (opts Options) {
	opts = Options{
		Level:          resolved.Level,
		ANSI:           resolved.ANSI,
		Console:        resolved.Console,
		FileEnabled:    resolved.FileEnabled,
		FileLevel:      resolved.FileLevel,
		Directory:      resolved.Directory,
		DumpExceptions: resolved.DumpExceptions,
	}
	return
}

// Process-wide dispatcher configured from the environment on first use
func Default() (log *Log) {
	defaultOnce.Do(func() {
		defaultLog = New(OptionsFromEnvironment())
	})
	log = defaultLog
	return
}

// Creates new dispatcher
func New(opts Options) (log *Log) {
	namespace := []string{global.NSLog}

	var consoleSink *console.Sink
	if opts.ConsoleWriter != nil {
		consoleSink = console.New(namespace, console.Options{
			Writer:      opts.ConsoleWriter,
			Interactive: true,
			ANSI:        opts.ANSI,
		})
	} else {
		consoleSink = console.Stdout(namespace, opts.ANSI)
	}

	log = &Log{
		defaults: opts,
		console:  consoleSink,
		file:     filelog.New(namespace),
		totals:   metrics.New(),
	}
	log.registry = registry.New(log.defaultApplication)
	return
}

// Entry for an application first seen through a logging call
func (log *Log) defaultApplication(name string) (app Application) {
	app = config.Options{
		Level:          log.defaults.Level,
		Console:        log.defaults.Console,
		FileEnabled:    log.defaults.FileEnabled,
		FileLevel:      log.defaults.FileLevel,
		Directory:      log.defaults.Directory,
		DumpExceptions: log.defaults.DumpExceptions,
	}.Application(name)
	return
}

// Adds an application configuration. Returns false when the name exists and overwrite is not set.
func (log *Log) Register(app Application, overwrite bool) (registered bool) {
	registered = log.registry.Register(app, overwrite)
	return
}

// Removes an application configuration; absent names are ignored
func (log *Log) Unregister(name string) {
	log.registry.Unregister(name)
}

// Looks up an application, creating it from defaults when create is set
func (log *Log) Application(name string, create bool) (app Application, err error) {
	app, err = log.registry.Get(name, create)
	return
}

// Registered application names in order
func (log *Log) Applications() (names []string) {
	names = log.registry.Names()
	return
}

// Validates, builds and dispatches one event
func (log *Log) Log(application string, lvl level.Level, message string, cause error) (err error) {
	err = validate(application, message, lvl)
	if err != nil {
		return
	}

	evt := event.New(message, lvl)
	evt.SetBacktrace(event.CaptureBacktrace())
	if cause != nil {
		evt.SetException(event.FromError(cause))
	}

	err = log.dispatch(application, evt)
	return
}

// Dispatches a prepared event. A backtrace is captured only if the event has none.
func (log *Log) Emit(application string, evt *event.Event) (err error) {
	if evt == nil {
		err = fmt.Errorf("%w: nil event", ErrInvalidArgument)
		return
	}
	err = validate(application, evt.Message(), evt.Level())
	if err != nil {
		return
	}

	if !evt.HasBacktrace() {
		evt.SetBacktrace(event.CaptureBacktrace())
	}

	err = log.dispatch(application, evt)
	return
}

func validate(application string, message string, lvl level.Level) (err error) {
	if application == "" {
		err = fmt.Errorf("%w: empty application name", ErrInvalidArgument)
		return
	}
	if message == "" {
		err = fmt.Errorf("%w: empty message", ErrInvalidArgument)
		return
	}
	if !lvl.Valid() {
		err = fmt.Errorf("%w: %w: %d", ErrInvalidArgument, ErrInvalidLevel, int(lvl))
		return
	}
	return
}

// Runs each enabled sink independently and joins their failures
func (log *Log) dispatch(application string, evt *event.Event) (err error) {
	app, err := log.registry.Get(application, true)
	if err != nil {
		return
	}

	var consoleErr, fileErr error
	if app.ConsoleEnabled {
		consoleErr = log.console.Render(app, evt)
	}
	if app.FileEnabled {
		fileErr = log.file.Render(app, evt)
	}

	err = joinErrors(consoleErr, fileErr)
	return
}

// Returns and resets sink counters, folding them into the running totals
func (log *Log) CollectMetrics(interval time.Duration) (collection []Metric) {
	collection = append(collection, log.console.CollectMetrics(interval)...)
	collection = append(collection, log.file.CollectMetrics(interval)...)
	log.totals.Add(collection)
	return
}

// Running totals of every collection so far, optionally filtered by metric name
func (log *Log) MetricTotals(name string) (totals []Metric) {
	totals = log.totals.Search(name, []string{global.NSLog})
	return
}
