package logging

import (
	"context"
	"fmt"
	"log/slog"
	"loglib/pkg/event"
	"loglib/pkg/level"
	"runtime"
	"strings"
	"time"
)

// slog.Handler writing records through a dispatcher under one application
type SlogHandler struct {
	log         *Log
	application string
	attrs       []slog.Attr
	groups      []string
}

// Creates a handler; attrs become key=value pairs after the message
func NewSlogHandler(log *Log, application string) (handler *SlogHandler) {
	handler = &SlogHandler{log: log, application: application}
	return
}

// Level for a slog level. Levels between the named ones round toward less verbose.
func SlogLevel(slogLevel slog.Level) (lvl level.Level) {
	switch {
	case slogLevel >= slog.LevelError+4:
		lvl = level.Fatal
	case slogLevel >= slog.LevelError:
		lvl = level.Error
	case slogLevel >= slog.LevelWarn:
		lvl = level.Warning
	case slogLevel >= slog.LevelInfo:
		lvl = level.Info
	case slogLevel > slog.LevelDebug:
		lvl = level.Verbose
	default:
		lvl = level.Debug
	}
	return
}

// Reports whether any enabled sink of the application would accept the level
func (handler *SlogHandler) Enabled(ctx context.Context, slogLevel slog.Level) (enabled bool) {
	app, err := handler.log.Application(handler.application, true)
	if err != nil {
		return
	}
	lvl := SlogLevel(slogLevel)
	if app.ConsoleEnabled {
		enabled, _ = level.IsAllowed(lvl, app.ConsoleLevel)
	}
	if !enabled && app.FileEnabled {
		enabled, _ = level.IsAllowed(lvl, app.FileLevel)
	}
	return
}

func (handler *SlogHandler) Handle(ctx context.Context, record slog.Record) (err error) {
	var pairs []string
	var cause error

	collect := func(prefix string) func(slog.Attr) bool {
		return func(attr slog.Attr) bool {
			attr.Value = attr.Value.Resolve()
			if attr.Equal(slog.Attr{}) {
				return true
			}
			if attrErr, isErr := attr.Value.Any().(error); isErr && cause == nil {
				cause = attrErr
			}
			appendAttr(&pairs, prefix, attr)
			return true
		}
	}
	// Handler attrs already carry their group prefix
	for _, attr := range handler.attrs {
		collect("")(attr)
	}
	record.Attrs(collect(strings.Join(handler.groups, ".")))

	message := record.Message
	if len(pairs) > 0 {
		message = strings.TrimSpace(message + " " + strings.Join(pairs, " "))
	}
	if message == "" {
		message = record.Level.String()
	}

	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	evt := event.NewAt(message, SlogLevel(record.Level), timestamp)
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		caller := event.ParseSymbol(frame.Function)
		caller.File = frame.File
		caller.Line = frame.Line
		evt.SetBacktrace([]event.StackFrame{caller})
	}
	if cause != nil {
		evt.SetException(event.FromError(cause))
	}

	err = handler.log.Emit(handler.application, evt)
	return
}

func (handler *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *handler
	// Attrs recorded before a group keep their own prefix
	prefix := strings.Join(handler.groups, ".")
	clone.attrs = append([]slog.Attr(nil), handler.attrs...)
	for _, attr := range attrs {
		if prefix != "" {
			attr.Key = prefix + "." + attr.Key
		}
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

func (handler *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	clone := *handler
	clone.groups = append(append([]string(nil), handler.groups...), name)
	return &clone
}

func appendAttr(pairs *[]string, prefix string, attr slog.Attr) {
	key := attr.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			appendAttr(pairs, key, member)
		}
		return
	}
	*pairs = append(*pairs, fmt.Sprintf("%s=%v", key, attr.Value.Any()))
}
