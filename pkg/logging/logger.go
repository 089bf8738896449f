package logging

import (
	"fmt"
	"loglib/pkg/level"
)

// Handle bound to one application
type Logger struct {
	log  *Log
	name string
}

// Registers app (replacing any existing entry) and returns a handle for it
func (log *Log) Logger(app Application) (logger *Logger) {
	log.Register(app, true)
	logger = &Logger{log: log, name: app.Name}
	return
}

// Handle for name using whatever configuration is or will be registered
func (log *Log) For(name string) (logger *Logger) {
	logger = &Logger{log: log, name: name}
	return
}

func (logger *Logger) Name() string {
	return logger.name
}

// Current configuration, created from defaults if missing
func (logger *Logger) Application() (app Application, err error) {
	app, err = logger.log.Application(logger.name, true)
	return
}

func (logger *Logger) Log(lvl level.Level, message string, cause error) (err error) {
	err = logger.log.Log(logger.name, lvl, message, cause)
	return
}

func (logger *Logger) Debug(message string) error {
	return logger.log.Log(logger.name, level.Debug, message, nil)
}

func (logger *Logger) Debugf(format string, args ...any) error {
	return logger.log.Log(logger.name, level.Debug, fmt.Sprintf(format, args...), nil)
}

func (logger *Logger) Verbose(message string) error {
	return logger.log.Log(logger.name, level.Verbose, message, nil)
}

func (logger *Logger) Verbosef(format string, args ...any) error {
	return logger.log.Log(logger.name, level.Verbose, fmt.Sprintf(format, args...), nil)
}

func (logger *Logger) Info(message string) error {
	return logger.log.Log(logger.name, level.Info, message, nil)
}

func (logger *Logger) Infof(format string, args ...any) error {
	return logger.log.Log(logger.name, level.Info, fmt.Sprintf(format, args...), nil)
}

func (logger *Logger) Warning(message string, cause error) error {
	return logger.log.Log(logger.name, level.Warning, message, cause)
}

func (logger *Logger) Warningf(format string, args ...any) error {
	return logger.log.Log(logger.name, level.Warning, fmt.Sprintf(format, args...), nil)
}

func (logger *Logger) Error(message string, cause error) error {
	return logger.log.Log(logger.name, level.Error, message, cause)
}

// Formats with fmt.Errorf so a %w verb also attaches the wrapped error
func (logger *Logger) Errorf(format string, args ...any) error {
	formatted := fmt.Errorf(format, args...)
	return logger.log.Log(logger.name, level.Error, formatted.Error(), causeOf(formatted))
}

func (logger *Logger) Fatal(message string, cause error) error {
	return logger.log.Log(logger.name, level.Fatal, message, cause)
}

func (logger *Logger) Fatalf(format string, args ...any) error {
	formatted := fmt.Errorf(format, args...)
	return logger.log.Log(logger.name, level.Fatal, formatted.Error(), causeOf(formatted))
}

// Wrapped error of a fmt.Errorf result, nil when no %w was used
func causeOf(formatted error) (cause error) {
	switch wrapped := formatted.(type) {
	case interface{ Unwrap() error }:
		cause = wrapped.Unwrap()
	case interface{ Unwrap() []error }:
		for _, candidate := range wrapped.Unwrap() {
			if candidate != nil {
				cause = candidate
				break
			}
		}
	}
	return
}
