package logging

import "loglib/pkg/level"

func (log *Log) Debug(application string, message string) (err error) {
	err = log.Log(application, level.Debug, message, nil)
	return
}

func (log *Log) Verbose(application string, message string) (err error) {
	err = log.Log(application, level.Verbose, message, nil)
	return
}

func (log *Log) Info(application string, message string) (err error) {
	err = log.Log(application, level.Info, message, nil)
	return
}

// Cause may be nil
func (log *Log) Warning(application string, message string, cause error) (err error) {
	err = log.Log(application, level.Warning, message, cause)
	return
}

// Cause may be nil
func (log *Log) Error(application string, message string, cause error) (err error) {
	err = log.Log(application, level.Error, message, cause)
	return
}

// Cause may be nil. Does not exit the process.
func (log *Log) Fatal(application string, message string, cause error) (err error) {
	err = log.Log(application, level.Fatal, message, cause)
	return
}
