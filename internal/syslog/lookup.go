// Syslog severity names and codes mapped onto log levels
package syslog

import (
	"fmt"
	"loglib/pkg/level"
	"strconv"
	"strings"
	"sync"
)

var severityMu sync.RWMutex
var logSeverity = LogSeverity{
	SeverityToCode: map[string]uint16{
		"emerg":   0,
		"alert":   1,
		"crit":    2,
		"err":     3,
		"warning": 4,
		"notice":  5,
		"info":    6,
		"debug":   7,
	},
	CodeToSeverity: make(map[uint16]string),
	CodeToLevel: map[uint16]level.Level{
		0: level.Fatal,
		1: level.Fatal,
		2: level.Fatal,
		3: level.Error,
		4: level.Warning,
		5: level.Info,
		6: level.Info,
		7: level.Debug,
	},
}

// Common spellings accepted in addition to the canonical names
var severityAliases = map[string]string{
	"emergency": "emerg",
	"panic":     "emerg",
	"critical":  "crit",
	"error":     "err",
	"warn":      "warning",
}

func init() {
	severityMu.Lock()
	defer severityMu.Unlock()

	// Populate reverse lookup map
	for severity, code := range logSeverity.SeverityToCode {
		logSeverity.CodeToSeverity[code] = severity
	}
}

// Convert severity string to numeric code
func SeverityToCode(severity string) (code uint16, err error) {
	severityMu.RLock()
	defer severityMu.RUnlock()

	severity = strings.ToLower(strings.TrimSpace(severity))
	if canonical, isAlias := severityAliases[severity]; isAlias {
		severity = canonical
	}

	code, exists := logSeverity.SeverityToCode[severity]
	if !exists {
		err = fmt.Errorf("unknown severity name: %s", severity)
	}
	return
}

// Convert severity code to string
func CodeToSeverity(code uint16) (severity string, err error) {
	severityMu.RLock()
	defer severityMu.RUnlock()

	severity, exists := logSeverity.CodeToSeverity[code]
	if !exists {
		err = fmt.Errorf("unknown severity code: %d", code)
	}
	return
}

// Level for a severity given by name or numeric code
func SeverityToLevel(severity string) (lvl level.Level, err error) {
	code, err := SeverityToCode(severity)
	if err != nil {
		numeric, convErr := strconv.ParseUint(strings.TrimSpace(severity), 10, 16)
		if convErr != nil {
			err = fmt.Errorf("%w: %w", level.ErrInvalidLevel, err)
			return
		}
		code = uint16(numeric)
		err = nil
	}

	severityMu.RLock()
	defer severityMu.RUnlock()

	lvl, exists := logSeverity.CodeToLevel[code]
	if !exists {
		err = fmt.Errorf("%w: unknown severity code: %d", level.ErrInvalidLevel, code)
	}
	return
}

// Most specific syslog severity for a level
func LevelToSeverity(lvl level.Level) (severity string, err error) {
	switch lvl {
	case level.Fatal:
		severity = "crit"
	case level.Error:
		severity = "err"
	case level.Warning:
		severity = "warning"
	case level.Info:
		severity = "info"
	case level.Verbose, level.Debug:
		severity = "debug"
	default:
		err = fmt.Errorf("%w: no syslog severity for %s", level.ErrInvalidLevel, lvl)
	}
	return
}
