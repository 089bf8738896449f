// Ordered severity levels and the threshold predicate every sink consults
package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level ranks an event from least verbose (SILENT) to most verbose (DEBUG).
// A threshold of T lets through every event ranked FATAL..T.
type Level int

const (
	Silent Level = iota
	Fatal
	Error
	Warning
	Info
	Verbose
	Debug
)

var ErrInvalidLevel = errors.New("invalid level")

// Closed ordered set of levels
func All() (levels []Level) {
	levels = []Level{Silent, Fatal, Error, Warning, Info, Verbose, Debug}
	return
}

// Reports whether the value is one of the defined levels
func (lvl Level) Valid() (valid bool) {
	valid = lvl >= Silent && lvl <= Debug
	return
}

// Full upper-case level name
func (lvl Level) String() (name string) {
	switch lvl {
	case Silent:
		name = "SILENT"
	case Fatal:
		name = "FATAL"
	case Error:
		name = "ERROR"
	case Warning:
		name = "WARNING"
	case Info:
		name = "INFO"
	case Verbose:
		name = "VERBOSE"
	case Debug:
		name = "DEBUG"
	default:
		name = "UNKNOWN"
	}
	return
}

// Three letter console tag
func (lvl Level) Abbrev() (tag string) {
	switch lvl {
	case Debug:
		tag = "DBG"
	case Verbose:
		tag = "VRB"
	case Info:
		tag = "INF"
	case Warning:
		tag = "WRN"
	case Fatal:
		tag = "CRT"
	case Error:
		tag = "ERR"
	default:
		tag = "UNK"
	}
	return
}

// Reports whether an event at eventLevel passes a sink configured at threshold.
// SILENT thresholds never pass and SILENT events are never emitted.
func IsAllowed(eventLevel, threshold Level) (allowed bool, err error) {
	if !eventLevel.Valid() {
		err = fmt.Errorf("%w: event level %d", ErrInvalidLevel, int(eventLevel))
		return
	}
	if !threshold.Valid() {
		err = fmt.Errorf("%w: threshold %d", ErrInvalidLevel, int(threshold))
		return
	}
	if threshold == Silent || eventLevel == Silent {
		return
	}

	allowed = eventLevel <= threshold
	return
}

// Parses a level name, three letter tag, or rank number (0-6), case-insensitive
func Parse(text string) (lvl Level, err error) {
	text = strings.ToLower(strings.TrimSpace(text))

	switch text {
	case "debug", "dbg":
		lvl = Debug
	case "verbose", "vrb":
		lvl = Verbose
	case "info", "inf":
		lvl = Info
	case "warning", "warn", "wrn":
		lvl = Warning
	case "error", "err":
		lvl = Error
	case "fatal", "crt", "critical":
		lvl = Fatal
	case "silent", "sil":
		lvl = Silent
	default:
		rank, convErr := strconv.Atoi(text)
		if convErr != nil || !Level(rank).Valid() {
			err = fmt.Errorf("%w: %q", ErrInvalidLevel, text)
			return
		}
		lvl = Level(rank)
	}
	return
}

func (lvl Level) MarshalText() (text []byte, err error) {
	if !lvl.Valid() {
		err = fmt.Errorf("%w: %d", ErrInvalidLevel, int(lvl))
		return
	}
	text = []byte(strings.ToLower(lvl.String()))
	return
}

func (lvl *Level) UnmarshalText(text []byte) (err error) {
	parsed, err := Parse(string(text))
	if err != nil {
		return
	}
	*lvl = parsed
	return
}
