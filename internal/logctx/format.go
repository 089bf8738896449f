// Shared text rendering for console and file lines
package logctx

import (
	"fmt"
	"strings"
	"time"
)

// Fixed width layout so file lines align regardless of sub-second precision
const timestampLayout string = "2006-01-02T15:04:05.000000000Z07:00"

// One rendered log line before newline termination
type Line struct {
	Timestamp   string
	Application string
	Severity    string
	Callsite    string
	Message     string
}

// Stringify full line
func (line Line) Format() (text string) {
	// Only print parts that are present
	var parts []string
	if line.Timestamp != "" {
		parts = append(parts, fmt.Sprintf("[%s]", line.Timestamp))
	}

	if line.Application != "" {
		parts = append(parts, fmt.Sprintf("[%s]", line.Application))
	}

	if line.Severity != "" {
		parts = append(parts, fmt.Sprintf("[%s]", line.Severity))
	}

	if line.Callsite != "" {
		parts = append(parts, line.Callsite)
	}

	if line.Message != "" {
		parts = append(parts, line.Message)
	}

	text = strings.Join(parts, " ")
	// No newline, sink determines newlines
	return
}

// Ensures fixed length strings for timestamps
func PadTimestamp(timestamp time.Time) (formatted string) {
	formatted = timestamp.Format(timestampLayout)
	return
}

// Unix seconds with microsecond precision, fixed width per second count
func UnixTick(timestamp time.Time) (formatted string) {
	micros := timestamp.UnixMicro()
	formatted = fmt.Sprintf("%d.%06d", micros/1e6, micros%1e6)
	return
}
