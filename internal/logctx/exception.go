package logctx

import (
	"fmt"
	"loglib/pkg/event"
	"strings"
)

// Renders an exception chain as newline-terminated text.
// Each link prints its location, code and (for multi-frame traces) the stack, then its cause.
func ExceptionBlock(record *event.ExceptionRecord, ansi bool) (text string) {
	paint := func(part string, color Color) string {
		if !ansi {
			return part
		}
		return Colorize(part, color)
	}

	var builder strings.Builder
	for current := record; current != nil; current = current.Previous {
		if current != record {
			builder.WriteString("Previous Exception:\n")
		}

		if current.Truncated {
			builder.WriteString(paint("error: ", Red) + current.Message + "\n")
			break
		}

		file := current.File
		if file == "" {
			file = "unknown"
		}
		header := paint(fmt.Sprintf("%s:%d", file, current.Line), Purple)
		builder.WriteString(header + " " + paint("error: ", Red) + current.Message + "\n")
		builder.WriteString(fmt.Sprintf("Error code: %d\n", current.Code))

		var frames []string
		for _, frame := range current.Trace {
			if frame.File == "" {
				continue
			}
			frames = append(frames, fmt.Sprintf(" - %s:%d\n", paint(frame.File, Red), frame.Line))
		}
		if len(frames) > 1 {
			builder.WriteString("Stack Trace:\n")
			for _, line := range frames {
				builder.WriteString(line)
			}
		}
	}

	text = builder.String()
	return
}
