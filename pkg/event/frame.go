package event

import (
	"path/filepath"
	"runtime"
	"strings"
)

type CallType string

const (
	CallMethod   CallType = "->"
	CallStatic   CallType = "::"
	CallFunction CallType = "()"
	CallLambda   CallType = "λ"
	CallEval     CallType = "eval()"
)

const (
	maxCaptureDepth int = 64

	ansiBold  string = "\033[1;37m"
	ansiReset string = "\033[0m"
)

// One call frame. Zero values mean the field was not available.
type StackFrame struct {
	Function string   `json:"function,omitempty"`
	Class    string   `json:"class,omitempty"`
	CallType CallType `json:"type,omitempty"`
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"`
	Args     []any    `json:"args,omitempty"`
}

// Walks the current goroutine stack once, innermost first, with library
// and runtime frames removed so the first frame is the caller's code.
// Returns an empty (non-nil) slice when nothing can be resolved.
func CaptureBacktrace() (frames []StackFrame) {
	frames = []StackFrame{}

	pcs := make([]uintptr, maxCaptureDepth)
	count := runtime.Callers(2, pcs) // skip runtime.Callers and this function
	if count == 0 {
		return
	}

	iter := runtime.CallersFrames(pcs[:count])
	for {
		runtimeFrame, more := iter.Next()
		if !isInternalFrame(runtimeFrame) {
			frames = append(frames, frameFromRuntime(runtimeFrame))
		}
		if !more {
			break
		}
	}
	return
}

// Packages whose frames never count as the caller
var libraryPrefixes = []string{"loglib/pkg/", "loglib/internal/"}

func isInternalFrame(runtimeFrame runtime.Frame) (internal bool) {
	fn := runtimeFrame.Function
	if fn == "" || strings.HasPrefix(fn, "runtime.") {
		internal = true
		return
	}
	// Library tests exercise the library from inside its own packages
	if strings.HasSuffix(runtimeFrame.File, "_test.go") {
		return
	}
	for _, prefix := range libraryPrefixes {
		if strings.HasPrefix(fn, prefix) {
			internal = true
			return
		}
	}
	return
}

func frameFromRuntime(runtimeFrame runtime.Frame) (frame StackFrame) {
	frame = ParseSymbol(runtimeFrame.Function)
	frame.File = runtimeFrame.File
	frame.Line = runtimeFrame.Line
	return
}

// Splits a Go symbol (pkg/path.(*Type).Method.func1) into class, function and call type
func ParseSymbol(symbol string) (frame StackFrame) {
	if symbol == "" {
		frame.CallType = CallLambda
		return
	}

	// Drop the import path, then the package name
	rest := symbol
	if slash := strings.LastIndex(rest, "/"); slash >= 0 {
		rest = rest[slash+1:]
	}
	if dot := strings.Index(rest, "."); dot >= 0 {
		rest = rest[dot+1:]
	}

	// Generic instantiation brackets may contain dots
	if open := strings.Index(rest, "["); open >= 0 {
		if closing := strings.LastIndex(rest, "]"); closing > open {
			rest = rest[:open] + rest[closing+1:]
		}
	}

	parts := strings.Split(rest, ".")
	closure := false
	for i := 1; i < len(parts); i++ {
		if isClosureSegment(parts[i]) {
			closure = true
			parts = parts[:i]
			break
		}
	}

	if len(parts) >= 2 {
		frame.Class = strings.TrimSuffix(strings.TrimPrefix(parts[0], "(*"), ")")
		frame.Function = parts[1]
		frame.CallType = CallMethod
	} else {
		frame.Function = parts[0]
		frame.CallType = CallFunction
	}
	if closure {
		frame.CallType = CallLambda
	}
	return
}

// func1, func2.3, gowrap1, or a bare number
func isClosureSegment(segment string) (closure bool) {
	digits := segment
	switch {
	case strings.HasPrefix(segment, "func"):
		digits = strings.TrimPrefix(segment, "func")
	case strings.HasPrefix(segment, "gowrap"):
		digits = strings.TrimPrefix(segment, "gowrap")
	}
	if digits == "" {
		return
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return
		}
	}
	closure = true
	return
}

// Renders the call site of the innermost frame:
// Class->function(), function(), file.go::λ, or λ when unknown.
func TraceString(frames []StackFrame, ansi bool) (text string) {
	if len(frames) == 0 {
		text = string(CallLambda)
		return
	}

	highlight := func(s string) string {
		if !ansi || s == "" {
			return s
		}
		return ansiBold + s + ansiReset
	}

	top := frames[0]
	switch {
	case top.CallType == CallLambda || top.CallType == CallEval:
		if top.File == "" {
			text = string(top.CallType)
			return
		}
		text = highlight(filepath.Base(top.File)) + string(CallStatic) + string(top.CallType)
	case top.Function == "":
		text = string(CallLambda)
	case top.Class != "":
		callType := CallMethod
		if top.CallType == CallStatic {
			callType = CallStatic
		}
		text = highlight(top.Class) + string(callType) + highlight(top.Function) + string(CallFunction)
	default:
		text = highlight(top.Function) + string(CallFunction)
	}
	return
}
