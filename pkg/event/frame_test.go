package event

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureBacktrace(t *testing.T) {
	frames := CaptureBacktrace()
	if len(frames) == 0 {
		t.Fatal("expected at least one frame")
	}

	top := frames[0]
	if top.Function != "TestCaptureBacktrace" {
		t.Fatalf("expected caller frame first, got %+v", top)
	}
	if filepath.Base(top.File) != "frame_test.go" {
		t.Fatalf("expected frame_test.go, got %q", top.File)
	}
	if top.Line <= 0 {
		t.Fatalf("expected a line number, got %d", top.Line)
	}
	for _, frame := range frames {
		if strings.HasPrefix(frame.Function, "CaptureBacktrace") {
			t.Fatalf("library frame leaked into backtrace: %+v", frame)
		}
	}
}

func TestCaptureBacktraceInClosure(t *testing.T) {
	var frames []StackFrame
	func() {
		frames = CaptureBacktrace()
	}()

	if len(frames) == 0 {
		t.Fatal("expected frames")
	}
	if frames[0].CallType != CallLambda {
		t.Fatalf("expected lambda call type, got %q", frames[0].CallType)
	}
	if got := TraceString(frames, false); got != "frame_test.go::λ" {
		t.Fatalf("expected %q, got %q", "frame_test.go::λ", got)
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		symbol   string
		class    string
		function string
		callType CallType
	}{
		{symbol: "main.main", function: "main", callType: CallFunction},
		{symbol: "example.com/app/server.(*Server).Start", class: "Server", function: "Start", callType: CallMethod},
		{symbol: "example.com/app/server.Config.Validate", class: "Config", function: "Validate", callType: CallMethod},
		{symbol: "example.com/app/server.run.func1", function: "run", callType: CallLambda},
		{symbol: "example.com/app/server.(*Server).Start.func2.1", class: "Server", function: "Start", callType: CallLambda},
		{symbol: "example.com/app/server.Map[go.shape.int]", function: "Map", callType: CallFunction},
		{symbol: "example.com/v2.handle.gowrap1", function: "handle", callType: CallLambda},
		{symbol: "", callType: CallLambda},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got := ParseSymbol(tt.symbol)
			if got.Class != tt.class || got.Function != tt.function || got.CallType != tt.callType {
				t.Fatalf("expected {%q %q %q}, got {%q %q %q}",
					tt.class, tt.function, tt.callType, got.Class, got.Function, got.CallType)
			}
		})
	}
}

func TestTraceString(t *testing.T) {
	tests := []struct {
		name   string
		frames []StackFrame
		ansi   bool
		expect string
	}{
		{
			name:   "no frames",
			frames: nil,
			expect: "λ",
		},
		{
			name:   "method call",
			frames: []StackFrame{{Class: "Server", Function: "Start", CallType: CallMethod}},
			expect: "Server->Start()",
		},
		{
			name:   "static call",
			frames: []StackFrame{{Class: "Registry", Function: "Open", CallType: CallStatic}},
			expect: "Registry::Open()",
		},
		{
			name:   "plain function",
			frames: []StackFrame{{Function: "main", CallType: CallFunction}},
			expect: "main()",
		},
		{
			name:   "lambda with file",
			frames: []StackFrame{{Function: "run", CallType: CallLambda, File: "/src/app/worker.go"}},
			expect: "worker.go::λ",
		},
		{
			name:   "eval without file",
			frames: []StackFrame{{CallType: CallEval}},
			expect: "eval()",
		},
		{
			name:   "frame without function",
			frames: []StackFrame{{File: "/src/x.go", Line: 3}},
			expect: "λ",
		},
		{
			name:   "ansi method",
			frames: []StackFrame{{Class: "Server", Function: "Start", CallType: CallMethod}},
			ansi:   true,
			expect: "\033[1;37mServer\033[0m->\033[1;37mStart\033[0m()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TraceString(tt.frames, tt.ansi)
			if got != tt.expect {
				t.Errorf("\ngot  %q\nwant %q", got, tt.expect)
			}
		})
	}
}
