package logctx

import (
	"loglib/pkg/event"
	"strings"
	"testing"
)

func TestExceptionBlock(t *testing.T) {
	record := &event.ExceptionRecord{
		Type:    "*event.Exception",
		Message: "outer",
		Code:    7,
		File:    "/srv/outer.go",
		Line:    10,
		Trace: []event.StackFrame{
			{Function: "a", File: "/srv/outer.go", Line: 10},
			{Function: "b", File: "/srv/main.go", Line: 3},
		},
		Previous: &event.ExceptionRecord{
			Type:    "*errors.errorString",
			Message: "inner",
			File:    "/srv/inner.go",
			Line:    4,
			Trace: []event.StackFrame{
				{Function: "c", File: "/srv/inner.go", Line: 4},
			},
		},
	}

	expect := strings.Join([]string{
		"/srv/outer.go:10 error: outer",
		"Error code: 7",
		"Stack Trace:",
		" - /srv/outer.go:10",
		" - /srv/main.go:3",
		"Previous Exception:",
		"/srv/inner.go:4 error: inner",
		"Error code: 0",
		"",
	}, "\n")

	got := ExceptionBlock(record, false)
	if got != expect {
		t.Fatalf("expected:\n%s\ngot:\n%s", expect, got)
	}
}

func TestExceptionBlockANSI(t *testing.T) {
	record := &event.ExceptionRecord{Message: "boom", File: "x.go", Line: 1}
	got := ExceptionBlock(record, true)
	expect := Colorize("x.go:1", Purple) + " " + Colorize("error: ", Red) + "boom\nError code: 0\n"
	if got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestExceptionBlockTruncated(t *testing.T) {
	record := &event.ExceptionRecord{
		Message: "top",
		File:    "x.go",
		Line:    1,
		Previous: &event.ExceptionRecord{
			Type:      "truncated",
			Message:   "exception chain truncated",
			Truncated: true,
		},
	}
	got := ExceptionBlock(record, false)
	if !strings.HasSuffix(got, "Previous Exception:\nerror: exception chain truncated\n") {
		t.Fatalf("unexpected truncated rendering %q", got)
	}
	if ExceptionBlock(nil, false) != "" {
		t.Fatalf("expected empty block for nil record")
	}
}

func TestExceptionBlockSkipsEmptyTrace(t *testing.T) {
	tests := []struct {
		name   string
		trace  []event.StackFrame
		expect string
	}{
		{
			name:   "no printable frames",
			trace:  []event.StackFrame{{Function: "a"}, {Function: "b"}},
			expect: "x.go:1 error: boom\nError code: 0\n",
		},
		{
			name:   "one printable frame",
			trace:  []event.StackFrame{{Function: "a"}, {Function: "b", File: "/srv/b.go", Line: 2}},
			expect: "x.go:1 error: boom\nError code: 0\n",
		},
		{
			name: "two printable frames",
			trace: []event.StackFrame{
				{Function: "a", File: "/srv/a.go", Line: 1},
				{Function: "gap"},
				{Function: "b", File: "/srv/b.go", Line: 2},
			},
			expect: "x.go:1 error: boom\nError code: 0\nStack Trace:\n - /srv/a.go:1\n - /srv/b.go:2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &event.ExceptionRecord{Message: "boom", File: "x.go", Line: 1, Trace: tt.trace}
			got := ExceptionBlock(record, false)
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
