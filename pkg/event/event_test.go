package event

import (
	"loglib/pkg/level"
	"testing"
	"time"
)

func TestNewEvent(t *testing.T) {
	before := time.Now()
	ev := New("hello world", level.Info)

	if ev.Message() != "hello world" {
		t.Fatalf("message mismatch: got %q", ev.Message())
	}
	if ev.Level() != level.Info {
		t.Fatalf("level mismatch: got %s", ev.Level())
	}
	if ev.Timestamp().Before(before) {
		t.Fatalf("timestamp %v earlier than construction start %v", ev.Timestamp(), before)
	}
	if ev.HasBacktrace() || ev.Backtrace() != nil {
		t.Fatal("fresh event should carry no backtrace")
	}
	if ev.Exception() != nil {
		t.Fatal("fresh event should carry no exception")
	}
}

func TestAttachOnce(t *testing.T) {
	ev := NewAt("msg", level.Debug, time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC))

	first := []StackFrame{{Function: "first"}}
	second := []StackFrame{{Function: "second"}}

	if !ev.SetBacktrace(first) {
		t.Fatal("expected first backtrace to attach")
	}
	if ev.SetBacktrace(second) {
		t.Fatal("expected second backtrace to be rejected")
	}
	if ev.Backtrace()[0].Function != "first" {
		t.Fatalf("backtrace overwritten: got %q", ev.Backtrace()[0].Function)
	}

	if ev.SetException(nil) {
		t.Fatal("nil exception must not attach")
	}
	if !ev.SetException(&ExceptionRecord{Message: "a"}) {
		t.Fatal("expected first exception to attach")
	}
	if ev.SetException(&ExceptionRecord{Message: "b"}) {
		t.Fatal("expected second exception to be rejected")
	}
	if ev.Exception().Message != "a" {
		t.Fatalf("exception overwritten: got %q", ev.Exception().Message)
	}
}

func TestEmptyBacktraceCountsAsCaptured(t *testing.T) {
	ev := New("msg", level.Info)
	ev.SetBacktrace([]StackFrame{})
	if !ev.HasBacktrace() {
		t.Fatal("expected empty capture to be recorded")
	}
	if ev.SetBacktrace([]StackFrame{{Function: "late"}}) {
		t.Fatal("capture must happen at most once")
	}
}
