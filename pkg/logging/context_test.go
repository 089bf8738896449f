package logging

import (
	"context"
	"errors"
	"loglib/pkg/level"
	"testing"
)

func TestLogContext(t *testing.T) {
	log, out, _ := newTestLog(t, level.Info)

	ctx := WithApplication(context.Background(), "jobs")
	ctx = WithTag(ctx, "scheduler")
	ctx = WithTag(ctx, "nightly")

	name, present := ApplicationFromContext(ctx)
	if !present || name != "jobs" {
		t.Fatalf("expected jobs in context, got %q", name)
	}

	err := log.LogContext(ctx, level.Info, "started", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "[jobs] [INF] scheduler/nightly: started\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	err = log.LogContext(context.Background(), level.Info, "lost", nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument without application, got %v", err)
	}
	err = log.LogContext(ctx, level.Info, "", nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty message, got %v", err)
	}
}
