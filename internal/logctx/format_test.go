package logctx

import (
	"testing"
	"time"
)

func TestLineFormat(t *testing.T) {
	tests := []struct {
		name   string
		line   Line
		expect string
	}{
		{
			name: "all fields",
			line: Line{
				Timestamp:   "1700000000.000001",
				Application: "app",
				Severity:    "DBG",
				Callsite:    "main()",
				Message:     "hello world",
			},
			expect: "[1700000000.000001] [app] [DBG] main() hello world",
		},
		{
			name: "no timestamp",
			line: Line{
				Application: "app",
				Severity:    "VRB",
				Callsite:    "Server->start()",
				Message:     "starting",
			},
			expect: "[app] [VRB] Server->start() starting",
		},
		{
			name: "no callsite",
			line: Line{
				Application: "app",
				Severity:    "INF",
				Message:     "ready",
			},
			expect: "[app] [INF] ready",
		},
		{
			name: "only message",
			line: Line{
				Message: "bare message",
			},
			expect: "bare message",
		},
		{
			name:   "empty",
			line:   Line{},
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.line.Format()
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestPadTimestamp(t *testing.T) {
	east := time.FixedZone("east", 2*3600)
	west := time.FixedZone("west", -5*3600)
	tests := []struct {
		name   string
		input  time.Time
		expect string
	}{
		{
			name:   "utc whole second",
			input:  time.Date(2026, 1, 31, 12, 34, 56, 0, time.UTC),
			expect: "2026-01-31T12:34:56.000000000Z",
		},
		{
			name:   "positive offset",
			input:  time.Date(2026, 1, 31, 12, 34, 56, 120000000, east),
			expect: "2026-01-31T12:34:56.120000000+02:00",
		},
		{
			name:   "negative offset",
			input:  time.Date(2026, 1, 31, 12, 34, 56, 123456789, west),
			expect: "2026-01-31T12:34:56.123456789-05:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadTimestamp(tt.input)
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestUnixTick(t *testing.T) {
	ts := time.Unix(1700000000, 1000)
	got := UnixTick(ts)
	if got != "1700000000.000001" {
		t.Fatalf("expected %q, got %q", "1700000000.000001", got)
	}
	ts = time.Unix(1700000000, 999999999)
	got = UnixTick(ts)
	if got != "1700000000.999999" {
		t.Fatalf("expected %q, got %q", "1700000000.999999", got)
	}
}

func TestColorize(t *testing.T) {
	got := Colorize("app", LightGreen)
	if got != "\033[1;32mapp\033[0m" {
		t.Fatalf("unexpected colored text %q", got)
	}
}
