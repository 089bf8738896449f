package syslog

import (
	"errors"
	"loglib/pkg/level"
	"testing"
)

func TestSeverityMappings(t *testing.T) {
	tests := []struct {
		name      string
		severity  string
		code      uint16
		expectErr bool
	}{
		{
			name:     "valid severity emerg",
			severity: "emerg",
			code:     0,
		},
		{
			name:     "valid severity info",
			severity: "info",
			code:     6,
		},
		{
			name:     "alias with case",
			severity: " Error ",
			code:     3,
		},
		{
			name:      "unknown severity string",
			severity:  "nope",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := SeverityToCode(tt.severity)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.severity)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code != tt.code {
				t.Fatalf("expected code %d, got %d", tt.code, code)
			}

			name, err := CodeToSeverity(code)
			if err != nil {
				t.Fatalf("unexpected reverse lookup error: %v", err)
			}
			back, _ := SeverityToCode(name)
			if back != code {
				t.Fatalf("reverse lookup mismatch: %d -> %s -> %d", code, name, back)
			}
		})
	}

	_, err := CodeToSeverity(8)
	if err == nil {
		t.Fatalf("expected error for unknown code")
	}
}

func TestSeverityToLevel(t *testing.T) {
	tests := []struct {
		severity string
		expect   level.Level
	}{
		{"emerg", level.Fatal},
		{"alert", level.Fatal},
		{"crit", level.Fatal},
		{"err", level.Error},
		{"warning", level.Warning},
		{"notice", level.Info},
		{"info", level.Info},
		{"debug", level.Debug},
		{"3", level.Error},
		{"7", level.Debug},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			got, err := SeverityToLevel(tt.severity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %s, got %s", tt.expect, got)
			}
		})
	}

	for _, invalid := range []string{"loud", "8", "-1"} {
		_, err := SeverityToLevel(invalid)
		if !errors.Is(err, level.ErrInvalidLevel) {
			t.Fatalf("expected ErrInvalidLevel for %q, got %v", invalid, err)
		}
	}
}

func TestLevelToSeverity(t *testing.T) {
	for _, lvl := range level.All() {
		severity, err := LevelToSeverity(lvl)
		if lvl == level.Silent {
			if err == nil {
				t.Fatalf("expected error for SILENT")
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", lvl, err)
		}

		// VERBOSE has no syslog equivalent and folds into debug
		expect := lvl
		if lvl == level.Verbose {
			expect = level.Debug
		}
		back, err := SeverityToLevel(severity)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if back != expect {
			t.Fatalf("%s -> %s: expected %s, got %s", lvl, severity, expect, back)
		}
	}
}
