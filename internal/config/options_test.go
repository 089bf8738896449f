package config

import (
	"loglib/internal/global"
	"loglib/pkg/level"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func envFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, found := values[key]
		return value, found
	}
}

func TestResolve(t *testing.T) {
	defaultDir := filepath.Join(os.TempDir(), global.DefaultLogDirName)

	tests := []struct {
		name   string
		source Source
		expect Options
	}{
		{
			name:   "defaults non-interactive",
			source: Source{},
			expect: Options{Level: level.Info, ANSI: true, FileLevel: level.Info, Directory: defaultDir},
		},
		{
			name:   "defaults interactive",
			source: Source{Interactive: true},
			expect: Options{Level: level.Info, ANSI: true, Console: true, FileLevel: level.Info, Directory: defaultDir},
		},
		{
			name: "environment only",
			source: Source{
				LookupEnv: envFrom(map[string]string{
					global.EnvLogLevel:         "debug",
					global.EnvLoggingDirectory: "/var/log/app",
					global.EnvLoggingConsole:   "yes",
				}),
			},
			expect: Options{Level: level.Debug, ANSI: true, Console: true, FileEnabled: true, FileLevel: level.Debug, Directory: "/var/log/app"},
		},
		{
			name: "argument beats environment",
			source: Source{
				Args: map[string]string{global.OptLogLevelShort: "2", global.OptDisplayANSIShort: "off"},
				LookupEnv: envFrom(map[string]string{
					global.EnvLogLevel: "debug",
				}),
			},
			expect: Options{Level: level.Error, ANSI: false, FileLevel: level.Error, Directory: defaultDir},
		},
		{
			name: "short level option wins over long",
			source: Source{
				Args: map[string]string{global.OptLogLevelShort: "vrb", global.OptLogLevel: "fatal"},
			},
			expect: Options{Level: level.Verbose, ANSI: true, FileLevel: level.Verbose, Directory: defaultDir},
		},
		{
			name: "malformed values fall back",
			source: Source{
				Args: map[string]string{global.OptLogLevel: "loud", global.OptDisplayANSI: "maybe", global.OptFileLevel: "??"},
			},
			expect: Options{Level: level.Info, ANSI: true, FileLevel: level.Info, Directory: defaultDir},
		},
		{
			name: "malformed argument keeps default over environment",
			source: Source{
				Args:      map[string]string{global.OptLogLevel: "loud"},
				LookupEnv: envFrom(map[string]string{global.EnvLogLevel: "debug"}),
			},
			expect: Options{Level: level.Info, ANSI: true, FileLevel: level.Info, Directory: defaultDir},
		},
		{
			name: "file level enables file logging",
			source: Source{
				Args:        map[string]string{global.OptFileLevel: "warning"},
				LookupEnv:   envFrom(map[string]string{global.EnvLoggingConsole: "0"}),
				Interactive: true,
			},
			expect: Options{Level: level.Info, ANSI: true, FileEnabled: true, FileLevel: level.Warning, Directory: defaultDir},
		},
		{
			name: "exception dumps from environment",
			source: Source{
				LookupEnv: envFrom(map[string]string{global.EnvDumpExceptions: "true"}),
			},
			expect: Options{Level: level.Info, ANSI: true, FileLevel: level.Info, Directory: defaultDir, DumpExceptions: true},
		},
		{
			name: "empty environment value ignored",
			source: Source{
				LookupEnv: envFrom(map[string]string{global.EnvLoggingDirectory: ""}),
			},
			expect: Options{Level: level.Info, ANSI: true, FileLevel: level.Info, Directory: defaultDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.source)
			if got != tt.expect {
				t.Fatalf("expected %+v, got %+v", tt.expect, got)
			}
		})
	}
}

func TestApplicationDefaults(t *testing.T) {
	opts := Options{Level: level.Verbose, Console: true, FileEnabled: true, FileLevel: level.Error, Directory: "/tmp/x", DumpExceptions: true}
	got := opts.Application("api")
	expect := global.Application{
		Name:           "api",
		ConsoleEnabled: true,
		ConsoleLevel:   level.Verbose,
		FileEnabled:    true,
		FileLevel:      level.Error,
		FileDirectory:  "/tmp/x",
		DumpExceptions: true,
	}
	if got != expect {
		t.Fatalf("expected %+v, got %+v", expect, got)
	}
}

func TestScanArgs(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		expect map[string]string
	}{
		{
			name:   "equals form",
			argv:   []string{"--log=debug", "--logging-directory=/tmp/logs"},
			expect: map[string]string{"log": "debug", "logging-directory": "/tmp/logs"},
		},
		{
			name:   "separate value",
			argv:   []string{"serve", "--log-level", "verbose", "-ansi", "false"},
			expect: map[string]string{"log-level": "verbose", "ansi": "false"},
		},
		{
			name:   "flag without value",
			argv:   []string{"--display-ansi", "--log", "1"},
			expect: map[string]string{"display-ansi": "true", "log": "1"},
		},
		{
			name:   "stops at terminator",
			argv:   []string{"--log", "info", "--", "--log", "debug"},
			expect: map[string]string{"log": "info"},
		},
		{
			name:   "nothing",
			argv:   []string{"-", "plain"},
			expect: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanArgs(tt.argv)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input       string
		expectValue bool
		expectValid bool
	}{
		{"true", true, true},
		{"ON", true, true},
		{" 1 ", true, true},
		{"no", false, true},
		{"0", false, true},
		{"maybe", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, valid := ParseBool(tt.input)
			if value != tt.expectValue || valid != tt.expectValid {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tt.expectValue, tt.expectValid, value, valid)
			}
		})
	}
}
