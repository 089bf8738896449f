// Resolution of logging options from arguments, environment and defaults
package config

import (
	"loglib/internal/global"
	"loglib/pkg/level"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// Process-wide logging defaults used for applications registered on demand
type Options struct {
	Level          level.Level // console threshold
	ANSI           bool
	Console        bool
	FileEnabled    bool
	FileLevel      level.Level
	Directory      string
	DumpExceptions bool
}

// Inputs consulted by Resolve, highest precedence first
type Source struct {
	Args        map[string]string               // option name (without dashes) to value
	LookupEnv   func(key string) (string, bool) // nil disables environment lookup
	Interactive bool                            // whether stdout is a terminal
}

// Options for the current process: os.Args, environment, terminal detection
func FromProcess() (opts Options) {
	opts = FromArgs(ScanArgs(os.Args[1:]))
	return
}

// Options for already parsed arguments plus environment and terminal detection
func FromArgs(args map[string]string) (opts Options) {
	opts = Resolve(Source{
		Args:        args,
		LookupEnv:   os.LookupEnv,
		Interactive: term.IsTerminal(int(os.Stdout.Fd())),
	})
	return
}

// Applies precedence explicit argument > environment > default.
// The highest source present decides; a malformed value there leaves the built-in
// default in place without consulting lower sources.
func Resolve(source Source) (opts Options) {
	lookup := func(envKey string, argKeys ...string) (value string, found bool) {
		for _, key := range argKeys {
			value, found = source.Args[key]
			if found {
				return
			}
		}
		if source.LookupEnv != nil && envKey != "" {
			value, found = source.LookupEnv(envKey)
			if found && value == "" {
				found = false
			}
		}
		return
	}

	opts = Options{
		Level:     level.Info,
		ANSI:      true,
		Console:   source.Interactive,
		Directory: filepath.Join(os.TempDir(), global.DefaultLogDirName),
	}

	if text, found := lookup(global.EnvLogLevel, global.OptLogLevelShort, global.OptLogLevel); found {
		parsed, err := level.Parse(text)
		if err == nil {
			opts.Level = parsed
		}
	}

	if text, found := lookup("", global.OptDisplayANSI, global.OptDisplayANSIShort); found {
		enabled, valid := ParseBool(text)
		if valid {
			opts.ANSI = enabled
		}
	}

	if text, found := lookup(global.EnvLoggingConsole, global.OptConsole); found {
		enabled, valid := ParseBool(text)
		if valid {
			opts.Console = enabled
		}
	}

	// File logging is opt-in: a directory or a file level turns it on
	opts.FileLevel = opts.Level
	if text, found := lookup(global.EnvLoggingDirectory, global.OptLoggingDirectory); found {
		opts.Directory = text
		opts.FileEnabled = true
	}
	if text, found := lookup(global.EnvFileLevel, global.OptFileLevel); found {
		parsed, err := level.Parse(text)
		if err == nil {
			opts.FileLevel = parsed
			opts.FileEnabled = true
		}
	}

	if text, found := lookup(global.EnvDumpExceptions, global.OptDumpExceptions); found {
		enabled, valid := ParseBool(text)
		if valid {
			opts.DumpExceptions = enabled
		}
	}
	return
}

// Default entry for an application seen for the first time
func (opts Options) Application(name string) (app global.Application) {
	app = global.Application{
		Name:           name,
		ConsoleEnabled: opts.Console,
		ConsoleLevel:   opts.Level,
		FileEnabled:    opts.FileEnabled,
		FileLevel:      opts.FileLevel,
		FileDirectory:  opts.Directory,
		DumpExceptions: opts.DumpExceptions,
	}
	return
}

// Boolean-like option values: true/false, 1/0, yes/no, on/off
func ParseBool(text string) (value bool, valid bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "1", "yes", "on", "y":
		value, valid = true, true
	case "false", "0", "no", "off", "n":
		value, valid = false, true
	}
	return
}
