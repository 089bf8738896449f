package global

import "loglib/pkg/level"

type CommandSet struct {
	CommandName     string                 // Exact name of cli command
	UsageOption     string                 // Expected command value in usage top line
	Description     string                 // Short text displayed on parent command
	FullDescription string                 // Long text displayed on current command
	ChildCommands   map[string]*CommandSet // Available subcommands
}

type CtxKey string

// Per-application logging configuration
type Application struct {
	Name           string      `json:"name"`
	ConsoleEnabled bool        `json:"consoleEnabled"`
	ConsoleLevel   level.Level `json:"consoleLevel"`
	FileEnabled    bool        `json:"fileEnabled"`
	FileLevel      level.Level `json:"fileLevel"`
	FileDirectory  string      `json:"fileDirectory"`
	DumpExceptions bool        `json:"dumpExceptions"` // Also write exception records as JSON next to the log
}

// Logging option accepted by every command, with its environment equivalent
type ConfigOption struct {
	Long  string // long flag name
	Short string // optional short flag name
	Key   string // RequestedOptions entry the value is recorded under
	Env   string // environment variable consulted when the flag is absent
	Usage string
	Bool  bool // flag may be given without a value
}
