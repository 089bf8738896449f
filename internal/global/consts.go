package global

import (
	"os"
	"time"
)

const (
	ProgVersion string = "v0.3.0"

	// Context keys
	ApplicationKey CtxKey = "application" // Application name used by context-aware logging calls
	LogTagsKey     CtxKey = "logtags"     // Component tags prefixed to context-aware messages

	// Pseudo-applications used by runtime hooks
	RuntimeApplication    string = "Runtime"
	FatalErrorApplication string = "Fatal Error"

	// Recognized configuration option names (long form first)
	OptLogLevel         string = "log-level"
	OptLogLevelShort    string = "log"
	OptDisplayANSI      string = "display-ansi"
	OptDisplayANSIShort string = "ansi"
	OptLoggingDirectory string = "logging-directory"
	OptFileLevel        string = "logging-file-level"
	OptConsole          string = "logging-console"
	OptDumpExceptions   string = "logging-dump-exceptions"

	// Environment equivalents
	EnvLogLevel         string = "LOG_LEVEL"
	EnvLoggingDirectory string = "LOGGING_DIRECTORY"
	EnvLoggingConsole   string = "LOGGING_CONSOLE"
	EnvFileLevel        string = "LOGGING_FILE_LEVEL"
	EnvDumpExceptions   string = "LOGGING_DUMP_EXCEPTIONS"

	// Default log directory name under the platform temp directory
	DefaultLogDirName string = "logs"

	// Exception dump subdirectory under the log directory
	ExceptionDumpDir string = "exceptions"

	// File permissions
	LogFilePerm os.FileMode = 0640
	LogDirPerm  os.FileMode = 0750

	// File lock protocol
	DefaultLockRetryInterval        time.Duration = 100 * time.Millisecond
	DefaultLockConfirmationInterval time.Duration = 50 * time.Millisecond
	DefaultLockMaxConfirmations     int           = 5

	// Console latency cues
	TickWarnGap  time.Duration = 500 * time.Millisecond
	TickAlertGap time.Duration = 1 * time.Second

	// Namespacing Name Components
	NSLog     string = "Loglib"
	NSConsole string = "Console"
	NSFile    string = "File"
	NSTest    string = "Test"
)
