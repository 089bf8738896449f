package global

var (
	CmdOpts *CommandSet // Holds CLI command definition

	// Logging options given on the command line, keyed by option name without dashes.
	// Only options actually present are stored so environment values still apply.
	RequestedOptions = make(map[string]string)

	// Logging options registered on every command flag set
	LoggingOptions = []ConfigOption{
		{Long: OptLogLevel, Short: OptLogLevelShort, Key: OptLogLevelShort, Env: EnvLogLevel,
			Usage: "Console log level (debug|verbose|info|warning|error|fatal|silent or 0-6)"},
		{Long: OptDisplayANSI, Short: OptDisplayANSIShort, Key: OptDisplayANSI, Bool: true,
			Usage: "Color console output (true|false)"},
		{Long: OptConsole, Key: OptConsole, Env: EnvLoggingConsole, Bool: true,
			Usage: "Print to the console (default when attached to a terminal)"},
		{Long: OptLoggingDirectory, Key: OptLoggingDirectory, Env: EnvLoggingDirectory,
			Usage: "Directory for log files (enables file logging)"},
		{Long: OptFileLevel, Key: OptFileLevel, Env: EnvFileLevel,
			Usage: "File log level (enables file logging)"},
		{Long: OptDumpExceptions, Key: OptDumpExceptions, Env: EnvDumpExceptions, Bool: true,
			Usage: "Write exception chains as JSON next to log files"},
	}
)
