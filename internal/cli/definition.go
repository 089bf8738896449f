package cli

import "loglib/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "Application Logging Utility (loglib)",
		FullDescription: "  Writes leveled per-application log lines to the terminal and to daily log files",
		CommandName:     RootCLICommand,
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	// Logging
	root.ChildCommands["log"] = &global.CommandSet{
		CommandName:     "log",
		UsageOption:     "[message...]",
		Description:     "Log a Message",
		FullDescription: "Logs the message (or each line of standard input when no message is given) under an application",
		ChildCommands:   nil,
	}

	// Level table
	root.ChildCommands["levels"] = &global.CommandSet{
		CommandName:     "levels",
		Description:     "List Log Levels",
		FullDescription: "Display every level with its number, name and console tag",
		ChildCommands:   nil,
	}

	// Version Info
	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Show Version Information",
		FullDescription: "Display meta information about program",
	}

	cmdOpts = root
	return
}
