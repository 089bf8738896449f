package cli

import (
	"flag"
	"fmt"
	"io"
	"loglib/internal/global"
	"loglib/internal/syslog"
	"loglib/pkg/level"
	"os"
)

func LevelsMode(commandname string, args []string) {
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
	}
	commandFlags.Parse(args[0:])

	printLevels(os.Stdout)
}

// Table of every level, most verbose last
func printLevels(out io.Writer) {
	fmt.Fprintf(out, "%-6s %-8s %-4s %s\n", "Value", "Name", "Tag", "Syslog")
	for _, lvl := range level.All() {
		severity, err := syslog.LevelToSeverity(lvl)
		if err != nil {
			severity = "-"
		}
		fmt.Fprintf(out, "%-6d %-8s %-4s %s\n", int(lvl), lvl.String(), lvl.Abbrev(), severity)
	}
}
