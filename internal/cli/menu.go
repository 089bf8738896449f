package cli

import (
	"flag"
	"fmt"
	"io"
	"loglib/internal/global"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const RootCLICommand string = "root"

// One printed option line, short and long names joined
type optionRow struct {
	short      string
	long       string
	usage      string
	defaultVal string
}

func (row optionRow) names() (text string) {
	switch {
	case row.short != "" && row.long != "":
		text = "-" + row.short + ", --" + row.long
	case row.short != "":
		text = "-" + row.short
	default:
		text = "    --" + row.long // aligns with "-x, "
	}
	return
}

// Help menu on stdout
func PrintHelpMenu(fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	writeHelpMenu(os.Stdout, fs, command, rootCmd)
}

func writeHelpMenu(out io.Writer, fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	cmdSet := rootCmd
	usage := filepath.Base(os.Args[0])
	if command != "" && command != RootCLICommand {
		found, ok := rootCmd.ChildCommands[command]
		if !ok {
			fmt.Fprintf(out, "Unknown command: %s\n", command)
			return
		}
		cmdSet = found
		usage += " " + cmdSet.CommandName + " [options]"
	} else {
		usage += " [logging options] <command>"
	}
	if cmdSet.UsageOption != "" {
		usage += " " + cmdSet.UsageOption
	}
	fmt.Fprintf(out, "Usage: %s\n\n", usage)

	if cmdSet == rootCmd {
		fmt.Fprintln(out, cmdSet.Description)
		fmt.Fprintln(out, cmdSet.FullDescription)
		fmt.Fprintln(out)
		writeCommands(out, rootCmd)
	} else if cmdSet.FullDescription != "" {
		fmt.Fprintf(out, "  %s\n\n", cmdSet.FullDescription)
	}

	loggingRows, commandRows := optionRows(fs)
	writeRows(out, "Options:", commandRows)
	writeRows(out, "Logging Options:", loggingRows)

	if cmdSet == rootCmd {
		writeEnvironment(out)
	}
}

func writeCommands(out io.Writer, rootCmd *global.CommandSet) {
	if len(rootCmd.ChildCommands) == 0 {
		return
	}

	names := make([]string, 0, len(rootCmd.ChildCommands))
	width := 0
	for name := range rootCmd.ChildCommands {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)

	fmt.Fprintln(out, "  Commands:")
	for _, name := range names {
		fmt.Fprintf(out, "    %-*s  %s\n", width, name, rootCmd.ChildCommands[name].Description)
	}
	fmt.Fprintln(out)
}

// Splits the flag set into shared logging options (in declaration order) and the
// command's own options (paired by usage text, sorted by name)
func optionRows(fs *flag.FlagSet) (loggingRows []optionRow, commandRows []optionRow) {
	shared := make(map[string]bool)
	for _, option := range global.LoggingOptions {
		shared[option.Long] = true
		shared[option.Short] = true
		if fs.Lookup(option.Long) == nil {
			continue
		}
		loggingRows = append(loggingRows, optionRow{short: option.Short, long: option.Long, usage: option.Usage})
	}

	byUsage := make(map[string]*optionRow)
	fs.VisitAll(func(arg *flag.Flag) {
		if shared[arg.Name] {
			return
		}
		row, ok := byUsage[arg.Usage]
		if !ok {
			row = &optionRow{usage: arg.Usage, defaultVal: arg.DefValue}
			byUsage[arg.Usage] = row
		}
		if len(arg.Name) == 1 {
			row.short = arg.Name
		} else {
			row.long = arg.Name
		}
	})
	for _, row := range byUsage {
		commandRows = append(commandRows, *row)
	}
	sort.Slice(commandRows, func(a, b int) bool {
		return strings.TrimLeft(commandRows[a].names(), " -") < strings.TrimLeft(commandRows[b].names(), " -")
	})
	return
}

func writeRows(out io.Writer, title string, rows []optionRow) {
	if len(rows) == 0 {
		return
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row.names()))
	}

	fmt.Fprintf(out, "  %s\n", title)
	for _, row := range rows {
		desc := row.usage
		// Empty, false and zero defaults say nothing
		if row.defaultVal != "" && row.defaultVal != "false" && row.defaultVal != "0" {
			desc += fmt.Sprintf(" [default: %s]", row.defaultVal)
		}
		fmt.Fprintf(out, "    %-*s  %s\n", width, row.names(), desc)
	}
	fmt.Fprintln(out)
}

// Environment equivalents of the logging options
func writeEnvironment(out io.Writer) {
	width := 0
	for _, option := range global.LoggingOptions {
		width = max(width, len(option.Env))
	}

	fmt.Fprintln(out, "  Environment:")
	for _, option := range global.LoggingOptions {
		if option.Env == "" {
			continue
		}
		fmt.Fprintf(out, "    %-*s  --%s\n", width, option.Env, option.Long)
	}
	fmt.Fprintln(out, "  Command line options take precedence over the environment.")
}
