package main

import (
	"flag"
	"fmt"
	"loglib/internal/cli"
	"loglib/internal/global"
	"os"
	"runtime"
)

func main() {
	global.CmdOpts = cli.DefineOptions()

	args := os.Args
	commandFlags := flag.NewFlagSet(args[0], flag.ExitOnError)
	cli.SetGlobalArguments(commandFlags)

	commandFlags.Usage = func() {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
	}
	if len(args) < 2 {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}
	commandFlags.Parse(args[1:])
	if commandFlags.NArg() < 1 {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}

	// Retrieve command and args
	command := commandFlags.Arg(0)
	args = commandFlags.Args()[1:]

	// Process commands
	switch command {
	case "log":
		cli.LogMode(command, args)
	case "levels":
		cli.LevelsMode(command, args)
	case "version":
		if len(args) > 0 && (args[0] == "--verbosity" || args[0] == "-v") {
			fmt.Printf("loglib %s\n", global.ProgVersion)
			fmt.Printf("Built using %s(%s) for %s on %s\n", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
		} else {
			fmt.Println(global.ProgVersion)
		}
	default:
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}
}
