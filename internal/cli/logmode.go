package cli

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"loglib/internal/global"
	"loglib/internal/metrics"
	"loglib/internal/syslog"
	"loglib/pkg/level"
	"loglib/pkg/logging"
	"os"
	"strings"
	"time"
)

// Default application name for messages logged from the command line
const defaultCLIApplication string = "loglib"

func LogMode(commandname string, args []string) {
	var appName, levelName, severity string
	var showMetrics bool

	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	commandFlags.StringVar(&appName, "a", defaultCLIApplication, "Application name to log under")
	commandFlags.StringVar(&appName, "app", defaultCLIApplication, "Application name to log under")
	commandFlags.StringVar(&levelName, "l", "info", "Level of the message")
	commandFlags.StringVar(&levelName, "level", "info", "Level of the message")
	commandFlags.StringVar(&severity, "s", "", "Syslog severity of the message (overrides level)")
	commandFlags.StringVar(&severity, "severity", "", "Syslog severity of the message (overrides level)")
	commandFlags.BoolVar(&showMetrics, "metrics", false, "Print sink counters as JSON after logging")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
	}
	commandFlags.Parse(args[0:])

	// Options after the command name are known only now
	log := logging.New(logging.OptionsFromArgs(global.RequestedOptions))
	defer log.RecoverPanic()

	lvl, err := messageLevel(levelName, severity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	started := time.Now()

	message := strings.Join(commandFlags.Args(), " ")
	if message != "" {
		err = log.Log(appName, lvl, message, nil)
	} else {
		err = logLines(log, appName, lvl, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if showMetrics {
		err = writeMetrics(os.Stdout, log.CollectMetrics(time.Since(started)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// Severity (syslog names) takes precedence over level
func messageLevel(levelName string, severity string) (lvl level.Level, err error) {
	if severity != "" {
		lvl, err = syslog.SeverityToLevel(severity)
		if err != nil {
			err = fmt.Errorf("invalid severity: %w", err)
		}
		return
	}

	lvl, err = level.Parse(levelName)
	if err != nil {
		err = fmt.Errorf("invalid level: %w", err)
		return
	}
	if lvl == level.Silent {
		err = fmt.Errorf("invalid level: %w: messages cannot be logged at %s", level.ErrInvalidLevel, lvl)
	}
	return
}

// Logs every non-empty line of input. Stops at the first failure.
func logLines(log *logging.Log, appName string, lvl level.Level, input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		err = log.Log(appName, lvl, line, nil)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		err = fmt.Errorf("failed reading input: %w", err)
	}
	return
}

func writeMetrics(out io.Writer, collection []metrics.Metric) (err error) {
	exported := make([]metrics.JMetric, 0, len(collection))
	for _, metric := range collection {
		exported = append(exported, metric.Convert())
	}

	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		err = fmt.Errorf("failed to encode metrics: %w", err)
		return
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return
}
