package cli

import (
	"flag"
	"loglib/internal/global"
)

// Registers the logging configuration options. Values are recorded only when given.
func SetGlobalArguments(fs *flag.FlagSet) {
	for _, option := range global.LoggingOptions {
		option := option // per-iteration copy (go 1.21 loop semantics)
		record := func(value string) error {
			global.RequestedOptions[option.Key] = value
			return nil
		}

		names := []string{option.Long}
		if option.Short != "" {
			names = append(names, option.Short)
		}
		for _, name := range names {
			if option.Bool {
				fs.BoolFunc(name, option.Usage, record)
			} else {
				fs.Func(name, option.Usage, record)
			}
		}
	}
}
