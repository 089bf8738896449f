package config

import "strings"

// Lenient scan of command line arguments for --name=value, --name value and -name value.
// Anything that does not look like an option is skipped.
func ScanArgs(argv []string) (args map[string]string) {
	args = make(map[string]string)

	for index := 0; index < len(argv); index++ {
		arg := argv[index]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if name == "" {
			continue
		}

		key, value, hasValue := strings.Cut(name, "=")
		if !hasValue {
			// Next argument is the value unless it is another option
			if index+1 < len(argv) && !strings.HasPrefix(argv[index+1], "-") {
				value = argv[index+1]
				index++
			} else {
				value = "true"
			}
		}
		args[key] = value
	}
	return
}
