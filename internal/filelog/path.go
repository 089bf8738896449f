package filelog

import (
	"path/filepath"
	"strings"
	"time"
)

// Layout of the date portion in log file names
const dateLayout string = "2006-01-02"

var nameReplacer = strings.NewReplacer(
	" ", "-",
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
	".", "_",
)

// Makes an application name safe to use as a file name
func SanitizeName(name string) (sanitized string) {
	sanitized = nameReplacer.Replace(name)
	return
}

// Dated log file for the application: <dir>/<name>-<YYYY-MM-DD>.log in local time
func ResolvePath(directory string, name string, now time.Time) (path string) {
	path = filepath.Join(directory, SanitizeName(name)+"-"+now.Format(dateLayout)+".log")
	return
}
