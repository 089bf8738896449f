package logctx

// ANSI SGR parameters
type Color string

const (
	Red         Color = "0;31"
	Purple      Color = "0;35"
	LightBlue   Color = "1;34"
	LightGreen  Color = "1;32"
	LightCyan   Color = "1;36"
	LightRed    Color = "1;31"
	LightPurple Color = "1;35"
	Yellow      Color = "1;33"
	White       Color = "1;37"
)

// Colors available for per-application assignment
var BrightColors = []Color{LightBlue, LightGreen, LightCyan, LightRed, LightPurple}

// Wraps text in the escape sequence for color
func Colorize(text string, color Color) (colored string) {
	colored = "\033[" + string(color) + "m" + text + "\033[0m"
	return
}
