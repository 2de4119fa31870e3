package ui

// ANSI escapes for terminal output.
const (
	ColorReset  = "\033[0m"
	ColorDim    = "\033[2m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
)

// Success marks a completed step, typically a check mark prefix.
func Success(s string) string {
	return ColorGreen + s + ColorReset
}

// Info styles a secondary status line.
func Info(s string) string {
	return ColorDim + ColorYellow + s + ColorReset
}
