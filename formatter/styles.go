package formatter

import "github.com/fatih/color"

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	okStyle      = color.New(color.FgGreen, color.Bold)
	dialectStyle = color.New(color.FgYellow, color.Bold)
	sourceStyle  = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

// DisableColor turns colored output off for every formatter. Color is never
// forced on; fatih/color decides from whether stdout is a terminal.
func DisableColor() {
	color.NoColor = true
}
