package cli

import (
	"github.com/fatih/color"
)

var (
	progressColor = color.New(color.FgCyan)
	successColor  = color.New(color.FgGreen)
	warnColor     = color.New(color.FgYellow)
)

// progressf prints a per-channel progress line to stdout.
func progressf(format string, a ...any) {
	progressColor.Printf(format+"\n", a...)
}

// successf prints the final confirmation line to stdout.
func successf(format string, a ...any) {
	successColor.Printf(format+"\n", a...)
}

// warnf prints a recoverable problem to stderr. Per-channel failures are
// warnings: the run continues with the next channel.
func warnf(format string, a ...any) {
	warnColor.Fprintf(color.Error, format+"\n", a...)
}
