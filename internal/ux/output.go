package ux

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	bold   = color.New(color.Bold)
	dim    = color.New(color.Faint)
	red    = color.New(color.FgRed)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

// Stdout and Stderr are where messages go. Tests replace them.
var (
	Stdout io.Writer = color.Output
	Stderr io.Writer = color.Error
)

// DisableColor forces plain output, e.g. for --no-color.
func DisableColor() {
	color.NoColor = true
}

// Success prints a final success message.
func Success(format string, args ...any) {
	green.Fprintf(Stdout, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Warn prints a warning.
func Warn(format string, args ...any) {
	yellow.Fprintf(Stderr, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Fail prints a fatal error line.
func Fail(err error) {
	fmt.Fprintf(Stderr, "%s %v\n", red.Sprint("error:"), err)
}

// Wrote prints a created/exported file.
func Wrote(path, what string) {
	fmt.Fprintf(Stdout, "    %s  %s\n", cyan.Sprint(path), dim.Sprint(what))
}

// Heading prints a bold section heading.
func Heading(s string) {
	bold.Fprintf(Stdout, "\n%s\n", s)
}
