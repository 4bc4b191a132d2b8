// Package ui provides colored user-facing terminal output, kept separate
// from the diagnostic logger.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()

	// Out is the destination for user-facing messages.
	Out io.Writer = os.Stdout
)

// Info prints a status message with a cyan arrow.
func Info(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", cyan("→"), fmt.Sprintf(format, args...))
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", green("✔"), fmt.Sprintf(format, args...))
}

// Fail prints an error message with a red cross to stderr.
func Fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", red("✘"), fmt.Sprintf(format, args...))
}
