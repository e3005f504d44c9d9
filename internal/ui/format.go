// Package ui formats console output for the generator.
package ui

import (
	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func Success(msg string) string {
	return green("✓ ") + msg
}

func Warning(msg string) string {
	return yellow("⚠ ") + msg
}

func Error(msg string) string {
	return red("✗ ") + msg
}

// Summary is used for the final line of a build.
func Summary(msg string) string {
	return bold(msg)
}
