package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// setupLogger writes leveled logs to w; verbose enables debug output
func setupLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		Prefix:          "pokersim",
	})
}
