package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger builds the CLI logger. Logs are discarded unless debug is set
// or a log file is given; the returned closer must be called on exit.
func setupLogger(level string, debug bool, file string) (*log.Logger, func() error, error) {
	var out io.Writer = io.Discard
	closer := func() error { return nil }

	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f.Close
	case debug:
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
	})
	logger.SetLevel(parseLevel(level, debug))
	return logger, closer, nil
}

func parseLevel(level string, debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
