package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/originslider/internal/logger"
)

// openLogger builds the command logger. Without --log-file, interactive
// commands discard logs and the others write to fallback.
func openLogger(flags *rootFlags, interactive bool, fallback io.Writer) (*logger.Logger, func(), error) {
	level := flags.logLevel
	if level == "" {
		level = "info"
		if flags.verbose {
			level = "debug"
		}
	}

	if flags.logFile == "" {
		if interactive {
			return logger.Discard(), func() {}, nil
		}
		log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: fallback})
		if err != nil {
			return nil, nil, err
		}
		return log, func() {}, nil
	}

	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logger.New(logger.Options{Level: level, Writer: f})
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return log, func() { _ = f.Close() }, nil
}
