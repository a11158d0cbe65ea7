package util

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger points the default logger at w with the configured level.
func SetupLogger(conf *AppConfig, w io.Writer) error {
	level := log.InfoLevel
	if conf.Conf.LogLevel != "" {
		parsed, err := log.ParseLevel(conf.Conf.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", conf.Conf.LogLevel, err)
		}
		level = parsed
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Name,
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

// OpenLogFile opens the configured log file for appending. The TUI owns
// the terminal in local mode, so logs can't go to stderr there.
func OpenLogFile(conf *AppConfig) (*os.File, error) {
	path := conf.Conf.LogFile
	if path == "" {
		path = Name + ".log"
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
