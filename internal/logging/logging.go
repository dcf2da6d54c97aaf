// Package logging builds the leveled console logger used by gotask.
//
// Logs go to stderr so they never mix with listing output on stdout.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/gotask/internal/config"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    "gotask",
	}
}

// OptionsFromConfig converts the logging settings of cfg.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := DefaultOptions()

	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return opts, err
	}
	formatter, err := ParseFormatter(cfg.LogFormat)
	if err != nil {
		return opts, err
	}
	opts.Level = level
	opts.Formatter = formatter
	opts.ReportTimestamp = cfg.LogTimestamps
	opts.ReportCaller = cfg.LogCaller
	return opts, nil
}

// ParseLevel parses debug, info, warn, error or fatal. Empty means warn.
func ParseLevel(s string) (log.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return log.WarnLevel, nil
	}
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// ParseFormatter parses text, json or logfmt. Empty means text.
func ParseFormatter(s string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return log.TextFormatter, fmt.Errorf("invalid log format %q (want text, json or logfmt)", s)
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
}

// FromConfig creates a logger writing to w with the settings of cfg.
func FromConfig(w io.Writer, cfg *config.Config) (*log.Logger, error) {
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(w, opts), nil
}
