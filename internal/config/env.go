package config

import (
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	loadFromEnvHelper(cfg, nil, "")
}

// loadFromEnvWithSources loads environment variables and updates source tracking.
func loadFromEnvWithSources(cfg *Config, sources map[string]ConfigSource) {
	loadFromEnvHelper(cfg, sources, SourceEnv)
}

// loadFromEnvHelper is the shared implementation for env loading.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnvHelper(cfg *Config, sources map[string]ConfigSource, source ConfigSource) {
	setEnv := func(field string) {
		if sources != nil {
			sources[field] = source
		}
	}

	// RUSTASK_TASKFILE is read for files created by the earlier tool.
	if v := os.Getenv("RUSTASK_TASKFILE"); v != "" {
		cfg.TaskFile = v
		setEnv("task_file")
	}
	if v := os.Getenv("GOTASK_TASKFILE"); v != "" {
		cfg.TaskFile = v
		setEnv("task_file")
	}

	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Color = "never"
		setEnv("color")
	}
	if v := os.Getenv("GOTASK_COLOR"); v != "" {
		cfg.Color = v
		setEnv("color")
	}

	if v := os.Getenv("GOTASK_SELECTION_NORMAL"); v != "" {
		if f, ok := floatFromString(v); ok {
			cfg.Selection.Normal = f
			setEnv("selection.normal")
		}
	}
	if v := os.Getenv("GOTASK_SELECTION_LOW"); v != "" {
		if f, ok := floatFromString(v); ok {
			cfg.Selection.Low = f
			setEnv("selection.low")
		}
	}
	if v := os.Getenv("GOTASK_SELECTION_NOTE"); v != "" {
		if f, ok := floatFromString(v); ok {
			cfg.Selection.Note = f
			setEnv("selection.note")
		}
	}

	// Logging configuration
	if v := os.Getenv("GOTASK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		setEnv("log_level")
	}
	if v := os.Getenv("GOTASK_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		setEnv("log_format")
	}
	if v := os.Getenv("GOTASK_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		setEnv("log_timestamps")
	}
	if v := os.Getenv("GOTASK_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		setEnv("log_caller")
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

func floatFromString(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
