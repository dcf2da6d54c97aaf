package config

import (
	"github.com/nibzard/gotask/internal/todo"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	// Files lists the config files that were read, in load order.
	Files []string
	// Unknown lists keys found in config files that gotask does not use.
	Unknown []string
}

// Default values.
const (
	DefaultTaskFile  = "~/.gotask/tasks.json"
	DefaultColor     = "auto"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for gotask.
type Config struct {
	// Task file; .yaml or .yml selects YAML, anything else is JSON.
	TaskFile string `toml:"task_file"`

	// Output coloring: auto, always or never.
	Color string `toml:"color"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Base probabilities for the selective listing.
	Selection todo.Weights `toml:"selection"`
}
