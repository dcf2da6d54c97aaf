package config

import (
	"fmt"
	"strings"
)

var (
	validColors     = []string{"auto", "always", "never"}
	validLogLevels  = []string{"debug", "info", "warn", "error", "fatal"}
	validLogFormats = []string{"text", "json", "logfmt"}
)

// ValidationError lists every invalid setting found in a config.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid config: " + strings.Join(e.Problems, "; ")
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string
	if c.TaskFile == "" {
		problems = append(problems, "task_file is empty")
	}
	if !contains(validColors, c.Color) {
		problems = append(problems, fmt.Sprintf("color %q is not one of %s", c.Color, strings.Join(validColors, ", ")))
	}
	if !contains(validLogLevels, c.LogLevel) {
		problems = append(problems, fmt.Sprintf("log_level %q is not one of %s", c.LogLevel, strings.Join(validLogLevels, ", ")))
	}
	if !contains(validLogFormats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("log_format %q is not one of %s", c.LogFormat, strings.Join(validLogFormats, ", ")))
	}
	if err := c.Selection.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
