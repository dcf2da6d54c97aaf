package config

import (
	"strconv"

	"github.com/nibzard/gotask/internal/todo"
)

// Weights returns the selection weights for the selective listing.
func (c *Config) Weights() todo.Weights {
	return c.Selection
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

// Value returns the current value of a config field formatted for display.
// Unknown fields return an empty string.
func (c *Config) Value(field string) string {
	switch field {
	case "task_file":
		return c.TaskFile
	case "color":
		return c.Color
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return strconv.FormatBool(c.LogTimestamps)
	case "log_caller":
		return strconv.FormatBool(c.LogCaller)
	case "selection.normal":
		return formatWeight(c.Selection.Normal)
	case "selection.low":
		return formatWeight(c.Selection.Low)
	case "selection.note":
		return formatWeight(c.Selection.Note)
	}
	return ""
}

func formatWeight(f float64) string {
	return strconv.FormatFloat(f, 'g', 4, 64)
}
