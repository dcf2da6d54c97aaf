package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# gotask configuration file
# Values can be overridden by environment variables or CLI flags

# Task file (supports ~ expansion and %VAR% on Windows).
# A .yaml or .yml extension stores tasks as YAML, anything else as JSON.
task_file = "~/.gotask/tasks.json"

# Color output: auto, always, never (NO_COLOR also disables color)
color = "auto"

# Logging: debug, info, warn, error
log_level = "warn"
# Log format: text, json, logfmt
log_format = "text"
log_timestamps = false
log_caller = false

# Base chance that "list" shows a task of each priority.
# Urgent and high tasks are always shown; a near deadline raises the chance.
[selection]
normal = 0.3333
low = 0.2
note = 0.125
`
}
