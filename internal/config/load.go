package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadWithSources loads configuration and tracks the source of each value.
// Returns ConfigWithSources containing the config and a map of field names to their sources.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	cfg := &Config{}
	cws := &ConfigWithSources{
		Config:  cfg,
		Sources: make(map[string]ConfigSource),
	}

	// 1. Set defaults (all fields start with default source)
	setDefaults(cfg)
	for _, field := range configFields() {
		cws.Sources[field] = SourceDefault
	}

	// 2. User config file
	if path := findUserConfigFile(); path != "" {
		if err := cws.loadFile(path, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	// 3. Project config file (overrides user config)
	if path := findProjectConfigFile(); path != "" {
		if err := cws.loadFile(path, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	// 4. Environment
	loadFromEnvWithSources(cfg, cws.Sources)

	// 5. CLI flags (they override everything)
	if err := parseFlagsWithSources(cfg, fs, args, cws.Sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Derived values and validation
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cws, nil
}

// configFields returns the list of configurable field names for source tracking.
// Nested keys use dotted TOML paths.
func configFields() []string {
	return []string{
		"task_file",
		"color",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"selection.normal",
		"selection.low",
		"selection.note",
	}
}

// loadConfigFile decodes TOML from path over the values already in cfg.
func loadConfigFile(cfg *Config, path string) (toml.MetaData, error) {
	return toml.DecodeFile(path, cfg)
}

// loadFile loads one config file and records which keys it defined.
func (cws *ConfigWithSources) loadFile(path string, source ConfigSource) error {
	md, err := loadConfigFile(cws.Config, path)
	if err != nil {
		return err
	}
	cws.Files = append(cws.Files, path)
	for _, field := range configFields() {
		if md.IsDefined(strings.Split(field, ".")...) {
			cws.Sources[field] = source
		}
	}
	for _, key := range md.Undecoded() {
		cws.Unknown = append(cws.Unknown, fmt.Sprintf("%s: %s", path, key.String()))
	}
	return nil
}

// finalizeConfig computes derived values and validates the result.
func finalizeConfig(cfg *Config) error {
	cfg.TaskFile = resolvePath(cfg.TaskFile)
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	return cfg.Validate()
}
