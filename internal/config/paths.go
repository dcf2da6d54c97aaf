package config

import (
	"os"
	"path/filepath"
	"strings"
)

// resolvePath turns a configured task file path into the one that is opened.
// $VAR and ${VAR} are expanded, then a leading ~ becomes the home directory.
// Relative paths stay relative to the working directory.
func resolvePath(p string) string {
	p = os.ExpandEnv(strings.TrimSpace(p))
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Clean(p)
		}
		return filepath.Join(home, p[1:])
	}
	return filepath.Clean(p)
}
