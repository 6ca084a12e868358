package app

import (
	"os"
	"path/filepath"
	"strings"
)

const configFileName = "rofi-rbw.toml"

// ConfigSearchPaths lists config files from lowest to highest precedence:
// every $XDG_CONFIG_DIRS entry (reversed, so the first listed dir wins), then
// $XDG_CONFIG_HOME.
func ConfigSearchPaths() ([]string, error) {
	userPath, err := UserConfigPath()
	if err != nil {
		return nil, err
	}
	dirs := strings.Split(firstNonEmpty(os.Getenv("XDG_CONFIG_DIRS"), "/etc/xdg"), string(os.PathListSeparator))
	paths := make([]string, 0, len(dirs)+1)
	for i := len(dirs) - 1; i >= 0; i-- {
		dir := strings.TrimSpace(dirs[i])
		if dir == "" || !filepath.IsAbs(dir) {
			continue
		}
		paths = append(paths, filepath.Join(filepath.Clean(dir), configFileName))
	}
	return append(paths, userPath), nil
}

func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	root := resolvePathWithHome(firstNonEmpty(os.Getenv("XDG_CONFIG_HOME"), filepath.Join(home, ".config")), home)
	return filepath.Join(root, configFileName), nil
}

func resolvePathWithHome(raw string, home string) string {
	if strings.HasPrefix(raw, "~/") {
		return filepath.Join(home, strings.TrimPrefix(raw, "~/"))
	}
	if raw == "~" {
		return home
	}
	return filepath.Clean(raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}
