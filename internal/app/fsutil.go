package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const defaultConfigTemplate = `# rofi-rbw configuration. Command-line flags override these values.

# One of: type-password, type-username, autotype, copy-password, copy-username
action = "type-password"

prompt = "Select entry"

# Extra arguments passed to the selector, split with shell quoting rules.
rofi-args = ""

# Show the keyboard shortcut banner in rofi.
show-help = true

# Leave unset to use the first installed backend.
# selector = "rofi"        # rofi, wofi, terminal
# clipboarder = "xsel"     # xsel, xclip, wl-copy, system
# typer = "xdotool"        # xdotool, wtype
`

// InitConfig writes the default config file to path. An existing file is
// only replaced when force is set.
func InitConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return WrapExit(ExitUserError, fmt.Errorf("config %s already exists (use --force to overwrite)", path))
		}
	}
	if err := ensureParentDir(path); err != nil {
		return WrapExit(ExitIOFailure, err)
	}
	if err := writeFileAtomic(path, []byte(defaultConfigTemplate), 0o644); err != nil {
		return WrapExit(ExitIOFailure, err)
	}
	return nil
}

func ensureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func writeFileAtomic(path string, content []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp.%d", base, time.Now().UnixNano()))

	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp)
	}()

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
