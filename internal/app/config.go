package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the on-disk form of Options. Unset keys are nil so a later
// file only overrides what it names.
type FileConfig struct {
	Action      *string `toml:"action,omitempty"`
	Prompt      *string `toml:"prompt,omitempty"`
	RofiArgs    *string `toml:"rofi-args,omitempty"`
	ShowHelp    *bool   `toml:"show-help,omitempty"`
	Selector    *string `toml:"selector,omitempty"`
	Clipboarder *string `toml:"clipboarder,omitempty"`
	Typer       *string `toml:"typer,omitempty"`
}

// Merge overlays every key set in other.
func (c FileConfig) Merge(other FileConfig) FileConfig {
	if other.Action != nil {
		c.Action = other.Action
	}
	if other.Prompt != nil {
		c.Prompt = other.Prompt
	}
	if other.RofiArgs != nil {
		c.RofiArgs = other.RofiArgs
	}
	if other.ShowHelp != nil {
		c.ShowHelp = other.ShowHelp
	}
	if other.Selector != nil {
		c.Selector = other.Selector
	}
	if other.Clipboarder != nil {
		c.Clipboarder = other.Clipboarder
	}
	if other.Typer != nil {
		c.Typer = other.Typer
	}
	return c
}

func readConfigFile(path string) (FileConfig, error) {
	var cfg FileConfig
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, WrapExit(ExitUserError, fmt.Errorf("parse %s: %w", path, err))
	}
	return cfg, nil
}

// LoadConfig reads the explicit file when given, otherwise merges every file
// found on the search path. A missing explicit file is an error; missing
// search path entries are skipped.
func LoadConfig(explicit string) (FileConfig, error) {
	if explicit != "" {
		cfg, err := readConfigFile(explicit)
		if err != nil {
			var exitErr *ExitError
			if errors.As(err, &exitErr) {
				return cfg, err
			}
			return cfg, WrapExit(ExitIOFailure, fmt.Errorf("read config: %w", err))
		}
		return cfg, nil
	}

	paths, err := ConfigSearchPaths()
	if err != nil {
		return FileConfig{}, WrapExit(ExitIOFailure, err)
	}
	var merged FileConfig
	for _, path := range paths {
		cfg, err := readConfigFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			var exitErr *ExitError
			if errors.As(err, &exitErr) {
				return FileConfig{}, err
			}
			return FileConfig{}, WrapExit(ExitIOFailure, fmt.Errorf("read config: %w", err))
		}
		merged = merged.Merge(cfg)
	}
	return merged, nil
}

// Options resolves the file values over the defaults and validates them.
func (c FileConfig) Options() (Options, error) {
	opts := DefaultOptions()
	if c.Action != nil {
		action, err := ParseAction(*c.Action)
		if err != nil {
			return opts, WrapExit(ExitUserError, err)
		}
		opts.Action = action
	}
	if c.Prompt != nil {
		opts.Prompt = *c.Prompt
	}
	if c.RofiArgs != nil {
		args, err := SplitArgs(*c.RofiArgs)
		if err != nil {
			return opts, WrapExit(ExitUserError, err)
		}
		opts.RofiArgs = args
	}
	if c.ShowHelp != nil {
		opts.ShowHelp = *c.ShowHelp
	}
	backends := []struct {
		kind  BackendKind
		value *string
		dst   *string
	}{
		{KindSelector, c.Selector, &opts.Selector},
		{KindClipboarder, c.Clipboarder, &opts.Clipboarder},
		{KindTyper, c.Typer, &opts.Typer},
	}
	for _, b := range backends {
		if b.value == nil {
			continue
		}
		name := strings.TrimSpace(*b.value)
		if err := validateBackendName(b.kind, name); err != nil {
			return opts, WrapExit(ExitUserError, err)
		}
		*b.dst = name
	}
	return opts, nil
}

// SplitArgs splits extra selector arguments using shell quoting rules.
func SplitArgs(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	args, err := shellwords.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid rofi-args %q: %w", raw, err)
	}
	return args, nil
}

func (c FileConfig) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// FileConfigFromOptions is the inverse of Options, used to print the
// effective configuration.
func FileConfigFromOptions(opts Options) FileConfig {
	action := string(opts.Action)
	prompt := opts.Prompt
	rofiArgs := shellwordsJoin(opts.RofiArgs)
	showHelp := opts.ShowHelp
	cfg := FileConfig{
		Action:   &action,
		Prompt:   &prompt,
		RofiArgs: &rofiArgs,
		ShowHelp: &showHelp,
	}
	if opts.Selector != "" {
		selector := opts.Selector
		cfg.Selector = &selector
	}
	if opts.Clipboarder != "" {
		clipboarder := opts.Clipboarder
		cfg.Clipboarder = &clipboarder
	}
	if opts.Typer != "" {
		typer := opts.Typer
		cfg.Typer = &typer
	}
	return cfg
}

func shellwordsJoin(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "" && !strings.ContainsAny(arg, " \t\n'\"\\$`") {
			quoted = append(quoted, arg)
			continue
		}
		quoted = append(quoted, "'"+strings.ReplaceAll(arg, "'", `'\''`)+"'")
	}
	return strings.Join(quoted, " ")
}
