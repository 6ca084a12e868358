package app

import (
	"context"
	"strings"
)

// Typers read the text from stdin so secrets never show up in a process listing.

type xdotoolTyper struct {
	runner CommandRunner
}

func (t *xdotoolTyper) Name() string { return "xdotool" }

func (t *xdotoolTyper) Available() bool { return t.runner.HasCommand("xdotool") }

func (t *xdotoolTyper) ActiveWindow(ctx context.Context) string {
	result, err := runChecked(ctx, t.runner, Command{Name: "xdotool", Args: []string{"getactivewindow"}})
	if err != nil {
		return ""
	}
	return strings.TrimSpace(result.Stdout)
}

func (t *xdotoolTyper) Type(ctx context.Context, text string, window string) error {
	args := []string{"type"}
	if window != "" {
		args = append(args, "--window", window)
	}
	args = append(args, "--file", "-")
	_, err := runChecked(ctx, t.runner, Command{Name: "xdotool", Args: args, Stdin: text})
	return err
}

type wtypeTyper struct {
	runner CommandRunner
}

func (t *wtypeTyper) Name() string { return "wtype" }

func (t *wtypeTyper) Available() bool { return t.runner.HasCommand("wtype") }

// ActiveWindow is unsupported on Wayland; wtype types into whatever has focus.
func (t *wtypeTyper) ActiveWindow(ctx context.Context) string { return "" }

func (t *wtypeTyper) Type(ctx context.Context, text string, window string) error {
	_, err := runChecked(ctx, t.runner, Command{Name: "wtype", Args: []string{"-"}, Stdin: text})
	return err
}
