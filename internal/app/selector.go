package app

import (
	"context"
	"strings"
)

type shortcut struct {
	key    string
	label  string
	custom string
}

// Order matters: custom-N becomes exit status 9+N, see ResolveAction.
var rofiShortcuts = []shortcut{
	{key: "Alt+1", label: "Autotype", custom: "-kb-custom-1"},
	{key: "Alt+2", label: "Type username", custom: "-kb-custom-2"},
	{key: "Alt+3", label: "Type password", custom: "-kb-custom-3"},
	{key: "Alt+c", label: "Copy password", custom: "-kb-custom-11"},
	{key: "Alt+u", label: "Copy username", custom: "-kb-custom-12"},
}

func helpMessage(markup bool) string {
	parts := make([]string, 0, len(rofiShortcuts))
	for _, s := range rofiShortcuts {
		key := s.key
		if markup {
			key = "<b>" + key + "</b>"
		}
		parts = append(parts, key+": "+s.label)
	}
	return strings.Join(parts, " | ")
}

type rofiSelector struct {
	runner CommandRunner
}

func (s *rofiSelector) Name() string { return "rofi" }

func (s *rofiSelector) Available() bool { return s.runner.HasCommand("rofi") }

func (s *rofiSelector) Show(ctx context.Context, req SelectionRequest) (SelectionResult, error) {
	return runSelector(ctx, s.runner, Command{Name: "rofi", Args: rofiArgs(req), Stdin: joinEntries(req.Entries)})
}

func rofiArgs(req SelectionRequest) []string {
	args := []string{"-dmenu", "-p", req.Prompt, "-i"}
	for _, s := range rofiShortcuts {
		args = append(args, s.custom, s.key)
	}
	if req.ShowHelp {
		args = append(args, "-mesg", helpMessage(true))
	}
	return append(args, req.ExtraArgs...)
}

type wofiSelector struct {
	runner CommandRunner
}

func (s *wofiSelector) Name() string { return "wofi" }

func (s *wofiSelector) Available() bool { return s.runner.HasCommand("wofi") }

// Show ignores ShowHelp; wofi has neither custom keybindings nor a message line.
func (s *wofiSelector) Show(ctx context.Context, req SelectionRequest) (SelectionResult, error) {
	args := append([]string{"--dmenu", "-p", req.Prompt}, req.ExtraArgs...)
	return runSelector(ctx, s.runner, Command{Name: "wofi", Args: args, Stdin: joinEntries(req.Entries)})
}

func runSelector(ctx context.Context, runner CommandRunner, cmd Command) (SelectionResult, error) {
	result, err := runner.Run(ctx, cmd)
	if err != nil {
		return SelectionResult{}, WrapExit(ExitCommandFailure, err)
	}
	return SelectionResult{
		ExitCode: result.ExitCode,
		Line:     strings.TrimSuffix(result.Stdout, "\n"),
	}, nil
}

func joinEntries(entries []string) string {
	return strings.Join(entries, "\n")
}
