package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"
)

// terminalSelector is the fallback when no graphical menu is installed but
// the tool runs from an interactive terminal. It cannot report custom
// keybindings, so the configured action always applies.
type terminalSelector struct {
	interactive func() bool
	find        func(lines []string, prompt, header string) (int, error)
}

func newTerminalSelector() *terminalSelector {
	return &terminalSelector{
		interactive: hasInteractiveStdio,
		find:        fuzzyFind,
	}
}

func (s *terminalSelector) Name() string { return "terminal" }

func (s *terminalSelector) Available() bool { return s.interactive() }

func (s *terminalSelector) Show(ctx context.Context, req SelectionRequest) (SelectionResult, error) {
	if err := ctx.Err(); err != nil {
		return SelectionResult{}, err
	}
	header := ""
	if req.ShowHelp {
		header = "enter: select | esc: cancel"
	}
	idx, err := s.find(req.Entries, req.Prompt+"> ", header)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return SelectionResult{ExitCode: selectorCodeCancel}, nil
		}
		return SelectionResult{}, WrapExit(ExitCommandFailure, fmt.Errorf("%w: terminal selector: %v", ErrCommandFailed, err))
	}
	return SelectionResult{Line: req.Entries[idx]}, nil
}

func fuzzyFind(lines []string, prompt, header string) (int, error) {
	opts := []fuzzyfinder.Option{fuzzyfinder.WithPromptString(prompt)}
	if header != "" {
		opts = append(opts, fuzzyfinder.WithHeader(header))
	}
	return fuzzyfinder.Find(lines, func(i int) string { return lines[i] }, opts...)
}

func hasInteractiveStdio() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
