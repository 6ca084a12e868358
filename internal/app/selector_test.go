package app

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ktr0731/go-fuzzyfinder"
)

func TestRofiArgs(t *testing.T) {
	req := SelectionRequest{Prompt: "Pick", ExtraArgs: []string{"-theme", "dark theme"}}
	got := rofiArgs(req)
	want := []string{
		"-dmenu", "-p", "Pick", "-i",
		"-kb-custom-1", "Alt+1",
		"-kb-custom-2", "Alt+2",
		"-kb-custom-3", "Alt+3",
		"-kb-custom-11", "Alt+c",
		"-kb-custom-12", "Alt+u",
		"-theme", "dark theme",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q\nwant %q", got, want)
	}

	req.ShowHelp = true
	got = rofiArgs(req)
	idx := -1
	for i, arg := range got {
		if arg == "-mesg" {
			idx = i
		}
	}
	if idx < 0 || idx+1 >= len(got) {
		t.Fatalf("expected -mesg in %q", got)
	}
	if !strings.Contains(got[idx+1], "<b>Alt+c</b>: Copy password") {
		t.Fatalf("unexpected help banner %q", got[idx+1])
	}
	if got[len(got)-1] != "dark theme" {
		t.Fatalf("extra args must come last, got %q", got)
	}
}

func TestRofiShowReturnsRawExitCodeAndLine(t *testing.T) {
	runner := newFakeRunner("rofi")
	runner.results["rofi"] = CommandResult{Stdout: "Work/user1\n", ExitCode: 20}
	sel := &rofiSelector{runner: runner}

	res, err := sel.Show(context.Background(), SelectionRequest{Entries: []string{"Work/user1", "alice"}, Prompt: "Select entry"})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if res.ExitCode != 20 || res.Line != "Work/user1" {
		t.Fatalf("unexpected result %+v", res)
	}
	if runner.calls[0].Stdin != "Work/user1\nalice" {
		t.Fatalf("unexpected stdin %q", runner.calls[0].Stdin)
	}
}

func TestWofiShow(t *testing.T) {
	runner := newFakeRunner("wofi")
	runner.results["wofi"] = CommandResult{Stdout: "alice\n"}
	sel := &wofiSelector{runner: runner}

	res, err := sel.Show(context.Background(), SelectionRequest{Entries: []string{"alice"}, Prompt: "P", ShowHelp: true, ExtraArgs: []string{"--insensitive"}})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if res.Line != "alice" || res.ExitCode != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if got := runner.calls[0].String(); got != "wofi --dmenu -p P --insensitive" {
		t.Fatalf("unexpected command %q", got)
	}
}

func TestSelectorLaunchFailure(t *testing.T) {
	runner := newFakeRunner("rofi")
	runner.errs["rofi"] = ErrCommandFailed
	_, err := (&rofiSelector{runner: runner}).Show(context.Background(), SelectionRequest{})
	if !errors.Is(err, ErrCommandFailed) || ExitCode(err) != ExitCommandFailure {
		t.Fatalf("expected command failure, got %v", err)
	}
}

func TestTerminalSelector(t *testing.T) {
	var gotPrompt, gotHeader string
	sel := &terminalSelector{
		interactive: func() bool { return true },
		find: func(lines []string, prompt, header string) (int, error) {
			gotPrompt, gotHeader = prompt, header
			return 1, nil
		},
	}
	if !sel.Available() {
		t.Fatalf("expected available")
	}
	res, err := sel.Show(context.Background(), SelectionRequest{Entries: []string{"a/x", "b/y"}, Prompt: "Select entry", ShowHelp: true})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if res.Line != "b/y" || res.ExitCode != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if gotPrompt != "Select entry> " || gotHeader == "" {
		t.Fatalf("unexpected prompt %q header %q", gotPrompt, gotHeader)
	}
}

func TestTerminalSelectorAbortIsCancel(t *testing.T) {
	sel := &terminalSelector{
		interactive: func() bool { return false },
		find: func(lines []string, prompt, header string) (int, error) {
			return 0, fuzzyfinder.ErrAbort
		},
	}
	if sel.Available() {
		t.Fatalf("expected unavailable without a terminal")
	}
	res, err := sel.Show(context.Background(), SelectionRequest{Entries: []string{"a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ResolveAction(res.ExitCode, ActionTypePassword); !errors.Is(err, ErrCancelled) {
		t.Fatalf("abort must resolve to cancel, got %v", err)
	}
}
