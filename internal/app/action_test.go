package app

import (
	"errors"
	"testing"
)

func TestResolveActionFromSelectorExitCode(t *testing.T) {
	cases := []struct {
		code int
		want Action
	}{
		{code: 10, want: ActionTypeBoth},
		{code: 11, want: ActionTypeUsername},
		{code: 12, want: ActionTypePassword},
		{code: 20, want: ActionCopyPassword},
		{code: 21, want: ActionCopyUsername},
	}
	for _, tc := range cases {
		for _, def := range AllActions {
			got, err := ResolveAction(tc.code, def)
			if err != nil {
				t.Fatalf("code %d: unexpected error: %v", tc.code, err)
			}
			if got != tc.want {
				t.Fatalf("code %d with default %s: got %s, want %s", tc.code, def, got, tc.want)
			}
		}
	}
}

func TestResolveActionKeepsDefaultForOtherCodes(t *testing.T) {
	for _, code := range []int{0, 2, 9, 13, 19, 22, 99, -1} {
		for _, def := range AllActions {
			got, err := ResolveAction(code, def)
			if err != nil {
				t.Fatalf("code %d: unexpected error: %v", code, err)
			}
			if got != def {
				t.Fatalf("code %d: expected default %s, got %s", code, def, got)
			}
		}
	}
}

func TestResolveActionCancel(t *testing.T) {
	_, err := ResolveAction(1, ActionCopyPassword)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if ExitCode(err) != ExitSuccess {
		t.Fatalf("cancel must exit successfully, got %d", ExitCode(err))
	}
}

func TestParseAction(t *testing.T) {
	cases := map[string]Action{
		"type-password":   ActionTypePassword,
		" Type-Username ": ActionTypeUsername,
		"autotype":        ActionTypeBoth,
		"type-both":       ActionTypeBoth,
		"copy-password":   ActionCopyPassword,
		"copy-username":   ActionCopyUsername,
	}
	for raw, want := range cases {
		got, err := ParseAction(raw)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseAction(%q) = %s, want %s", raw, got, want)
		}
	}
	if _, err := ParseAction("paste"); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}
