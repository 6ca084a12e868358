package app

import (
	"fmt"
	"strings"
)

// Exit codes produced by the selector's custom keybindings. rofi reports
// -kb-custom-N as exit status 9+N.
const (
	selectorCodeCancel       = 1
	selectorCodeTypeBoth     = 10
	selectorCodeTypeUsername = 11
	selectorCodeTypePassword = 12
	selectorCodeCopyPassword = 20
	selectorCodeCopyUsername = 21
)

func ParseAction(raw string) (Action, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "type-both" {
		return ActionTypeBoth, nil
	}
	for _, action := range AllActions {
		if string(action) == value {
			return action, nil
		}
	}
	return "", fmt.Errorf("invalid action %q (allowed: %s)", raw, strings.Join(actionNames(), ", "))
}

// ResolveAction maps the selector's exit status to the action to perform.
// Unknown codes, including 0, keep the configured default.
func ResolveAction(code int, def Action) (Action, error) {
	switch code {
	case selectorCodeCancel:
		return "", ErrCancelled
	case selectorCodeTypeBoth:
		return ActionTypeBoth, nil
	case selectorCodeTypeUsername:
		return ActionTypeUsername, nil
	case selectorCodeTypePassword:
		return ActionTypePassword, nil
	case selectorCodeCopyPassword:
		return ActionCopyPassword, nil
	case selectorCodeCopyUsername:
		return ActionCopyUsername, nil
	default:
		return def, nil
	}
}

func actionNames() []string {
	out := make([]string, 0, len(AllActions))
	for _, action := range AllActions {
		out = append(out, string(action))
	}
	return out
}
