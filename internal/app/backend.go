package app

import (
	"context"
	"fmt"
	"strings"
)

// Backend is an external helper that can be probed for presence.
type Backend interface {
	Name() string
	Available() bool
}

type Selector interface {
	Backend
	Show(ctx context.Context, req SelectionRequest) (SelectionResult, error)
}

type Clipboarder interface {
	Backend
	Copy(ctx context.Context, text string) error
}

type Typer interface {
	Backend
	// ActiveWindow returns an identifier for the focused window, or "" when
	// the typer cannot target windows.
	ActiveWindow(ctx context.Context) string
	Type(ctx context.Context, text string, window string) error
}

func selectorCandidates(runner CommandRunner) []Selector {
	return []Selector{
		&rofiSelector{runner: runner},
		&wofiSelector{runner: runner},
		newTerminalSelector(),
	}
}

func clipboarderCandidates(runner CommandRunner) []Clipboarder {
	return []Clipboarder{
		&xselClipboarder{runner: runner},
		&xclipClipboarder{runner: runner},
		&wlCopyClipboarder{runner: runner},
		&systemClipboarder{},
	}
}

func typerCandidates(runner CommandRunner) []Typer {
	return []Typer{
		&xdotoolTyper{runner: runner},
		&wtypeTyper{runner: runner},
	}
}

// selectBackend binds the backend for kind. An explicit choice must name a
// usable candidate; otherwise the first available candidate in order wins.
func selectBackend[T Backend](kind BackendKind, explicit string, candidates []T) (T, error) {
	var zero T
	if explicit != "" {
		for _, candidate := range candidates {
			if candidate.Name() != explicit {
				continue
			}
			if !candidate.Available() {
				return zero, WrapExit(ExitUserError, fmt.Errorf("%w: %s %q is not installed", ErrUnsupportedBackend, kind, explicit))
			}
			return candidate, nil
		}
		return zero, WrapExit(ExitUserError, fmt.Errorf("%w: unknown %s %q (allowed: %s)", ErrUnsupportedBackend, kind, explicit, joinNames(candidates)))
	}
	for _, candidate := range candidates {
		if candidate.Available() {
			return candidate, nil
		}
	}
	return zero, WrapExit(ExitNoBackend, fmt.Errorf("%w: no %s found (install one of: %s)", ErrNoBackend, kind, joinNames(candidates)))
}

func CandidateNames(kind BackendKind) []string {
	switch kind {
	case KindSelector:
		return namesOf(selectorCandidates(nil))
	case KindClipboarder:
		return namesOf(clipboarderCandidates(nil))
	case KindTyper:
		return namesOf(typerCandidates(nil))
	default:
		return nil
	}
}

func namesOf[T Backend](candidates []T) []string {
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		out = append(out, candidate.Name())
	}
	return out
}

func joinNames[T Backend](candidates []T) string {
	return strings.Join(namesOf(candidates), ", ")
}

func report[T Backend](kind BackendKind, explicit string, candidates []T) BackendReport {
	out := BackendReport{Kind: kind, Override: explicit}
	chosen, err := selectBackend(kind, explicit, candidates)
	if err != nil {
		out.Error = err.Error()
	}
	for _, candidate := range candidates {
		out.Candidates = append(out.Candidates, BackendStatus{
			Name:      candidate.Name(),
			Available: candidate.Available(),
			Selected:  err == nil && candidate.Name() == chosen.Name(),
		})
	}
	return out
}
