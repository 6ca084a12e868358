package app

import (
	"context"
	"fmt"

	"rofi-rbw/internal/debug"
)

type Service struct {
	store *Store
	log   *debug.Logger

	selectors    []Selector
	clipboarders []Clipboarder
	typers       []Typer
}

func NewService(runner CommandRunner, log *debug.Logger) *Service {
	return &Service{
		store:        NewStore(runner),
		log:          log,
		selectors:    selectorCandidates(runner),
		clipboarders: clipboarderCandidates(runner),
		typers:       typerCandidates(runner),
	}
}

type backends struct {
	selector    Selector
	clipboarder Clipboarder
	typer       Typer
}

func (s *Service) probe(opts Options) (backends, error) {
	var b backends
	var err error
	if b.selector, err = selectBackend(KindSelector, opts.Selector, s.selectors); err != nil {
		return b, err
	}
	if b.typer, err = selectBackend(KindTyper, opts.Typer, s.typers); err != nil {
		return b, err
	}
	if b.clipboarder, err = selectBackend(KindClipboarder, opts.Clipboarder, s.clipboarders); err != nil {
		return b, err
	}
	s.log.Printf("backends: selector=%s typer=%s clipboarder=%s", b.selector.Name(), b.typer.Name(), b.clipboarder.Name())
	return b, nil
}

// Run performs one pick-and-deliver cycle. ErrCancelled is returned when the
// user closed the selector.
func (s *Service) Run(ctx context.Context, opts Options) error {
	b, err := s.probe(opts)
	if err != nil {
		return err
	}

	// Captured before the selector steals focus.
	window := b.typer.ActiveWindow(ctx)
	s.log.Printf("active window: %q", window)

	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return err
	}
	s.log.Printf("listed %d entries", len(entries))

	selection, err := b.selector.Show(ctx, SelectionRequest{
		Entries:   entries,
		Prompt:    opts.Prompt,
		ShowHelp:  opts.ShowHelp,
		ExtraArgs: opts.RofiArgs,
	})
	if err != nil {
		return err
	}

	action, err := ResolveAction(selection.ExitCode, opts.Action)
	if err != nil {
		return err
	}
	s.log.Printf("selector exit status %d -> action %s", selection.ExitCode, action)

	folder, name := splitEntry(selection.Line)
	cred, err := s.store.Fetch(ctx, name, folder)
	if err != nil {
		return err
	}
	if s.log.Enabled() {
		s.log.Printf("fetched %q (folder %q): username=%s password=%s", name, folder, redactSecret(cred.Username), redactSecret(cred.Password))
	}

	return s.execute(ctx, b, action, cred, window)
}

func (s *Service) execute(ctx context.Context, b backends, action Action, cred Credential, window string) error {
	var err error
	switch action {
	case ActionTypePassword:
		err = b.typer.Type(ctx, cred.Password, window)
	case ActionTypeUsername:
		err = b.typer.Type(ctx, cred.Username, window)
	case ActionTypeBoth:
		err = b.typer.Type(ctx, cred.Username+"\t"+cred.Password, window)
	case ActionCopyPassword:
		err = b.clipboarder.Copy(ctx, cred.Password)
	case ActionCopyUsername:
		err = b.clipboarder.Copy(ctx, cred.Username)
	default:
		return WrapExit(ExitUserError, fmt.Errorf("unknown action %q", action))
	}
	if err != nil {
		return WrapExit(ExitCommandFailure, fmt.Errorf("%w: %s: %w", ErrDeliveryFailed, action, err))
	}
	return nil
}

// Backends reports every candidate per kind and which one a run would bind.
func (s *Service) Backends(opts Options) []BackendReport {
	return []BackendReport{
		report(KindSelector, opts.Selector, s.selectors),
		report(KindClipboarder, opts.Clipboarder, s.clipboarders),
		report(KindTyper, opts.Typer, s.typers),
	}
}
