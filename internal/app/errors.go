package app

import (
	"errors"
	"fmt"
)

const (
	ExitSuccess        = 0
	ExitUserError      = 1
	ExitNoBackend      = 2
	ExitCommandFailure = 3
	ExitIOFailure      = 4
)

var (
	// ErrCancelled is returned when the user dismissed the selector. It is not a failure.
	ErrCancelled = errors.New("selection cancelled")

	ErrUnsupportedBackend = errors.New("backend not supported")
	ErrNoBackend          = errors.New("no backend available")
	ErrCommandFailed      = errors.New("command failed")
	ErrListFailed         = errors.New("listing failed")
	ErrFetchFailed        = errors.New("fetch failed")
	ErrDeliveryFailed     = errors.New("delivery failed")
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func WrapExit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrCancelled) {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
