package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"rofi-rbw/internal/debug"
)

// detachWaitDelay bounds how long Run waits for a detached command's
// descendants to release the output pipes after the command itself exited.
const detachWaitDelay = 250 * time.Millisecond

type Command struct {
	Name  string
	Args  []string
	Stdin string

	// Detach marks helpers that fork a child which outlives them, such as
	// clipboard owners. Stdout is discarded and Run returns once the helper
	// exits.
	Detach bool
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner launches external helpers. A non-zero exit status is reported
// through CommandResult.ExitCode; the error is reserved for launch failures.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
	HasCommand(name string) bool
}

type execRunner struct {
	log *debug.Logger
}

func NewExecRunner(log *debug.Logger) CommandRunner {
	return &execRunner{log: log}
}

func (r *execRunner) Run(ctx context.Context, c Command) (CommandResult, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.Stdin != "" {
		cmd.Stdin = strings.NewReader(c.Stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stderr = &stderr
	if c.Detach {
		cmd.WaitDelay = detachWaitDelay
	} else {
		cmd.Stdout = &stdout
	}

	r.log.Printf("exec %s", c)
	err := cmd.Run()
	result := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if c.Detach && errors.Is(err, exec.ErrWaitDelay) {
		r.log.Printf("%s left a child running", c.Name)
		return result, nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.log.Printf("%s exited with status %d", c.Name, result.ExitCode)
			return result, nil
		}
		return result, fmt.Errorf("%w: %s: %v", ErrCommandFailed, c.Name, err)
	}
	return result, nil
}

func (r *execRunner) HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// runChecked runs cmd and turns a non-zero exit status into an error carrying stderr.
func runChecked(ctx context.Context, runner CommandRunner, c Command) (CommandResult, error) {
	result, err := runner.Run(ctx, c)
	if err != nil {
		return result, err
	}
	if result.ExitCode != 0 {
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" {
			detail = fmt.Sprintf("exit status %d", result.ExitCode)
		}
		return result, fmt.Errorf("%w: %s: %s", ErrCommandFailed, c.Name, detail)
	}
	return result, nil
}
