package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

const (
	defaultStoreCommand = "rbw"
	usernamePrefix      = "Username:"
)

// Store reads entries and credentials through the rbw CLI.
type Store struct {
	runner  CommandRunner
	command string
}

func NewStore(runner CommandRunner) *Store {
	return &Store{runner: runner, command: defaultStoreCommand}
}

func (s *Store) ListEntries(ctx context.Context) ([]string, error) {
	result, err := runChecked(ctx, s.runner, Command{Name: s.command, Args: []string{"ls", "--fields", "name,user"}})
	if err != nil {
		return nil, WrapExit(ExitCommandFailure, fmt.Errorf("%w: %w", ErrListFailed, err))
	}
	return parseEntries(result.Stdout), nil
}

func (s *Store) Fetch(ctx context.Context, name, folder string) (Credential, error) {
	if name == "" {
		return Credential{}, WrapExit(ExitCommandFailure, fmt.Errorf("%w: no entry selected", ErrFetchFailed))
	}
	args := []string{"get", "--full", name}
	if folder != "" {
		args = append(args, "--folder", folder)
	}
	result, err := runChecked(ctx, s.runner, Command{Name: s.command, Args: args})
	if err != nil {
		return Credential{}, WrapExit(ExitCommandFailure, fmt.Errorf("%w: %w", ErrFetchFailed, err))
	}
	if strings.TrimSpace(result.Stdout) == "" {
		return Credential{}, WrapExit(ExitCommandFailure, fmt.Errorf("%w: %s returned nothing for %q", ErrFetchFailed, s.command, name))
	}
	return parseCredential(result.Stdout), nil
}

func parseEntries(out string) []string {
	lines := strings.Split(out, "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		entries = append(entries, strings.ReplaceAll(line, "\t", "/"))
	}
	sort.Strings(entries)
	return entries
}

// parseCredential reads rbw's full entry output: the password on the first
// line, the username on the first "Username:" line with the label and one
// following space removed.
func parseCredential(out string) Credential {
	lines := strings.Split(out, "\n")
	cred := Credential{Password: strings.TrimSpace(lines[0])}
	for _, line := range lines {
		if strings.HasPrefix(line, usernamePrefix) {
			cred.Username = strings.TrimPrefix(strings.TrimPrefix(line, usernamePrefix), " ")
			break
		}
	}
	return cred
}

// splitEntry splits a selected display line on its last "/" into folder and
// entry name. A line without "/" has an empty folder.
func splitEntry(line string) (folder, name string) {
	idx := strings.LastIndex(line, "/")
	if idx < 0 {
		return "", strings.TrimSpace(line)
	}
	return line[:idx], strings.TrimSpace(line[idx+1:])
}
