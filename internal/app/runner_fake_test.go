package app

import (
	"context"
	"strings"
)

// fakeRunner scripts external commands. Results are looked up by
// "name firstArg" first, then by name alone.
type fakeRunner struct {
	installed map[string]bool
	results   map[string]CommandResult
	errs      map[string]error
	calls     []Command
	probes    []string
}

func newFakeRunner(installed ...string) *fakeRunner {
	f := &fakeRunner{
		installed: map[string]bool{},
		results:   map[string]CommandResult{},
		errs:      map[string]error{},
	}
	for _, name := range installed {
		f.installed[name] = true
	}
	return f
}

func (f *fakeRunner) HasCommand(name string) bool {
	f.probes = append(f.probes, name)
	return f.installed[name]
}

func (f *fakeRunner) Run(ctx context.Context, cmd Command) (CommandResult, error) {
	f.calls = append(f.calls, cmd)
	keys := []string{cmd.Name}
	if len(cmd.Args) > 0 {
		keys = append([]string{cmd.Name + " " + cmd.Args[0]}, keys...)
	}
	for _, key := range keys {
		if err, ok := f.errs[key]; ok {
			return CommandResult{}, err
		}
		if result, ok := f.results[key]; ok {
			return result, nil
		}
	}
	return CommandResult{}, nil
}

func (f *fakeRunner) callsTo(name string) []Command {
	out := []Command{}
	for _, c := range f.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeRunner) commandLines() string {
	lines := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}
