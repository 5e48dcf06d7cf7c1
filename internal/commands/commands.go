// Package commands dispatches command-line subcommands, each with its own flag set.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknown is returned by Execute for a subcommand that was never registered.
var ErrUnknown = errors.New("unknown command")

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse with the remaining arguments.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds     map[string]*Command
	fallback string
}

// NewRegistry returns an empty command registry. fallback names the command
// run when no subcommand is given or the first argument is a flag.
func NewRegistry(fallback string) *Registry {
	return &Registry{cmds: make(map[string]*Command), fallback: fallback}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after
// fs.Parse succeeds.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func(args []string) error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run.
func (r *Registry) Execute(args []string) error {
	name := r.fallback
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	if err := cmd.FlagSet.Parse(args); err != nil {
		return err
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// Usage lists the subcommands, sorted by name.
func (r *Registry) Usage(w io.Writer) {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "commands:")
	for _, n := range names {
		mark := ""
		if n == r.fallback {
			mark = " (default)"
		}
		fmt.Fprintf(w, "  %-8s %s%s\n", n, r.cmds[n].Summary, mark)
	}
}
