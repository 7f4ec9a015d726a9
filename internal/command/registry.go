package command

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCommand is returned by Lookup for a name no command answers to.
var ErrUnknownCommand = errors.New("unknown command")

// Registry maps command names and aliases to commands.
type Registry struct {
	byName map[string]Command
	cmds   []Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds cmd under its name and aliases.
// It panics if one of them is already taken, since registration happens in init.
func (r *Registry) Register(cmd Command) {
	names := append([]string{cmd.Name()}, cmd.Aliases()...)
	for _, n := range names {
		if _, taken := r.byName[n]; taken {
			panic(fmt.Sprintf("command %q registered twice", n))
		}
	}
	for _, n := range names {
		r.byName[n] = cmd
	}
	r.cmds = append(r.cmds, cmd)
}

// Lookup finds the command registered under name.
func (r *Registry) Lookup(name string) (Command, error) {
	cmd, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	return cmd, nil
}

// Commands returns every registered command once, sorted by name.
func (r *Registry) Commands() []Command {
	cmds := append([]Command(nil), r.cmds...)
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

var registry = NewRegistry()

// RegisterCommand adds a command to the process-wide registry
func RegisterCommand(cmd Command) { registry.Register(cmd) }

// Lookup finds a command of the process-wide registry
func Lookup(name string) (Command, error) { return registry.Lookup(name) }

// AllCommands returns the commands of the process-wide registry, sorted by name
func AllCommands() []Command { return registry.Commands() }
