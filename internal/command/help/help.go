package help

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "help" }
func (c *Command) Short() string     { return "H" }
func (c *Command) Aliases() []string { return []string{"h", "?"} }
func (c *Command) Usage() string     { return "help [command]" }
func (c *Command) Brief() string     { return "Show help for commands." }
func (c *Command) Help() string {
	return `Display help information for commands.

Usage:
  help          List all commands.
  help <name>   Show detailed help for a specific command.`
}

func (c *Command) Flags(fs *flag.FlagSet) {}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		return runCommandHelp(ctx.Stdout, strings.ToLower(ctx.Args[0]))
	}
	return runListAllCommands(ctx.Stdout)
}

// runCommandHelp shows detailed help for a specific command
func runCommandHelp(out io.Writer, name string) error {
	cmd, err := command.Lookup(name)
	if err != nil {
		fmt.Fprintf(out, "'%s' is not a SVCS command.\n", name)
		return nil
	}

	if usage := cmd.Usage(); usage != "" {
		fmt.Fprintf(out, "Usage: %s\n\n", usage)
	}
	fmt.Fprintf(out, "%s\n", cmd.Help())

	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(out, "\nAliases: %s\n", strings.Join(aliases, ", "))
	}
	return nil
}

// runListAllCommands lists every command with its one-line description
func runListAllCommands(out io.Writer) error {
	fmt.Fprintln(out, "These are SVCS commands:")
	for _, cmd := range command.AllCommands() {
		desc := cmd.Brief()
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(out, "%-10s %s\n", cmd.Name(), desc)
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.Chain(
			&Command{},
			middleware.WithDebugArgsPrint(),
			middleware.WithRepoSetup(),
		),
	)
}
