package config

import (
	"flag"
	"fmt"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "config" }
func (c *Command) Short() string     { return "C" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "config [name]" }
func (c *Command) Brief() string     { return "Get and set a username." }
func (c *Command) Help() string {
	return `Get and set the username recorded as the author of new commits.

Usage:
  config          Print the current username.
  config <name>   Set the username.

The SVCS_AUTHOR environment variable, when set, takes precedence over the stored name.`
}

func (c *Command) Flags(fs *flag.FlagSet) {}

func (c *Command) Run(ctx *command.Context) error {
	r, err := repo.OpenAt(ctx.Config, ctx.FS)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	switch len(ctx.Args) {
	case 0:
		name, err := r.Meta.Author()
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Fprintln(ctx.Stdout, "Please, tell me who you are.")
			return nil
		}
		fmt.Fprintf(ctx.Stdout, "The username is %s.\n", name)
	case 1:
		name := ctx.Args[0]
		if err := r.Meta.SetAuthor(name); err != nil {
			return err
		}
		fmt.Fprintf(ctx.Stdout, "The username is %s.\n", name)
	default:
		fmt.Fprintln(ctx.Stdout, command.UnsupportedOperation)
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
