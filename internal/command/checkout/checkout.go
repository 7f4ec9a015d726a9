package checkout

import (
	"errors"
	"flag"
	"fmt"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Short() string     { return "o" }
func (c *Command) Aliases() []string { return []string{"co"} }
func (c *Command) Usage() string     { return "checkout <commit>" }
func (c *Command) Brief() string     { return "Restore a file." }
func (c *Command) Help() string {
	return `Restore the files of a commit into the working tree.

Usage:
  checkout <commit>   commit is the full id printed by 'log'

Files of the commit overwrite their working tree copies. Files that are not
part of the commit are left as they are.`
}

func (c *Command) Flags(fs *flag.FlagSet) {}

func (c *Command) Run(ctx *command.Context) error {
	switch len(ctx.Args) {
	case 0:
		fmt.Fprintln(ctx.Stdout, "Commit id was not passed.")
		return nil
	case 1:
	default:
		fmt.Fprintln(ctx.Stdout, command.UnsupportedOperation)
		return nil
	}

	r, err := repo.OpenAt(ctx.Config, ctx.FS)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	r.Progress = ctx.Progress

	id := ctx.Args[0]
	if err := r.Checkout(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			fmt.Fprintln(ctx.Stdout, "Commit does not exist.")
			return nil
		}
		return err
	}

	fmt.Fprintf(ctx.Stdout, "Switched to commit %s.\n", id)
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
