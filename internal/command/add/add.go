package add

import (
	"errors"
	"flag"
	"fmt"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Short() string     { return "A" }
func (c *Command) Aliases() []string { return []string{"track"} }
func (c *Command) Usage() string     { return "add [file]" }
func (c *Command) Brief() string     { return "Add a file to the index." }
func (c *Command) Help() string {
	return `Track a file or list tracked files.

Usage:
  add          List tracked files.
  add <file>   Start tracking a file of the working tree.

Tracked files are included in every following commit.`
}

func (c *Command) Flags(fs *flag.FlagSet) {}

func (c *Command) Run(ctx *command.Context) error {
	r, err := repo.OpenAt(ctx.Config, ctx.FS)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	switch len(ctx.Args) {
	case 0:
		paths, err := r.Tracked()
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintln(ctx.Stdout, "Add a file to the index.")
			return nil
		}
		fmt.Fprintln(ctx.Stdout, "Tracked files:")
		for _, p := range paths {
			fmt.Fprintln(ctx.Stdout, p)
		}
	case 1:
		name := ctx.Args[0]
		if _, _, err := r.Track(name); err != nil {
			if errors.Is(err, repo.ErrFileNotFound) {
				fmt.Fprintf(ctx.Stdout, "Can't find '%s'.\n", name)
				return nil
			}
			return err
		}
		fmt.Fprintf(ctx.Stdout, "The file '%s' is tracked.\n", name)
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
