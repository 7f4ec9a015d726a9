package commit

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Short() string     { return "c" }
func (c *Command) Aliases() []string { return []string{"ci"} }
func (c *Command) Usage() string     { return `commit "<message>" | commit -m "<message>"` }
func (c *Command) Brief() string     { return "Save changes." }
func (c *Command) Help() string {
	return `Snapshot all tracked files and record the commit in the log.

Usage:
  commit "<message>"      commit with a given message
  commit -m "<message>"   same, with the message as a flag
  commit -- "<message>"   the message is taken literally, even "-m"

Nothing is recorded when no file is tracked or the tracked files are
identical to an existing commit.`
}

func (c *Command) Flags(fs *flag.FlagSet) {}

// parseMessage extracts the message from args. Arguments are not flags, so a
// message may start with "-"; only -m, -m=, --message and --message= are options.
func parseMessage(args []string) (message string, ok bool) {
	var positional []string
	flagged := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case arg == "-m" || arg == "--message":
			if flagged {
				return "", false
			}
			flagged = true
			if i+1 < len(args) {
				message = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "-m="), strings.HasPrefix(arg, "--message="):
			if flagged {
				return "", false
			}
			flagged = true
			message = arg[strings.Index(arg, "=")+1:]
		default:
			positional = append(positional, arg)
		}
	}

	switch {
	case len(positional) > 1, len(positional) == 1 && flagged:
		return "", false
	case len(positional) == 1:
		message = positional[0]
	}
	return message, true
}

func (c *Command) Run(ctx *command.Context) error {
	message, ok := parseMessage(ctx.Args)
	if !ok {
		fmt.Fprintln(ctx.Stdout, command.UnsupportedOperation)
		return nil
	}

	r, err := repo.OpenAt(ctx.Config, ctx.FS)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	outcome, _, err := r.Commit(message)
	if err != nil {
		if errors.Is(err, repo.ErrMissingMessage) {
			fmt.Fprintln(ctx.Stdout, "Message was not passed.")
			return nil
		}
		return err
	}

	switch outcome {
	case repo.Committed:
		fmt.Fprintln(ctx.Stdout, "Changes are committed.")
	case repo.NothingToCommit:
		fmt.Fprintln(ctx.Stdout, "Nothing to commit.")
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
