package log

import (
	"flag"
	"fmt"
	"strings"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
	"github.com/keshon/svcs/internal/repo/meta"
)

type Command struct {
	oneline bool
	limit   int
}

func (c *Command) Name() string      { return "log" }
func (c *Command) Short() string     { return "l" }
func (c *Command) Aliases() []string { return []string{"commits"} }
func (c *Command) Usage() string     { return "log [options]" }
func (c *Command) Brief() string     { return "Show commit logs." }
func (c *Command) Help() string {
	return `Show commit logs, newest first.

Options:
      --oneline         Show each commit as a single line (ID + first message line).
  -n <count>            Limit to the last N commits.

Examples:
  svcs log
  svcs log --oneline -n 10`
}

func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.oneline, "oneline", false, "show each commit on one line")
	fs.IntVar(&c.limit, "n", 0, "limit number of commits")
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		fmt.Fprintln(ctx.Stdout, command.UnsupportedOperation)
		return nil
	}

	r, err := repo.OpenAt(ctx.Config, ctx.FS)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	entries, err := r.Log()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(ctx.Stdout, "No commits yet.")
		return nil
	}

	if c.limit > 0 && c.limit < len(entries) {
		entries = entries[:c.limit]
	}

	if c.oneline {
		for _, e := range entries {
			firstLine := strings.SplitN(e.Message, "\n", 2)[0]
			fmt.Fprintf(ctx.Stdout, "%s %s\n", e.Fingerprint, firstLine)
		}
		return nil
	}

	fmt.Fprint(ctx.Stdout, meta.EncodeAll(entries))
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
