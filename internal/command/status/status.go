package status

import (
	"flag"
	"fmt"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct {
	short bool
}

func (c *Command) Name() string      { return "status" }
func (c *Command) Short() string     { return "S" }
func (c *Command) Aliases() []string { return []string{"st"} }
func (c *Command) Usage() string     { return "status [options]" }
func (c *Command) Brief() string     { return "Show the working tree status." }
func (c *Command) Help() string {
	return `Compare tracked files with the last commit.

Options:
  -s   Show short summary (one status letter and path per line)

Statuses:
  unchanged   same content as in the last commit
  modified    content differs from the last commit
  new         not part of the last commit
  missing     tracked but absent from the working tree`
}

func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.short, "s", false, "show short summary")
}

var shortCodes = map[repo.FileStatus]string{
	repo.Unchanged: " ",
	repo.Modified:  "M",
	repo.New:       "A",
	repo.Missing:   "D",
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := repo.OpenAt(ctx.Config, ctx.FS)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	report, err := r.Status()
	if err != nil {
		return err
	}

	if c.short {
		for _, f := range report.Files {
			fmt.Fprintf(ctx.Stdout, "%s %s\n", shortCodes[f.Status], f.Path)
		}
		return nil
	}

	if report.LastCommit == "" {
		fmt.Fprintln(ctx.Stdout, "No commits yet.")
	} else {
		fmt.Fprintf(ctx.Stdout, "Last commit: %s\n", report.LastCommit)
	}

	if len(report.Files) == 0 {
		fmt.Fprintln(ctx.Stdout, "\nNo files are tracked.")
		return nil
	}

	fmt.Fprintln(ctx.Stdout, "\nTracked files:")
	for _, f := range report.Files {
		fmt.Fprintf(ctx.Stdout, "  %-10s %s\n", f.Status+":", f.Path)
	}

	fmt.Fprintln(ctx.Stdout)
	if report.CommitNoop {
		fmt.Fprintln(ctx.Stdout, "Nothing to commit.")
	} else {
		fmt.Fprintln(ctx.Stdout, "Changes to commit.")
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
