package verify

import (
	"flag"
	"fmt"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "verify" }
func (c *Command) Short() string     { return "V" }
func (c *Command) Aliases() []string { return []string{"fsck"} }
func (c *Command) Usage() string     { return "verify" }
func (c *Command) Brief() string     { return "Check stored commits for damage." }
func (c *Command) Help() string {
	return `Recompute the id of every stored commit from its files and check that
every commit in the log is still stored.

Nothing is modified. The exit status is non-zero when a problem is found.`
}

func (c *Command) Flags(fs *flag.FlagSet) {}

func (c *Command) Run(ctx *command.Context) error {
	r, err := repo.OpenAt(ctx.Config, ctx.FS)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	r.Progress = ctx.Progress

	report, err := r.Verify()
	if err != nil {
		return err
	}

	if report.OK() {
		fmt.Fprintf(ctx.Stdout, "Repository OK (%d snapshots).\n", report.Snapshots)
		return nil
	}

	for _, p := range report.Problems {
		fmt.Fprintln(ctx.Stdout, p)
	}
	return fmt.Errorf("repository verification failed: %d problem(s) in %d snapshots", len(report.Problems), report.Snapshots)
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
