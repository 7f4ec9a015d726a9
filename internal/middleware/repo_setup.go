package middleware

import (
	"fmt"
	"log"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/repo"
)

// WithRepoSetup creates the repository layout before the command runs, if any part of it is missing
func WithRepoSetup() command.Middleware {
	return func(cmd command.Command) command.Command {
		return command.Wrap(cmd, func(ctx *command.Context) error {
			if ctx.Config == nil {
				return fmt.Errorf("no repository configured")
			}
			_, created, err := repo.InitAt(ctx.Config, ctx.FS)
			if err != nil {
				return fmt.Errorf("failed to set up repository: %w", err)
			}
			if created && ctx.Config.Debug {
				log.Printf("created repository at %s", ctx.Config.RepoDir)
			}
			return cmd.Run(ctx)
		})
	}
}
