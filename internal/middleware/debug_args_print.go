package middleware

import (
	"log"

	"github.com/keshon/svcs/internal/command"
)

// WithDebugArgsPrint logs the command name and its arguments when debug output is enabled
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return command.Wrap(cmd, func(ctx *command.Context) error {
			if ctx.Config != nil && ctx.Config.Debug {
				log.Printf("%s args: %q", cmd.Name(), ctx.Args)
			}
			return cmd.Run(ctx)
		})
	}
}
