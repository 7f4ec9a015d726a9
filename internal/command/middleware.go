package command

// Middleware decorates a command, usually by running code around its Run.
type Middleware func(Command) Command

type wrapped struct {
	Command
	run func(ctx *Context) error
}

func (w *wrapped) Run(ctx *Context) error { return w.run(ctx) }

// Wrap returns cmd with run in place of its Run method.
// Name, help text and flags still come from cmd.
func Wrap(cmd Command, run func(ctx *Context) error) Command {
	return &wrapped{Command: cmd, run: run}
}

// Chain applies mws to cmd so that the first middleware runs outermost.
func Chain(cmd Command, mws ...Middleware) Command {
	for i := len(mws) - 1; i >= 0; i-- {
		cmd = mws[i](cmd)
	}
	return cmd
}
