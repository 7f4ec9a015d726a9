package command

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
)

var helpArgs = []string{"-h", "-help", "--help"}

// RunCLI executes args with base as the template context and exits the process.
func RunCLI(args []string, base Context) {
	os.Exit(Execute(args, base))
}

// Execute looks up the command named by args[0], parses its flags and runs it.
// It returns the process exit code.
func Execute(args []string, base Context) int {
	if len(args) == 0 || slices.Contains(helpArgs, args[0]) {
		args = []string{"help"}
	}

	cmd, err := Lookup(args[0])
	if errors.Is(err, ErrUnknownCommand) {
		fmt.Fprintf(base.Stdout, "'%s' is not a SVCS command.\n", args[0])
		return 0
	}
	if err != nil {
		fmt.Fprintln(base.Stderr, "Error:", err)
		return 1
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(base.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(base.Stdout, "Usage: %s\n\n%s\n", cmd.Usage(), cmd.Help())
	}
	cmd.Flags(fs)

	ctx := base
	ctx.Flags = fs
	ctx.Args = args[1:]

	// Commands without flags take every argument verbatim, so "-wip" is a valid message or name.
	if hasFlags(fs) {
		if err := fs.Parse(args[1:]); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			fmt.Fprintln(base.Stderr, "Error parsing flags:", err)
			return 1
		}
		ctx.Args = fs.Args()
	} else if len(ctx.Args) == 1 && slices.Contains(helpArgs, ctx.Args[0]) {
		fs.Usage()
		return 0
	}

	if err := cmd.Run(&ctx); err != nil {
		fmt.Fprintln(base.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func hasFlags(fs *flag.FlagSet) bool {
	n := 0
	fs.VisitAll(func(*flag.Flag) { n++ })
	return n > 0
}
