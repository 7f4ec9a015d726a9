package command

import (
	"flag"
	"io"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
)

// Command represents a cli command
type Command interface {
	Name() string
	Short() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Flags(fs *flag.FlagSet)
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	Args  []string
	Flags *flag.FlagSet

	Config *config.RepoConfig
	FS     fs.FS

	Stdout io.Writer
	Stderr io.Writer
	// Progress receives spinners; nil when output is not a terminal.
	Progress io.Writer
}

// UnsupportedOperation is printed when a command gets more arguments than it accepts.
const UnsupportedOperation = "Unsupported operation!"
