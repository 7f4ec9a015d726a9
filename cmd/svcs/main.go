package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"

	_ "github.com/keshon/svcs/internal/command/add"
	_ "github.com/keshon/svcs/internal/command/checkout"
	_ "github.com/keshon/svcs/internal/command/commit"
	_ "github.com/keshon/svcs/internal/command/config"
	_ "github.com/keshon/svcs/internal/command/help"
	_ "github.com/keshon/svcs/internal/command/log"
	_ "github.com/keshon/svcs/internal/command/status"
	_ "github.com/keshon/svcs/internal/command/verify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if cfg.Debug {
		log.SetFlags(log.Ltime | log.Lmicroseconds)
		log.SetPrefix("svcs: ")
	}

	ctx := command.Context{
		Config: cfg,
		FS:     fs.NewOSFS(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		ctx.Progress = os.Stderr
	}

	command.RunCLI(os.Args[1:], ctx)
}
