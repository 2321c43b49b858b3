package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fd0/termstatus"
	"golang.org/x/sync/errgroup"

	"github.com/jsx7ba/pull/cli"
	"github.com/jsx7ba/pull/shell"
)

// setupTerminal starts the status terminal in the error group. The returned
// cleanup function terminates it.
func setupTerminal(g *errgroup.Group, maxFrameRate uint, logfile string) (term cli.Terminal, cleanup func(), err error) {
	ctx, cancel := context.WithCancel(context.Background())

	statusTerm := termstatus.New(os.Stdout, os.Stderr, false)
	if maxFrameRate != 0 {
		statusTerm.MaxFrameRate = maxFrameRate
	}

	term = statusTerm

	if logfile != "" {
		f, err := os.Create(logfile)
		if err != nil {
			cancel()
			return nil, nil, err
		}

		fmt.Fprintln(f, shell.Join(os.Args))

		// write copies of messages to the logfile
		term = &cli.LogTerminal{
			Terminal: statusTerm,
			Writer:   f,
		}
	}

	// make sure messages logged via the log package are printed nicely
	w := cli.NewStdioWrapper(term)
	log.SetOutput(w.Stderr())

	g.Go(func() error {
		term.Run(ctx)
		return nil
	})

	return term, cancel, nil
}
