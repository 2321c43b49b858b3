// Command pull prints the values of one or more producers, requesting them
// one at a time through the pull adapter.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jsx7ba/pull"
	"github.com/jsx7ba/pull/cli"
	"github.com/jsx7ba/pull/producer"
)

// Options contains all global options.
type Options struct {
	Range       []string
	RangeFormat string
	Filename    string
	Split       string
	Delimiter   string
	Exec        string
	ExecShell   string
	Values      []string

	Skip      int
	Count     int
	PerSecond float64

	Logfile      string
	MaxFrameRate uint
}

var opts Options

func init() {
	fs := cmdRoot.Flags()
	fs.SortFlags = false

	fs.StringArrayVarP(&opts.Range, "range", "r", nil, "pull values from range `from-to`, repeatable")
	fs.StringVar(&opts.RangeFormat, "range-format", "%d", "set `format` for range values")
	fs.StringVarP(&opts.Filename, "file", "f", "", "pull lines from `filename` (- for stdin)")
	fs.StringVar(&opts.Split, "split", "", "pull the delimiter-separated segments of `string`")
	fs.StringVarP(&opts.Delimiter, "delimiter", "d", ",", "set `delimiter` for --split")
	fs.StringVar(&opts.Exec, "exec", "", "pull lines printed by `command`")
	fs.StringVar(&opts.ExecShell, "exec-shell", "", "run --exec commands with this `shell` (e.g. \"sh -c\")")
	fs.StringArrayVarP(&opts.Values, "value", "v", nil, "pull the fixed `string`, repeatable")

	fs.IntVar(&opts.Skip, "skip", 0, "skip the first `n` values")
	fs.IntVar(&opts.Count, "count", 0, "stop after `n` values")
	fs.Float64Var(&opts.PerSecond, "per-second", 0, "limit the rate to `n` values per second")

	fs.StringVar(&opts.Logfile, "logfile", "", "write copies of all printed messages to `filename`")
	fs.UintVar(&opts.MaxFrameRate, "max-frame-rate", 0, "set the maximum `rate` of status updates per second")
}

var cmdRoot = &cobra.Command{
	Use:                   "pull [options]",
	DisableFlagsInUseLine: true,

	Short: "Pull values from push-style producers one at a time",
	Long: `pull builds a producer from the given sources and requests its values one
at a time, printing each. Several sources multiplex into their cross
product. Interrupting with SIGINT stops the producer through its normal
exit path before the program terminates.`,
	Example: `  pull --range 1-100 --range-format "%03d"
  pull --split one,two,three
  pull --file wordlist.txt --count 10 --per-second 5`,

	SilenceErrors: true,
	SilenceUsage:  true,

	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unexpected arguments: %v", args)
		}
		return run(&opts)
	},
}

func main() {
	setupHelp(cmdRoot)

	err := cmdRoot.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *Options) error {
	m, err := setupSources(opts)
	if err != nil {
		return err
	}

	return cli.WithContext(func(ctx context.Context, g *errgroup.Group) error {
		term, cleanup, err := setupTerminal(g, opts.MaxFrameRate, opts.Logfile)
		if err != nil {
			return err
		}
		defer cleanup()

		var src pull.Source[[]string] = m
		if opts.Skip > 0 {
			src = producer.Skip(src, opts.Skip)
		}
		if opts.Count > 0 {
			src = producer.First(src, opts.Count)
		}
		if opts.PerSecond > 0 {
			src = producer.Limit(src, opts.PerSecond)
		}

		it := pull.New(src)
		defer it.Stop()

		// stop the producer as soon as the context is cancelled, even
		// while a request is pending
		stopWatcher := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				it.Stop()
			case <-stopWatcher:
			}
		}()
		defer close(stopWatcher)

		stats := NewStats(expectedCount(m, opts))

		for {
			values, err := it.Next()
			if err == pull.Done {
				break
			}
			if err != nil {
				return fmt.Errorf("produce: %w", err)
			}

			line := strings.Join(values, ", ")
			term.Print(line)
			stats.Record(line)
			term.SetStatus(stats.Report())
		}

		term.SetStatus(nil)
		term.Print(stats.Summary())

		return nil
	})
}

// expectedCount returns the number of values the multiplexer will produce
// after the skip and count options are applied, or 0 when unknown.
func expectedCount(m *producer.Multiplexer, opts *Options) int {
	total, ok := m.Count()
	if !ok {
		return 0
	}

	total -= opts.Skip
	if total < 0 {
		total = 0
	}
	if opts.Count > 0 && opts.Count < total {
		total = opts.Count
	}

	return total
}
