package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsx7ba/pull/producer"
)

// setupSources builds the multiplexer described by the command line
// options. Sources are multiplexed in the order their option groups are
// listed here.
func setupSources(opts *Options) (*producer.Multiplexer, error) {
	m := &producer.Multiplexer{}

	for _, rs := range opts.Range {
		var ranges []producer.Range
		for _, s := range strings.Split(rs, ",") {
			r, err := producer.NewRange(s)
			if err != nil {
				return nil, err
			}

			ranges = append(ranges, r)
		}

		m.AddSource("range", producer.NewRanges(ranges, opts.RangeFormat))
	}

	if opts.Filename != "" {
		var (
			rd       io.ReadSeeker
			seekable bool
		)

		if opts.Filename == "-" {
			rd = os.Stdin
		} else {
			f, err := os.Open(opts.Filename)
			if err != nil {
				return nil, err
			}

			rd, seekable = f, true
		}

		m.AddSource("file", producer.NewFile(rd, seekable))
	}

	if opts.Split != "" {
		if opts.Delimiter == "" {
			return nil, errors.New("empty delimiter for --split")
		}

		m.AddSource("split", producer.NewSplit(opts.Split, opts.Delimiter))
	}

	if opts.Exec != "" {
		check := opts.Exec
		if opts.ExecShell != "" {
			check = opts.ExecShell
		}
		if err := producer.CheckExec(check); err != nil {
			return nil, fmt.Errorf("exec source: %w", err)
		}

		m.AddSource("exec", producer.NewExec(opts.Exec, opts.ExecShell))
	}

	for _, v := range opts.Values {
		m.AddSource("value", producer.NewValue(v))
	}

	if len(m.Sources) == 0 {
		return nil, errors.New("no source specified, use --range, --file, --split, --exec or --value")
	}

	return m, nil
}
