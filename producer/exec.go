package producer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/jsx7ba/pull"
	"github.com/jsx7ba/pull/shell"
)

// Exec runs a command and produces each line the command prints to stdout.
// When the consumer stops early, the command is killed.
type Exec struct {
	cmd              string
	shellBaseCommand string
}

// statically ensure that *Exec implements Source
var _ pull.Source[string] = &Exec{}

// NewExec creates a producer for the output lines of cmd. When
// shellBaseCommand is non-empty, cmd is passed to it as the last argument
// (e.g. "sh -c").
func NewExec(cmd string, shellBaseCommand string) *Exec {
	return &Exec{cmd: cmd, shellBaseCommand: shellBaseCommand}
}

// CheckExec tests that the program named by cmd can be found, so a broken
// command line is reported before any production starts.
func CheckExec(cmd string) error {
	args, err := shell.Split(cmd)
	if err != nil {
		return err
	}

	_, err = exec.LookPath(args[0])
	return err
}

func (e *Exec) Produce(yield func(string) bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	commandOutput, commandOutputWriter := io.Pipe()

	var cmd *exec.Cmd
	if e.shellBaseCommand == "" {
		args, err := shell.Split(e.cmd)
		if err != nil {
			return fmt.Errorf("split command %q: %w", e.cmd, err)
		}
		cmd = exec.CommandContext(ctx, args[0], args[1:]...)
	} else {
		args, err := shell.Split(e.shellBaseCommand)
		if err != nil {
			return fmt.Errorf("split shell base command %q: %w", e.shellBaseCommand, err)
		}
		cmd = exec.CommandContext(ctx, args[0], append(args[1:], e.cmd)...)
	}
	cmd.Stdout = commandOutputWriter
	cmd.Stderr = os.Stderr

	stopped := false

	var eg errgroup.Group
	eg.Go(func() error {
		err := cmd.Run()

		// close the writer, ignoring any errors
		_ = commandOutputWriter.Close()

		return err
	})

	eg.Go(func() error {
		sc := bufio.NewScanner(commandOutput)
		for sc.Scan() {
			if !yield(sc.Text()) {
				stopped = true
				// kill the command and unblock its writes
				cancel()
				_ = commandOutput.CloseWithError(context.Canceled)
				return nil
			}
		}

		return sc.Err()
	})

	err := eg.Wait()
	if stopped {
		return nil
	}

	return err
}
