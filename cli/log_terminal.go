package cli

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Terminal prints messages and maintains a status area at the bottom of the
// screen.
type Terminal interface {
	Print(msg string)
	Printf(msg string, data ...interface{})
	SetStatus(lines []string)
	Run(ctx context.Context)
}

var ansiEscapeSequenceRegEx = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// LogTerminal writes data to a second writer in addition to the terminal.
type LogTerminal struct {
	Terminal
	io.Writer
}

// Printf prints a message with formatting.
func (lt *LogTerminal) Printf(msg string, data ...interface{}) {
	lt.Print(fmt.Sprintf(msg, data...))
}

// Print prints a message.
func (lt *LogTerminal) Print(msg string) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	lt.Terminal.Print(msg)

	strippedMsg := ansiEscapeSequenceRegEx.ReplaceAllString(msg, "")
	_, _ = lt.Writer.Write([]byte(strippedMsg))
}
