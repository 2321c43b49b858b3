// Package shell joins and splits command lines with shell-style quoting.
package shell

import (
	"strconv"
	"strings"
)

func escapeParam(s string) string {
	if s == "" || strings.ContainsAny(s, "$& \t\"") {
		return strconv.Quote(s)
	}

	return s
}

// Join returns a shell command line to run the program.
func Join(args []string) (s string) {
	first := true
	for _, arg := range args {
		if !first {
			s += " "
		}
		s += escapeParam(arg)
		first = false
	}
	return s
}
