package shell

import (
	"errors"
	"fmt"
)

// Split splits a command line into the program name and its arguments,
// honoring double quotes and backslash escapes.
func Split(cmdline string) ([]string, error) {
	var (
		args    []string
		current []rune
		quoted  bool
		escaped bool
		started bool
	)

	for _, r := range cmdline {
		switch {
		case escaped:
			current = append(current, r)
			escaped = false
		case r == '\\':
			escaped = true
			started = true
		case r == '"':
			quoted = !quoted
			started = true
		case (r == ' ' || r == '\t') && !quoted:
			if started {
				args = append(args, string(current))
				current = current[:0]
				started = false
			}
		default:
			current = append(current, r)
			started = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("trailing backslash in %q", cmdline)
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", cmdline)
	}

	if started {
		args = append(args, string(current))
	}

	if len(args) == 0 {
		return nil, errors.New("empty command")
	}

	return args, nil
}
