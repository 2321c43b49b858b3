package producer

import (
	"errors"
	"strings"

	"github.com/jsx7ba/pull"
)

// Split produces the segments of a string separated by a delimiter. Like
// strings.Split, an empty input produces a single empty segment.
type Split struct {
	input     string
	delimiter string
}

// statically ensure that *Split implements Source and Counter
var (
	_ pull.Source[string] = &Split{}
	_ Counter             = &Split{}
)

// NewSplit creates a producer for the delimiter-separated segments of input.
func NewSplit(input, delimiter string) *Split {
	return &Split{input: input, delimiter: delimiter}
}

// Count returns the number of values the source produces.
func (s *Split) Count() int {
	return strings.Count(s.input, s.delimiter) + 1
}

func (s *Split) Produce(yield func(string) bool) error {
	if s.delimiter == "" {
		return errors.New("empty delimiter")
	}

	rest := s.input
	for {
		segment, tail, found := strings.Cut(rest, s.delimiter)
		if !yield(segment) {
			return nil
		}
		if !found {
			return nil
		}
		rest = tail
	}
}
