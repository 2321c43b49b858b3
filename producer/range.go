package producer

import (
	"fmt"
	"strconv"

	"github.com/jsx7ba/pull"
)

// Range defines an inclusive range of integers. Descending ranges are
// allowed: First 10, Last 5 produces 10 down to 5.
type Range struct {
	First, Last int
}

// NewRange parses a range from the string s. Valid formats are `n` and
// `first-last`, both ends may be negative.
func NewRange(s string) (r Range, err error) {
	// test if it's a number only
	n, err := strconv.Atoi(s)
	if err == nil {
		return Range{First: n, Last: n}, nil
	}

	// otherwise assume it's a range
	_, err = fmt.Sscanf(s, "%d-%d", &r.First, &r.Last)
	if err != nil {
		return Range{}, fmt.Errorf("wrong format for range, expected: first-last, got: %q", s)
	}

	return r, nil
}

// Count returns the number of items in the range.
func (r Range) Count() int {
	if r.First > r.Last {
		return r.First - r.Last + 1
	}
	return r.Last - r.First + 1
}

// Ranges produces the values of a list of ranges, formatted with a printf
// format string.
type Ranges struct {
	ranges []Range
	format string
}

// statically ensure that *Ranges implements Source and Counter
var (
	_ pull.Source[string] = &Ranges{}
	_ Counter             = &Ranges{}
)

// NewRanges creates a producer for the values of ranges. When format is the
// empty string, "%d" is used.
func NewRanges(ranges []Range, format string) *Ranges {
	if format == "" {
		format = "%d"
	}

	return &Ranges{ranges: ranges, format: format}
}

// Count returns the number of values the source produces.
func (p *Ranges) Count() int {
	var sum int
	for _, r := range p.ranges {
		sum += r.Count()
	}
	return sum
}

func (p *Ranges) Produce(yield func(string) bool) error {
	for _, r := range p.ranges {
		step := 1
		if r.First > r.Last {
			step = -1
		}

		for i := r.First; ; i += step {
			if !yield(fmt.Sprintf(p.format, i)) {
				return nil
			}
			if i == r.Last {
				break
			}
		}
	}

	return nil
}
