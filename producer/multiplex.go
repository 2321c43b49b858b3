package producer

import (
	"github.com/jsx7ba/pull"
)

// Multiplexer takes several sources of values and produces the cross
// product. Sources after the first are produced once per combination of the
// values before them, so they must support repeated production (see
// NewFile).
type Multiplexer struct {
	Names   []string
	Sources []pull.Source[string]
}

// statically ensure that *Multiplexer implements Source
var _ pull.Source[[]string] = &Multiplexer{}

// AddSource adds a source with the given name.
func (m *Multiplexer) AddSource(name string, src pull.Source[string]) {
	m.Names = append(m.Names, name)
	m.Sources = append(m.Sources, src)
}

// Count returns the number of combinations the multiplexer produces, and
// whether it is known: false when any source does not implement Counter.
func (m *Multiplexer) Count() (int, bool) {
	count := 1
	for _, src := range m.Sources {
		c, ok := src.(Counter)
		if !ok {
			return 0, false
		}
		count *= c.Count()
	}

	return count, true
}

func (m *Multiplexer) Produce(yield func([]string) bool) error {
	if len(m.Sources) == 0 {
		return nil
	}

	_, err := m.produce(m.Sources, nil, yield)
	return err
}

// produce runs the first source and recurses into the remaining ones for
// each of its values. The stopped result distinguishes consumer-requested
// termination from exhaustion, so outer levels stop as well.
func (m *Multiplexer) produce(sources []pull.Source[string], prefix []string, yield func([]string) bool) (stopped bool, err error) {
	var innerStopped bool
	var innerErr error

	err = sources[0].Produce(func(v string) bool {
		values := make([]string, len(prefix)+1)
		copy(values, prefix)
		values[len(prefix)] = v

		if len(sources) == 1 {
			if !yield(values) {
				innerStopped = true
				return false
			}
			return true
		}

		innerStopped, innerErr = m.produce(sources[1:], values, yield)
		return !innerStopped && innerErr == nil
	})

	if err == nil {
		err = innerErr
	}

	return innerStopped, err
}
