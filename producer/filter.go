package producer

import (
	"github.com/jsx7ba/pull"
)

// Skip drops the first n values of a source.
func Skip[T any](src pull.Source[T], n int) pull.Source[T] {
	return pull.SourceFunc[T](func(yield func(T) bool) error {
		seen := 0
		return src.Produce(func(v T) bool {
			if seen < n {
				seen++
				return true
			}
			return yield(v)
		})
	})
}

// First stops a source after n values by returning false to its yield, so
// the source terminates through its normal early-exit path.
func First[T any](src pull.Source[T], n int) pull.Source[T] {
	return pull.SourceFunc[T](func(yield func(T) bool) error {
		if n <= 0 {
			return nil
		}

		produced := 0
		return src.Produce(func(v T) bool {
			if !yield(v) {
				return false
			}
			produced++
			return produced < n
		})
	})
}
