//go:build go1.23

package pull

import (
	"iter"
)

// Seq ranges directly over a push producer without starting a goroutine.
// The producer's fault, if any, is delivered as the final pair.
func Seq[T any](src Source[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		stopped := false
		err := src.Produce(func(v T) bool {
			if !yield(v, nil) {
				stopped = true
				return false
			}
			return true
		})

		if err != nil && !stopped {
			var zero T
			yield(zero, err)
		}
	}
}

// FromSeq adapts a Go iterator into a Source.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	return SourceFunc[T](func(yield func(T) bool) error {
		for v := range seq {
			if !yield(v) {
				break
			}
		}
		return nil
	})
}

// All ranges over the iterator. The iterator is stopped when the loop ends,
// so breaking out early does not leak the producer's goroutine.
func (it *Iterator[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer it.Stop()

		for {
			v, err := it.Next()
			if err == Done {
				return
			}
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
