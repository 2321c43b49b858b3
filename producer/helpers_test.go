package producer

import (
	"testing"

	"github.com/jsx7ba/pull"
)

// pulled collects all values of src through the pull adapter.
func pulled[T any](t *testing.T, src pull.Source[T]) []T {
	t.Helper()

	it := pull.New(src)
	defer it.Stop()

	var out []T
	for {
		v, err := it.Next()
		if err == pull.Done {
			return out
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, v)
	}
}

// pushed collects all values of src by direct push iteration.
func pushed[T any](t *testing.T, src pull.Source[T]) []T {
	t.Helper()

	var out []T
	err := src.Produce(func(v T) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return out
}
