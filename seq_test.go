//go:build go1.23

package pull

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeq(t *testing.T) {
	var got []int
	for v, err := range Seq(ints(1, 2, 3)) {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}

	want := []int{1, 2, 3}
	if !cmp.Equal(want, got) {
		t.Fatal(cmp.Diff(want, got))
	}
}

func TestSeqFault(t *testing.T) {
	fault := errors.New("boom")
	src := SourceFunc[int](func(yield func(int) bool) error {
		if !yield(1) {
			return nil
		}
		return fault
	})

	var values []int
	var errs []error
	for v, err := range Seq[int](src) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}

	if !cmp.Equal([]int{1}, values) {
		t.Fatalf("got values %v, want [1]", values)
	}
	if len(errs) != 1 || errs[0] != fault {
		t.Fatalf("got errors %v, want exactly the producer fault", errs)
	}
}

func TestFromSeq(t *testing.T) {
	src := FromSeq(slices.Values([]string{"x", "y", "z"}))

	it := New(src)
	defer it.Stop()

	got := drain(t, it)
	want := []string{"x", "y", "z"}
	if !cmp.Equal(want, got) {
		t.Fatal(cmp.Diff(want, got))
	}
}

func TestAll(t *testing.T) {
	released := false
	src := SourceFunc[int](func(yield func(int) bool) error {
		defer func() { released = true }()
		for i := 1; i <= 10; i++ {
			if !yield(i) {
				return nil
			}
		}
		return nil
	})

	var got []int
	for v, err := range New(src).All() {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}

	if !cmp.Equal([]int{1, 2}, got) {
		t.Fatalf("got %v, want [1 2]", got)
	}
	if !released {
		t.Fatal("producer still running after the loop ended")
	}
}
