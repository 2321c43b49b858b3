package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetupSources(t *testing.T) {
	opts := &Options{
		Range:       []string{"1-2"},
		RangeFormat: "%d",
		Split:       "a,b",
		Delimiter:   ",",
		Values:      []string{"x"},
	}

	m, err := setupSources(opts)
	if err != nil {
		t.Fatal(err)
	}

	wantNames := []string{"range", "split", "value"}
	if !cmp.Equal(wantNames, m.Names) {
		t.Fatal(cmp.Diff(wantNames, m.Names))
	}

	c, ok := m.Count()
	if !ok || c != 4 {
		t.Fatalf("Count returned (%d, %v), want (4, true)", c, ok)
	}
}

func TestSetupSourcesEmpty(t *testing.T) {
	_, err := setupSources(&Options{})
	if err == nil {
		t.Fatal("setupSources succeeded without any source")
	}
}

func TestExpectedCount(t *testing.T) {
	tests := []struct {
		opts Options
		want int
	}{
		{Options{Range: []string{"1-10"}}, 10},
		{Options{Range: []string{"1-10"}, Skip: 3}, 7},
		{Options{Range: []string{"1-10"}, Count: 4}, 4},
		{Options{Range: []string{"1-10"}, Skip: 8, Count: 4}, 2},
		{Options{Range: []string{"1-10"}, Skip: 20}, 0},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			m, err := setupSources(&test.opts)
			if err != nil {
				t.Fatal(err)
			}

			if got := expectedCount(m, &test.opts); got != test.want {
				t.Fatalf("expectedCount returned %d, want %d", got, test.want)
			}
		})
	}
}
