package producer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testRanges(t *testing.T, s string) *Ranges {
	t.Helper()

	r, err := NewRange(s)
	if err != nil {
		t.Fatal(err)
	}

	return NewRanges([]Range{r}, "")
}

func TestSkip(t *testing.T) {
	tests := []struct {
		Skip   int
		Values []string
	}{
		{
			Skip:   0,
			Values: []string{"1", "2", "3", "4", "5"},
		},
		{
			Skip:   2,
			Values: []string{"3", "4", "5"},
		},
		{
			Skip:   5,
			Values: nil,
		},
		{
			Skip:   100,
			Values: nil,
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			values := pulled[string](t, Skip[string](testRanges(t, "1-5"), test.Skip))
			if !cmp.Equal(test.Values, values) {
				t.Fatal(cmp.Diff(test.Values, values))
			}
		})
	}
}

func TestFirst(t *testing.T) {
	tests := []struct {
		First  int
		Values []string
	}{
		{
			First:  0,
			Values: nil,
		},
		{
			First:  2,
			Values: []string{"1", "2"},
		},
		{
			First:  5,
			Values: []string{"1", "2", "3", "4", "5"},
		},
		{
			First:  100,
			Values: []string{"1", "2", "3", "4", "5"},
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			values := pulled[string](t, First[string](testRanges(t, "1-5"), test.First))
			if !cmp.Equal(test.Values, values) {
				t.Fatal(cmp.Diff(test.Values, values))
			}
		})
	}
}

func TestSkipFirstCombined(t *testing.T) {
	src := First[string](Skip[string](testRanges(t, "1-9"), 3), 2)

	values := pulled[string](t, src)
	want := []string{"4", "5"}
	if !cmp.Equal(want, values) {
		t.Fatal(cmp.Diff(want, values))
	}
}
