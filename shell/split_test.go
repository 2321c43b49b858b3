package shell

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	var tests = []struct {
		cmdline string
		args    []string
	}{
		{
			cmdline: "echo hello",
			args:    []string{"echo", "hello"},
		},
		{
			cmdline: "  echo \t hello  ",
			args:    []string{"echo", "hello"},
		},
		{
			cmdline: `grep "two words" file`,
			args:    []string{"grep", "two words", "file"},
		},
		{
			cmdline: `printf "a \"quoted\" word"`,
			args:    []string{"printf", `a "quoted" word`},
		},
		{
			cmdline: `echo one\ two`,
			args:    []string{"echo", "one two"},
		},
		{
			cmdline: `echo ""`,
			args:    []string{"echo", ""},
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			args, err := Split(test.cmdline)
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(test.args, args) {
				t.Fatal(cmp.Diff(test.args, args))
			}
		})
	}
}

func TestSplitInvalid(t *testing.T) {
	for _, cmdline := range []string{"", "   ", `echo "unterminated`, `echo trailing\`} {
		t.Run("", func(t *testing.T) {
			_, err := Split(cmdline)
			if err == nil {
				t.Fatalf("Split(%q) succeeded unexpectedly", cmdline)
			}
		})
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	var tests = [][]string{
		{"pull", "--range", "1-100"},
		{"pull", "--value", "x foo: bar"},
		{"pull", "--exec", `printf "a\nb\n"`},
	}

	for _, args := range tests {
		t.Run("", func(t *testing.T) {
			got, err := Split(Join(args))
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(args, got) {
				t.Fatal(cmp.Diff(args, got))
			}
		})
	}
}
