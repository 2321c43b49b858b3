package shell

import (
	"testing"
)

func TestJoin(t *testing.T) {
	var tests = []struct {
		args []string
		res  string
	}{
		{
			args: []string{"pull", "--range", "1-100", "--range-format", "%03d"},
			res:  "pull --range 1-100 --range-format %03d",
		},
		{
			args: []string{"pull", "--value", "foo bar"},
			res:  `pull --value "foo bar"`,
		},
		{
			args: []string{"pull", "--value", `a "quoted" word`},
			res:  `pull --value "a \"quoted\" word"`,
		},
		{
			args: []string{"pull", "--exec", "echo $HOME"},
			res:  `pull --exec "echo $HOME"`,
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			res := Join(test.args)
			if res != test.res {
				t.Fatalf("wrong result, want\n  %s\ngot:\n  %s", test.res, res)
			}
		})
	}
}
