package producer

import (
	"github.com/jsx7ba/pull"
)

// Value produces a single fixed value.
type Value struct {
	value string
}

// statically ensure that *Value implements Source and Counter
var (
	_ pull.Source[string] = &Value{}
	_ Counter             = &Value{}
)

// NewValue creates a producer for a single value.
func NewValue(value string) *Value {
	return &Value{value: value}
}

// Count returns the number of values the source produces.
func (v *Value) Count() int {
	return 1
}

func (v *Value) Produce(yield func(string) bool) error {
	yield(v.value)
	return nil
}
