// Package producer contains push-style sources of strings for the pull
// adapter, plus decorators that skip, cap and rate-limit the values of any
// source.
package producer

// Counter is implemented by sources that know in advance how many values
// they will produce.
type Counter interface {
	// Count returns the number of values the source produces.
	Count() int
}
