// Package pull converts push-style producers into pull-style iteration.
//
// A producer is a function that drives a consumer by calling a yield
// callback once per value. Pulling turns that around: the consumer asks for
// one value at a time and may walk away early. The conversion runs the
// producer in its own goroutine and hands values over through an unbuffered
// channel, so the producer only makes progress when a value is requested,
// and stopping the iterator terminates the goroutine before returning.
package pull
