package pull

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"

	tomb "gopkg.in/tomb.v2"
)

// Done is returned by Next when the sequence is exhausted or the iterator
// was stopped.
var Done = errors.New("no more values")

// ProducerPanicError is the fault forwarded by Next when a producer panics
// instead of returning.
type ProducerPanicError struct {
	Value any
	Stack []byte
}

func (e *ProducerPanicError) Error() string {
	return fmt.Sprintf("producer panicked: %v", e.Value)
}

const (
	stateActive int32 = iota
	stateFinished
	stateStopped
)

// response is the rendezvous payload: a value, or the producer's fault.
type response[T any] struct {
	value T
	err   error
}

// Iterator pulls values one at a time from a Source running in a background
// goroutine. Values arrive in exactly the order the producer yielded them.
//
// An Iterator must not be used from multiple goroutines without external
// serialization; a second Next while one is still in flight panics. Stop is
// the exception, it is safe from any goroutine at any time.
type Iterator[T any] struct {
	demand   chan struct{}
	response chan response[T]
	state    atomic.Int32
	inFlight atomic.Bool
	err      error
	t        tomb.Tomb
}

// New starts the producer in a background goroutine and returns an iterator
// over its values. The yield callback handed to the producer blocks until a
// value is requested, so the producer does not run ahead of demand. Callers
// that do not drain the iterator all the way to Done must call Stop to
// release the goroutine.
func New[T any](src Source[T]) *Iterator[T] {
	it := &Iterator[T]{
		demand:   make(chan struct{}),
		response: make(chan response[T]),
	}
	it.t.Go(func() error { return it.run(src) })
	return it
}

// Next returns the next value in the sequence. It blocks until the producer
// yields a value, and returns Done once the sequence is exhausted or the
// iterator was stopped. A fault raised by the producer is returned by
// exactly one Next call; every call after that returns Done.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	if !it.inFlight.CompareAndSwap(false, true) {
		panic("pull: Next called concurrently on the same iterator")
	}
	defer it.inFlight.Store(false)

	if it.state.Load() != stateActive {
		return zero, Done
	}

	select {
	case it.demand <- struct{}{}:
		// request delivered, a response is now guaranteed
	case <-it.t.Dying():
		return zero, Done
	case res, ok := <-it.response:
		// the producer finished before consuming our request
		return it.finish(res, ok)
	}

	res, ok := <-it.response
	if ok && res.err == nil {
		return res.value, nil
	}
	return it.finish(res, ok)
}

// Err returns the fault previously returned by a Next call, if any. It is
// for callers that loop until Done and want the cause afterwards; like
// Next, it must not be called concurrently with Next.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Stop terminates the producer and waits for its goroutine to exit. If a
// yield is in progress it observes false and the producer returns through
// its normal exit path. Stop is idempotent and safe to call from any
// goroutine, including concurrently with a pending Next. When Stop returns,
// no background execution remains.
func (it *Iterator[T]) Stop() {
	it.state.CompareAndSwap(stateActive, stateStopped)
	it.t.Kill(nil)
	_ = it.t.Wait()
}

// finish records the terminal transition observed by Next.
func (it *Iterator[T]) finish(res response[T], ok bool) (T, error) {
	var zero T
	if ok && res.err != nil {
		it.err = res.err
		it.state.CompareAndSwap(stateActive, stateFinished)
		return zero, res.err
	}
	it.state.CompareAndSwap(stateActive, stateFinished)
	return zero, Done
}

// run executes the producer and forwards its fault, if any. Closing the
// response channel is what releases a pending Next once the producer is
// gone.
func (it *Iterator[T]) run(src Source[T]) error {
	defer close(it.response)

	err := produce(src, it.yield)
	if err == nil {
		return nil
	}

	// Hand the fault to the pending request, or to the next one.
	select {
	case <-it.demand:
	case <-it.t.Dying():
		return err
	}

	it.response <- response[T]{err: err}
	return nil
}

// yield is the callback handed to the producer. It blocks until a request
// arrives, then hands the value over. One request is paired with exactly
// one response, which keeps delivery strictly FIFO.
func (it *Iterator[T]) yield(v T) bool {
	select {
	case <-it.t.Dying():
		return false
	default:
	}

	select {
	case <-it.demand:
	case <-it.t.Dying():
		return false
	}

	select {
	case it.response <- response[T]{value: v}:
		return true
	case <-it.t.Dying():
		return false
	}
}

func produce[T any](src Source[T], yield func(T) bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ProducerPanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	return src.Produce(yield)
}
