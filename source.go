package pull

// Source produces a sequence of values by pushing them to a yield callback.
type Source[T any] interface {
	// Produce calls yield once per value, strictly sequentially, until all
	// values are produced or yield returns false. Once yield returns false
	// the producer must stop calling it and return promptly, releasing any
	// resources it holds on the way out; a producer that keeps computing
	// instead may cause Stop to block. A non-nil error is the producer's
	// fault and is forwarded to the consumer.
	Produce(yield func(T) bool) error
}

// SourceFunc allows a plain function to be used as a Source.
type SourceFunc[T any] func(yield func(T) bool) error

func (f SourceFunc[T]) Produce(yield func(T) bool) error {
	return f(yield)
}
