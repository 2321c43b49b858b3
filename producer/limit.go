package producer

import (
	"time"

	"github.com/juju/ratelimit"

	"github.com/jsx7ba/pull"
)

// Limit limits the number of values per second to the value perSecond. The
// wait happens before each yield, so stopping a limited source may be
// delayed by up to one fill interval.
func Limit[T any](src pull.Source[T], perSecond float64) pull.Source[T] {
	return pull.SourceFunc[T](func(yield func(T) bool) error {
		fillInterval := time.Duration(float64(time.Second) / perSecond)
		bucket := ratelimit.NewBucket(fillInterval, 1)

		return src.Produce(func(v T) bool {
			time.Sleep(bucket.Take(1))
			return yield(v)
		})
	})
}
