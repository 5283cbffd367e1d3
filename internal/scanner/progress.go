package scanner

import (
	"time"

	"golang.org/x/time/rate"
)

// ProgressFunc is notified after each completed probe. It is advisory only
// and is called concurrently from every worker.
type ProgressFunc func(done, total int)

// Throttle wraps fn so that it fires at most once per interval. The final
// update (done == total) is always delivered.
func Throttle(fn ProgressFunc, interval time.Duration) ProgressFunc {
	if fn == nil {
		return nil
	}
	s := &rate.Sometimes{First: 1, Interval: interval}
	return func(done, total int) {
		if done >= total {
			fn(done, total)
			return
		}
		s.Do(func() { fn(done, total) })
	}
}
