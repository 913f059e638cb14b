package store

import (
	"context"
	"time"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

const (
	// DefaultRetryAttempts bounds RetryTransient.
	DefaultRetryAttempts = 3
	// DefaultRetryDelay is the fixed wait between attempts.
	DefaultRetryDelay = 2 * time.Second
)

// RetryTransient runs fn, retrying only errors classified as transient, with
// a fixed delay between attempts. Non-transient errors return immediately.
func RetryTransient(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts <= 0 {
		attempts = DefaultRetryAttempts
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if !flowerr.IsTransient(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return flowerr.Wrap(flowerr.Timeout, "", ctx.Err())
		}
	}
	return err
}
