package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNetwork marks a backend that could not be reached.
	ErrNetwork = errors.New("network error")

	// ErrCorrupt marks a stored value that no longer decodes.
	ErrCorrupt = errors.New("corrupt cache entry")
)

// RetryAttempts is how often [RetryWithBackoff] calls fn at most.
const RetryAttempts = 3

// RetryDelay is the pause after the first failed attempt. It doubles after
// each further failure.
var RetryDelay = 100 * time.Millisecond

// RetryableError flags a transient failure, such as a dropped Redis
// connection, that is worth another attempt.
type RetryableError struct{ Err error }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err was marked with [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff calls fn until it succeeds, fails with an error that is
// not retryable, or [RetryAttempts] calls have been made. It gives up early
// with ctx.Err() when ctx ends during a pause.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := RetryDelay
	err := fn()
	for attempt := 1; attempt < RetryAttempts && IsRetryable(err); attempt++ {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
		err = fn()
	}
	return err
}
