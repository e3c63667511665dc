package api

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Sleeper waits for d or until ctx is done, whichever comes first
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper, backed by a timer so cancelling ctx aborts the wait
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryConfig configures Retry; the delay between attempts is fixed
type RetryConfig struct {
	Attempts int
	Delay    time.Duration
	Sleeper  Sleeper
}

// Retry calls fn until it succeeds, returns a fatal error, ctx is cancelled or all attempts are used.
// fn receives the 1-based attempt number.
func Retry(ctx context.Context, config RetryConfig, fn func(ctx context.Context, attempt int) error) (err error) {
	attempts := config.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	sleep := config.Sleeper
	if sleep == nil {
		sleep = Sleep
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx, attempt)
		if err == nil {
			return nil
		}

		if IsFatal(err) {
			return err
		}

		if attempt == attempts {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Int("attempts", attempts).Msgf("Attempt %v of %v failed, retrying in %v", attempt, attempts, config.Delay)

		if sleepErr := sleep(ctx, config.Delay); sleepErr != nil {
			return fmt.Errorf("retry aborted after attempt %v: %w", attempt, sleepErr)
		}
	}

	return fmt.Errorf("failed after %v attempts: %w", attempts, err)
}
