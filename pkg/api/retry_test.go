package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingSleeper struct {
	delays []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return ctx.Err()
}

func TestRetry(t *testing.T) {

	t.Run("SleepsBetweenFailedAttemptsOnly", func(t *testing.T) {

		sleeper := &recordingSleeper{}
		attempts := []int{}

		// act
		err := Retry(context.Background(), RetryConfig{Attempts: 7, Delay: 5 * time.Second, Sleeper: sleeper.Sleep}, func(ctx context.Context, attempt int) error {
			attempts = append(attempts, attempt)
			if attempt <= 3 {
				return errors.New("503")
			}
			return nil
		})

		assert.Nil(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, attempts)
		assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second, 5 * time.Second}, sleeper.delays)
	})

	t.Run("ReturnsLastErrorAfterAllAttempts", func(t *testing.T) {

		sleeper := &recordingSleeper{}
		lastErr := errors.New("503")
		calls := 0

		// act
		err := Retry(context.Background(), RetryConfig{Attempts: 7, Delay: 5 * time.Second, Sleeper: sleeper.Sleep}, func(ctx context.Context, attempt int) error {
			calls++
			return lastErr
		})

		assert.ErrorIs(t, err, lastErr)
		assert.Equal(t, 7, calls)
		assert.Equal(t, 6, len(sleeper.delays))
	})

	t.Run("StopsAtFatalError", func(t *testing.T) {

		sleeper := &recordingSleeper{}
		calls := 0

		// act
		err := Retry(context.Background(), RetryConfig{Attempts: 7, Delay: 5 * time.Second, Sleeper: sleeper.Sleep}, func(ctx context.Context, attempt int) error {
			calls++
			return NewFatalError(ErrMissingConfig)
		})

		assert.True(t, IsFatal(err))
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, len(sleeper.delays))
	})

	t.Run("StopsWhenContextIsCancelledDuringDelay", func(t *testing.T) {

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0

		// act
		err := Retry(ctx, RetryConfig{Attempts: 7, Delay: time.Hour}, func(ctx context.Context, attempt int) error {
			calls++
			return errors.New("503")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("MakesOneAttemptIfAttemptsIsNotSet", func(t *testing.T) {

		calls := 0

		// act
		err := Retry(context.Background(), RetryConfig{}, func(ctx context.Context, attempt int) error {
			calls++
			return errors.New("503")
		})

		assert.NotNil(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestSleep(t *testing.T) {

	t.Run("ReturnsNilAfterDelay", func(t *testing.T) {

		// act
		err := Sleep(context.Background(), time.Millisecond)

		assert.Nil(t, err)
	})

	t.Run("ReturnsContextErrorIfCancelled", func(t *testing.T) {

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// act
		err := Sleep(ctx, time.Hour)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
