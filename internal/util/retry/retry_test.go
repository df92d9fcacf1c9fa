package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsAfterRetries(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}, WithInitialDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_FatalStopsImmediately(t *testing.T) {
	attempts := 0
	cause := errors.New("bad input")
	err := Do(context.Background(), func() error {
		attempts++
		return Fatal(cause)
	}, WithInitialDelay(time.Millisecond))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, attempts)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return errors.New("still broken")
	}, WithMaxAttempts(3), WithInitialDelay(time.Millisecond))

	assert.ErrorContains(t, err, "giving up after 3 attempts")
	assert.Equal(t, 3, attempts)
}

func TestDo_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, func() error {
		return errors.New("transient")
	}, WithInitialDelay(time.Minute))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_DelayIsCapped(t *testing.T) {
	attempts := 0
	start := time.Now()
	_ = Do(context.Background(), func() error {
		attempts++
		return errors.New("transient")
	},
		WithMaxAttempts(4),
		WithInitialDelay(time.Millisecond),
		WithMaxDelay(2*time.Millisecond))

	assert.Equal(t, 4, attempts)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFatal(t *testing.T) {
	assert.Nil(t, Fatal(nil))
	assert.True(t, IsFatal(Fatal(errors.New("x"))))
	assert.False(t, IsFatal(errors.New("x")))

	wrapped := Fatal(errors.New("inner"))
	assert.Equal(t, "inner", wrapped.Error())
	assert.ErrorIs(t, wrapped, errors.Unwrap(wrapped))
}
