package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type statusError struct {
	code int
}

func (e *statusError) Error() string   { return fmt.Sprintf("status %d", e.code) }
func (e *statusError) StatusCode() int { return e.code }

func TestShouldRetry(t *testing.T) {
	assert.True(t, ShouldRetry(429))
	assert.True(t, ShouldRetry(500))
	assert.True(t, ShouldRetry(503))
	assert.True(t, ShouldRetry(504))
	assert.True(t, ShouldRetry(520))
	assert.False(t, ShouldRetry(400))
	assert.False(t, ShouldRetry(401))
	assert.False(t, ShouldRetry(404))
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := WithRetry(ctx, func() error {
		count++
		return errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, MaxRetries, count)
}

func TestWithRetryStopsOnPermanentStatus(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := WithRetry(ctx, func() error {
		count++
		return &statusError{code: 400}
	})
	assert.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestWithRetrySucceeds(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := WithRetry(ctx, func() error {
		count++
		if count < 2 {
			return &statusError{code: 429}
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
