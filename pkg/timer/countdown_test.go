package timer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	assert.Equal(t, "15:00", Clock(15*time.Minute))
	assert.Equal(t, "01:05", Clock(65*time.Second))
	assert.Equal(t, "00:01", Clock(300*time.Millisecond))
	assert.Equal(t, "00:00", Clock(0))
	assert.Equal(t, "00:00", Clock(-time.Second))
}

func TestMinutes(t *testing.T) {
	length, err := Minutes(15)
	assert.NoError(t, err)
	assert.Equal(t, 15*time.Minute, length)

	for _, minutes := range []int{MinMinutes, MaxMinutes} {
		_, err := Minutes(minutes)
		assert.NoError(t, err, minutes)
	}

	for _, minutes := range []int{0, 1, MinMinutes - 1, MaxMinutes + 1} {
		_, err := Minutes(minutes)
		assert.ErrorIs(t, err, ErrMatchTime, minutes)
	}
}

func TestCountdown_Finishes(t *testing.T) {
	var out bytes.Buffer
	start := time.Now()

	err := countdown(context.Background(), 20*time.Millisecond, &out, time.Millisecond)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestCountdown_Cancelled(t *testing.T) {
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := countdown(ctx, time.Hour, &out, time.Millisecond)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
