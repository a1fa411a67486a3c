package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
)

func TestRoundTimerExpiresOnce(t *testing.T) {
	timer := core.NewRoundTimer(time.Second)

	assert.False(t, timer.Tick(600*time.Millisecond))
	assert.Equal(t, 400*time.Millisecond, timer.Remaining())
	assert.InDelta(t, 0.4, timer.Fraction(), 1e-9)

	assert.True(t, timer.Tick(600*time.Millisecond))
	assert.Zero(t, timer.Remaining())
	assert.True(t, timer.Expired())
	assert.Equal(t, time.Second, timer.Elapsed())

	assert.False(t, timer.Tick(time.Second), "expiry is reported once")
}

func TestRoundTimerAddTime(t *testing.T) {
	timer := core.NewRoundTimer(10 * time.Second)
	timer.Tick(5 * time.Second)

	timer.AddTime(2 * time.Second)
	assert.Equal(t, 7*time.Second, timer.Remaining())

	timer.AddTime(time.Minute)
	assert.Equal(t, 10*time.Second, timer.Remaining(), "capped at the full duration")

	timer.AddTime(-time.Second)
	assert.Equal(t, 10*time.Second, timer.Remaining())

	timer.Tick(time.Minute)
	timer.AddTime(time.Second)
	assert.True(t, timer.Expired(), "an expired round cannot be extended")
}
