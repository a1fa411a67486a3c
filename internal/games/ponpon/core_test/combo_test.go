package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
)

func TestComboWindow(t *testing.T) {
	c := core.NewComboTracker(2*time.Second, core.DefaultComboTable)

	c.Increment()
	assert.Equal(t, core.ComboState{Count: 1, Remaining: 2 * time.Second}, c.State())

	assert.False(t, c.Tick(time.Second))
	assert.Equal(t, time.Second, c.Remaining())

	c.Increment()
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, 2*time.Second, c.Remaining())

	assert.True(t, c.Tick(2*time.Second))
	assert.Equal(t, core.ComboState{}, c.State())
	assert.False(t, c.Tick(time.Second), "an empty combo cannot break")
	assert.Equal(t, 2, c.Max())
}

func TestComboStateInvariant(t *testing.T) {
	c := core.NewComboTracker(500*time.Millisecond, core.DefaultComboTable)
	step := 70 * time.Millisecond

	for i := 0; i < 200; i++ {
		if i%9 == 0 {
			c.Increment()
		}
		c.Tick(step)
		s := c.State()
		assert.Equal(t, s.Count > 0, s.Remaining > 0, "tick %d: %+v", i, s)
	}
}

func TestComboReset(t *testing.T) {
	c := core.NewComboTracker(time.Second, core.DefaultComboTable)
	for i := 0; i < 6; i++ {
		c.Increment()
	}
	assert.Equal(t, 1.5, c.Multiplier(c.Count()))

	c.Reset()
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 0, c.Max())
}
