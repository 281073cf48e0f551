package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClockFiresInOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	var fired []string

	clock.After(2*time.Second, func() { fired = append(fired, "b") })
	clock.After(time.Second, func() { fired = append(fired, "a") })
	late := clock.After(3*time.Second, func() { fired = append(fired, "c") })

	clock.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 1, clock.Pending())

	assert.True(t, late.Cancel())
	assert.False(t, late.Cancel())
	clock.Advance(time.Hour)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, time.Unix(0, 0).Add(time.Hour+2*time.Second), clock.Now())
}

func TestManualClockNestedSchedule(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	count := 0

	clock.After(time.Second, func() {
		count++
		clock.After(time.Second, func() { count++ })
	})

	clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1, count)
	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 2, count)
}

func TestManualClockCancelAfterFire(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	token := clock.After(time.Millisecond, func() {})

	clock.Advance(time.Millisecond)

	assert.False(t, token.Cancel())
}

func TestSystemClockCancel(t *testing.T) {
	done := make(chan struct{})
	token := SystemClock{}.After(time.Hour, func() { close(done) })

	assert.True(t, token.Cancel())
	select {
	case <-done:
		t.Fatal("cancelled callback ran")
	default:
	}
}
