package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFrameClockFiresOnInterval(t *testing.T) {
	c := NewFrameClock()
	n := 0
	c.Every(70*time.Millisecond, func() { n++ })

	c.Advance(69 * time.Millisecond)
	require.Equal(t, 0, n)
	c.Advance(time.Millisecond)
	require.Equal(t, 1, n)

	for i := 0; i < 14; i++ {
		c.Advance(10 * time.Millisecond)
	}
	require.Equal(t, 3, n)
	require.Equal(t, 210*time.Millisecond, c.Now())
}

func TestFrameClockCancel(t *testing.T) {
	c := NewFrameClock()
	n := 0
	task := c.Every(10*time.Millisecond, func() { n++ })
	require.Equal(t, 1, c.Active())

	task.Cancel()
	task.Cancel()
	require.Equal(t, 0, c.Active())

	c.Advance(time.Second)
	require.Equal(t, 0, n)
}

func TestFrameClockCatchUpIsBounded(t *testing.T) {
	c := NewFrameClock()
	n := 0
	c.Every(10*time.Millisecond, func() { n++ })

	c.Advance(time.Second)
	require.Equal(t, MaxCatchUp, n)

	// backlog dropped, next tick one interval later
	c.Advance(9 * time.Millisecond)
	require.Equal(t, MaxCatchUp, n)
	c.Advance(time.Millisecond)
	require.Equal(t, MaxCatchUp+1, n)
}

func TestFrameClockCancelFromCallback(t *testing.T) {
	c := NewFrameClock()
	n := 0
	var task Task
	task = c.Every(10*time.Millisecond, func() {
		n++
		task.Cancel()
	})
	c.Advance(50 * time.Millisecond)
	require.Equal(t, 1, n)
	require.Equal(t, 0, c.Active())
}

func TestFrameClockScheduleFromCallback(t *testing.T) {
	c := NewFrameClock()
	inner := 0
	var outer Task
	outer = c.Every(10*time.Millisecond, func() {
		outer.Cancel()
		c.Every(10*time.Millisecond, func() { inner++ })
	})

	c.Advance(10 * time.Millisecond)
	require.Equal(t, 0, inner)
	require.Equal(t, 1, c.Active())

	c.Advance(10 * time.Millisecond)
	require.Equal(t, 1, inner)
}

func TestFrameClockNonPositive(t *testing.T) {
	c := NewFrameClock()
	n := 0
	c.Every(0, func() { n++ })
	c.Advance(-time.Second)
	require.Equal(t, time.Duration(0), c.Now())
	c.Advance(time.Millisecond)
	require.Equal(t, 1, n)
}
