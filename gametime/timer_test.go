package gametime_test

import (
	"testing"
	"time"

	"github.com/plus3/kiln/gametime"
	"github.com/stretchr/testify/assert"
)

func TestTimerCreation(t *testing.T) {
	timer := gametime.FromSeconds(2.0)

	assert.Equal(t, 2*time.Second, timer.Duration())
	assert.False(t, timer.IsRepeating())
	assert.True(t, timer.IsRunning())
	assert.Equal(t, gametime.TimerRunning, timer.State())
}

func TestTimerAdvanceToCompletion(t *testing.T) {
	timer := gametime.FromSeconds(1.0)

	timer.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, timer.Percent(), 1e-9)
	assert.False(t, timer.Finished())

	timer.Advance(500 * time.Millisecond)
	assert.True(t, timer.Finished())
	assert.True(t, timer.JustFinished())
	assert.Equal(t, gametime.TimerFinished, timer.State())

	// Finished one-shot timers stay finished but JustFinished resets.
	timer.Advance(100 * time.Millisecond)
	assert.True(t, timer.Finished())
	assert.False(t, timer.JustFinished())
}

func TestTimerPercentClamps(t *testing.T) {
	timer := gametime.FromSeconds(1.0)
	timer.Advance(5 * time.Second)

	assert.Equal(t, 1.0, timer.Percent())
	assert.Equal(t, time.Duration(0), timer.Remaining())
}

func TestRepeatingTimerWrapsOverflow(t *testing.T) {
	timer := gametime.RepeatingFromSeconds(1.0)

	timer.Advance(1500 * time.Millisecond)
	assert.True(t, timer.JustFinished())
	assert.Equal(t, 500*time.Millisecond, timer.Elapsed())

	// A delta spanning several cycles still lands mid-cycle.
	timer.Advance(2700 * time.Millisecond)
	assert.True(t, timer.JustFinished())
	assert.Equal(t, 200*time.Millisecond, timer.Elapsed())

	// Repeating timers only report finished on the crossing tick.
	timer.Advance(100 * time.Millisecond)
	assert.False(t, timer.Finished())
	assert.False(t, timer.JustFinished())
}

func TestTimerPauseResume(t *testing.T) {
	timer := gametime.FromSeconds(1.0)

	timer.Advance(300 * time.Millisecond)
	timer.Pause()
	assert.True(t, timer.IsPaused())

	timer.Advance(time.Hour)
	assert.Equal(t, 300*time.Millisecond, timer.Elapsed())

	timer.Resume()
	timer.Advance(700 * time.Millisecond)
	assert.True(t, timer.Finished())
}

func TestTimerReset(t *testing.T) {
	timer := gametime.FromSeconds(1.0)
	timer.Advance(time.Second)
	assert.True(t, timer.Finished())

	timer.Reset()
	assert.False(t, timer.Finished())
	assert.True(t, timer.IsRunning())
	assert.Equal(t, time.Duration(0), timer.Elapsed())
}

func TestTimerFinish(t *testing.T) {
	timer := gametime.FromSeconds(10.0)
	timer.Finish()

	assert.True(t, timer.Finished())
	assert.True(t, timer.JustFinished())
	assert.Equal(t, 1.0, timer.Percent())
}

func TestTimerSetRepeatingRevives(t *testing.T) {
	timer := gametime.FromSeconds(1.0)
	timer.Advance(time.Second)
	assert.Equal(t, gametime.TimerFinished, timer.State())

	timer.SetRepeating(true)
	assert.True(t, timer.IsRepeating())
	assert.True(t, timer.IsRunning())
}

func TestZeroDurationRepeatingTimer(t *testing.T) {
	timer := gametime.NewRepeating(0)

	timer.Advance(time.Millisecond)
	assert.True(t, timer.JustFinished())
	assert.Equal(t, time.Duration(0), timer.Elapsed())
	assert.Equal(t, 1.0, timer.Percent())
}

func TestTimerStateString(t *testing.T) {
	assert.Equal(t, "running", gametime.TimerRunning.String())
	assert.Equal(t, "paused", gametime.TimerPaused.String())
	assert.Equal(t, "finished", gametime.TimerFinished.String())
}
