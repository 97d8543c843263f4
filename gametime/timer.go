package gametime

import "time"

// TimerState describes the lifecycle of a Timer.
type TimerState int

const (
	// TimerRunning means the timer accumulates time on Advance.
	TimerRunning TimerState = iota
	// TimerPaused means Advance is ignored until Resume.
	TimerPaused
	// TimerFinished means a one-shot timer has reached its duration.
	TimerFinished
)

func (s TimerState) String() string {
	switch s {
	case TimerRunning:
		return "running"
	case TimerPaused:
		return "paused"
	case TimerFinished:
		return "finished"
	default:
		return "invalid"
	}
}

// Timer counts toward a fixed duration, driven by per-frame deltas.
// One-shot timers stop when they finish; repeating timers wrap overflow
// into the next cycle so large deltas do not lose time.
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	repeating    bool
	state        TimerState
	justFinished bool
}

// NewTimer creates a one-shot timer.
func NewTimer(duration time.Duration) *Timer {
	return &Timer{duration: duration}
}

// NewRepeating creates a repeating timer.
func NewRepeating(duration time.Duration) *Timer {
	return &Timer{duration: duration, repeating: true}
}

// FromSeconds creates a one-shot timer from a seconds value.
func FromSeconds(seconds float64) *Timer {
	return NewTimer(time.Duration(seconds * float64(time.Second)))
}

// RepeatingFromSeconds creates a repeating timer from a seconds value.
func RepeatingFromSeconds(seconds float64) *Timer {
	return NewRepeating(time.Duration(seconds * float64(time.Second)))
}

// Advance adds delta to the timer. JustFinished is true only for the
// call that crosses the duration boundary.
func (t *Timer) Advance(delta time.Duration) {
	t.justFinished = false

	if t.state != TimerRunning {
		return
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		return
	}

	t.justFinished = true

	if t.repeating {
		if t.duration <= 0 {
			t.elapsed = 0
			return
		}
		// Keep the overflow so a huge delta still lands mid-cycle.
		t.elapsed %= t.duration
		return
	}

	t.elapsed = t.duration
	t.state = TimerFinished
}

// Finished reports completion. One-shot timers stay finished; repeating
// timers report true only on the crossing tick.
func (t *Timer) Finished() bool {
	if t.repeating {
		return t.justFinished
	}
	return t.state == TimerFinished
}

// JustFinished reports whether the most recent Advance crossed the
// duration boundary.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Elapsed returns the accumulated time within the current cycle.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Percent returns the completion fraction, clamped to [0, 1]. A
// zero-duration timer is always complete.
func (t *Timer) Percent() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

// Remaining returns the time left in the current cycle.
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}

// Reset returns the timer to zero elapsed and the running state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.justFinished = false
	t.state = TimerRunning
}

// Pause stops the timer from accumulating time. Finished one-shot
// timers cannot be paused.
func (t *Timer) Pause() {
	if t.state == TimerRunning {
		t.state = TimerPaused
	}
}

// Resume restarts a paused timer.
func (t *Timer) Resume() {
	if t.state == TimerPaused {
		t.state = TimerRunning
	}
}

// SetDuration changes the timer's duration. If the new duration is at or
// below the elapsed time of a one-shot timer, the timer finishes on the
// next Advance.
func (t *Timer) SetDuration(duration time.Duration) {
	t.duration = duration
}

// SetRepeating toggles repeat mode. Turning repeat on revives a finished
// one-shot timer.
func (t *Timer) SetRepeating(repeating bool) {
	t.repeating = repeating
	if repeating && t.state == TimerFinished {
		t.state = TimerRunning
	}
}

// IsRepeating reports whether the timer wraps on completion.
func (t *Timer) IsRepeating() bool {
	return t.repeating
}

// IsRunning reports whether Advance currently accumulates time.
func (t *Timer) IsRunning() bool {
	return t.state == TimerRunning
}

// IsPaused reports whether the timer is paused.
func (t *Timer) IsPaused() bool {
	return t.state == TimerPaused
}

// State returns the timer's lifecycle state.
func (t *Timer) State() TimerState {
	return t.state
}

// Finish forces the timer to completion immediately.
func (t *Timer) Finish() {
	t.elapsed = t.duration
	t.justFinished = true
	if !t.repeating {
		t.state = TimerFinished
	}
}
