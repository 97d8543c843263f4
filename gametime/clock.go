// Package gametime provides the frame clock and countdown timers used by
// frame-rate independent game logic.
package gametime

import "time"

// Clock tracks per-frame timing for an application: delta since the last
// tick, total elapsed time, frame count and FPS. It is typically installed
// as a world resource and ticked once at the start of every frame.
type Clock struct {
	startup   time.Time
	current   time.Time
	delta     time.Duration
	elapsed   time.Duration
	frames    uint64
	firstTick bool
}

// NewClock creates a clock whose startup instant is now.
func NewClock() *Clock {
	now := time.Now()
	return &Clock{
		startup:   now,
		current:   now,
		firstTick: true,
	}
}

// Tick advances the clock to the current instant. The first tick reports a
// zero delta so startup stalls do not leak into game logic.
func (c *Clock) Tick() {
	now := time.Now()

	if c.firstTick {
		c.firstTick = false
		c.delta = 0
	} else {
		c.delta = now.Sub(c.current)
	}

	c.current = now
	c.elapsed = now.Sub(c.startup)
	c.frames++
}

// Delta returns the duration between the two most recent ticks.
func (c *Clock) Delta() time.Duration {
	return c.delta
}

// DeltaSeconds returns the delta as seconds, the common unit for movement
// and animation math.
func (c *Clock) DeltaSeconds() float64 {
	return c.delta.Seconds()
}

// Elapsed returns the total time since the clock was created or reset.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// ElapsedSeconds returns the elapsed time as seconds.
func (c *Clock) ElapsedSeconds() float64 {
	return c.elapsed.Seconds()
}

// FrameCount returns the number of ticks so far.
func (c *Clock) FrameCount() uint64 {
	return c.frames
}

// FPS returns the average frames per second over the clock's lifetime.
func (c *Clock) FPS() float64 {
	if c.elapsed <= 0 || c.frames == 0 {
		return 0
	}
	return float64(c.frames) / c.elapsed.Seconds()
}

// InstantFPS returns the frame rate implied by the latest delta alone.
func (c *Clock) InstantFPS() float64 {
	if c.delta <= 0 {
		return 0
	}
	return 1.0 / c.delta.Seconds()
}

// Startup returns the instant the clock started.
func (c *Clock) Startup() time.Time {
	return c.startup
}

// Now returns the instant of the most recent tick.
func (c *Clock) Now() time.Time {
	return c.current
}

// IsFirstFrame reports whether Tick has not been called yet.
func (c *Clock) IsFirstFrame() bool {
	return c.frames == 0
}

// Reset returns the clock to its initial state, as if newly created.
func (c *Clock) Reset() {
	now := time.Now()
	c.startup = now
	c.current = now
	c.delta = 0
	c.elapsed = 0
	c.frames = 0
	c.firstTick = true
}

// WithScale returns a scaled view of the clock for slow-motion or
// fast-forward effects.
func (c *Clock) WithScale(scale float64) *Scaled {
	return NewScaled(c, scale)
}

// Scaled applies a time-scale factor to a clock. A scale of 0.5 runs at
// half speed, 2.0 at double speed, 0 pauses scaled time entirely.
type Scaled struct {
	clock *Clock
	scale float64
}

// NewScaled wraps clock with the given scale factor.
func NewScaled(clock *Clock, scale float64) *Scaled {
	return &Scaled{clock: clock, scale: scale}
}

// Scale returns the current scale factor.
func (s *Scaled) Scale() float64 {
	return s.scale
}

// SetScale replaces the scale factor.
func (s *Scaled) SetScale(scale float64) {
	s.scale = scale
}

// Delta returns the scaled delta. Negative scales clamp to zero since a
// duration cannot run backwards.
func (s *Scaled) Delta() time.Duration {
	if s.scale < 0 {
		return 0
	}
	return time.Duration(float64(s.clock.Delta()) * s.scale)
}

// DeltaSeconds returns the scaled delta in seconds. Unlike Delta it
// preserves negative scales for callers that model reversed time.
func (s *Scaled) DeltaSeconds() float64 {
	return s.clock.DeltaSeconds() * s.scale
}

// Clock returns the underlying unscaled clock.
func (s *Scaled) Clock() *Clock {
	return s.clock
}

// Tick advances the underlying clock.
func (s *Scaled) Tick() {
	s.clock.Tick()
}
