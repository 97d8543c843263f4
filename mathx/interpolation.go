package mathx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lerp linearly interpolates between a and b. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec2 linearly interpolates between two 2D vectors.
func LerpVec2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// LerpVec3 linearly interpolates between two 3D vectors.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// LerpVec4 linearly interpolates between two 4D vectors.
func LerpVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp spherically interpolates between two rotations at constant
// angular velocity.
func Slerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	return mgl32.QuatSlerp(a, b, t)
}

// Nlerp normalizes a linear quaternion blend. Cheaper than Slerp and
// good enough for small angles.
func Nlerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	return mgl32.QuatNlerp(a, b, t)
}

// Smoothstep maps t through the cubic 3t²-2t³ curve, clamped to [0, 1].
func Smoothstep(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// Smootherstep maps t through the quintic 6t⁵-15t⁴+10t³ curve with zero
// first and second derivatives at the endpoints.
func Smootherstep(t float32) float32 {
	t = Clamp01(t)
	return t * t * t * (t*(t*6-15) + 10)
}

// Remap maps v from the range [inMin, inMax] to [outMin, outMax].
// Values outside the input range extrapolate.
func Remap(v, inMin, inMax, outMin, outMax float32) float32 {
	if ApproxEqual(inMin, inMax) {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Easing functions take a normalized t in [0, 1] and reshape its pace.
// They do not clamp; callers feeding Timer.Percent get clamped input
// for free.

// EaseInQuad accelerates from zero velocity.
func EaseInQuad(t float32) float32 {
	return t * t
}

// EaseOutQuad decelerates to zero velocity.
func EaseOutQuad(t float32) float32 {
	return t * (2 - t)
}

// EaseInOutQuad accelerates, then decelerates.
func EaseInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic accelerates from zero velocity, more sharply than quad.
func EaseInCubic(t float32) float32 {
	return t * t * t
}

// EaseOutCubic decelerates to zero velocity.
func EaseOutCubic(t float32) float32 {
	u := t - 1
	return u*u*u + 1
}

// EaseInOutCubic accelerates, then decelerates.
func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// EaseInQuart accelerates from zero velocity, sharper than cubic.
func EaseInQuart(t float32) float32 {
	return t * t * t * t
}

// EaseOutQuart decelerates to zero velocity.
func EaseOutQuart(t float32) float32 {
	u := t - 1
	return 1 - u*u*u*u
}

// EaseInOutQuart accelerates, then decelerates.
func EaseInOutQuart(t float32) float32 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := t - 1
	return 1 - 8*u*u*u*u
}

// EaseOutElastic overshoots the target and springs back.
func EaseOutElastic(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	const c4 = Tau / 3
	return float32(math.Pow(2, float64(-10*t))*math.Sin(float64((t*10-0.75)*c4))) + 1
}

// EaseOutBounce decelerates with a bouncing settle.
func EaseOutBounce(t float32) float32 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
