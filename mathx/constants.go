// Package mathx provides the spatial math used across the engine:
// transforms, bounding shapes and interpolation helpers, built on
// go-gl/mathgl vectors and quaternions.
package mathx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Epsilon is the tolerance used for approximate float comparisons.
	Epsilon = 1e-6

	// Tau is a full turn in radians.
	Tau = 2 * math.Pi
)

// World-space axis conventions: right-handed, Y up, -Z forward.
var (
	XAxis = mgl32.Vec3{1, 0, 0}
	YAxis = mgl32.Vec3{0, 1, 0}
	ZAxis = mgl32.Vec3{0, 0, 1}
)

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * (math.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians * (180 / math.Pi)
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the range [0, 1].
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < Epsilon
}
