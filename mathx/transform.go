package mathx

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrDegenerateLookAt is returned when a look-at direction cannot be
	// derived (zero direction or direction parallel to up).
	ErrDegenerateLookAt = errors.New("mathx: degenerate look-at direction")

	// ErrNonInvertible is returned when a transform cannot be inverted.
	ErrNonInvertible = errors.New("mathx: transform is not invertible")
)

// Transform is a local-space translation, rotation and scale. The zero
// value is degenerate; start from Identity or one of the constructors.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// NewTransform builds a transform from its three parts.
func NewTransform(translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) Transform {
	return Transform{Translation: translation, Rotation: rotation, Scale: scale}
}

// FromTranslation returns an identity transform at the given position.
func FromTranslation(translation mgl32.Vec3) Transform {
	t := Identity()
	t.Translation = translation
	return t
}

// FromRotation returns an identity transform with the given rotation.
func FromRotation(rotation mgl32.Quat) Transform {
	t := Identity()
	t.Rotation = rotation
	return t
}

// FromScale returns an identity transform with the given scale.
func FromScale(scale mgl32.Vec3) Transform {
	t := Identity()
	t.Scale = scale
	return t
}

// FromXYZ returns an identity transform positioned at (x, y, z).
func FromXYZ(x, y, z float32) Transform {
	return FromTranslation(mgl32.Vec3{x, y, z})
}

// FromXY returns an identity transform positioned at (x, y, 0), the 2D
// convenience form.
func FromXY(x, y float32) Transform {
	return FromTranslation(mgl32.Vec3{x, y, 0})
}

// WithTranslation returns a copy with the translation replaced.
func (t Transform) WithTranslation(translation mgl32.Vec3) Transform {
	t.Translation = translation
	return t
}

// WithRotation returns a copy with the rotation replaced.
func (t Transform) WithRotation(rotation mgl32.Quat) Transform {
	t.Rotation = rotation
	return t
}

// WithScale returns a copy with the scale replaced.
func (t Transform) WithScale(scale mgl32.Vec3) Transform {
	t.Scale = scale
	return t
}

// LookingAt builds a transform at eye oriented toward target. Fails when
// the direction is (near) zero or parallel to up.
func LookingAt(eye, target, up mgl32.Vec3) (Transform, error) {
	dir := target.Sub(eye)
	if dir.Len() < Epsilon {
		return Transform{}, ErrDegenerateLookAt
	}
	if up.Len() < Epsilon {
		return Transform{}, ErrDegenerateLookAt
	}
	if dir.Normalize().Cross(up.Normalize()).Len() < Epsilon {
		return Transform{}, ErrDegenerateLookAt
	}

	rotation := mgl32.QuatLookAtV(eye, target, up)
	return Transform{
		Translation: eye,
		Rotation:    rotation.Inverse(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}, nil
}

// Mat4 composes the transform into a column-major TRS matrix.
func (t Transform) Mat4() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// TransformPoint applies scale, rotation and translation to a point.
func (t Transform) TransformPoint(point mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{
		point.X() * t.Scale.X(),
		point.Y() * t.Scale.Y(),
		point.Z() * t.Scale.Z(),
	}
	return t.Rotation.Rotate(scaled).Add(t.Translation)
}

// TransformVector applies scale and rotation but not translation, for
// directions and velocities.
func (t Transform) TransformVector(vector mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{
		vector.X() * t.Scale.X(),
		vector.Y() * t.Scale.Y(),
		vector.Z() * t.Scale.Z(),
	}
	return t.Rotation.Rotate(scaled)
}

// Mul composes t with other, as if other were a child of t.
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		Translation: t.TransformPoint(other.Translation),
		Rotation:    t.Rotation.Mul(other.Rotation),
		Scale: mgl32.Vec3{
			t.Scale.X() * other.Scale.X(),
			t.Scale.Y() * other.Scale.Y(),
			t.Scale.Z() * other.Scale.Z(),
		},
	}
}

// FromMat4 decomposes a TRS matrix back into a transform. Shear is not
// representable and is discarded.
func FromMat4(m mgl32.Mat4) Transform {
	translation := m.Col(3).Vec3()

	xAxis := m.Col(0).Vec3()
	yAxis := m.Col(1).Vec3()
	zAxis := m.Col(2).Vec3()
	scale := mgl32.Vec3{xAxis.Len(), yAxis.Len(), zAxis.Len()}

	rot := mgl32.Ident4()
	if scale.X() > Epsilon {
		rot.SetCol(0, xAxis.Mul(1/scale.X()).Vec4(0))
	}
	if scale.Y() > Epsilon {
		rot.SetCol(1, yAxis.Mul(1/scale.Y()).Vec4(0))
	}
	if scale.Z() > Epsilon {
		rot.SetCol(2, zAxis.Mul(1/scale.Z()).Vec4(0))
	}

	return Transform{
		Translation: translation,
		Rotation:    mgl32.Mat4ToQuat(rot),
		Scale:       scale,
	}
}

// Inverse returns the transform that undoes t. Fails when any scale
// component is (near) zero or the transform is not finite.
func (t Transform) Inverse() (Transform, error) {
	if !t.IsFinite() {
		return Transform{}, ErrNonInvertible
	}
	for i := range 3 {
		if float32(math.Abs(float64(t.Scale[i]))) < Epsilon {
			return Transform{}, ErrNonInvertible
		}
	}

	invScale := mgl32.Vec3{1 / t.Scale.X(), 1 / t.Scale.Y(), 1 / t.Scale.Z()}
	invRotation := t.Rotation.Inverse()
	rotated := invRotation.Rotate(t.Translation)
	invTranslation := mgl32.Vec3{
		-rotated.X() * invScale.X(),
		-rotated.Y() * invScale.Y(),
		-rotated.Z() * invScale.Z(),
	}

	return Transform{
		Translation: invTranslation,
		Rotation:    invRotation,
		Scale:       invScale,
	}, nil
}

// IsFinite reports whether every component is a finite number.
func (t Transform) IsFinite() bool {
	for i := range 3 {
		if !finite(t.Translation[i]) || !finite(t.Scale[i]) {
			return false
		}
	}
	for i := range 4 {
		q := [4]float32{t.Rotation.W, t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2]}
		if !finite(q[i]) {
			return false
		}
	}
	return true
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// GlobalTransform is an entity's world-space matrix, produced from the
// local Transform hierarchy by the scene propagation systems.
type GlobalTransform struct {
	Matrix mgl32.Mat4
}

// GlobalIdentity returns the identity world transform.
func GlobalIdentity() GlobalTransform {
	return GlobalTransform{Matrix: mgl32.Ident4()}
}

// GlobalFromTransform promotes a local transform to world space as-is.
func GlobalFromTransform(t Transform) GlobalTransform {
	return GlobalTransform{Matrix: t.Mat4()}
}

// GlobalFromMat4 wraps a precomputed world matrix.
func GlobalFromMat4(m mgl32.Mat4) GlobalTransform {
	return GlobalTransform{Matrix: m}
}

// Translation extracts the world-space position.
func (g GlobalTransform) Translation() mgl32.Vec3 {
	return g.Matrix.Col(3).Vec3()
}

// Rotation extracts the world-space rotation.
func (g GlobalTransform) Rotation() mgl32.Quat {
	return FromMat4(g.Matrix).Rotation
}

// ScaleFactors extracts the world-space scale.
func (g GlobalTransform) ScaleFactors() mgl32.Vec3 {
	return FromMat4(g.Matrix).Scale
}

// TransformPoint maps a point into world space.
func (g GlobalTransform) TransformPoint(point mgl32.Vec3) mgl32.Vec3 {
	return g.Matrix.Mul4x1(point.Vec4(1)).Vec3()
}

// TransformVector maps a direction into world space (no translation).
func (g GlobalTransform) TransformVector(vector mgl32.Vec3) mgl32.Vec3 {
	return g.Matrix.Mul4x1(vector.Vec4(0)).Vec3()
}

// Mul composes g with a child world transform.
func (g GlobalTransform) Mul(other GlobalTransform) GlobalTransform {
	return GlobalTransform{Matrix: g.Matrix.Mul4(other.Matrix)}
}

// Inverse returns the world-to-local matrix. Fails on singular matrices.
func (g GlobalTransform) Inverse() (GlobalTransform, error) {
	if float32(math.Abs(float64(g.Matrix.Det()))) < Epsilon {
		return GlobalTransform{}, ErrNonInvertible
	}
	return GlobalTransform{Matrix: g.Matrix.Inv()}, nil
}

// IsFinite reports whether every matrix element is a finite number.
func (g GlobalTransform) IsFinite() bool {
	for i := range 16 {
		if !finite(g.Matrix[i]) {
			return false
		}
	}
	return true
}
