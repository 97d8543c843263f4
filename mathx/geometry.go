package mathx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rect is a 2D axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// NewRect builds a rectangle from its corners.
func NewRect(min, max mgl32.Vec2) Rect {
	return Rect{Min: min, Max: max}
}

// RectFromCenterSize builds a rectangle centered on center.
func RectFromCenterSize(center, size mgl32.Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// RectFromPositionSize builds a rectangle with Min at position.
func RectFromPositionSize(position, size mgl32.Vec2) Rect {
	return Rect{Min: position, Max: position.Add(size)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 {
	return r.Max.X() - r.Min.X()
}

// Height returns the vertical extent.
func (r Rect) Height() float32 {
	return r.Max.Y() - r.Min.Y()
}

// Size returns the extents as a vector.
func (r Rect) Size() mgl32.Vec2 {
	return r.Max.Sub(r.Min)
}

// Center returns the midpoint.
func (r Rect) Center() mgl32.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// Area returns width times height.
func (r Rect) Area() float32 {
	return r.Width() * r.Height()
}

// Perimeter returns the boundary length.
func (r Rect) Perimeter() float32 {
	return 2 * (r.Width() + r.Height())
}

// Contains reports whether point lies inside or on the boundary.
func (r Rect) Contains(point mgl32.Vec2) bool {
	return point.X() >= r.Min.X() && point.X() <= r.Max.X() &&
		point.Y() >= r.Min.Y() && point.Y() <= r.Max.Y()
}

// Intersects reports whether the rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X() <= other.Max.X() && r.Max.X() >= other.Min.X() &&
		r.Min.Y() <= other.Max.Y() && r.Max.Y() >= other.Min.Y()
}

// IntersectsCircle reports whether the rectangle overlaps a circle.
func (r Rect) IntersectsCircle(c Circle) bool {
	closest := mgl32.Vec2{
		Clamp(c.Center.X(), r.Min.X(), r.Max.X()),
		Clamp(c.Center.Y(), r.Min.Y(), r.Max.Y()),
	}
	return closest.Sub(c.Center).Len() <= c.Radius
}

// Intersection returns the overlapping region, if any.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	min := mgl32.Vec2{
		max32(r.Min.X(), other.Min.X()),
		max32(r.Min.Y(), other.Min.Y()),
	}
	max := mgl32.Vec2{
		min32(r.Max.X(), other.Max.X()),
		min32(r.Max.Y(), other.Max.Y()),
	}
	if min.X() > max.X() || min.Y() > max.Y() {
		return Rect{}, false
	}
	return Rect{Min: min, Max: max}, true
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: mgl32.Vec2{min32(r.Min.X(), other.Min.X()), min32(r.Min.Y(), other.Min.Y())},
		Max: mgl32.Vec2{max32(r.Max.X(), other.Max.X()), max32(r.Max.Y(), other.Max.Y())},
	}
}

// ExpandToInclude grows the rectangle so point is covered.
func (r *Rect) ExpandToInclude(point mgl32.Vec2) {
	r.Min = mgl32.Vec2{min32(r.Min.X(), point.X()), min32(r.Min.Y(), point.Y())}
	r.Max = mgl32.Vec2{max32(r.Max.X(), point.X()), max32(r.Max.Y(), point.Y())}
}

// Expand returns a rectangle grown by amount on every side.
func (r Rect) Expand(amount float32) Rect {
	delta := mgl32.Vec2{amount, amount}
	return Rect{Min: r.Min.Sub(delta), Max: r.Max.Add(delta)}
}

// IsValid reports whether Min does not exceed Max on either axis.
func (r Rect) IsValid() bool {
	return r.Min.X() <= r.Max.X() && r.Min.Y() <= r.Max.Y()
}

// Circle is a 2D circle.
type Circle struct {
	Center mgl32.Vec2
	Radius float32
}

// NewCircle builds a circle.
func NewCircle(center mgl32.Vec2, radius float32) Circle {
	return Circle{Center: center, Radius: radius}
}

// Area returns pi r squared.
func (c Circle) Area() float32 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns tau r.
func (c Circle) Circumference() float32 {
	return Tau * c.Radius
}

// Contains reports whether point is inside or on the circle.
func (c Circle) Contains(point mgl32.Vec2) bool {
	return point.Sub(c.Center).Len() <= c.Radius
}

// Intersects reports whether two circles overlap.
func (c Circle) Intersects(other Circle) bool {
	return c.Center.Sub(other.Center).Len() <= c.Radius+other.Radius
}

// IntersectsRect reports whether the circle overlaps a rectangle.
func (c Circle) IntersectsRect(r Rect) bool {
	return r.IntersectsCircle(c)
}

// BoundingRect returns the tightest rectangle containing the circle.
func (c Circle) BoundingRect() Rect {
	return RectFromCenterSize(c.Center, mgl32.Vec2{c.Radius * 2, c.Radius * 2})
}

// Bounds3D is a 3D axis-aligned bounding box.
type Bounds3D struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBounds3D builds a box from its corners.
func NewBounds3D(min, max mgl32.Vec3) Bounds3D {
	return Bounds3D{Min: min, Max: max}
}

// Bounds3DFromCenterSize builds a box centered on center.
func Bounds3DFromCenterSize(center, size mgl32.Vec3) Bounds3D {
	half := size.Mul(0.5)
	return Bounds3D{Min: center.Sub(half), Max: center.Add(half)}
}

// Size returns the extents as a vector.
func (b Bounds3D) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint.
func (b Bounds3D) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Volume returns the enclosed volume.
func (b Bounds3D) Volume() float32 {
	size := b.Size()
	return size.X() * size.Y() * size.Z()
}

// Contains reports whether point lies inside or on the box.
func (b Bounds3D) Contains(point mgl32.Vec3) bool {
	for i := range 3 {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether the boxes overlap.
func (b Bounds3D) Intersects(other Bounds3D) bool {
	for i := range 3 {
		if b.Min[i] > other.Max[i] || b.Max[i] < other.Min[i] {
			return false
		}
	}
	return true
}

// ExpandToInclude grows the box so point is covered.
func (b *Bounds3D) ExpandToInclude(point mgl32.Vec3) {
	for i := range 3 {
		b.Min[i] = min32(b.Min[i], point[i])
		b.Max[i] = max32(b.Max[i], point[i])
	}
}

// Intersection returns the overlapping box, if any.
func (b Bounds3D) Intersection(other Bounds3D) (Bounds3D, bool) {
	var out Bounds3D
	for i := range 3 {
		out.Min[i] = max32(b.Min[i], other.Min[i])
		out.Max[i] = min32(b.Max[i], other.Max[i])
		if out.Min[i] > out.Max[i] {
			return Bounds3D{}, false
		}
	}
	return out, true
}

// Union returns the smallest box containing both.
func (b Bounds3D) Union(other Bounds3D) Bounds3D {
	var out Bounds3D
	for i := range 3 {
		out.Min[i] = min32(b.Min[i], other.Min[i])
		out.Max[i] = max32(b.Max[i], other.Max[i])
	}
	return out
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
