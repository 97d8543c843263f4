// Package scene provides the common entity components (naming, tagging,
// visibility, draw layers), the parent/child hierarchy, and the transform
// propagation systems that turn local transforms into world-space ones.
package scene

import "strings"

// Name is a human-readable entity label, used by debug tooling and logs.
type Name string

func (n Name) String() string {
	return string(n)
}

// Tag is a free-form grouping label. Matching is case-insensitive so
// "Enemy" and "enemy" select the same group.
type Tag string

// Matches reports whether the tag equals other, ignoring case.
func (t Tag) Matches(other string) bool {
	return strings.EqualFold(string(t), other)
}

// Visibility controls whether an entity is drawn. Inherited defers to the
// nearest ancestor with an explicit setting; an all-Inherited chain is
// visible.
type Visibility uint8

const (
	Inherited Visibility = iota
	Visible
	Hidden
)

func (v Visibility) String() string {
	switch v {
	case Inherited:
		return "inherited"
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Toggle flips between Visible and Hidden. An Inherited visibility
// becomes Hidden, since toggling expresses an explicit intent.
func (v *Visibility) Toggle() {
	if *v == Hidden {
		*v = Visible
	} else {
		*v = Hidden
	}
}

// Layer orders entities for drawing; lower layers draw first.
type Layer int
