package scene_test

import (
	"testing"

	"github.com/plus3/kiln/scene"
	"github.com/stretchr/testify/assert"
)

func TestTagMatchesIgnoresCase(t *testing.T) {
	tag := scene.Tag("Enemy")

	assert.True(t, tag.Matches("enemy"))
	assert.True(t, tag.Matches("ENEMY"))
	assert.True(t, tag.Matches("Enemy"))
	assert.False(t, tag.Matches("ally"))
	assert.False(t, tag.Matches(""))
}

func TestVisibilityToggle(t *testing.T) {
	v := scene.Visible
	v.Toggle()
	assert.Equal(t, scene.Hidden, v)
	v.Toggle()
	assert.Equal(t, scene.Visible, v)

	// Toggling an inherited visibility picks an explicit state.
	v = scene.Inherited
	v.Toggle()
	assert.Equal(t, scene.Hidden, v)
}

func TestVisibilityString(t *testing.T) {
	assert.Equal(t, "inherited", scene.Inherited.String())
	assert.Equal(t, "visible", scene.Visible.String())
	assert.Equal(t, "hidden", scene.Hidden.String())
}

func TestNameString(t *testing.T) {
	assert.Equal(t, "Player", scene.Name("Player").String())
}
