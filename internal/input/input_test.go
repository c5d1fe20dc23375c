package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zombie-arena/internal/component"
)

func TestScreenWorldRoundTrip(t *testing.T) {
	camera := component.Vec2{X: 250, Y: 250}

	world := ScreenToWorld(component.Vec2{X: 640, Y: 360}, camera, 1280, 720)
	assert.Equal(t, camera, world, "screen centre shows the camera point")

	world = ScreenToWorld(component.Vec2{X: 0, Y: 0}, camera, 1280, 720)
	assert.Equal(t, component.Vec2{X: -390, Y: -110}, world)
	assert.Equal(t, component.Vec2{}, WorldToScreen(world, camera, 1280, 720))
}
