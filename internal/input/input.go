// Package input describes what the simulation reads from the player each
// frame and how frontends provide it.
package input

import "zombie-arena/internal/component"

// Snapshot is the player's input at poll time. Held keys are level
// triggered; Reload, Confirm, Quit and Upgrade are edges (true only on the
// frame the key went down).
type Snapshot struct {
	Up, Down, Left, Right bool
	Fire                  bool

	Reload  bool
	Confirm bool
	Quit    bool
	Upgrade int // 0 = none, 1..6

	PointerScreen component.Vec2
	PointerWorld  component.Vec2
}

// Source is polled once per frame. camera is the world point shown at the
// view centre, used to map the pointer into world coordinates.
type Source interface {
	Poll(camera component.Vec2) Snapshot
}

// ScreenToWorld maps a screen point of a view of the given size centred on
// camera into world coordinates.
func ScreenToWorld(screen, camera component.Vec2, width, height float64) component.Vec2 {
	return component.Vec2{
		X: screen.X - width/2 + camera.X,
		Y: screen.Y - height/2 + camera.Y,
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(world, camera component.Vec2, width, height float64) component.Vec2 {
	return component.Vec2{
		X: world.X - camera.X + width/2,
		Y: world.Y - camera.Y + height/2,
	}
}
