// Package scene holds the per-frame render data the simulation hands to a
// presenter. Nothing here knows how it gets drawn.
package scene

import (
	"image/color"

	"zombie-arena/internal/component"
	"zombie-arena/internal/event"
)

// TileKind selects a background tile. Floor variants come first, Wall last.
type TileKind int

const (
	FloorMud TileKind = iota
	FloorGrass
	FloorGravel
	Wall
)

// Background describes the arena tiling: Cols x Rows tiles of TileSize pixels
// starting at Origin, row-major.
type Background struct {
	Origin   component.Vec2
	TileSize int
	Cols     int
	Rows     int
	Tiles    []TileKind
}

// At returns the tile at (col, row). Out-of-range cells read as Wall.
func (b *Background) At(col, row int) TileKind {
	if col < 0 || row < 0 || col >= b.Cols || row >= b.Rows {
		return Wall
	}
	return b.Tiles[row*b.Cols+col]
}

// Sprite is a drawable handle for one entity.
type Sprite struct {
	Pos    component.Vec2
	Radius float64
	Angle  float64 // radians
	Color  color.RGBA
}

// HUD carries the numbers a presenter may show next to the scene.
type HUD struct {
	Wave      int
	Waves     int
	InClip    int
	Spare     int
	ClipSize  int
	Health    int
	MaxHealth int
	Spawned   int
	Remaining int
}

// Frame is everything the core emits for one tick.
type Frame struct {
	Phase       component.Phase
	Camera      component.Vec2 // world point the view centres on
	Arena       component.Rect
	Background  *Background // nil outside a wave
	Pursuers    []Sprite    // live only
	Projectiles []Sprite    // in flight only
	Player      Sprite
	Crosshair   component.Vec2 // pointer in world coordinates
	HUD         HUD

	// Upgrades lists the choice labels while leveling up, index 0 = key 1.
	Upgrades []string
	// Feedback holds the notable events of this frame (failed reload, blocked
	// fire, hits) for presenters that want to flash or beep.
	Feedback []event.EventType
}

// HasWave reports whether the frame carries a live arena.
func (f *Frame) HasWave() bool {
	return f.Background != nil
}
