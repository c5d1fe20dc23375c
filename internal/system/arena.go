// internal/system/arena.go
package system

import (
	"zombie-arena/internal/component"
	"zombie-arena/internal/config"
	"zombie-arena/internal/scene"
	"zombie-arena/internal/utils"
)

// ArenaParams - размеры арены для одной волны.
type ArenaParams struct {
	Width, Height int
	TileSize      int
}

// BuildArena returns the bounds of a Width x Height arena at the origin and
// its tiling: a ring of wall tiles around randomly chosen floor tiles.
// Bounds depend only on params; rng only picks floor variants.
func BuildArena(params ArenaParams, rng *utils.PRNGService) (component.Rect, *scene.Background) {
	tile := params.TileSize
	if tile <= 0 {
		tile = config.TileSize
	}
	arena := component.Rect{Width: float64(params.Width), Height: float64(params.Height)}

	cols := params.Width / tile
	rows := params.Height / tile
	bg := &scene.Background{
		Origin:   component.Vec2{X: arena.Left, Y: arena.Top},
		TileSize: tile,
		Cols:     cols,
		Rows:     rows,
		Tiles:    make([]scene.TileKind, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			kind := scene.Wall
			if row > 0 && col > 0 && row < rows-1 && col < cols-1 {
				kind = scene.TileKind(rng.Intn(config.TileTypes))
			}
			bg.Tiles[row*cols+col] = kind
		}
	}
	return arena, bg
}
