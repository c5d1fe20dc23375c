package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zombie-arena/internal/component"
	"zombie-arena/internal/scene"
	"zombie-arena/internal/utils"
)

func TestBuildArenaBounds(t *testing.T) {
	arena, bg := BuildArena(ArenaParams{Width: 500, Height: 400, TileSize: 50}, utils.NewPRNGService(1))

	assert.Equal(t, component.Rect{Width: 500, Height: 400}, arena)
	require.NotNil(t, bg)
	assert.Equal(t, 10, bg.Cols)
	assert.Equal(t, 8, bg.Rows)
	assert.Len(t, bg.Tiles, 80)
}

func TestBuildArenaWallRing(t *testing.T) {
	_, bg := BuildArena(ArenaParams{Width: 500, Height: 500, TileSize: 50}, utils.NewPRNGService(7))

	for row := 0; row < bg.Rows; row++ {
		for col := 0; col < bg.Cols; col++ {
			edge := row == 0 || col == 0 || row == bg.Rows-1 || col == bg.Cols-1
			if edge {
				assert.Equal(t, scene.Wall, bg.At(col, row), "col %d row %d", col, row)
			} else {
				assert.NotEqual(t, scene.Wall, bg.At(col, row), "col %d row %d", col, row)
			}
		}
	}
	assert.Equal(t, scene.Wall, bg.At(-1, 3))
}

func TestBuildArenaDeterministicForSeed(t *testing.T) {
	params := ArenaParams{Width: 500, Height: 500, TileSize: 50}
	_, a := BuildArena(params, utils.NewPRNGService(42))
	_, b := BuildArena(params, utils.NewPRNGService(42))
	assert.Equal(t, a.Tiles, b.Tiles)
}
