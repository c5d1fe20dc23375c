// pkg/render/color.go
package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"zombie-arena/internal/config"
	"zombie-arena/internal/scene"
)

// Palette holds all the colors needed to render the arena and the HUD.
type Palette struct {
	Background color.RGBA
	Wall       color.RGBA
	Floors     []color.RGBA
	Text       color.RGBA
	Overlay    color.RGBA
	Alert      color.RGBA
	Crosshair  color.RGBA
	Facing     color.RGBA
}

// DefaultPalette builds the palette from the config colors.
func DefaultPalette() Palette {
	return Palette{
		Background: config.BackgroundColor,
		Wall:       config.WallColor,
		Floors:     config.FloorColors,
		Text:       config.TextLightColor,
		Overlay:    config.OverlayColor,
		Alert:      config.AlertColor,
		Crosshair:  config.CrosshairColor,
		Facing:     colornames.Whitesmoke,
	}
}

// Tile returns the fill color for a background tile.
func (p Palette) Tile(kind scene.TileKind) color.RGBA {
	if kind == scene.Wall || len(p.Floors) == 0 {
		return p.Wall
	}
	return p.Floors[int(kind)%len(p.Floors)]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
