package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"zombie-arena/internal/component"
	"zombie-arena/internal/config"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
	"zombie-arena/internal/ui"
)

const lineHeight = 18

// Renderer draws a scene.Frame onto an ebiten screen. The view is centred on
// the frame's camera.
type Renderer struct {
	palette      Palette
	fontFace     font.Face
	screenWidth  int
	screenHeight int

	bgSource *scene.Background
	bgImage  *ebiten.Image // предрендеренный фон текущей волны

	healthIndicator *ui.PlayerHealthIndicator
	waveIndicator   *ui.WaveIndicator
}

func NewRenderer(screenWidth, screenHeight int) *Renderer {
	face := basicfont.Face7x13
	healthWidth := float32(ui.HealthCols) * (ui.HealthCircleRadius*2 + ui.HealthCircleSpacing)
	return &Renderer{
		palette:         DefaultPalette(),
		fontFace:        face,
		screenWidth:     screenWidth,
		screenHeight:    screenHeight,
		healthIndicator: ui.NewPlayerHealthIndicator(float32(screenWidth)-healthWidth-config.HUDMarginX, config.HUDMarginY/2, face),
		waveIndicator:   ui.NewWaveIndicator(screenWidth/2, config.HUDMarginY, face),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, f scene.Frame) {
	screen.Fill(r.palette.Background)

	if f.HasWave() {
		r.drawBackground(screen, f)
		for _, z := range f.Pursuers {
			p := r.toScreen(f.Camera, z.Pos)
			vector.DrawFilledCircle(screen, p.x, p.y, float32(z.Radius), z.Color, true)
			vector.StrokeCircle(screen, p.x, p.y, float32(z.Radius), 2, DarkenColor(z.Color), true)
		}
		for _, b := range f.Projectiles {
			p := r.toScreen(f.Camera, b.Pos)
			vector.DrawFilledCircle(screen, p.x, p.y, float32(b.Radius), b.Color, true)
		}
		r.drawPlayer(screen, f)
		r.drawCrosshair(screen, r.toScreen(f.Camera, f.Crosshair))
		r.healthIndicator.Draw(screen, f.HUD.Health, f.HUD.MaxHealth)
		r.waveIndicator.Draw(screen, f.HUD.Wave, f.HUD.Waves)
	}

	text.Draw(screen, f.StatusLine(), r.fontFace, config.HUDMarginX, config.HUDMarginY, r.palette.Text)
	if alert := f.Alert(); alert != "" {
		text.Draw(screen, alert, r.fontFace, config.HUDMarginX, config.HUDMarginY+lineHeight, r.palette.Alert)
	}

	if banner := f.Banner(); len(banner) > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(r.screenWidth), float32(r.screenHeight), r.palette.Overlay, false)
		top := r.screenHeight/2 - len(banner)*lineHeight/2
		for i, line := range banner {
			bounds := text.BoundString(r.fontFace, line)
			text.Draw(screen, line, r.fontFace, (r.screenWidth-bounds.Dx())/2, top+i*lineHeight, r.palette.Text)
		}
	}
}

// drawBackground draws the cached tiling, rebuilding it when the wave changed.
func (r *Renderer) drawBackground(screen *ebiten.Image, f scene.Frame) {
	bg := f.Background
	if bg != r.bgSource || r.bgImage == nil {
		r.bgImage = r.renderBackground(bg)
		r.bgSource = bg
	}
	if r.bgImage == nil {
		return
	}
	origin := r.toScreen(f.Camera, bg.Origin)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(origin.x), float64(origin.y))
	screen.DrawImage(r.bgImage, op)
}

func (r *Renderer) renderBackground(bg *scene.Background) *ebiten.Image {
	if bg.Cols <= 0 || bg.Rows <= 0 || bg.TileSize <= 0 {
		return nil
	}
	img := ebiten.NewImage(bg.Cols*bg.TileSize, bg.Rows*bg.TileSize)
	ts := float32(bg.TileSize)
	for row := 0; row < bg.Rows; row++ {
		for col := 0; col < bg.Cols; col++ {
			x, y := float32(col)*ts, float32(row)*ts
			vector.DrawFilledRect(img, x, y, ts, ts, r.palette.Tile(bg.At(col, row)), false)
		}
	}
	return img
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, f scene.Frame) {
	p := r.toScreen(f.Camera, f.Player.Pos)
	radius := float32(f.Player.Radius)
	vector.DrawFilledCircle(screen, p.x, p.y, radius, f.Player.Color, true)

	// Ствол показывает направление взгляда.
	tipX := p.x + float32(math.Cos(f.Player.Angle))*radius*1.4
	tipY := p.y + float32(math.Sin(f.Player.Angle))*radius*1.4
	vector.StrokeLine(screen, p.x, p.y, tipX, tipY, 4, r.palette.Facing, true)
}

func (r *Renderer) drawCrosshair(screen *ebiten.Image, p point) {
	const size = float32(config.CrosshairRadius)
	c := r.palette.Crosshair
	vector.StrokeCircle(screen, p.x, p.y, size, 1.5, c, true)
	vector.StrokeLine(screen, p.x-size*1.5, p.y, p.x+size*1.5, p.y, 1, c, true)
	vector.StrokeLine(screen, p.x, p.y-size*1.5, p.x, p.y+size*1.5, 1, c, true)
}

type point struct{ x, y float32 }

func (r *Renderer) toScreen(camera, world component.Vec2) point {
	s := input.WorldToScreen(world, camera, float64(r.screenWidth), float64(r.screenHeight))
	return point{float32(s.X), float32(s.Y)}
}
