// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
)

const (
	HealthCells         = 20
	HealthCols          = 10
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 3.0
	healthTextHeight    = 16
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
// Каждый кружок - 1/HealthCells от максимума.
type PlayerHealthIndicator struct {
	X, Y float32
	Face font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Face: face}
}

// Draw рисует сетку кружков и подпись health/maxHealth над ней.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < HealthCells; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := i.Y + healthTextHeight + float32(j/HealthCols)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, HealthCellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, colornames.White, true)
	}

	label := fmt.Sprintf("%d/%d", health, maxHealth)
	bounds := text.BoundString(i.Face, label)
	width := float32(HealthCols) * step
	text.Draw(screen, label, i.Face, int(i.X+(width-float32(bounds.Dx()))/2), int(i.Y)+healthTextHeight-4, colornames.White)
}

// HealthCellColor returns the fill of cell j. Filled cells are red once health
// is at or below half; above half the surplus cells are blue. Empty cells
// are black.
func HealthCellColor(j, health, maxHealth int) color.RGBA {
	filled := FilledCells(health, maxHealth)
	if j >= filled {
		return colornames.Black
	}
	half := HealthCells / 2
	if filled > half && j < filled-half {
		return colornames.Royalblue
	}
	return colornames.Red
}

// FilledCells converts health into a number of lit cells, rounding up so
// any remaining health shows at least one.
func FilledCells(health, maxHealth int) int {
	if health <= 0 || maxHealth <= 0 {
		return 0
	}
	if health >= maxHealth {
		return HealthCells
	}
	return (health*HealthCells + maxHealth - 1) / maxHealth
}

// Height возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) Height() float32 {
	rows := (HealthCells + HealthCols - 1) / HealthCols
	return healthTextHeight + float32(rows)*float32(HealthCircleRadius*2+HealthCircleSpacing)
}
