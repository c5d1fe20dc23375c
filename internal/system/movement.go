// internal/system/movement.go
package system

import (
	"zombie-arena/internal/component"
	"zombie-arena/internal/entity"
)

// MovementSystem двигает живых зомби к цели (центру игрока).
// Поиска пути нет: арена открытая.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(deltaTime float64, horde []*entity.Pursuer, target component.Vec2) {
	for _, z := range horde {
		if !z.Alive() {
			continue
		}
		z.Update(deltaTime, target)
	}
}
