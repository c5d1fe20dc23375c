package system

import (
	"time"

	"zombie-arena/internal/entity"
	"zombie-arena/internal/event"
)

// DamageSystem наносит урон игроку при касании живого зомби.
type DamageSystem struct {
	eventDispatcher *event.Dispatcher
	damage          int
	playerRadius    float64
}

func NewDamageSystem(eventDispatcher *event.Dispatcher, damage int, playerRadius float64) *DamageSystem {
	return &DamageSystem{eventDispatcher: eventDispatcher, damage: damage, playerRadius: playerRadius}
}

// Update hits the player once per touching pursuer (the player's own
// invulnerability window absorbs repeats) and reports whether the player died
// during this call.
func (s *DamageSystem) Update(now time.Duration, player *entity.Player, horde []*entity.Pursuer) bool {
	if !player.Alive() {
		return false
	}
	for _, z := range horde {
		if !z.Alive() || !z.Touches(player.Center(), s.playerRadius) {
			continue
		}
		if !player.Hit(now, s.damage) {
			continue
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: player.Health})
		if !player.Alive() {
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
			return true
		}
	}
	return false
}
