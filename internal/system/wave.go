// internal/system/wave.go
package system

import (
	"log/slog"
	"math"

	"zombie-arena/internal/component"
	"zombie-arena/internal/config"
	"zombie-arena/internal/defs"
	"zombie-arena/internal/entity"
	"zombie-arena/internal/event"
	"zombie-arena/internal/utils"
)

// WaveSystem создаёт орду для волны и ведёт счётчики живых зомби.
// Сам срез орды принадлежит вызывающему.
type WaveSystem struct {
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	spawnMargin     float64
	spawnClearance  float64

	number    int
	spawned   int
	remaining int
}

func NewWaveSystem(rng *utils.PRNGService, eventDispatcher *event.Dispatcher, spawnMargin, spawnClearance float64) *WaveSystem {
	ws := &WaveSystem{
		rng:             rng,
		eventDispatcher: eventDispatcher,
		spawnMargin:     spawnMargin,
		spawnClearance:  spawnClearance,
	}
	eventDispatcher.Subscribe(event.PursuerKilled, ws)
	return ws
}

// SpawnHorde creates exactly count live pursuers for wave number inside arena
// and resets the counters. Every pursuer lands strictly inside the arena on
// a random side; positions closer than the spawn clearance to avoid are
// re-rolled a few times. The previous horde is simply forgotten.
func (s *WaveSystem) SpawnHorde(number, count int, arena component.Rect, avoid component.Vec2, kinds []defs.KindWeight) []*entity.Pursuer {
	if count < 0 {
		count = 0
	}
	inner := arena.Inset(math.Max(s.spawnMargin, 1))

	horde := make([]*entity.Pursuer, 0, count)
	for i := 0; i < count; i++ {
		pos := s.spawnPoint(inner)
		for attempt := 1; attempt < config.SpawnAttempts && pos.Dist(avoid) < s.spawnClearance; attempt++ {
			pos = s.spawnPoint(inner)
		}

		kind := s.rng.ChooseWeighted(kinds)
		def, ok := defs.PursuerDefs[kind]
		if !ok {
			slog.Warn("Unknown pursuer kind, using chaser", "kind", kind)
			def = defs.PursuerDefs[defs.KindChaser]
		}
		speed := def.Speed * s.rng.Between(defs.SpeedJitterMin, 1)
		horde = append(horde, entity.NewPursuer(def.Kind, pos, speed, def.Radius))
	}

	s.number = number
	s.spawned = count
	s.remaining = count
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveInfo{Number: number, Count: count}})
	return horde
}

// spawnPoint picks a point on a random edge of inner.
func (s *WaveSystem) spawnPoint(inner component.Rect) component.Vec2 {
	switch s.rng.Intn(4) {
	case 0: // left
		return component.Vec2{X: inner.Left, Y: s.rng.Between(inner.Top, inner.Bottom())}
	case 1: // right
		return component.Vec2{X: inner.Right(), Y: s.rng.Between(inner.Top, inner.Bottom())}
	case 2: // top
		return component.Vec2{X: s.rng.Between(inner.Left, inner.Right()), Y: inner.Top}
	default: // bottom
		return component.Vec2{X: s.rng.Between(inner.Left, inner.Right()), Y: inner.Bottom()}
	}
}

func (s *WaveSystem) Number() int    { return s.number }
func (s *WaveSystem) Spawned() int   { return s.spawned }
func (s *WaveSystem) Remaining() int { return s.remaining }

// Cleared reports whether every pursuer of the current wave is dead.
func (s *WaveSystem) Cleared() bool {
	return s.number > 0 && s.remaining == 0
}

// Reset forgets the current wave, e.g. for a new game.
func (s *WaveSystem) Reset() {
	s.number, s.spawned, s.remaining = 0, 0, 0
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.PursuerKilled || s.remaining == 0 {
		return
	}
	s.remaining--
	if s.remaining == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveInfo{Number: s.number, Count: s.spawned}})
	}
}
