// internal/system/projectile.go
package system

import (
	"zombie-arena/internal/component"
	"zombie-arena/internal/entity"
	"zombie-arena/internal/event"
)

// ProjectileSystem двигает летящие пули и обрабатывает попадания.
type ProjectileSystem struct {
	eventDispatcher *event.Dispatcher
	radius          float64
}

func NewProjectileSystem(eventDispatcher *event.Dispatcher, radius float64) *ProjectileSystem {
	return &ProjectileSystem{eventDispatcher: eventDispatcher, radius: radius}
}

// Update advances every in-flight projectile and kills the first live
// pursuer its path crosses this frame. The whole swept segment is tested, so
// a fast bullet cannot skip a zombie between two frames, and a bullet that
// leaves the arena on this step can still score on the way out.
func (s *ProjectileSystem) Update(deltaTime float64, pool *entity.ProjectilePool, horde []*entity.Pursuer) int {
	kills := 0
	for _, b := range pool.InFlight() {
		from := b.Pos
		b.Update(deltaTime)
		if target := s.firstHit(from, b.Pos, horde); target != nil {
			b.Stop()
			target.Kill()
			kills++
			s.eventDispatcher.Dispatch(event.Event{Type: event.PursuerKilled, Data: target})
		}
	}
	return kills
}

func (s *ProjectileSystem) firstHit(from, to component.Vec2, horde []*entity.Pursuer) *entity.Pursuer {
	var best *entity.Pursuer
	bestT := 2.0
	for _, z := range horde {
		if !z.Alive() {
			continue
		}
		t, ok := segmentHit(from, to, z.Pos, z.Radius+s.radius)
		if ok && t < bestT {
			best, bestT = z, t
		}
	}
	return best
}

// segmentHit reports whether the segment from→to passes within r of c and
// the segment parameter of the closest approach.
func segmentHit(from, to, c component.Vec2, r float64) (float64, bool) {
	d := to.Sub(from)
	lenSq := d.X*d.X + d.Y*d.Y
	t := 0.0
	if lenSq > 0 {
		t = ((c.X-from.X)*d.X + (c.Y-from.Y)*d.Y) / lenSq
		t = max(0, min(1, t))
	}
	closest := from.Add(d.Scale(t))
	return t, closest.Dist(c) <= r
}
