package entity

import (
	"zombie-arena/internal/component"
	"zombie-arena/internal/defs"
)

// Pursuer - зомби из волны. Мёртвый зомби пропускается при обновлении
// и отрисовке, но остаётся в срезе до следующей волны.
type Pursuer struct {
	Kind   defs.PursuerKind
	Pos    component.Vec2
	Speed  float64
	Radius float64
	alive  bool
}

func NewPursuer(kind defs.PursuerKind, pos component.Vec2, speed, radius float64) *Pursuer {
	return &Pursuer{Kind: kind, Pos: pos, Speed: speed, Radius: radius, alive: true}
}

func (z *Pursuer) Alive() bool {
	return z.alive
}

// Kill clears the alive flag. It reports false when the pursuer was already dead.
func (z *Pursuer) Kill() bool {
	if !z.alive {
		return false
	}
	z.alive = false
	return true
}

// Update moves the pursuer straight at target. A step that would overshoot
// lands exactly on target.
func (z *Pursuer) Update(deltaTime float64, target component.Vec2) {
	dir, dist := target.Sub(z.Pos).Normalize()
	move := z.Speed * deltaTime
	if dist <= move {
		z.Pos = target
		return
	}
	z.Pos = z.Pos.Add(dir.Scale(move))
}

// Touches reports whether a circle at p with radius r overlaps the pursuer.
func (z *Pursuer) Touches(p component.Vec2, r float64) bool {
	return z.Pos.Dist(p) <= z.Radius+r
}
