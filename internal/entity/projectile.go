package entity

import "zombie-arena/internal/component"

// Projectile - один слот пула пуль.
type Projectile struct {
	Origin component.Vec2
	Pos    component.Vec2
	Dir    component.Vec2 // unit vector
	Speed  float64
	Bounds component.Rect // leaving this rectangle ends the flight

	inFlight bool
}

// Shoot launches the projectile from origin toward target. Whatever the slot
// was doing before is overwritten. A zero-length aim fires along +X.
func (b *Projectile) Shoot(origin, target component.Vec2, bounds component.Rect) {
	dir, dist := target.Sub(origin).Normalize()
	if dist == 0 {
		dir = component.Vec2{X: 1}
	}
	b.Origin = origin
	b.Pos = origin
	b.Dir = dir
	b.Bounds = bounds
	b.inFlight = true
}

// Update advances the projectile and ends the flight once it leaves Bounds.
func (b *Projectile) Update(deltaTime float64) {
	if !b.inFlight {
		return
	}
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * deltaTime))
	if !b.Bounds.Contains(b.Pos) {
		b.inFlight = false
	}
}

func (b *Projectile) InFlight() bool {
	return b.inFlight
}

// Stop ends the flight, e.g. on a hit.
func (b *Projectile) Stop() {
	b.inFlight = false
}

// ProjectilePool - кольцевой пул фиксированного размера. Следующий выстрел
// берёт слот cursor, даже если предыдущая пуля в нём ещё летит.
type ProjectilePool struct {
	slots  []Projectile
	cursor int
}

func NewProjectilePool(size int, speed float64) *ProjectilePool {
	if size <= 0 {
		size = 1
	}
	slots := make([]Projectile, size)
	for i := range slots {
		slots[i].Speed = speed
	}
	return &ProjectilePool{slots: slots}
}

// Fire shoots the projectile in the current slot, advances the cursor with
// wraparound and returns the index of the slot used.
func (p *ProjectilePool) Fire(origin, target component.Vec2, bounds component.Rect) int {
	i := p.cursor
	p.slots[i].Shoot(origin, target, bounds)
	p.cursor = (p.cursor + 1) % len(p.slots)
	return i
}

// Cursor is the slot the next Fire will use.
func (p *ProjectilePool) Cursor() int {
	return p.cursor
}

func (p *ProjectilePool) Len() int {
	return len(p.slots)
}

// Slot returns the projectile at index i.
func (p *ProjectilePool) Slot(i int) *Projectile {
	return &p.slots[i]
}

// InFlight returns pointers to every projectile currently flying.
func (p *ProjectilePool) InFlight() []*Projectile {
	var out []*Projectile
	for i := range p.slots {
		if p.slots[i].inFlight {
			out = append(out, &p.slots[i])
		}
	}
	return out
}

// Reset stops every projectile and rewinds the cursor.
func (p *ProjectilePool) Reset() {
	for i := range p.slots {
		p.slots[i].inFlight = false
	}
	p.cursor = 0
}
