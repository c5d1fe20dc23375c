// internal/entity/player.go
package entity

import (
	"math"
	"time"

	"zombie-arena/internal/component"
)

// Player - управляемый человеком персонаж. Живёт всю сессию,
// в начале каждой волны переставляется в центр арены.
type Player struct {
	pos      component.Vec2
	interior component.Rect // walkable area: arena minus the wall ring

	up, down, left, right bool

	baseSpeed  float64
	baseHealth int

	Speed     float64 // pixels per second
	Angle     float64 // facing, radians, 0 = +X
	Health    int
	MaxHealth int

	HitCooldown time.Duration
	lastHit     time.Duration
	wasHit      bool
}

func NewPlayer(speed float64, health int, hitCooldown time.Duration) *Player {
	return &Player{
		baseSpeed:   speed,
		baseHealth:  health,
		Speed:       speed,
		Health:      health,
		MaxHealth:   health,
		HitCooldown: hitCooldown,
	}
}

// Spawn places the player in the middle of arena and remembers the walkable
// interior (arena inset by one wall tile) for clamping.
func (p *Player) Spawn(arena component.Rect, tileSize float64) {
	p.interior = arena.Inset(tileSize)
	p.pos = arena.Center()
	p.up, p.down, p.left, p.right = false, false, false, false
	p.wasHit = false
}

func (p *Player) MoveUp()    { p.up = true }
func (p *Player) MoveDown()  { p.down = true }
func (p *Player) MoveLeft()  { p.left = true }
func (p *Player) MoveRight() { p.right = true }
func (p *Player) StopUp()    { p.up = false }
func (p *Player) StopDown()  { p.down = false }
func (p *Player) StopLeft()  { p.left = false }
func (p *Player) StopRight() { p.right = false }

// SetIntent sets all four movement flags at once from a held-key snapshot.
func (p *Player) SetIntent(up, down, left, right bool) {
	p.up, p.down, p.left, p.right = up, down, left, right
}

// Update integrates the movement intents over deltaTime seconds and turns the
// player toward pointer. Opposing intents cancel on their axis.
func (p *Player) Update(deltaTime float64, pointer component.Vec2) {
	step := p.Speed * deltaTime
	if p.up {
		p.pos.Y -= step
	}
	if p.down {
		p.pos.Y += step
	}
	if p.left {
		p.pos.X -= step
	}
	if p.right {
		p.pos.X += step
	}

	if p.interior.Width > 0 || p.interior.Height > 0 {
		p.pos = p.interior.Clamp(p.pos)
	}

	d := pointer.Sub(p.pos)
	if d.X != 0 || d.Y != 0 {
		p.Angle = math.Atan2(d.Y, d.X)
	}
}

// Center - точка для камеры и прицеливания.
func (p *Player) Center() component.Vec2 {
	return p.pos
}

func (p *Player) Alive() bool {
	return p.Health > 0
}

// Hit applies damage unless the player is still inside the invulnerability
// window of the previous hit. It reports whether damage was applied.
func (p *Player) Hit(now time.Duration, damage int) bool {
	if p.wasHit && now-p.lastHit < p.HitCooldown {
		return false
	}
	p.wasHit = true
	p.lastHit = now
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
	return true
}

// UpgradeSpeed adds 20% of the starting speed.
func (p *Player) UpgradeSpeed() {
	p.Speed += p.baseSpeed * 0.2
}

// UpgradeHealth adds 20% of the starting health to the maximum.
func (p *Player) UpgradeHealth() {
	p.MaxHealth += int(float64(p.baseHealth) * 0.2)
}

// Heal restores up to amount health without exceeding MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// ResetStats returns speed and health to their starting values for a new game.
func (p *Player) ResetStats() {
	p.Speed = p.baseSpeed
	p.Health = p.baseHealth
	p.MaxHealth = p.baseHealth
	p.wasHit = false
}
