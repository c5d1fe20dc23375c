// internal/system/combat.go
package system

import (
	"log/slog"
	"time"

	"zombie-arena/internal/component"
	"zombie-arena/internal/entity"
	"zombie-arena/internal/event"
)

// Weapon - оружие игрока: учёт патронов, ограничение скорострельности
// и выдача пуль из кольцевого пула.
type Weapon struct {
	Ammo component.Ammo

	pool            *entity.ProjectilePool
	eventDispatcher *event.Dispatcher
	lastFire        time.Duration
	hasFired        bool
}

func NewWeapon(ammo component.Ammo, pool *entity.ProjectilePool, eventDispatcher *event.Dispatcher) *Weapon {
	return &Weapon{Ammo: ammo, pool: pool, eventDispatcher: eventDispatcher}
}

// TryFire shoots from origin toward target if the clip is not empty and at
// least one fire interval of game time has passed since the last shot. The
// first shot after Reset is never rate limited.
func (w *Weapon) TryFire(now time.Duration, origin, target component.Vec2, bounds component.Rect) bool {
	if w.Ammo.InClip <= 0 {
		w.dispatch(event.Event{Type: event.FireBlocked, Data: event.ClipEmpty})
		return false
	}
	if w.hasFired && now-w.lastFire < w.Ammo.FireInterval() {
		w.dispatch(event.Event{Type: event.FireBlocked, Data: event.CoolingDown})
		return false
	}

	slot := w.pool.Fire(origin, target, bounds)
	w.Ammo.InClip--
	w.lastFire = now
	w.hasFired = true
	w.dispatch(event.Event{Type: event.ShotFired, Data: slot})
	return true
}

// Reload refills the clip from the spare pool. With at least a clip's worth
// spare the clip is filled and ClipSize leaves the spare pool; with fewer the
// whole remainder becomes the clip. An empty spare pool leaves everything as
// is and reports false.
func (w *Weapon) Reload() bool {
	switch {
	case w.Ammo.Spare >= w.Ammo.ClipSize:
		w.Ammo.InClip = w.Ammo.ClipSize
		w.Ammo.Spare -= w.Ammo.ClipSize
	case w.Ammo.Spare > 0:
		w.Ammo.InClip = w.Ammo.Spare
		w.Ammo.Spare = 0
	default:
		slog.Debug("Reload failed, no spare ammo", "in_clip", w.Ammo.InClip)
		w.dispatch(event.Event{Type: event.ReloadFailed})
		return false
	}
	w.dispatch(event.Event{Type: event.Reloaded, Data: w.Ammo})
	return true
}

// Reset loads a fresh ammo state and clears the rate limiter.
func (w *Weapon) Reset(ammo component.Ammo) {
	w.Ammo = ammo
	w.lastFire = 0
	w.hasFired = false
}

// IncreaseFireRate adds one shot per second.
func (w *Weapon) IncreaseFireRate() {
	w.Ammo.FireRate++
}

// DoubleClip doubles the clip capacity; the new room is filled on the next reload.
func (w *Weapon) DoubleClip() {
	w.Ammo.ClipSize += w.Ammo.ClipSize
}

// AddSpare puts n more rounds into the spare pool.
func (w *Weapon) AddSpare(n int) {
	if n > 0 {
		w.Ammo.Spare += n
	}
}

func (w *Weapon) Pool() *entity.ProjectilePool {
	return w.pool
}

func (w *Weapon) dispatch(e event.Event) {
	if w.eventDispatcher != nil {
		w.eventDispatcher.Dispatch(e)
	}
}
