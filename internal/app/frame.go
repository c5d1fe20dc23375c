package app

import (
	"zombie-arena/internal/component"
	"zombie-arena/internal/config"
	"zombie-arena/internal/defs"
	"zombie-arena/internal/scene"
)

// FillHUD copies the session numbers into f. It works with or without a
// live wave.
func (g *Game) FillHUD(f *scene.Frame) {
	f.HUD = scene.HUD{
		Wave:      g.waveNumber,
		Waves:     g.Tuning.Waves,
		InClip:    g.Weapon.Ammo.InClip,
		Spare:     g.Weapon.Ammo.Spare,
		ClipSize:  g.Weapon.Ammo.ClipSize,
		Health:    g.Player.Health,
		MaxHealth: g.Player.MaxHealth,
		Spawned:   g.WaveSystem.Spawned(),
		Remaining: g.WaveSystem.Remaining(),
	}
}

// FillScene adds the drawable contents of w to f. The view follows the
// player; dead pursuers and idle projectiles are left out.
func (g *Game) FillScene(f *scene.Frame, w *Wave, pointer component.Vec2) {
	if w == nil {
		return
	}
	f.Camera = g.Player.Center()
	f.Arena = w.Arena
	f.Background = w.Background
	f.Crosshair = pointer

	f.Pursuers = f.Pursuers[:0]
	for _, z := range w.Horde {
		if !z.Alive() {
			continue
		}
		f.Pursuers = append(f.Pursuers, scene.Sprite{
			Pos:    z.Pos,
			Radius: z.Radius,
			Color:  defs.PursuerDefs[z.Kind].Color,
		})
	}

	f.Projectiles = f.Projectiles[:0]
	for _, b := range g.Weapon.Pool().InFlight() {
		f.Projectiles = append(f.Projectiles, scene.Sprite{
			Pos:    b.Pos,
			Radius: config.ProjectileRadius,
			Color:  config.ProjectileColor,
		})
	}

	f.Player = scene.Sprite{
		Pos:    g.Player.Center(),
		Radius: config.PlayerRadius,
		Angle:  g.Player.Angle,
		Color:  config.PlayerColor,
	}
}

// UpgradeLabels lists the leveling-up choices, index 0 for key 1.
func UpgradeLabels() []string {
	labels := make([]string, 0, defs.UpgradeCount)
	for u := defs.UpgradeFireRate; u <= defs.UpgradeAmmoPickup; u++ {
		labels = append(labels, u.String())
	}
	return labels
}
