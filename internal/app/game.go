// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"
	"time"

	"zombie-arena/internal/component"
	"zombie-arena/internal/config"
	"zombie-arena/internal/defs"
	"zombie-arena/internal/entity"
	"zombie-arena/internal/event"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
	"zombie-arena/internal/system"
	"zombie-arena/internal/utils"
)

// Outcome tells the phase machine what a simulation step ended with.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWaveCleared
	OutcomePlayerDied
)

// Wave - живое состояние одной волны: арена, фон и орда.
// Новая волна полностью заменяет предыдущую.
type Wave struct {
	Number     int
	Arena      component.Rect
	Background *scene.Background
	Horde      []*entity.Pursuer
}

// Game holds everything that lives for the whole session: the player, the
// weapon and its pool, the systems and the game clock total.
type Game struct {
	Tuning          config.Tuning
	Patterns        map[int]defs.WaveDefinition
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher

	Player           *entity.Player
	Weapon           *system.Weapon
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	DamageSystem     *system.DamageSystem

	waveNumber int
	gameTime   time.Duration
	listener   *GameEventListener
}

// NewGame builds a session from validated tuning. A nil patterns table means
// the built-in one.
func NewGame(tuning config.Tuning, patterns map[int]defs.WaveDefinition) (*Game, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	if len(patterns) == 0 {
		patterns = defs.WavePatterns
	}

	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(tuning.Seed)
	pool := entity.NewProjectilePool(tuning.PoolSize, tuning.ProjectileSpeed)

	g := &Game{
		Tuning:           tuning,
		Patterns:         patterns,
		Rng:              rng,
		EventDispatcher:  eventDispatcher,
		Player:           entity.NewPlayer(tuning.PlayerSpeed, tuning.PlayerHealth, time.Duration(tuning.PlayerHitCooldown)*time.Millisecond),
		Weapon:           system.NewWeapon(startAmmo(tuning), pool, eventDispatcher),
		WaveSystem:       system.NewWaveSystem(rng, eventDispatcher, tuning.SpawnMargin, tuning.SpawnClearance),
		MovementSystem:   system.NewMovementSystem(),
		ProjectileSystem: system.NewProjectileSystem(eventDispatcher, config.ProjectileRadius),
		DamageSystem:     system.NewDamageSystem(eventDispatcher, tuning.ContactDamage, config.PlayerRadius),
	}

	g.listener = &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.WaveStarted, event.WaveCleared, event.PlayerHit, event.PlayerDied,
		event.PursuerKilled, event.ShotFired, event.FireBlocked, event.Reloaded, event.ReloadFailed,
	} {
		eventDispatcher.Subscribe(t, g.listener)
	}

	slog.Info("Game created", "seed", rng.Seed(), "waves", tuning.Waves, "pool", pool.Len())
	return g, nil
}

func startAmmo(t config.Tuning) component.Ammo {
	return component.Ammo{
		InClip:   t.BulletsInClip,
		Spare:    t.BulletsSpare,
		ClipSize: t.ClipSize,
		FireRate: t.FireRate,
	}
}

// NewSession resets player stats, ammo and the wave counter for a new game.
func (g *Game) NewSession() {
	g.Player.ResetStats()
	g.Weapon.Reset(startAmmo(g.Tuning))
	g.Weapon.Pool().Reset()
	g.WaveSystem.Reset()
	g.waveNumber = 0
	g.gameTime = 0
	g.listener.drain()
	slog.Info("New game")
}

// StartWave builds the next wave from scratch: arena, background, player
// position and a fresh horde. Projectiles of the previous wave are dropped.
func (g *Game) StartWave() *Wave {
	g.waveNumber++
	def := defs.WaveFor(g.Patterns, g.waveNumber)

	params := system.ArenaParams{Width: g.Tuning.ArenaWidth, Height: g.Tuning.ArenaHeight, TileSize: g.Tuning.TileSize}
	if def.ArenaWidth > 0 && def.ArenaHeight > 0 {
		params.Width, params.Height = def.ArenaWidth, def.ArenaHeight
	}
	arena, background := system.BuildArena(params, g.Rng)

	g.Player.Spawn(arena, float64(params.TileSize))
	g.Weapon.Pool().Reset()
	horde := g.WaveSystem.SpawnHorde(g.waveNumber, def.Count, arena, g.Player.Center(), def.Kinds)

	return &Wave{
		Number:     g.waveNumber,
		Arena:      arena,
		Background: background,
		Horde:      horde,
	}
}

// HasNextWave reports whether the campaign continues after the current wave.
func (g *Game) HasNextWave() bool {
	return g.waveNumber < g.Tuning.Waves
}

func (g *Game) WaveNumber() int {
	return g.waveNumber
}

// GameTime is the total simulated time of the session.
func (g *Game) GameTime() time.Duration {
	return g.gameTime
}

// ApplyUpgrade applies one leveling-up choice. Invalid choices change nothing.
func (g *Game) ApplyUpgrade(u defs.Upgrade) bool {
	switch u {
	case defs.UpgradeFireRate:
		g.Weapon.IncreaseFireRate()
	case defs.UpgradeClipSize:
		g.Weapon.DoubleClip()
	case defs.UpgradeMaxHealth:
		g.Player.UpgradeHealth()
	case defs.UpgradeRunSpeed:
		g.Player.UpgradeSpeed()
	case defs.UpgradeHealthPickup:
		g.Player.Heal(g.Player.MaxHealth)
	case defs.UpgradeAmmoPickup:
		g.Weapon.AddSpare(2 * g.Weapon.Ammo.ClipSize)
	default:
		return false
	}
	slog.Info("Upgrade applied", "upgrade", u.String(), "wave", g.waveNumber+1)
	return true
}

// Update runs one simulation step of dt over w. The pass order is fixed:
// player, weapon, pursuers, projectiles, contact damage.
func (g *Game) Update(dt time.Duration, in input.Snapshot, w *Wave) Outcome {
	if w == nil {
		return OutcomeContinue
	}
	g.gameTime += dt
	deltaTime := dt.Seconds()

	g.Player.SetIntent(in.Up, in.Down, in.Left, in.Right)
	g.Player.Update(deltaTime, in.PointerWorld)

	if in.Reload {
		g.Weapon.Reload()
	} else if in.Fire {
		g.Weapon.TryFire(g.gameTime, g.Player.Center(), in.PointerWorld, w.Arena)
	}

	g.MovementSystem.Update(deltaTime, w.Horde, g.Player.Center())
	g.ProjectileSystem.Update(deltaTime, g.Weapon.Pool(), w.Horde)

	if g.DamageSystem.Update(g.gameTime, g.Player, w.Horde) {
		return OutcomePlayerDied
	}
	if g.WaveSystem.Cleared() {
		return OutcomeWaveCleared
	}
	return OutcomeContinue
}

// DrainFeedback returns the notable events since the previous call.
func (g *Game) DrainFeedback() []event.EventType {
	return g.listener.drain()
}

// Close drops the projectiles and wave counters of the session.
func (g *Game) Close() {
	g.Weapon.Pool().Reset()
	g.WaveSystem.Reset()
	slog.Info("Session closed", "waves_played", g.waveNumber, "game_time", g.gameTime)
}
