package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Tuning holds the per-session gameplay numbers. Zero values are never valid;
// start from Default and override.
type Tuning struct {
	Seed int64 `json:"seed"`

	ArenaWidth  int `json:"arena_width"`
	ArenaHeight int `json:"arena_height"`
	TileSize    int `json:"tile_size"`

	PlayerSpeed       float64 `json:"player_speed"`
	PlayerHealth      int     `json:"player_health"`
	PlayerHitCooldown int     `json:"player_hit_cooldown_ms"`
	ContactDamage     int     `json:"contact_damage"`

	ClipSize        int     `json:"clip_size"`
	BulletsInClip   int     `json:"bullets_in_clip"`
	BulletsSpare    int     `json:"bullets_spare"`
	FireRate        float64 `json:"fire_rate"`
	PoolSize        int     `json:"projectile_pool_size"`
	ProjectileSpeed float64 `json:"projectile_speed"`

	SpawnMargin    float64 `json:"spawn_margin"`
	SpawnClearance float64 `json:"spawn_clearance"`

	// Waves is the campaign length; clearing the last wave ends the game.
	Waves int `json:"waves"`
}

func Default() Tuning {
	return Tuning{
		ArenaWidth:        ArenaWidth,
		ArenaHeight:       ArenaHeight,
		TileSize:          TileSize,
		PlayerSpeed:       PlayerStartSpeed,
		PlayerHealth:      PlayerStartHealth,
		PlayerHitCooldown: PlayerHitCooldown,
		ContactDamage:     ContactDamage,
		ClipSize:          StartClipSize,
		BulletsInClip:     StartBulletsInClip,
		BulletsSpare:      StartBulletsSpare,
		FireRate:          StartFireRate,
		PoolSize:          ProjectilePool,
		ProjectileSpeed:   ProjectileSpeed,
		SpawnMargin:       SpawnMargin,
		SpawnClearance:    SpawnClearance,
		Waves:             5,
	}
}

// Load reads a JSON tuning file on top of Default.
func Load(path string) (Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning %s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	var errs []error
	if t.ArenaWidth <= 0 || t.ArenaHeight <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %dx%d", t.ArenaWidth, t.ArenaHeight))
	}
	if t.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size must be positive, got %d", t.TileSize))
	} else if t.ArenaWidth < 3*t.TileSize || t.ArenaHeight < 3*t.TileSize {
		errs = append(errs, errors.New("arena must fit a wall ring and at least one floor tile"))
	}
	if t.ClipSize <= 0 {
		errs = append(errs, fmt.Errorf("clip_size must be positive, got %d", t.ClipSize))
	}
	if t.BulletsInClip < 0 || t.BulletsInClip > t.ClipSize {
		errs = append(errs, fmt.Errorf("bullets_in_clip must be in [0, %d], got %d", t.ClipSize, t.BulletsInClip))
	}
	if t.BulletsSpare < 0 {
		errs = append(errs, fmt.Errorf("bullets_spare must not be negative, got %d", t.BulletsSpare))
	}
	if t.FireRate <= 0 {
		errs = append(errs, fmt.Errorf("fire_rate must be positive, got %v", t.FireRate))
	}
	if t.PoolSize <= 0 {
		errs = append(errs, fmt.Errorf("projectile_pool_size must be positive, got %d", t.PoolSize))
	}
	if t.PlayerSpeed <= 0 || t.PlayerHealth <= 0 {
		errs = append(errs, errors.New("player speed and health must be positive"))
	}
	if t.ProjectileSpeed <= 0 {
		errs = append(errs, fmt.Errorf("projectile_speed must be positive, got %v", t.ProjectileSpeed))
	}
	if t.SpawnMargin < 0 || t.SpawnClearance < 0 {
		errs = append(errs, errors.New("spawn margins must not be negative"))
	}
	if t.Waves <= 0 {
		errs = append(errs, fmt.Errorf("waves must be positive, got %d", t.Waves))
	}
	return errors.Join(errs...)
}
