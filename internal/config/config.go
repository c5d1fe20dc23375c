// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06 // секунды; защищает от скачка dt после лага окна

	TileSize       = 50
	TileTypes      = 3 // вариантов пола, стена идёт отдельно
	ArenaWidth     = 500
	ArenaHeight    = 500
	WaveZombies    = 10
	ProjectilePool = 100

	PlayerStartSpeed  = 200.0 // pixels per second
	PlayerStartHealth = 100
	PlayerRadius      = 25.0
	PlayerHitCooldown = 200 // ms of invulnerability after a hit
	ContactDamage     = 10

	ProjectileSpeed  = 1000.0 // pixels per second
	ProjectileRadius = 3.0

	StartBulletsSpare  = 24
	StartBulletsInClip = 6
	StartClipSize      = 6
	StartFireRate      = 1.0 // выстрелов в секунду

	SpawnMargin    = 20.0
	SpawnClearance = 120.0
	SpawnAttempts  = 8

	CrosshairRadius = 12.0
	HUDMarginX      = 16
	HUDMarginY      = 20
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WallColor       = color.RGBA{90, 90, 100, 255}
	FloorColors     = []color.RGBA{
		{70, 60, 45, 255}, // mud
		{60, 90, 50, 255}, // grass
		{80, 80, 70, 255}, // gravel
	}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	CrosshairColor  = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	AlertColor      = color.RGBA{220, 60, 60, 255}
)
