package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zombie-arena/internal/component"
)

var testArena = component.Rect{Left: 0, Top: 0, Width: 500, Height: 500}

func spawnedPlayer() *Player {
	p := NewPlayer(200, 100, 200*time.Millisecond)
	p.Spawn(testArena, 50)
	return p
}

func TestPlayerSpawnsInArenaCenter(t *testing.T) {
	p := spawnedPlayer()
	assert.Equal(t, component.Vec2{X: 250, Y: 250}, p.Center())
}

func TestPlayerMovesAlongIntents(t *testing.T) {
	p := spawnedPlayer()
	p.MoveRight()
	p.MoveUp()
	p.Update(0.5, component.Vec2{X: 400, Y: 250})

	assert.InDelta(t, 350, p.Center().X, 1e-9)
	assert.InDelta(t, 150, p.Center().Y, 1e-9)
}

func TestPlayerOpposingIntentsCancel(t *testing.T) {
	p := spawnedPlayer()
	p.SetIntent(true, true, true, true)
	p.Update(1, component.Vec2{})
	assert.Equal(t, component.Vec2{X: 250, Y: 250}, p.Center())

	p.StopUp()
	p.StopLeft()
	p.Update(0.1, component.Vec2{})
	assert.InDelta(t, 270, p.Center().X, 1e-9)
	assert.InDelta(t, 270, p.Center().Y, 1e-9)
}

func TestPlayerStaysInsideWalls(t *testing.T) {
	p := spawnedPlayer()
	p.MoveLeft()
	p.MoveDown()
	p.Update(10, component.Vec2{})

	assert.Equal(t, component.Vec2{X: 50, Y: 450}, p.Center())
}

func TestPlayerFacesPointer(t *testing.T) {
	p := spawnedPlayer()

	p.Update(0, component.Vec2{X: 250, Y: 400})
	assert.InDelta(t, math.Pi/2, p.Angle, 1e-9)

	p.Update(0, component.Vec2{X: 100, Y: 250})
	assert.InDelta(t, math.Pi, p.Angle, 1e-9)

	// pointer on the player keeps the last facing
	p.Update(0, p.Center())
	assert.InDelta(t, math.Pi, p.Angle, 1e-9)
}

func TestPlayerHitRespectsCooldown(t *testing.T) {
	p := spawnedPlayer()

	require.True(t, p.Hit(0, 10))
	assert.False(t, p.Hit(100*time.Millisecond, 10))
	assert.True(t, p.Hit(200*time.Millisecond, 10))
	assert.Equal(t, 80, p.Health)

	assert.True(t, p.Hit(time.Second, 500))
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.Alive())
}

func TestPlayerUpgradesAndReset(t *testing.T) {
	p := spawnedPlayer()
	p.UpgradeSpeed()
	p.UpgradeHealth()
	assert.InDelta(t, 240, p.Speed, 1e-9)
	assert.Equal(t, 120, p.MaxHealth)

	p.Hit(0, 50)
	p.Heal(1000)
	assert.Equal(t, 120, p.Health)

	p.ResetStats()
	assert.InDelta(t, 200, p.Speed, 1e-9)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.MaxHealth)
}
