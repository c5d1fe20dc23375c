package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zombie-arena/internal/component"
	"zombie-arena/internal/defs"
	"zombie-arena/internal/event"
	"zombie-arena/internal/utils"
)

var (
	waveArena = component.Rect{Width: 500, Height: 500}
	mixed     = []defs.KindWeight{{Kind: defs.KindChaser, Weight: 2}, {Kind: defs.KindBloater, Weight: 1}, {Kind: defs.KindCrawler, Weight: 1}}
)

func TestSpawnHordeInsideArena(t *testing.T) {
	d := event.NewDispatcher()
	rec := listen(d, event.WaveStarted)
	ws := NewWaveSystem(utils.NewPRNGService(3), d, 20, 120)

	horde := ws.SpawnHorde(1, 10, waveArena, waveArena.Center(), mixed)

	require.Len(t, horde, 10)
	for _, z := range horde {
		assert.True(t, z.Alive())
		assert.Greater(t, z.Pos.X, waveArena.Left)
		assert.Less(t, z.Pos.X, waveArena.Right())
		assert.Greater(t, z.Pos.Y, waveArena.Top)
		assert.Less(t, z.Pos.Y, waveArena.Bottom())

		def := defs.PursuerDefs[z.Kind]
		assert.Equal(t, def.Radius, z.Radius)
		assert.LessOrEqual(t, z.Speed, def.Speed)
		assert.GreaterOrEqual(t, z.Speed, def.Speed*defs.SpeedJitterMin)
	}
	assert.Equal(t, 10, ws.Spawned())
	assert.Equal(t, 10, ws.Remaining())
	assert.Equal(t, 1, ws.Number())
	require.Len(t, rec.events, 1)
	assert.Equal(t, event.WaveInfo{Number: 1, Count: 10}, rec.events[0].Data)
}

func TestSpawnHordeKeepsDistanceFromPlayer(t *testing.T) {
	ws := NewWaveSystem(utils.NewPRNGService(11), event.NewDispatcher(), 20, 120)
	// Every edge point of the inner rect is at least 230 from the center.
	for _, z := range ws.SpawnHorde(1, 50, waveArena, waveArena.Center(), mixed) {
		assert.GreaterOrEqual(t, z.Pos.Dist(waveArena.Center()), 120.0)
	}
}

func TestWaveClearsAfterAllKills(t *testing.T) {
	d := event.NewDispatcher()
	rec := listen(d, event.WaveCleared)
	ws := NewWaveSystem(utils.NewPRNGService(5), d, 20, 120)
	horde := ws.SpawnHorde(2, 3, waveArena, waveArena.Center(), mixed)

	for i, z := range horde {
		require.False(t, ws.Cleared())
		z.Kill()
		d.Dispatch(event.Event{Type: event.PursuerKilled, Data: z})
		assert.Equal(t, len(horde)-i-1, ws.Remaining())
	}
	assert.True(t, ws.Cleared())
	require.Len(t, rec.events, 1)
	assert.Equal(t, event.WaveInfo{Number: 2, Count: 3}, rec.events[0].Data)

	// Extra kill notifications do not underflow.
	d.Dispatch(event.Event{Type: event.PursuerKilled})
	assert.Equal(t, 0, ws.Remaining())
	assert.Len(t, rec.events, 1)
}

func TestWaveResetForgetsWave(t *testing.T) {
	ws := NewWaveSystem(utils.NewPRNGService(5), event.NewDispatcher(), 20, 120)
	ws.SpawnHorde(1, 4, waveArena, waveArena.Center(), mixed)
	ws.Reset()
	assert.Equal(t, 0, ws.Number())
	assert.False(t, ws.Cleared())
}

func TestSpawnHordeSameSeedSameHorde(t *testing.T) {
	a := NewWaveSystem(utils.NewPRNGService(99), event.NewDispatcher(), 20, 120).SpawnHorde(1, 8, waveArena, waveArena.Center(), mixed)
	b := NewWaveSystem(utils.NewPRNGService(99), event.NewDispatcher(), 20, 120).SpawnHorde(1, 8, waveArena, waveArena.Center(), mixed)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, *a[i], *b[i])
	}
}
