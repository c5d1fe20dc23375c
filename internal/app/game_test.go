package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"zombie-arena/internal/app"
	"zombie-arena/internal/component"
	"zombie-arena/internal/config"
	"zombie-arena/internal/defs"
	"zombie-arena/internal/event"
	"zombie-arena/internal/input"
)

var singleChaser = map[int]defs.WaveDefinition{
	1: {Count: 1, Kinds: []defs.KindWeight{{Kind: defs.KindChaser, Weight: 1}}},
}

type GameTestSuite struct {
	suite.Suite
	tuning config.Tuning
	game   *app.Game
}

func (s *GameTestSuite) SetupTest() {
	s.tuning = config.Default()
	s.tuning.Seed = 1

	var err error
	s.game, err = app.NewGame(s.tuning, nil)
	s.Require().NoError(err)
	s.game.NewSession()
}

// newGame rebuilds the game with a custom wave table.
func (s *GameTestSuite) newGame(patterns map[int]defs.WaveDefinition) {
	var err error
	s.game, err = app.NewGame(s.tuning, patterns)
	s.Require().NoError(err)
	s.game.NewSession()
}

func (s *GameTestSuite) TestNewGameRejectsInvalidTuning() {
	bad := config.Default()
	bad.FireRate = 0

	g, err := app.NewGame(bad, nil)
	s.Error(err)
	s.Nil(g)
}

func (s *GameTestSuite) TestStartWaveBuildsFreshArena() {
	w := s.game.StartWave()

	s.Equal(1, w.Number)
	s.Equal(component.Rect{Width: 500, Height: 500}, w.Arena)
	s.NotNil(w.Background)
	s.Len(w.Horde, config.WaveZombies)
	for _, z := range w.Horde {
		s.True(z.Alive())
	}
	s.Equal(w.Arena.Center(), s.game.Player.Center())
	s.Equal(config.WaveZombies, s.game.WaveSystem.Remaining())
}

func (s *GameTestSuite) TestSecondWaveReplacesFirst() {
	first := s.game.StartWave()
	first.Horde[0].Kill()

	second := s.game.StartWave()

	s.Equal(2, second.Number)
	s.Len(second.Horde, defs.WavePatterns[2].Count)
	for _, z := range second.Horde {
		s.True(z.Alive())
		for _, old := range first.Horde {
			s.NotSame(old, z)
		}
	}
	s.Equal(defs.WavePatterns[2].Count, s.game.WaveSystem.Remaining())
}

func (s *GameTestSuite) TestReloadWinsOverFire() {
	w := s.game.StartWave()
	s.game.Weapon.Ammo.InClip = 2

	s.game.Update(16*time.Millisecond, input.Snapshot{Reload: true, Fire: true, PointerWorld: component.Vec2{X: 400, Y: 250}}, w)

	s.Equal(6, s.game.Weapon.Ammo.InClip)
	s.Equal(18, s.game.Weapon.Ammo.Spare)
	s.Empty(s.game.Weapon.Pool().InFlight())
}

func (s *GameTestSuite) TestShootingLastPursuerClearsWave() {
	s.newGame(singleChaser)
	w := s.game.StartWave()
	s.Require().Len(w.Horde, 1)
	z := w.Horde[0]
	z.Pos = component.Vec2{X: 350, Y: 250}
	z.Speed = 0

	out := s.game.Update(100*time.Millisecond, input.Snapshot{Fire: true, PointerWorld: component.Vec2{X: 400, Y: 250}}, w)

	s.Equal(app.OutcomeWaveCleared, out)
	s.False(z.Alive())
	s.Equal(5, s.game.Weapon.Ammo.InClip)
	s.Contains(s.game.DrainFeedback(), event.PursuerKilled)
	s.Empty(s.game.DrainFeedback())
}

func (s *GameTestSuite) TestContactKillsPlayer() {
	s.tuning.PlayerHealth = 10
	s.newGame(singleChaser)
	w := s.game.StartWave()
	w.Horde[0].Pos = s.game.Player.Center()

	out := s.game.Update(16*time.Millisecond, input.Snapshot{}, w)

	s.Equal(app.OutcomePlayerDied, out)
	s.False(s.game.Player.Alive())
}

func (s *GameTestSuite) TestUpdateWithoutWaveIsNoop() {
	s.Equal(app.OutcomeContinue, s.game.Update(time.Second, input.Snapshot{Fire: true}, nil))
	s.Zero(s.game.GameTime())
}

func (s *GameTestSuite) TestEmptyClipFeedback() {
	w := s.game.StartWave()
	s.game.Weapon.Ammo.InClip = 0

	s.game.Update(16*time.Millisecond, input.Snapshot{Fire: true, PointerWorld: component.Vec2{X: 400, Y: 250}}, w)

	s.Equal([]event.EventType{event.FireBlocked}, s.game.DrainFeedback())
}

func (s *GameTestSuite) TestUpgrades() {
	g := s.game
	s.True(g.ApplyUpgrade(defs.UpgradeFireRate))
	s.Equal(2.0, g.Weapon.Ammo.FireRate)

	s.True(g.ApplyUpgrade(defs.UpgradeClipSize))
	s.Equal(12, g.Weapon.Ammo.ClipSize)

	s.True(g.ApplyUpgrade(defs.UpgradeMaxHealth))
	s.Equal(120, g.Player.MaxHealth)

	s.True(g.ApplyUpgrade(defs.UpgradeRunSpeed))
	s.InDelta(240, g.Player.Speed, 1e-9)

	g.Player.Health = 30
	s.True(g.ApplyUpgrade(defs.UpgradeHealthPickup))
	s.Equal(120, g.Player.Health)

	s.True(g.ApplyUpgrade(defs.UpgradeAmmoPickup))
	s.Equal(24+24, g.Weapon.Ammo.Spare)

	s.False(g.ApplyUpgrade(defs.UpgradeNone))
	s.False(g.ApplyUpgrade(defs.Upgrade(7)))
}

func (s *GameTestSuite) TestNewSessionResets() {
	g := s.game
	g.StartWave()
	g.ApplyUpgrade(defs.UpgradeRunSpeed)
	g.Weapon.Ammo.Spare = 0
	g.Player.Health = 1

	g.NewSession()

	s.Equal(0, g.WaveNumber())
	s.Equal(s.tuning.BulletsSpare, g.Weapon.Ammo.Spare)
	s.Equal(s.tuning.PlayerHealth, g.Player.Health)
	s.InDelta(s.tuning.PlayerSpeed, g.Player.Speed, 1e-9)
	s.True(g.HasNextWave())
}

func (s *GameTestSuite) TestCampaignLength() {
	for i := 1; i < s.tuning.Waves; i++ {
		s.game.StartWave()
		s.True(s.game.HasNextWave(), "wave %d", i)
	}
	s.game.StartWave()
	s.False(s.game.HasNextWave())
}

func (s *GameTestSuite) TestUpgradeLabels() {
	labels := app.UpgradeLabels()
	s.Len(labels, defs.UpgradeCount)
	s.Equal(defs.UpgradeFireRate.String(), labels[0])
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}
