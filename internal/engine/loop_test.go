package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"zombie-arena/internal/clock"
	"zombie-arena/internal/component"
	"zombie-arena/internal/config"
	"zombie-arena/internal/engine"
	enginemock "zombie-arena/internal/engine/mock"
	"zombie-arena/internal/event"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// scriptedSource replays snapshots, then asks to quit.
type scriptedSource struct {
	script  []input.Snapshot
	polls   int
	cameras []component.Vec2
}

func (s *scriptedSource) Poll(camera component.Vec2) input.Snapshot {
	s.cameras = append(s.cameras, camera)
	s.polls++
	if s.polls > len(s.script) {
		return input.Snapshot{Quit: true}
	}
	return s.script[s.polls-1]
}

type LoopTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	presenter *enginemock.MockPresenter
	mock      *clock.MockTimeProvider
	loop      *engine.Loop
}

func (s *LoopTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.presenter = enginemock.NewMockPresenter(s.ctrl)
	s.mock = clock.NewMockTimeProvider(epoch)

	tuning := config.Default()
	tuning.Seed = 42
	var err error
	s.loop, err = engine.NewLoop(tuning, nil, s.mock)
	s.Require().NoError(err)
	s.loop.TickInterval = time.Millisecond
}

func (s *LoopTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LoopTestSuite) play() scene.Frame {
	s.loop.Frame(input.Snapshot{Confirm: true})
	return s.loop.Frame(input.Snapshot{Upgrade: 2})
}

func (s *LoopTestSuite) TestNewLoopRejectsBadTuning() {
	bad := config.Default()
	bad.PoolSize = 0
	loop, err := engine.NewLoop(bad, nil, nil)
	s.Error(err)
	s.Nil(loop)
}

func (s *LoopTestSuite) TestFirstFrameIsGameOver() {
	f := s.loop.Frame(input.Snapshot{})
	s.Equal(component.GameOver, f.Phase)
	s.False(f.HasWave())
	s.Empty(f.Pursuers)
}

func (s *LoopTestSuite) TestStartingAWave() {
	f := s.loop.Frame(input.Snapshot{Confirm: true})
	s.Equal(component.LevelingUp, f.Phase)
	s.Len(f.Upgrades, 6)

	f = s.loop.Frame(input.Snapshot{Upgrade: 2})
	s.Equal(component.Playing, f.Phase)
	s.True(f.HasWave())
	s.Len(f.Pursuers, config.WaveZombies)
	s.Equal(12, f.HUD.ClipSize)
	s.Equal(f.Player.Pos, f.Camera)
	s.Equal(1, f.HUD.Wave)
}

func (s *LoopTestSuite) TestStepIsClamped() {
	s.play()
	s.mock.Advance(2 * time.Second)
	s.loop.Frame(input.Snapshot{})
	s.Equal(engine.MaxDelta, s.loop.Game().GameTime())
}

func (s *LoopTestSuite) TestPausedTimeIsNotSimulated() {
	s.play()
	s.mock.Advance(16 * time.Millisecond)
	s.loop.Frame(input.Snapshot{})
	s.Equal(16*time.Millisecond, s.loop.Game().GameTime())

	f := s.loop.Frame(input.Snapshot{Confirm: true})
	s.Equal(component.Paused, f.Phase)
	s.True(f.HasWave())

	s.mock.Advance(5 * time.Minute)
	s.loop.Frame(input.Snapshot{})
	f = s.loop.Frame(input.Snapshot{Confirm: true})
	s.Equal(component.Playing, f.Phase)
	s.Equal(16*time.Millisecond, s.loop.Game().GameTime())

	s.mock.Advance(10 * time.Millisecond)
	s.loop.Frame(input.Snapshot{})
	s.Equal(26*time.Millisecond, s.loop.Game().GameTime())
}

func (s *LoopTestSuite) TestFrameCarriesFeedback() {
	s.play()
	s.mock.Advance(16 * time.Millisecond)
	f := s.loop.Frame(input.Snapshot{Fire: true, PointerWorld: component.Vec2{X: 400, Y: 250}})

	s.Contains(f.Feedback, event.ShotFired)
	s.Len(f.Projectiles, 1)
	s.Equal(5, f.HUD.InClip)
}

func (s *LoopTestSuite) TestRunStopsOnQuit() {
	src := &scriptedSource{script: []input.Snapshot{{Confirm: true}, {Upgrade: 1}, {}}}
	var phases []component.Phase
	s.presenter.EXPECT().Present(gomock.Any()).DoAndReturn(func(f scene.Frame) error {
		phases = append(phases, f.Phase)
		return nil
	}).Times(3)

	err := s.loop.Run(context.Background(), src, s.presenter)

	s.NoError(err)
	s.Equal([]component.Phase{component.LevelingUp, component.Playing, component.Playing}, phases)
	s.Equal(component.Vec2{}, src.cameras[0])
	s.Equal(component.Vec2{X: 250, Y: 250}, src.cameras[2])
}

func (s *LoopTestSuite) TestRunReturnsPresenterError() {
	src := &scriptedSource{script: []input.Snapshot{{}, {}}}
	boom := errors.New("screen gone")
	s.presenter.EXPECT().Present(gomock.Any()).Return(boom)

	err := s.loop.Run(context.Background(), src, s.presenter)

	s.ErrorIs(err, boom)
}

func (s *LoopTestSuite) TestRunStopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &scriptedSource{script: []input.Snapshot{{}}}

	err := s.loop.Run(ctx, src, s.presenter)

	s.ErrorIs(err, context.Canceled)
}

func (s *LoopTestSuite) TestCloseDropsProjectiles() {
	s.play()
	s.loop.Frame(input.Snapshot{Fire: true, PointerWorld: component.Vec2{X: 400, Y: 250}})
	s.loop.Close()
	s.Empty(s.loop.Game().Weapon.Pool().InFlight())
}

func TestLoopTestSuite(t *testing.T) {
	suite.Run(t, new(LoopTestSuite))
}
