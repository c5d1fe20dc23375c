//go:generate mockgen -destination=mock/mock_presenter.go -package=enginemock zombie-arena/internal/engine Presenter

// Package engine drives the simulation one frame at a time: input goes to the
// phase machine, the frame clock is sampled while playing and a scene.Frame
// comes out.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zombie-arena/internal/app"
	"zombie-arena/internal/clock"
	"zombie-arena/internal/component"
	"zombie-arena/internal/config"
	"zombie-arena/internal/defs"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
	"zombie-arena/internal/state"
)

// MaxDelta caps one simulation step after a stall.
const MaxDelta = time.Duration(config.MaxDeltaTime * float64(time.Second))

// DefaultTickInterval is the Run loop period.
const DefaultTickInterval = time.Second / 60

// Presenter shows a finished frame.
type Presenter interface {
	Present(f scene.Frame) error
}

type Loop struct {
	TickInterval time.Duration

	game    *app.Game
	clock   *clock.FrameClock
	machine *state.StateMachine
	camera  component.Vec2
	frames  uint64
}

// NewLoop starts a session in GameOver. A nil provider means the monotonic
// wall clock.
func NewLoop(tuning config.Tuning, patterns map[int]defs.WaveDefinition, provider clock.TimeProvider) (*Loop, error) {
	game, err := app.NewGame(tuning, patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	frameClock := clock.NewFrameClock(provider)
	return &Loop{
		TickInterval: DefaultTickInterval,
		game:         game,
		clock:        frameClock,
		machine:      state.NewStateMachine(game, frameClock),
	}, nil
}

func (l *Loop) Game() *app.Game {
	return l.game
}

func (l *Loop) Machine() *state.StateMachine {
	return l.machine
}

// Camera is the view centre of the last frame, for mapping the pointer.
func (l *Loop) Camera() component.Vec2 {
	return l.camera
}

// Frame runs one tick. Transitions triggered by in happen first; the clock is
// only sampled when the resulting phase is Playing, so time outside Playing
// never reaches the simulation.
func (l *Loop) Frame(in input.Snapshot) scene.Frame {
	l.machine.HandleInput(in)

	if l.machine.Phase() == component.Playing {
		dt := min(l.clock.Restart(), MaxDelta)
		l.machine.Update(dt, in)
	}

	var f scene.Frame
	l.machine.Draw(&f)
	f.Feedback = l.game.DrainFeedback()
	if f.HasWave() {
		l.camera = f.Camera
	}
	l.frames++
	return f
}

// Run polls src and presents a frame every TickInterval until ctx is done or
// the player asks to quit. It returns ctx.Err() on cancellation and nil on
// quit.
func (l *Loop) Run(ctx context.Context, src input.Source, p Presenter) error {
	interval := l.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		in := src.Poll(l.camera)
		if in.Quit {
			slog.Info("Quit requested", "frames", l.frames, "phase", l.machine.Phase().String())
			return nil
		}
		if err := p.Present(l.Frame(in)); err != nil {
			return fmt.Errorf("failed to present frame %d: %w", l.frames, err)
		}
	}
}

// Close ends the session.
func (l *Loop) Close() {
	l.game.Close()
}
