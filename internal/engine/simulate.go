package engine

import (
	"fmt"
	"log/slog"
	"time"

	"zombie-arena/internal/clock"
	"zombie-arena/internal/component"
	"zombie-arena/internal/event"
)

// Summary describes a finished headless run.
type Summary struct {
	Frames   int
	Waves    int
	Kills    int
	Shots    int
	GameTime time.Duration
	Phase    component.Phase
	Health   int
}

func (s Summary) String() string {
	return fmt.Sprintf("frames=%d waves=%d kills=%d shots=%d game_time=%s phase=%s health=%d",
		s.Frames, s.Waves, s.Kills, s.Shots, s.GameTime, s.Phase, s.Health)
}

// Simulate drives l with pilot for at most frames frames, advancing the mock
// clock by step before each one. It stops early when pilot quits.
func Simulate(l *Loop, pilot *Autopilot, mock *clock.MockTimeProvider, frames int, step time.Duration) Summary {
	var sum Summary
	dispatcher := l.Game().EventDispatcher
	dispatcher.Subscribe(event.PursuerKilled, event.ListenerFunc(func(event.Event) { sum.Kills++ }))
	dispatcher.Subscribe(event.ShotFired, event.ListenerFunc(func(event.Event) { sum.Shots++ }))

	for sum.Frames < frames {
		mock.Advance(step)
		in := pilot.Poll(l.Camera())
		if in.Quit {
			break
		}
		// Autopilot.Present never fails.
		_ = pilot.Present(l.Frame(in))
		sum.Frames++
	}

	g := l.Game()
	sum.Waves = g.WaveNumber()
	sum.GameTime = g.GameTime()
	sum.Phase = l.Machine().Phase()
	sum.Health = g.Player.Health
	slog.Info("Simulation finished", "summary", sum.String())
	return sum
}
