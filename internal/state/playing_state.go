// internal/state/playing_state.go
package state

import (
	"time"

	"zombie-arena/internal/app"
	"zombie-arena/internal/component"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
)

var _ State = (*PlayingState)(nil)

// PlayingState - идёт волна. Владеет живой волной; при выходе в GameOver
// или LevelingUp волна отбрасывается вместе с состоянием.
type PlayingState struct {
	sm      *StateMachine
	wave    *app.Wave
	pointer component.Vec2
}

func NewPlayingState(sm *StateMachine, wave *app.Wave) *PlayingState {
	return &PlayingState{sm: sm, wave: wave}
}

func (s *PlayingState) Phase() component.Phase { return component.Playing }

func (s *PlayingState) Wave() *app.Wave {
	return s.wave
}

// Enter restarts the frame clock so time spent outside Playing (menu or
// pause) is never simulated.
func (s *PlayingState) Enter() {
	s.sm.clock.Restart()
}

func (s *PlayingState) HandleInput(in input.Snapshot) {
	s.pointer = in.PointerWorld
	if in.Confirm {
		s.sm.SetState(NewPausedState(s.sm, s))
	}
}

func (s *PlayingState) Update(dt time.Duration, in input.Snapshot) {
	g := s.sm.game
	switch g.Update(dt, in, s.wave) {
	case app.OutcomePlayerDied:
		s.sm.SetState(NewGameOverState(s.sm))
	case app.OutcomeWaveCleared:
		if g.HasNextWave() {
			s.sm.SetState(NewLevelingUpState(s.sm))
		} else {
			s.sm.SetState(NewGameOverState(s.sm))
		}
	}
}

func (s *PlayingState) Draw(f *scene.Frame) {
	s.sm.game.FillScene(f, s.wave, s.pointer)
}

func (s *PlayingState) Exit() {}
