// internal/state/pause_state.go
package state

import (
	"time"

	"zombie-arena/internal/component"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
)

// Убеждаемся, что PausedState соответствует интерфейсу State
var _ State = (*PausedState)(nil)

// PausedState держит приостановленную волну. Время в паузе не идёт:
// при возврате PlayingState.Enter перезапускает часы.
type PausedState struct {
	sm      *StateMachine
	playing *PlayingState
}

func NewPausedState(sm *StateMachine, playing *PlayingState) *PausedState {
	return &PausedState{sm: sm, playing: playing}
}

func (s *PausedState) Phase() component.Phase { return component.Paused }

func (s *PausedState) Enter() {}

func (s *PausedState) HandleInput(in input.Snapshot) {
	if in.Confirm {
		s.sm.SetState(s.playing)
	}
}

func (s *PausedState) Update(time.Duration, input.Snapshot) {}

// Draw shows the frozen wave; the presenter dims it.
func (s *PausedState) Draw(f *scene.Frame) {
	s.playing.Draw(f)
}

func (s *PausedState) Exit() {}
