// internal/state/game_over_state.go
package state

import (
	"time"

	"zombie-arena/internal/component"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
)

var _ State = (*GameOverState)(nil)

// GameOverState - стартовый экран и экран после поражения или победы.
type GameOverState struct {
	sm *StateMachine
}

func NewGameOverState(sm *StateMachine) *GameOverState {
	return &GameOverState{sm: sm}
}

func (s *GameOverState) Phase() component.Phase { return component.GameOver }

func (s *GameOverState) Enter() {}

// HandleInput starts a new game on Confirm.
func (s *GameOverState) HandleInput(in input.Snapshot) {
	if !in.Confirm {
		return
	}
	s.sm.game.NewSession()
	s.sm.SetState(NewLevelingUpState(s.sm))
}

func (s *GameOverState) Update(time.Duration, input.Snapshot) {}

func (s *GameOverState) Draw(*scene.Frame) {}

func (s *GameOverState) Exit() {}
