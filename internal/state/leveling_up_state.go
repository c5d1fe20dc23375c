// internal/state/leveling_up_state.go
package state

import (
	"time"

	"zombie-arena/internal/app"
	"zombie-arena/internal/component"
	"zombie-arena/internal/defs"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
)

var _ State = (*LevelingUpState)(nil)

// LevelingUpState - выбор улучшения перед следующей волной.
type LevelingUpState struct {
	sm *StateMachine
}

func NewLevelingUpState(sm *StateMachine) *LevelingUpState {
	return &LevelingUpState{sm: sm}
}

func (s *LevelingUpState) Phase() component.Phase { return component.LevelingUp }

func (s *LevelingUpState) Enter() {}

// HandleInput applies the chosen upgrade, prepares a brand new wave and
// starts playing it. Anything but keys 1..6 is ignored.
func (s *LevelingUpState) HandleInput(in input.Snapshot) {
	choice := defs.Upgrade(in.Upgrade)
	if !choice.Valid() {
		return
	}
	g := s.sm.game
	g.ApplyUpgrade(choice)
	s.sm.SetState(NewPlayingState(s.sm, g.StartWave()))
}

func (s *LevelingUpState) Update(time.Duration, input.Snapshot) {}

func (s *LevelingUpState) Draw(f *scene.Frame) {
	f.Upgrades = app.UpgradeLabels()
}

func (s *LevelingUpState) Exit() {}
