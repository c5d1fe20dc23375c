// internal/state/state.go
package state

import (
	"log/slog"
	"time"

	"zombie-arena/internal/app"
	"zombie-arena/internal/clock"
	"zombie-arena/internal/component"
	"zombie-arena/internal/event"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
)

// State - интерфейс для всех состояний
type State interface {
	Phase() component.Phase
	Enter()
	// HandleInput reacts to the edge inputs of the frame and may switch state.
	HandleInput(in input.Snapshot)
	// Update advances the simulation; only Playing does anything here.
	Update(dt time.Duration, in input.Snapshot)
	Draw(f *scene.Frame)
	Exit()
}

// StateMachine - структура для управления состояниями. Начинает с GameOver.
type StateMachine struct {
	current State
	game    *app.Game
	clock   *clock.FrameClock
}

// NewStateMachine создаёт машину в состоянии GameOver. clock is restarted
// every time Playing is entered.
func NewStateMachine(game *app.Game, frameClock *clock.FrameClock) *StateMachine {
	sm := &StateMachine{game: game, clock: frameClock}
	sm.current = NewGameOverState(sm)
	sm.current.Enter()
	return sm
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if newState == nil || newState == sm.current {
		return
	}
	from := sm.current.Phase()
	sm.current.Exit()
	sm.current = newState
	sm.current.Enter()

	to := sm.current.Phase()
	slog.Info("Phase changed", "from", from.String(), "to", to.String(), "wave", sm.game.WaveNumber())
	sm.game.EventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChange{From: from.String(), To: to.String()},
	})
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Phase() component.Phase {
	return sm.current.Phase()
}

func (sm *StateMachine) Game() *app.Game {
	return sm.game
}

func (sm *StateMachine) HandleInput(in input.Snapshot) {
	sm.current.HandleInput(in)
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(dt time.Duration, in input.Snapshot) {
	sm.current.Update(dt, in)
}

// Draw fills f with the phase, HUD numbers and whatever the current state shows.
func (sm *StateMachine) Draw(f *scene.Frame) {
	f.Phase = sm.current.Phase()
	sm.game.FillHUD(f)
	sm.current.Draw(f)
}
