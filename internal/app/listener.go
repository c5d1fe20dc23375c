package app

import (
	"log/slog"

	"zombie-arena/internal/event"
)

// GameEventListener логирует события волны и копит заметные события кадра
// для презентера.
type GameEventListener struct {
	game     *Game
	feedback []event.EventType
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if info, ok := e.Data.(event.WaveInfo); ok {
			slog.Info("Wave started", "wave", info.Number, "pursuers", info.Count)
		}
		return
	case event.WaveCleared:
		if info, ok := e.Data.(event.WaveInfo); ok {
			slog.Info("Wave cleared", "wave", info.Number, "game_time", l.game.gameTime)
		}
	case event.PlayerDied:
		slog.Info("Player died", "wave", l.game.waveNumber, "game_time", l.game.gameTime)
	case event.FireBlocked:
		// Holding fire through the cooldown is normal, only an empty clip is news.
		if e.Data != event.ClipEmpty {
			return
		}
	}
	l.feedback = append(l.feedback, e.Type)
}

func (l *GameEventListener) drain() []event.EventType {
	out := l.feedback
	l.feedback = nil
	return out
}
