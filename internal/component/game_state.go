package component

// Phase - фаза игровой сессии. Активна ровно одна.
type Phase int

const (
	GameOver Phase = iota
	LevelingUp
	Playing
	Paused
)

func (p Phase) String() string {
	switch p {
	case GameOver:
		return "game_over"
	case LevelingUp:
		return "leveling_up"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "unknown"
}
