package event

const (
	PursuerKilled EventType = "PursuerKilled" // зомби убит, Data: *entity.Pursuer
	WaveStarted   EventType = "WaveStarted"   // Data: WaveInfo
	WaveCleared   EventType = "WaveCleared"   // все зомби волны мертвы, Data: WaveInfo
	PlayerHit     EventType = "PlayerHit"     // Data: int, оставшееся здоровье
	PlayerDied    EventType = "PlayerDied"    // здоровье игрока дошло до нуля
	ShotFired     EventType = "ShotFired"     // Data: int, индекс слота пула
	FireBlocked   EventType = "FireBlocked"   // Data: FireBlockReason
	Reloaded      EventType = "Reloaded"      // Data: component.Ammo после перезарядки
	ReloadFailed  EventType = "ReloadFailed"  // запас пуст
	PhaseChanged  EventType = "PhaseChanged"  // Data: PhaseChange
)

// FireBlockReason says why a fire request did not produce a shot.
type FireBlockReason string

const (
	ClipEmpty   FireBlockReason = "clip_empty"
	CoolingDown FireBlockReason = "cooling_down"
)

// WaveInfo describes the wave a WaveStarted/WaveCleared event refers to.
type WaveInfo struct {
	Number int
	Count  int
}

// PhaseChange carries the phase names of a transition.
type PhaseChange struct {
	From, To string
}
