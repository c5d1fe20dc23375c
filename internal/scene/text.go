package scene

import (
	"fmt"
	"slices"

	"zombie-arena/internal/component"
	"zombie-arena/internal/event"
)

// Banner returns the centred message lines for the current phase; none while
// playing.
func (f *Frame) Banner() []string {
	switch f.Phase {
	case component.GameOver:
		lines := []string{"ZOMBIE ARENA"}
		if f.HUD.Wave > 0 {
			lines = append(lines, fmt.Sprintf("Reached wave %d of %d", f.HUD.Wave, f.HUD.Waves))
		}
		return append(lines, "Press Enter to play")
	case component.LevelingUp:
		lines := []string{"Choose an upgrade"}
		for i, label := range f.Upgrades {
			lines = append(lines, fmt.Sprintf("%d - %s", i+1, label))
		}
		return lines
	case component.Paused:
		return []string{"PAUSED", "Press Enter to continue"}
	}
	return nil
}

// StatusLine is the one-line HUD text.
func (f *Frame) StatusLine() string {
	h := f.HUD
	return fmt.Sprintf("Wave %d/%d  Ammo %d/%d  HP %d/%d  Zombies %d/%d",
		h.Wave, h.Waves, h.InClip, h.Spare, h.Health, h.MaxHealth, h.Remaining, h.Spawned)
}

// Alert is a short warning derived from this frame's feedback, or "".
func (f *Frame) Alert() string {
	switch {
	case slices.Contains(f.Feedback, event.ReloadFailed):
		return "NO SPARE AMMO"
	case slices.Contains(f.Feedback, event.FireBlocked):
		return "RELOAD (R)"
	case slices.Contains(f.Feedback, event.PlayerHit):
		return "OUCH"
	}
	return ""
}
