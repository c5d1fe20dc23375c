package engine

import (
	"zombie-arena/internal/component"
	"zombie-arena/internal/defs"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
)

// Autopilot plays the game from the frames it is shown: it starts one game,
// picks upgrades in turn, shoots the nearest pursuer and reloads on an empty
// clip. It quits when that game is over.
type Autopilot struct {
	last    scene.Frame
	seen    bool
	started bool
	upgrade int
}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Present remembers f for the next Poll.
func (a *Autopilot) Present(f scene.Frame) error {
	a.last = f
	a.seen = true
	return nil
}

func (a *Autopilot) Poll(component.Vec2) input.Snapshot {
	f := a.last
	if !a.seen {
		return input.Snapshot{}
	}

	switch f.Phase {
	case component.GameOver:
		if a.started {
			return input.Snapshot{Quit: true}
		}
		a.started = true
		return input.Snapshot{Confirm: true}
	case component.LevelingUp:
		a.upgrade = a.upgrade%defs.UpgradeCount + 1
		return input.Snapshot{Upgrade: a.upgrade}
	case component.Paused:
		return input.Snapshot{Confirm: true}
	}

	target, ok := nearest(f.Player.Pos, f.Pursuers)
	if !ok {
		return input.Snapshot{PointerWorld: f.Crosshair}
	}
	in := input.Snapshot{PointerWorld: target}
	if f.HUD.InClip == 0 {
		in.Reload = true
	} else {
		in.Fire = true
	}
	return in
}

func nearest(from component.Vec2, sprites []scene.Sprite) (component.Vec2, bool) {
	best, bestDist, found := component.Vec2{}, 0.0, false
	for _, s := range sprites {
		if d := s.Pos.Dist(from); !found || d < bestDist {
			best, bestDist, found = s.Pos, d, true
		}
	}
	return best, found
}
