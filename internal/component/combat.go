package component

import "time"

// Ammo - учёт патронов оружия игрока.
// Invariant: 0 <= InClip <= ClipSize, Spare >= 0.
type Ammo struct {
	InClip   int     // заряжено в обойме
	Spare    int     // запас
	ClipSize int     // ёмкость обоймы
	FireRate float64 // выстрелов в секунду
}

// FireInterval is the minimum game time between two shots.
func (a Ammo) FireInterval() time.Duration {
	if a.FireRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / a.FireRate)
}
