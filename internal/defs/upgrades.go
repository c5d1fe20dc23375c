package defs

// Upgrade is one of the numbered choices offered between waves.
type Upgrade int

const (
	UpgradeNone Upgrade = iota
	UpgradeFireRate
	UpgradeClipSize
	UpgradeMaxHealth
	UpgradeRunSpeed
	UpgradeHealthPickup
	UpgradeAmmoPickup
)

// UpgradeCount is how many choices the leveling-up screen offers (keys 1..6).
const UpgradeCount = 6

// Valid reports whether u is one of the selectable choices.
func (u Upgrade) Valid() bool {
	return u >= UpgradeFireRate && u <= UpgradeAmmoPickup
}

func (u Upgrade) String() string {
	switch u {
	case UpgradeFireRate:
		return "Increased rate of fire"
	case UpgradeClipSize:
		return "Increased clip size (next reload)"
	case UpgradeMaxHealth:
		return "Increased max health"
	case UpgradeRunSpeed:
		return "Increased run speed"
	case UpgradeHealthPickup:
		return "Patch up wounds"
	case UpgradeAmmoPickup:
		return "Extra ammo"
	}
	return "None"
}
