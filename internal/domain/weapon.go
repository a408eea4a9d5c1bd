package domain

// Weapon is a combat tier. The zero value means unarmed.
type Weapon int

const (
	WeaponNone Weapon = iota
	WeaponStick
	WeaponKnife
	WeaponSword
	WeaponGun
)

// AllWeapons lists every tier in rank order, the unarmed sentinel included.
// Scavenging draws from the full set, so a "find" can turn up nothing.
var AllWeapons = []Weapon{WeaponNone, WeaponStick, WeaponKnife, WeaponSword, WeaponGun}

// Rank returns the combat strength used to resolve kill attempts.
// The order is total: None < Stick < Knife < Sword < Gun.
func (w Weapon) Rank() int {
	return int(w)
}

// Name returns the narration name for a weapon tier.
func (w Weapon) Name() string {
	switch w {
	case WeaponStick:
		return "stick"
	case WeaponKnife:
		return "knife"
	case WeaponSword:
		return "sword"
	case WeaponGun:
		return "gun"
	default:
		return "nothing"
	}
}
