package domain

import "testing"

func TestWeaponRankTotalOrder(t *testing.T) {
	ordered := []Weapon{WeaponNone, WeaponStick, WeaponKnife, WeaponSword, WeaponGun}

	for i, lower := range ordered {
		for j, higher := range ordered {
			got := lower.Rank() < higher.Rank()
			want := i < j
			if got != want {
				t.Errorf("%s.Rank() < %s.Rank() = %v, want %v", lower.Name(), higher.Name(), got, want)
			}
			if (lower.Rank() == higher.Rank()) != (i == j) {
				t.Errorf("rank equality mismatch for %s vs %s", lower.Name(), higher.Name())
			}
		}
	}
}

func TestWeaponRankTransitive(t *testing.T) {
	for _, a := range AllWeapons {
		for _, b := range AllWeapons {
			for _, c := range AllWeapons {
				if a.Rank() < b.Rank() && b.Rank() < c.Rank() && !(a.Rank() < c.Rank()) {
					t.Fatalf("transitivity violated: %s < %s < %s but not %s < %s",
						a.Name(), b.Name(), c.Name(), a.Name(), c.Name())
				}
			}
		}
	}
}

func TestWeaponNames(t *testing.T) {
	tests := []struct {
		weapon Weapon
		want   string
	}{
		{WeaponNone, "nothing"},
		{WeaponStick, "stick"},
		{WeaponKnife, "knife"},
		{WeaponSword, "sword"},
		{WeaponGun, "gun"},
	}

	for _, tt := range tests {
		if got := tt.weapon.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}
