package domain

import "testing"

func TestAnnounceKeepsFloorMultiplier(t *testing.T) {
	a := NewAnnounce()
	if a.Multiplier != MultiplierGame {
		t.Fatalf("Multiplier = %d on a fresh announce, want %d", a.Multiplier, MultiplierGame)
	}

	a.Set(AnnounceNull)
	if a.Type != AnnounceNull {
		t.Fatalf("Type = %s, want %s", a.Type, AnnounceNull)
	}
	if a.Multiplier != MultiplierGame {
		t.Fatalf("Multiplier = %d after declaring, want %d", a.Multiplier, MultiplierGame)
	}
}
