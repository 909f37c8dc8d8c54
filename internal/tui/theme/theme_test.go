package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %s", got)
	}
	if got := ByName("neon").Name; got != FlexokiDark.Name {
		t.Fatalf("unknown theme = %s, want %s", got, FlexokiDark.Name)
	}
	if Valid("neon") || !Valid("terminal") {
		t.Fatal("Valid misreports")
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)
	SetActive("catppuccin-mocha")
	if Active.Name != "catppuccin-mocha" {
		t.Fatalf("Active = %s", Active.Name)
	}
	if len(Names()) != len(All) {
		t.Fatal("Names length mismatch")
	}
}
