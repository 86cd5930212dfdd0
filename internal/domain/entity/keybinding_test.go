package entity

import (
	"errors"
	"testing"
)

func TestParseModifier(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"shift", 1},
		{"capslock", 2},
		{"control", 4},
		{"alt", 8},
		{"numlock", 16},
		{"super", 64},
		{"scrollock", 128},
		{"ALT", 8},
	}
	for _, tt := range tests {
		got, err := ParseModifier(tt.name)
		if err != nil {
			t.Fatalf("ParseModifier(%q) error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ParseModifier(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestParseModifier_Unknown(t *testing.T) {
	_, err := ParseModifier("hyper")
	if !errors.Is(err, ErrUnknownModifier) {
		t.Fatalf("expected ErrUnknownModifier, got %v", err)
	}
}

func TestModifierMask(t *testing.T) {
	mask, err := ModifierMask([]string{"alt", "shift"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mask != 9 {
		t.Fatalf("mask = %d, want 9", mask)
	}

	if _, err := ModifierMask([]string{"alt", "meta"}); !errors.Is(err, ErrUnknownModifier) {
		t.Fatalf("expected ErrUnknownModifier, got %v", err)
	}
}

func TestLockCombinations(t *testing.T) {
	want := []Modifier{0, 2, 16, 18, 128, 130, 144, 146}
	if len(LockCombinations) != len(want) {
		t.Fatalf("got %d combinations, want %d", len(LockCombinations), len(want))
	}
	for i := range want {
		if LockCombinations[i] != want[i] {
			t.Errorf("LockCombinations[%d] = %d, want %d", i, LockCombinations[i], want[i])
		}
	}
	if LockMask != 146 {
		t.Errorf("LockMask = %d, want 146", LockMask)
	}
}

func TestModifier_Matches(t *testing.T) {
	alt := ModAlt
	tests := []struct {
		name  string
		mask  Modifier
		state Modifier
		want  bool
	}{
		{"exact", alt, alt, true},
		{"with numlock", alt, alt | ModNumLock, true},
		{"with every lock", alt, alt | LockMask, true},
		{"extra shift", alt, alt | ModShift, false},
		{"missing alt", alt, ModShift, false},
		{"no modifiers bound", 0, ModCapsLock, true},
		{"no modifiers bound but control held", 0, ModControl, false},
		{"shift+alt", alt | ModShift, alt | ModShift | ModCapsLock, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.Matches(tt.state); got != tt.want {
				t.Errorf("Matches(%d, %d) = %v, want %v", tt.mask, tt.state, got, tt.want)
			}
		})
	}
}

func TestKeybinding_String(t *testing.T) {
	kb := Keybinding{Action: ActionBreakClient, Key: "n", Modifiers: []string{"alt", "shift"}}
	if got := kb.String(); got != "alt+shift+n" {
		t.Errorf("String() = %q", got)
	}
	if got := (Modifier(9)).String(); got != "shift+alt" {
		t.Errorf("Modifier.String() = %q", got)
	}
}

func TestAction_IsKnown(t *testing.T) {
	if !ActionDestroySplit.IsKnown() {
		t.Error("DESTROY_SPLIT should be known")
	}
	if Action("EXPLODE").IsKnown() {
		t.Error("EXPLODE should not be known")
	}
}
