package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModifier is returned when a modifier name has no X11 mask bit.
var ErrUnknownModifier = errors.New("unknown modifier")

// Modifier is an X11 key/button state mask.
type Modifier uint16

const (
	ModShift      Modifier = 1 << 0
	ModCapsLock   Modifier = 1 << 1
	ModControl    Modifier = 1 << 2
	ModAlt        Modifier = 1 << 3 // Mod1
	ModNumLock    Modifier = 1 << 4 // Mod2
	ModSuper      Modifier = 1 << 6 // Mod4
	ModScrollLock Modifier = 1 << 7 // Mod5
)

// LockMask is the union of the lock modifiers ignored when matching.
const LockMask = ModCapsLock | ModNumLock | ModScrollLock

// LockCombinations lists every subset of LockMask. A binding is grabbed once
// per entry so it fires whatever the lock state is.
var LockCombinations = []Modifier{
	0,
	ModCapsLock,
	ModNumLock,
	ModCapsLock | ModNumLock,
	ModScrollLock,
	ModCapsLock | ModScrollLock,
	ModNumLock | ModScrollLock,
	ModCapsLock | ModNumLock | ModScrollLock,
}

var modifierNames = map[string]Modifier{
	"shift":     ModShift,
	"capslock":  ModCapsLock,
	"control":   ModControl,
	"alt":       ModAlt,
	"numlock":   ModNumLock,
	"super":     ModSuper,
	"scrollock": ModScrollLock,
}

// ModifierNames returns the accepted modifier names in mask order.
func ModifierNames() []string {
	return []string{"shift", "capslock", "control", "alt", "numlock", "super", "scrollock"}
}

// ParseModifier maps a modifier name to its mask bit.
func ParseModifier(name string) (Modifier, error) {
	mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
	}
	return mod, nil
}

// ModifierMask ORs together the bits of every named modifier.
func ModifierMask(names []string) (Modifier, error) {
	var mask Modifier
	for _, name := range names {
		mod, err := ParseModifier(name)
		if err != nil {
			return 0, err
		}
		mask |= mod
	}
	return mask, nil
}

// Matches reports whether an event state triggers mask.
// Every bit of mask must be set and every other bit must be a lock bit.
func (mask Modifier) Matches(state Modifier) bool {
	if state&mask != mask {
		return false
	}
	return (state&^mask)&^LockMask == 0
}

func (mask Modifier) String() string {
	if mask == 0 {
		return "none"
	}
	var parts []string
	for _, name := range ModifierNames() {
		if mask&modifierNames[name] != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "+")
}

// Keycode is a hardware key code as reported by the display server.
type Keycode uint8

// Keybinding maps a key plus modifiers to an action.
type Keybinding struct {
	Action    Action
	Key       string
	Modifiers []string
}

// Mask returns the combined modifier mask of the binding.
func (k Keybinding) Mask() (Modifier, error) {
	return ModifierMask(k.Modifiers)
}

func (k Keybinding) String() string {
	if len(k.Modifiers) == 0 {
		return k.Key
	}
	return strings.Join(k.Modifiers, "+") + "+" + k.Key
}
