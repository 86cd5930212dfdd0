package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// KeyGrab is one passive key grab to install on the root window.
type KeyGrab struct {
	Keycode entity.Keycode
	Mask    entity.Modifier
}

type compiledBinding struct {
	binding  entity.Keybinding
	mask     entity.Modifier
	keycodes []entity.Keycode
}

// KeyMatcher resolves key presses to actions for a fixed set of keybindings.
type KeyMatcher struct {
	bindings []compiledBinding
}

// NewKeyMatcher resolves every binding's key and modifiers up front.
// An unknown modifier is an error. A key without any keycode in the current
// mapping is kept but can never fire.
func NewKeyMatcher(ctx context.Context, bindings []entity.Keybinding, resolver port.KeyResolver) (*KeyMatcher, error) {
	log := logging.FromContext(ctx)
	if resolver == nil {
		return nil, fmt.Errorf("key resolver is nil")
	}

	compiled := make([]compiledBinding, 0, len(bindings))
	for i, kb := range bindings {
		mask, err := kb.Mask()
		if err != nil {
			return nil, fmt.Errorf("keybinding %d (%s): %w", i, kb, err)
		}
		keycodes, err := resolver.Keycodes(kb.Key)
		if err != nil {
			return nil, fmt.Errorf("keybinding %d (%s): resolve key: %w", i, kb, err)
		}
		if len(keycodes) == 0 {
			log.Warn().Str("key", kb.Key).Str("action", string(kb.Action)).Msg("no keycode for key, binding disabled")
		}
		if !kb.Action.IsKnown() {
			log.Warn().Str("action", string(kb.Action)).Str("binding", kb.String()).Msg("keybinding uses unknown action")
		}
		compiled = append(compiled, compiledBinding{binding: kb, mask: mask, keycodes: keycodes})
	}

	log.Debug().Int("bindings", len(compiled)).Msg("key matcher ready")
	return &KeyMatcher{bindings: compiled}, nil
}

// Match returns the actions of every binding triggered by a key press,
// in configuration order.
func (m *KeyMatcher) Match(keycode entity.Keycode, state entity.Modifier) []entity.Action {
	if m == nil {
		return nil
	}
	var actions []entity.Action
	for _, cb := range m.bindings {
		if !cb.mask.Matches(state) {
			continue
		}
		for _, kc := range cb.keycodes {
			if kc == keycode {
				actions = append(actions, cb.binding.Action)
				break
			}
		}
	}
	return actions
}

// Grabs lists the key grabs needed for every binding to fire regardless of
// the lock modifiers.
func (m *KeyMatcher) Grabs() []KeyGrab {
	if m == nil {
		return nil
	}
	var grabs []KeyGrab
	seen := make(map[KeyGrab]struct{})
	for _, cb := range m.bindings {
		for _, kc := range cb.keycodes {
			for _, locks := range entity.LockCombinations {
				g := KeyGrab{Keycode: kc, Mask: cb.mask | locks}
				if _, dup := seen[g]; dup {
					continue
				}
				seen[g] = struct{}{}
				grabs = append(grabs, g)
			}
		}
	}
	return grabs
}

// Bindings returns the configured bindings with their resolved masks.
func (m *KeyMatcher) Bindings() []ResolvedBinding {
	if m == nil {
		return nil
	}
	out := make([]ResolvedBinding, len(m.bindings))
	for i, cb := range m.bindings {
		out[i] = ResolvedBinding{Binding: cb.binding, Mask: cb.mask, Keycodes: cb.keycodes}
	}
	return out
}

// ResolvedBinding is a keybinding with its modifier mask and keycodes.
type ResolvedBinding struct {
	Binding  entity.Keybinding
	Mask     entity.Modifier
	Keycodes []entity.Keycode
}
