package config

import (
	"context"
	"slices"

	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// KeybindingsGateway implements port.KeybindingsProvider on top of the Manager.
type KeybindingsGateway struct {
	mgr *Manager
}

// NewKeybindingsGateway creates a new KeybindingsGateway.
func NewKeybindingsGateway(mgr *Manager) *KeybindingsGateway {
	return &KeybindingsGateway{mgr: mgr}
}

// GetKeybindings returns the configured keybindings in file order.
func (g *KeybindingsGateway) GetKeybindings(ctx context.Context) ([]entity.Keybinding, error) {
	log := logging.FromContext(ctx)
	cfg := g.mgr.Get()
	log.Debug().Int("count", len(cfg.Keybindings)).Msg("keybindings gateway: fetching keybindings")

	return toEntityBindings(cfg.Keybindings), nil
}

// GetDefaultKeybindings returns the built-in keybinding table.
func (*KeybindingsGateway) GetDefaultKeybindings(ctx context.Context) ([]entity.Keybinding, error) {
	defaults := DefaultKeybindings()
	logging.FromContext(ctx).Debug().Int("count", len(defaults)).Msg("keybindings gateway: returning default keybindings")

	return toEntityBindings(defaults), nil
}

func toEntityBindings(cfg []KeybindingConfig) []entity.Keybinding {
	out := make([]entity.Keybinding, 0, len(cfg))
	for _, kb := range cfg {
		out = append(out, entity.Keybinding{
			Action:    entity.Action(kb.Action),
			Key:       kb.Key,
			Modifiers: slices.Clone(kb.Modifiers),
		})
	}
	return out
}
