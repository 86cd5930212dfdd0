package port

import (
	"context"

	"github.com/bnema/fruitwm/internal/domain/entity"
)

// KeybindingsProvider provides the configured keybindings in configuration order.
type KeybindingsProvider interface {
	GetKeybindings(ctx context.Context) ([]entity.Keybinding, error)
	GetDefaultKeybindings(ctx context.Context) ([]entity.Keybinding, error)
}
