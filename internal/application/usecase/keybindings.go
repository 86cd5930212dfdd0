package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
)

// GetKeybindingsUseCase retrieves the configured keybindings.
type GetKeybindingsUseCase struct {
	provider port.KeybindingsProvider
}

// NewGetKeybindingsUseCase creates a new GetKeybindingsUseCase.
func NewGetKeybindingsUseCase(provider port.KeybindingsProvider) *GetKeybindingsUseCase {
	return &GetKeybindingsUseCase{provider: provider}
}

// Execute retrieves all keybindings, rejecting any binding whose modifiers
// cannot be mapped to a mask.
func (uc *GetKeybindingsUseCase) Execute(ctx context.Context) ([]entity.Keybinding, error) {
	if uc == nil || uc.provider == nil {
		return nil, fmt.Errorf("keybindings provider is nil")
	}
	bindings, err := uc.provider.GetKeybindings(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateKeybindings(bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

// ExecuteDefaults retrieves the built-in keybindings.
func (uc *GetKeybindingsUseCase) ExecuteDefaults(ctx context.Context) ([]entity.Keybinding, error) {
	if uc == nil || uc.provider == nil {
		return nil, fmt.Errorf("keybindings provider is nil")
	}
	return uc.provider.GetDefaultKeybindings(ctx)
}

func validateKeybindings(bindings []entity.Keybinding) error {
	for i, kb := range bindings {
		if kb.Key == "" {
			return fmt.Errorf("keybinding %d: key is required", i)
		}
		if kb.Action == "" {
			return fmt.Errorf("keybinding %d: action is required", i)
		}
		if _, err := kb.Mask(); err != nil {
			return fmt.Errorf("keybinding %d (%s): %w", i, kb, err)
		}
	}
	return nil
}
