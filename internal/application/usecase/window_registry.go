package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// ManageWindowsUseCase adds windows to and removes them from the layout.
type ManageWindowsUseCase struct {
	placer   port.WindowPlacer
	relayout *RelayoutUseCase
}

// NewManageWindowsUseCase creates a new ManageWindowsUseCase.
func NewManageWindowsUseCase(placer port.WindowPlacer, relayout *RelayoutUseCase) *ManageWindowsUseCase {
	return &ManageWindowsUseCase{placer: placer, relayout: relayout}
}

// Manage places id in the active leaf, lays the active workspace out and then
// maps the window. A window already managed elsewhere moves to the active leaf.
func (uc *ManageWindowsUseCase) Manage(ctx context.Context, state *entity.State, id entity.WindowID) error {
	if uc == nil || uc.placer == nil || uc.relayout == nil {
		return fmt.Errorf("manage windows use case is nil")
	}
	if state == nil {
		return fmt.Errorf("state is required")
	}
	ctx = logging.WithWindowID(ctx, uint32(id))
	log := logging.FromContext(ctx)

	ws := state.ActiveWorkspace()
	leaf := ws.ActiveLeaf()
	if state.RemoveWindow(id) {
		log.Debug().Msg("window already managed, moving to active leaf")
	}
	leaf.Windows.Add(id)

	if _, err := uc.relayout.Execute(ctx, ws); err != nil {
		return fmt.Errorf("relayout after manage: %w", err)
	}
	uc.placer.MapWindow(id)

	log.Debug().Uint64("leaf_id", uint64(leaf.ID)).Msg("window managed")
	return nil
}

// Unmanage forgets id in every workspace and lays the active workspace out.
// Unmanaging an unknown window only re-applies the current layout.
func (uc *ManageWindowsUseCase) Unmanage(ctx context.Context, state *entity.State, id entity.WindowID) error {
	if uc == nil || uc.relayout == nil {
		return fmt.Errorf("manage windows use case is nil")
	}
	if state == nil {
		return fmt.Errorf("state is required")
	}
	ctx = logging.WithWindowID(ctx, uint32(id))

	removed := state.RemoveWindow(id)
	if _, err := uc.relayout.Execute(ctx, state.ActiveWorkspace()); err != nil {
		return fmt.Errorf("relayout after unmanage: %w", err)
	}

	logging.FromContext(ctx).Debug().Bool("was_managed", removed).Msg("window unmanaged")
	return nil
}
