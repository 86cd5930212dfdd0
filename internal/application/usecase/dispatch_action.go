package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// DispatchActionUseCase runs a keybinding action against the active workspace.
type DispatchActionUseCase struct {
	containers *ManageContainersUseCase
	relayout   *RelayoutUseCase
}

// NewDispatchActionUseCase creates a new DispatchActionUseCase.
func NewDispatchActionUseCase(containers *ManageContainersUseCase, relayout *RelayoutUseCase) *DispatchActionUseCase {
	return &DispatchActionUseCase{containers: containers, relayout: relayout}
}

// Execute applies action and then lays the active workspace out, including
// for actions that leave the tree unchanged.
func (uc *DispatchActionUseCase) Execute(ctx context.Context, state *entity.State, action entity.Action) error {
	if uc == nil || uc.containers == nil || uc.relayout == nil {
		return fmt.Errorf("dispatch action use case is nil")
	}
	if state == nil {
		return fmt.Errorf("state is required")
	}
	ctx = logging.WithWorkspace(ctx, state.ActiveIndex)
	log := logging.FromContext(ctx)
	ws := state.ActiveWorkspace()

	var err error
	switch action {
	case entity.ActionSplitHorizontal:
		err = uc.containers.Split(ctx, ws, entity.Horizontal)
	case entity.ActionSplitVertical:
		err = uc.containers.Split(ctx, ws, entity.Vertical)
	case entity.ActionDestroySplit:
		_, err = uc.containers.MergeUp(ctx, ws)
	case entity.ActionFocusLeft, entity.ActionFocusRight, entity.ActionFocusUp, entity.ActionFocusDown,
		entity.ActionCycleWindows, entity.ActionSpawnWorkspace, entity.ActionBreakClient:
		log.Debug().Str("action", string(action)).Msg("action has no layout effect")
	default:
		log.Warn().Str("action", string(action)).Msg("unknown action")
	}
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	if _, err := uc.relayout.Execute(ctx, ws); err != nil {
		return fmt.Errorf("relayout after %s: %w", action, err)
	}
	return nil
}
