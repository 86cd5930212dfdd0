package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/domain/layout"
	"github.com/bnema/fruitwm/internal/logging"
)

// RelayoutUseCase pushes the geometry of a whole workspace tree to the display.
type RelayoutUseCase struct {
	placer port.WindowPlacer
	output port.OutputProvider
}

// NewRelayoutUseCase creates a new RelayoutUseCase.
func NewRelayoutUseCase(placer port.WindowPlacer, output port.OutputProvider) *RelayoutUseCase {
	return &RelayoutUseCase{placer: placer, output: output}
}

// Execute moves and resizes every window of ws to its computed rectangle.
func (uc *RelayoutUseCase) Execute(ctx context.Context, ws *entity.Workspace) ([]layout.Placement, error) {
	if uc == nil || uc.placer == nil || uc.output == nil {
		return nil, fmt.Errorf("relayout use case is nil")
	}
	if ws == nil {
		return nil, fmt.Errorf("workspace is required")
	}

	rect := uc.output.OutputRect()
	placements := layout.Compute(ws.Tree, rect)
	for _, p := range placements {
		uc.placer.MoveResizeWindow(p.Window, p.Rect)
	}

	logging.FromContext(ctx).Trace().
		Str("output", rect.String()).
		Int("windows", len(placements)).
		Msg("relayout")
	return placements, nil
}
