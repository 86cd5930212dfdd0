package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// SplitLeaf builds the split that replaces leaf. The left child inherits a copy
// of the leaf's windows, the right child starts empty. All three ids are fresh.
func SplitLeaf(leaf *entity.LeafContainer, orientation entity.Orientation, ids entity.IDGenerator) *entity.SplitContainer {
	return &entity.SplitContainer{
		ID:          ids(),
		Left:        entity.NewLeaf(ids(), leaf.Windows),
		Right:       entity.NewLeaf(ids(), nil),
		Size:        entity.DefaultSplitSize,
		Orientation: orientation,
	}
}

// MergeLeaf combines a destroyed leaf with its sibling and returns the container
// that takes the parent split's place.
//
// A leaf sibling yields a new leaf holding both window sets. A split sibling is
// kept as is and the dying leaf's windows move into its leftmost leaf.
func MergeLeaf(dying *entity.LeafContainer, sibling entity.Container, ids entity.IDGenerator) entity.Container {
	switch s := sibling.(type) {
	case *entity.LeafContainer:
		merged := entity.NewLeaf(ids(), s.Windows)
		merged.Windows.Union(dying.Windows)
		return merged
	case *entity.SplitContainer:
		target, _ := entity.LeftmostLeaf(s)
		target.Windows.Union(dying.Windows)
		return s
	default:
		panic(&entity.InvariantError{Msg: fmt.Sprintf("unknown sibling container %T", sibling)})
	}
}

// ManageContainersUseCase handles structural changes to a workspace tree.
type ManageContainersUseCase struct {
	idGenerator entity.IDGenerator
}

// NewManageContainersUseCase creates a new container management use case.
func NewManageContainersUseCase(idGenerator entity.IDGenerator) *ManageContainersUseCase {
	return &ManageContainersUseCase{
		idGenerator: idGenerator,
	}
}

// Split replaces the active leaf with a split and focuses its left child,
// which keeps the windows.
func (uc *ManageContainersUseCase) Split(ctx context.Context, ws *entity.Workspace, orientation entity.Orientation) error {
	log := logging.FromContext(ctx)
	if uc == nil || uc.idGenerator == nil {
		return fmt.Errorf("manage containers use case is nil")
	}
	if ws == nil {
		return fmt.Errorf("workspace is required")
	}

	leaf := ws.ActiveLeaf()
	split := SplitLeaf(leaf, orientation, uc.idGenerator)
	if err := ws.ReplaceAt(ws.ActivePath, split); err != nil {
		return fmt.Errorf("replace active leaf: %w", err)
	}
	ws.ActivePath = ws.ActivePath.Append(entity.StepLeft)

	log.Debug().
		Uint64("leaf_id", uint64(leaf.ID)).
		Uint64("split_id", uint64(split.ID)).
		Str("orientation", orientation.String()).
		Str("active_path", ws.ActivePath.String()).
		Msg("split container")
	return nil
}

// MergeUp destroys the active leaf's parent split, merging the leaf into its
// sibling. It returns false without touching the tree when the active leaf is
// the root.
func (uc *ManageContainersUseCase) MergeUp(ctx context.Context, ws *entity.Workspace) (bool, error) {
	log := logging.FromContext(ctx)
	if uc == nil || uc.idGenerator == nil {
		return false, fmt.Errorf("manage containers use case is nil")
	}
	if ws == nil {
		return false, fmt.Errorf("workspace is required")
	}

	dying := ws.ActiveLeaf()
	step, ok := ws.ActivePath.Last()
	if !ok {
		log.Debug().Msg("active leaf is the root, nothing to merge")
		return false, nil
	}

	parentPath := ws.ActivePath.Parent()
	parent, _, err := ws.ParentOf(ws.ActivePath)
	if err != nil {
		return false, fmt.Errorf("resolve parent split: %w", err)
	}

	merged := MergeLeaf(dying, parent.Child(step.Other()), uc.idGenerator)
	if err := ws.ReplaceAt(parentPath, merged); err != nil {
		return false, fmt.Errorf("replace parent split: %w", err)
	}

	// The receiving leaf of a split sibling is its leftmost one.
	_, descent := entity.LeftmostLeaf(merged)
	ws.ActivePath = parentPath.Append(descent...)

	log.Debug().
		Uint64("leaf_id", uint64(dying.ID)).
		Uint64("parent_id", uint64(parent.ID)).
		Uint64("result_id", uint64(merged.ContainerID())).
		Str("active_path", ws.ActivePath.String()).
		Msg("merged container")
	return true, nil
}
