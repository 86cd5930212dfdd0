package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fruitwm/internal/application/port/mocks"
	"github.com/bnema/fruitwm/internal/application/usecase"
	"github.com/bnema/fruitwm/internal/domain/entity"
)

var screen = entity.Rect{X: 0, Y: 0, W: 1000, H: 800}

func TestManageWindowsUseCase_Manage(t *testing.T) {
	t.Run("inserts into root leaf, lays out once, then maps", func(t *testing.T) {
		// Arrange
		var seq entity.IDSequence
		state := entity.NewState(seq.Generator())
		placer := mocks.NewMockWindowPlacer(t)
		output := mocks.NewMockOutputProvider(t)
		output.EXPECT().OutputRect().Return(screen).Once()
		moved := placer.EXPECT().MoveResizeWindow(entity.WindowID(42), screen).Return().Once()
		mapped := placer.EXPECT().MapWindow(entity.WindowID(42)).Return().Once()
		mock.InOrder(moved, mapped)

		uc := usecase.NewManageWindowsUseCase(placer, usecase.NewRelayoutUseCase(placer, output))

		// Act
		err := uc.Manage(context.Background(), state, 42)

		// Assert
		require.NoError(t, err)
		root, ok := state.ActiveWorkspace().Tree.(*entity.LeafContainer)
		require.True(t, ok)
		assert.Equal(t, []entity.WindowID{42}, root.Windows.Sorted())
	})

	t.Run("moves an already managed window to the active leaf", func(t *testing.T) {
		// Arrange
		var seq entity.IDSequence
		ids := seq.Generator()
		left := entity.NewLeaf(ids(), entity.NewWindowSet(7))
		right := entity.NewLeaf(ids(), nil)
		ws := &entity.Workspace{
			Tree:       &entity.SplitContainer{ID: ids(), Left: left, Right: right, Size: 0.5, Orientation: entity.Horizontal},
			ActivePath: entity.Path{entity.StepRight},
		}
		state := &entity.State{Workspaces: []*entity.Workspace{ws}}
		placer := mocks.NewMockWindowPlacer(t)
		output := mocks.NewMockOutputProvider(t)
		output.EXPECT().OutputRect().Return(screen)
		placer.EXPECT().MoveResizeWindow(entity.WindowID(7), entity.Rect{X: 500, Y: 0, W: 500, H: 800}).Return().Once()
		placer.EXPECT().MapWindow(entity.WindowID(7)).Return().Once()

		uc := usecase.NewManageWindowsUseCase(placer, usecase.NewRelayoutUseCase(placer, output))

		// Act
		err := uc.Manage(context.Background(), state, 7)

		// Assert
		require.NoError(t, err)
		assert.False(t, left.Windows.Has(7))
		assert.True(t, right.Windows.Has(7))
	})

	t.Run("nil state", func(t *testing.T) {
		placer := mocks.NewMockWindowPlacer(t)
		output := mocks.NewMockOutputProvider(t)
		uc := usecase.NewManageWindowsUseCase(placer, usecase.NewRelayoutUseCase(placer, output))

		err := uc.Manage(context.Background(), nil, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "state is required")
	})
}

func TestManageWindowsUseCase_Unmanage(t *testing.T) {
	t.Run("removes from every workspace and is idempotent", func(t *testing.T) {
		// Arrange
		active := entity.NewWorkspace(entity.NewLeaf(1, entity.NewWindowSet(3, 4)))
		other := entity.NewWorkspace(entity.NewLeaf(2, entity.NewWindowSet(3)))
		state := &entity.State{Workspaces: []*entity.Workspace{active, other}}

		placer := mocks.NewMockWindowPlacer(t)
		output := mocks.NewMockOutputProvider(t)
		output.EXPECT().OutputRect().Return(screen).Twice()
		// Only the active workspace is laid out, once per call.
		placer.EXPECT().MoveResizeWindow(entity.WindowID(4), screen).Return().Twice()

		uc := usecase.NewManageWindowsUseCase(placer, usecase.NewRelayoutUseCase(placer, output))

		// Act
		require.NoError(t, uc.Unmanage(context.Background(), state, 3))
		snapshot := []entity.WindowID{}
		snapshot = append(snapshot, active.Windows().Sorted()...)
		require.NoError(t, uc.Unmanage(context.Background(), state, 3))

		// Assert
		assert.False(t, state.Manages(3))
		assert.Equal(t, []entity.WindowID{4}, snapshot)
		assert.Equal(t, snapshot, active.Windows().Sorted())
		assert.Empty(t, other.Windows().Sorted())
	})
}

func TestRelayoutUseCase_ScenarioB(t *testing.T) {
	// Arrange
	ws := &entity.Workspace{
		Tree: &entity.SplitContainer{
			ID:          1,
			Left:        entity.NewLeaf(2, entity.NewWindowSet(10)),
			Right:       entity.NewLeaf(3, entity.NewWindowSet(11)),
			Size:        0.5,
			Orientation: entity.Horizontal,
		},
		ActivePath: entity.Path{entity.StepLeft},
	}
	placer := mocks.NewMockWindowPlacer(t)
	output := mocks.NewMockOutputProvider(t)
	output.EXPECT().OutputRect().Return(screen).Once()
	placer.EXPECT().MoveResizeWindow(entity.WindowID(10), entity.Rect{X: 0, Y: 0, W: 500, H: 800}).Return().Once()
	placer.EXPECT().MoveResizeWindow(entity.WindowID(11), entity.Rect{X: 500, Y: 0, W: 500, H: 800}).Return().Once()

	uc := usecase.NewRelayoutUseCase(placer, output)

	// Act
	placements, err := uc.Execute(context.Background(), ws)

	// Assert
	require.NoError(t, err)
	assert.Len(t, placements, 2)
}

func TestRelayoutUseCase_NilDependencies(t *testing.T) {
	uc := usecase.NewRelayoutUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), &entity.Workspace{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "relayout use case is nil")
}
