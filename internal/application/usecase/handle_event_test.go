package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/application/port/mocks"
	"github.com/bnema/fruitwm/internal/application/usecase"
	"github.com/bnema/fruitwm/internal/domain/entity"
)

type handlerFixture struct {
	state   *entity.State
	placer  *mocks.MockWindowPlacer
	output  *mocks.MockOutputProvider
	drag    *usecase.PointerDragUseCase
	handler *usecase.HandleEventUseCase
}

func newHandlerFixture(t *testing.T, bindings []entity.Keybinding, codes map[string][]entity.Keycode) *handlerFixture {
	t.Helper()
	seq := &entity.IDSequence{}
	placer := mocks.NewMockWindowPlacer(t)
	output := mocks.NewMockOutputProvider(t)
	output.EXPECT().OutputRect().Return(screen).Maybe()

	matcher, err := usecase.NewKeyMatcher(context.Background(), bindings, newResolver(t, codes))
	require.NoError(t, err)

	relayout := usecase.NewRelayoutUseCase(placer, output)
	drag := usecase.NewPointerDragUseCase(placer, usecase.DefaultPointerBindings())
	handler := usecase.NewHandleEventUseCase(usecase.HandleEventDeps{
		Placer:   placer,
		Windows:  usecase.NewManageWindowsUseCase(placer, relayout),
		Dispatch: usecase.NewDispatchActionUseCase(usecase.NewManageContainersUseCase(seq.Generator()), relayout),
		Keys:     matcher,
		Drag:     drag,
	})
	return &handlerFixture{
		state:   entity.NewState(seq.Generator()),
		placer:  placer,
		output:  output,
		drag:    drag,
		handler: handler,
	}
}

func TestHandleEventUseCase_WindowLifecycle(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t, nil, nil)
	ctx := context.Background()
	f.placer.EXPECT().MoveResizeWindow(entity.WindowID(42), screen).Return().Once()
	f.placer.EXPECT().MapWindow(entity.WindowID(42)).Return().Once()
	f.placer.EXPECT().ResizeWindow(entity.WindowID(42), 640, 480).Return().Once()

	// Act + Assert
	require.NoError(t, f.handler.Handle(ctx, f.state, port.MapRequestEvent{Window: 42}))
	assert.True(t, f.state.Manages(42))

	require.NoError(t, f.handler.Handle(ctx, f.state, port.ConfigureRequestEvent{Window: 42, Width: 640, Height: 480}))

	require.NoError(t, f.handler.Handle(ctx, f.state, port.UnmapNotifyEvent{Window: 42}))
	assert.False(t, f.state.Manages(42))
}

func TestHandleEventUseCase_KeyPressDispatchesEveryMatch(t *testing.T) {
	// Arrange
	bindings := []entity.Keybinding{
		{Action: entity.ActionSplitHorizontal, Key: "u", Modifiers: []string{"alt"}},
		{Action: entity.ActionSplitVertical, Key: "u", Modifiers: []string{"alt"}},
	}
	f := newHandlerFixture(t, bindings, map[string][]entity.Keycode{"u": {30}})

	// Act
	err := f.handler.Handle(context.Background(), f.state, port.KeyPressEvent{Keycode: 30, State: entity.ModAlt | entity.ModNumLock})

	// Assert: horizontal split, then its left leaf split vertically.
	require.NoError(t, err)
	ws := f.state.ActiveWorkspace()
	root, ok := ws.Tree.(*entity.SplitContainer)
	require.True(t, ok)
	assert.Equal(t, entity.Horizontal, root.Orientation)
	inner, ok := root.Left.(*entity.SplitContainer)
	require.True(t, ok)
	assert.Equal(t, entity.Vertical, inner.Orientation)
	assert.Equal(t, entity.Path{entity.StepLeft, entity.StepLeft}, ws.ActivePath)
	f.output.AssertNumberOfCalls(t, "OutputRect", 2)
}

func TestHandleEventUseCase_PointerEvents(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t, nil, nil)
	ctx := context.Background()
	f.placer.EXPECT().RaiseWindow(entity.WindowID(7)).Return().Once()
	f.placer.EXPECT().GetGeometry(mock.Anything, entity.WindowID(7)).Return(entity.Rect{X: 0, Y: 0, W: 10, H: 10}, nil).Once()
	f.placer.EXPECT().MoveResizeWindow(entity.WindowID(7), entity.Rect{X: 5, Y: 5, W: 10, H: 10}).Return().Once()

	// Act
	require.NoError(t, f.handler.Handle(ctx, f.state, port.ButtonPressEvent{Child: 7, Button: 1, State: entity.ModAlt}))
	require.NoError(t, f.handler.Handle(ctx, f.state, port.MotionNotifyEvent{RootX: 5, RootY: 5}))
	require.NoError(t, f.handler.Handle(ctx, f.state, port.ButtonReleaseEvent{Button: 1}))

	// Assert
	assert.False(t, f.drag.Dragging())
}

func TestHandleEventUseCase_NilHandler(t *testing.T) {
	var uc *usecase.HandleEventUseCase

	err := uc.Handle(context.Background(), nil, port.MapRequestEvent{Window: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "handle event use case is nil")
}
