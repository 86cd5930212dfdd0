package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/application/port/mocks"
	"github.com/bnema/fruitwm/internal/application/usecase"
	"github.com/bnema/fruitwm/internal/domain/entity"
)

func TestPointerDragUseCase(t *testing.T) {
	start := entity.Rect{X: 100, Y: 50, W: 400, H: 300}

	t.Run("move button drags the window", func(t *testing.T) {
		// Arrange
		placer := mocks.NewMockWindowPlacer(t)
		placer.EXPECT().RaiseWindow(entity.WindowID(9)).Return().Once()
		placer.EXPECT().GetGeometry(mock.Anything, entity.WindowID(9)).Return(start, nil).Once()
		placer.EXPECT().MoveResizeWindow(entity.WindowID(9), entity.Rect{X: 130, Y: 40, W: 400, H: 300}).Return().Once()
		uc := usecase.NewPointerDragUseCase(placer, usecase.DefaultPointerBindings())
		ctx := context.Background()

		// Act
		require.NoError(t, uc.Press(ctx, port.ButtonPressEvent{Child: 9, Button: 1, RootX: 200, RootY: 200}))
		uc.Motion(ctx, port.MotionNotifyEvent{RootX: 230, RootY: 190})
		uc.Release(ctx, port.ButtonReleaseEvent{Button: 1})
		uc.Motion(ctx, port.MotionNotifyEvent{RootX: 500, RootY: 500})

		// Assert
		assert.False(t, uc.Dragging())
	})

	t.Run("resize button clamps to one pixel", func(t *testing.T) {
		// Arrange
		placer := mocks.NewMockWindowPlacer(t)
		placer.EXPECT().RaiseWindow(entity.WindowID(9)).Return().Once()
		placer.EXPECT().GetGeometry(mock.Anything, entity.WindowID(9)).Return(start, nil).Once()
		placer.EXPECT().MoveResizeWindow(entity.WindowID(9), entity.Rect{X: 100, Y: 50, W: 450, H: 320}).Return().Once()
		placer.EXPECT().MoveResizeWindow(entity.WindowID(9), entity.Rect{X: 100, Y: 50, W: 1, H: 1}).Return().Once()
		uc := usecase.NewPointerDragUseCase(placer, usecase.DefaultPointerBindings())
		ctx := context.Background()

		// Act
		require.NoError(t, uc.Press(ctx, port.ButtonPressEvent{Child: 9, Button: 3, RootX: 10, RootY: 10}))
		uc.Motion(ctx, port.MotionNotifyEvent{RootX: 60, RootY: 30})
		uc.Motion(ctx, port.MotionNotifyEvent{RootX: -1000, RootY: -1000})

		// Assert
		assert.True(t, uc.Dragging())
	})

	t.Run("press on root is ignored", func(t *testing.T) {
		placer := mocks.NewMockWindowPlacer(t)
		uc := usecase.NewPointerDragUseCase(placer, usecase.DefaultPointerBindings())

		require.NoError(t, uc.Press(context.Background(), port.ButtonPressEvent{Child: 0, Button: 1}))

		assert.False(t, uc.Dragging())
	})

	t.Run("geometry failure aborts the drag", func(t *testing.T) {
		placer := mocks.NewMockWindowPlacer(t)
		placer.EXPECT().RaiseWindow(entity.WindowID(9)).Return().Once()
		placer.EXPECT().GetGeometry(mock.Anything, entity.WindowID(9)).Return(entity.Rect{}, errors.New("BadDrawable")).Once()
		uc := usecase.NewPointerDragUseCase(placer, usecase.DefaultPointerBindings())

		err := uc.Press(context.Background(), port.ButtonPressEvent{Child: 9, Button: 1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BadDrawable")
		assert.False(t, uc.Dragging())
	})
}
