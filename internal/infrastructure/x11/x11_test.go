package x11

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name string
		in   xgb.Event
		want port.Event
	}{
		{
			name: "map request",
			in:   xproto.MapRequestEvent{Parent: 1, Window: 0x400001},
			want: port.MapRequestEvent{Window: 0x400001},
		},
		{
			name: "unmap notify",
			in:   xproto.UnmapNotifyEvent{Event: 1, Window: 0x400002},
			want: port.UnmapNotifyEvent{Window: 0x400002},
		},
		{
			name: "configure request",
			in:   xproto.ConfigureRequestEvent{Window: 7, Width: 640, Height: 480},
			want: port.ConfigureRequestEvent{Window: 7, Width: 640, Height: 480},
		},
		{
			name: "key press",
			in:   xproto.KeyPressEvent{Detail: 43, State: xproto.ModMask1 | xproto.ModMaskLock},
			want: port.KeyPressEvent{Keycode: 43, State: entity.ModAlt | entity.ModCapsLock},
		},
		{
			name: "button press",
			in:   xproto.ButtonPressEvent{Detail: 3, Child: 9, State: xproto.ModMask1, RootX: 120, RootY: -4},
			want: port.ButtonPressEvent{Child: 9, Button: 3, State: entity.ModAlt, RootX: 120, RootY: -4},
		},
		{
			name: "button release",
			in:   xproto.ButtonReleaseEvent{Detail: 1, State: xproto.ModMask1},
			want: port.ButtonReleaseEvent{Button: 1, State: entity.ModAlt},
		},
		{
			name: "motion",
			in:   xproto.MotionNotifyEvent{RootX: 300, RootY: 200, State: xproto.KeyButMaskButton1},
			want: port.MotionNotifyEvent{RootX: 300, RootY: 200, State: entity.Modifier(xproto.KeyButMaskButton1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateEvent(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateEvent_IgnoresUnhandled(t *testing.T) {
	got, ok := translateEvent(xproto.EnterNotifyEvent{Event: 5})
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestClassifyClaimError(t *testing.T) {
	assert.NoError(t, classifyClaimError(nil))

	err := classifyClaimError(xproto.AccessError{})
	assert.ErrorIs(t, err, port.ErrAnotherWMRunning)

	other := errors.New("connection reset")
	err = classifyClaimError(other)
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrAnotherWMRunning)
	assert.ErrorIs(t, err, other)
}

func TestOutputRect(t *testing.T) {
	assert.Equal(t, entity.Rect{W: 1920, H: 1080}, outputRect(nil, 1920, 1080))

	heads := []xinerama.ScreenInfo{
		{XOrg: 1920, YOrg: 0, Width: 2560, Height: 1440},
		{XOrg: 0, YOrg: 0, Width: 1920, Height: 1080},
	}
	assert.Equal(t, entity.Rect{X: 1920, W: 2560, H: 1440}, outputRect(heads, 4480, 1440))
}

func TestMoveResizeValues(t *testing.T) {
	assert.Equal(t, []uint32{10, 20, 300, 400}, moveResizeValues(entity.Rect{X: 10, Y: 20, W: 300, H: 400}))

	negative := moveResizeValues(entity.Rect{X: -5, Y: 0, W: 0, H: -3})
	assert.Equal(t, int32(-5), int32(negative[0]))
	assert.Equal(t, uint32(1), negative[2])
	assert.Equal(t, uint32(1), negative[3])
}
