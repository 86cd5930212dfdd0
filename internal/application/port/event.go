package port

import "github.com/bnema/fruitwm/internal/domain/entity"

// Event is a display server event relevant to window management.
// The concrete types below are the only implementations.
type Event interface {
	isEvent()
}

// MapRequestEvent asks for a new top-level window to be shown.
type MapRequestEvent struct {
	Window entity.WindowID
}

// UnmapNotifyEvent reports that a window was hidden or withdrawn.
type UnmapNotifyEvent struct {
	Window entity.WindowID
}

// ConfigureRequestEvent carries a client's requested size.
type ConfigureRequestEvent struct {
	Window entity.WindowID
	Width  int
	Height int
}

// KeyPressEvent reports a grabbed key going down.
type KeyPressEvent struct {
	Keycode entity.Keycode
	State   entity.Modifier
}

// ButtonPressEvent reports a grabbed pointer button going down.
// Child is zero when the pointer was over the bare root window.
type ButtonPressEvent struct {
	Child  entity.WindowID
	Button uint8
	State  entity.Modifier
	RootX  int
	RootY  int
}

// ButtonReleaseEvent reports a grabbed pointer button going up.
type ButtonReleaseEvent struct {
	Button uint8
	State  entity.Modifier
}

// MotionNotifyEvent reports pointer motion while a grabbed button is held.
type MotionNotifyEvent struct {
	RootX int
	RootY int
	State entity.Modifier
}

func (MapRequestEvent) isEvent()       {}
func (UnmapNotifyEvent) isEvent()      {}
func (ConfigureRequestEvent) isEvent() {}
func (KeyPressEvent) isEvent()         {}
func (ButtonPressEvent) isEvent()      {}
func (ButtonReleaseEvent) isEvent()    {}
func (MotionNotifyEvent) isEvent()     {}
