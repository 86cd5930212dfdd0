package port

import (
	"context"
	"errors"

	"github.com/bnema/fruitwm/internal/domain/entity"
)

var (
	// ErrAnotherWMRunning is returned by ClaimRoot when substructure redirection
	// on the root window is already owned by another client.
	ErrAnotherWMRunning = errors.New("another window manager is already running")
	// ErrEventStreamClosed is returned by NextEvent once the connection is gone.
	ErrEventStreamClosed = errors.New("event stream closed")
)

// WindowPlacer positions managed windows.
// Placement requests are fire-and-forget: the server reports failures
// asynchronously through the event stream.
type WindowPlacer interface {
	MapWindow(id entity.WindowID)
	MoveResizeWindow(id entity.WindowID, rect entity.Rect)
	ResizeWindow(id entity.WindowID, width, height int)
	RaiseWindow(id entity.WindowID)
	GetGeometry(ctx context.Context, id entity.WindowID) (entity.Rect, error)
}

// OutputProvider reports the rectangle windows are laid out into.
type OutputProvider interface {
	OutputRect() entity.Rect
}

// InputGrabber installs passive grabs on the root window.
type InputGrabber interface {
	GrabKey(keycode entity.Keycode, mask entity.Modifier) error
	GrabButton(button uint8, mask entity.Modifier) error
}

// KeyResolver maps a key name such as "h" or "Tab" to the keycodes producing it
// under the current keyboard mapping.
type KeyResolver interface {
	Keycodes(key string) ([]entity.Keycode, error)
}

// SessionController owns the window manager role on the display.
type SessionController interface {
	// ClaimRoot selects substructure redirection on the root window.
	ClaimRoot() error
	// QueryTree lists the current children of the root window.
	QueryTree() ([]entity.WindowID, error)
}

// EventSource delivers display server events one at a time.
type EventSource interface {
	NextEvent(ctx context.Context) (Event, error)
}
