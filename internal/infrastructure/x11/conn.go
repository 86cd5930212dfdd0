// Package x11 adapts an X11 display connection to the window manager ports.
package x11

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/bnema/fruitwm/internal/logging"
)

// eventBuffer bounds how far the reader goroutine may run ahead of the loop.
const eventBuffer = 64

type incoming struct {
	ev  xgb.Event
	err xgb.Error
}

// Conn is one X11 connection. It implements port.WindowPlacer,
// port.OutputProvider, port.InputGrabber, port.KeyResolver,
// port.SessionController and port.EventSource.
type Conn struct {
	xu      *xgbutil.XUtil
	xc      *xgb.Conn
	root    xproto.Window
	screen  *xproto.ScreenInfo
	display string

	xinerama bool

	pumpOnce  sync.Once
	events    chan incoming
	done      chan struct{}
	closeOnce sync.Once
}

// Connect opens the display. An empty name uses $DISPLAY.
func Connect(ctx context.Context, display string) (*Conn, error) {
	log := logging.FromContext(ctx)

	var (
		xu  *xgbutil.XUtil
		err error
	)
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X display %q: %w", displayName(display), err)
	}

	keybind.Initialize(xu)

	c := &Conn{
		xu:      xu,
		xc:      xu.Conn(),
		root:    xu.RootWin(),
		screen:  xu.Screen(),
		display: displayName(display),
		events:  make(chan incoming, eventBuffer),
		done:    make(chan struct{}),
	}

	if err := xinerama.Init(c.xc); err != nil {
		log.Debug().Err(err).Msg("xinerama unavailable, using screen size")
	} else {
		c.xinerama = true
	}

	log.Info().
		Str("display", c.display).
		Uint16("width", c.screen.WidthInPixels).
		Uint16("height", c.screen.HeightInPixels).
		Bool("xinerama", c.xinerama).
		Msg("connected to X server")
	return c, nil
}

// Display returns the display name the connection was opened on.
func (c *Conn) Display() string {
	return c.display
}

// Close shuts the connection down. NextEvent returns port.ErrEventStreamClosed afterwards.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.xc.Close()
	})
}

func displayName(display string) string {
	if display != "" {
		return display
	}
	return os.Getenv("DISPLAY")
}
