// Package console provides the native cell console that backs a window.
//
// A Console is a process-wide root display of fixed-size character cells
// with a title, a pending-event queue and an explicit flush. Terminal
// implements it on top of tcell; NullConsole keeps everything in memory
// for tests.
//
// Consoles are not safe for concurrent use. The only exception is
// Terminal.RequestClose, which may be called from any goroutine.
package console

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Console errors.
var (
	// ErrAlreadyActive indicates Init was called again before Fini.
	ErrAlreadyActive = errors.New("console already active")

	// ErrNotActive indicates an operation that needs an active console.
	ErrNotActive = errors.New("console not active")
)

// Options are the root console initialization parameters.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	// Samples is the antialiasing sample count. Cell consoles ignore it.
	Samples uint8
	// VSync asks presentation to wait for vertical sync where supported.
	VSync bool
}

// Console is the native console surface used by the window adapter.
type Console interface {
	// Init opens the root console.
	Init(opts Options) error

	// Fini closes the root console and restores the display.
	Fini()

	// Active reports whether the root console is open and usable.
	Active() bool

	// Size returns the logical console size in cells.
	Size() (width, height int)

	// SetTitle sets the window title.
	SetTitle(title string)

	// SetColors sets the default colors used by Print and Clear.
	SetColors(fg, bg Color)

	// Print draws s starting at cell (x, y). Cells outside the console are
	// ignored.
	Print(x, y int, s string)

	// Clear fills the console with blanks in the default colors.
	Clear()

	// Flush presents the console.
	Flush()

	// CheckForEvent returns the next pending event without blocking.
	CheckForEvent() (Event, bool)
}

// EventType identifies the type of native event.
type EventType int

const (
	EventNone EventType = iota
	EventKeyPress
	EventKeyRelease
	EventMousePress
	EventMouseRelease
	EventMouseMove
	EventMouseWheel
	EventResize
	EventClose
	EventUnknown
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventKeyPress:
		return "key-press"
	case EventKeyRelease:
		return "key-release"
	case EventMousePress:
		return "mouse-press"
	case EventMouseRelease:
		return "mouse-release"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseWheel:
		return "mouse-wheel"
	case EventResize:
		return "resize"
	case EventClose:
		return "close"
	case EventUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// MouseState is the mouse position and button state after an event.
type MouseState struct {
	X, Y    int
	LButton bool
	RButton bool
	MButton bool
}

// Event is a native console event.
type Event struct {
	Type EventType

	// Key event fields
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask

	// Mouse event fields
	Mouse MouseState

	// Wheel event fields, in notches
	WheelX, WheelY int

	// Resize event fields, logical size
	Width, Height int

	// Native describes the source event for EventUnknown.
	Native string
}

// KeyEvent returns a key press event.
func KeyEvent(k tcell.Key, r rune, mod tcell.ModMask) Event {
	return Event{Type: EventKeyPress, Key: k, Rune: r, Mod: mod}
}

// RuneEvent returns a key press event for a character.
func RuneEvent(r rune) Event {
	return KeyEvent(tcell.KeyRune, r, tcell.ModNone)
}
