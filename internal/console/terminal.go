package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// closeRequest is the interrupt payload posted by RequestClose.
type closeRequest struct{}

// Terminal implements Console on a tcell screen.
//
// In fullscreen mode the logical console follows the terminal size. In
// windowed mode it is the requested size, clipped to the terminal.
type Terminal struct {
	screen tcell.Screen
	opts   Options
	fg, bg Color
	style  tcell.Style
	width  int
	height int
	// started is true from a successful Init until Fini. active goes false
	// earlier when the tty is lost, but the screen still needs finalizing.
	started bool
	active  bool
	buttons tcell.ButtonMask
}

// NewTerminal creates a terminal console on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal console on an existing screen,
// such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

func (t *Terminal) Init(opts Options) error {
	if t.started {
		return ErrAlreadyActive
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	t.opts = opts
	t.buttons = tcell.ButtonNone
	t.screen.SetTitle(opts.Title)
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.screen.SetStyle(t.style)
	t.screen.Clear()
	t.width, t.height = t.logicalSize(t.screen.Size())
	t.started = true
	t.active = true

	return nil
}

// Fini restores the tty. It finalizes the screen even after the console
// went inactive on a lost tty or a nil event.
func (t *Terminal) Fini() {
	if !t.started {
		return
	}
	t.started = false
	t.active = false
	t.screen.Fini()
}

func (t *Terminal) Active() bool {
	return t.active
}

func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

func (t *Terminal) SetTitle(title string) {
	t.opts.Title = title
	if t.active {
		t.screen.SetTitle(title)
	}
}

func (t *Terminal) SetColors(fg, bg Color) {
	t.fg, t.bg = fg, bg
	t.style = styleFor(fg, bg)
	if t.active {
		t.screen.SetStyle(t.style)
	}
}

// Colors returns the current default colors.
func (t *Terminal) Colors() (fg, bg Color) {
	return t.fg, t.bg
}

func (t *Terminal) Print(x, y int, s string) {
	if !t.active || y < 0 || y >= t.height {
		return
	}
	layoutCells(s, func(col int, mainc rune, combc []rune, width int) {
		cx := x + col
		if cx < 0 || cx+width > t.width {
			return
		}
		t.screen.SetContent(cx, y, mainc, combc, t.style)
	})
}

func (t *Terminal) Clear() {
	if !t.active {
		return
	}
	t.screen.Fill(' ', t.style)
}

func (t *Terminal) Flush() {
	if !t.active {
		return
	}
	t.screen.Show()
}

func (t *Terminal) CheckForEvent() (Event, bool) {
	if !t.active || !t.screen.HasPendingEvent() {
		return Event{}, false
	}
	ev := t.screen.PollEvent()
	if ev == nil {
		// PollEvent returns nil once the screen is finalized.
		t.active = false
		return Event{Type: EventClose}, true
	}
	return t.convertEvent(ev), true
}

// RequestClose posts a close event to the console's queue.
// Safe to call from any goroutine, e.g. a signal handler.
func (t *Terminal) RequestClose() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(closeRequest{})) // best-effort; queue may be full
}

// Screen exposes the wrapped tcell screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

func (t *Terminal) logicalSize(termW, termH int) (int, int) {
	if t.opts.Fullscreen {
		return termW, termH
	}
	return min(t.opts.Width, termW), min(t.opts.Height, termH)
}

// convertEvent converts tcell events to native console events.
func (t *Terminal) convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKeyPress,
			Key:  e.Key(),
			Rune: e.Rune(),
			Mod:  e.Modifiers(),
		}

	case *tcell.EventMouse:
		return t.convertMouse(e)

	case *tcell.EventResize:
		t.screen.Sync()
		t.width, t.height = t.logicalSize(e.Size())
		return Event{
			Type:   EventResize,
			Width:  t.width,
			Height: t.height,
		}

	case *tcell.EventInterrupt:
		if _, ok := e.Data().(closeRequest); ok {
			return Event{Type: EventClose}
		}
		return Event{Type: EventUnknown, Native: fmt.Sprintf("%T", ev)}

	case *tcell.EventError:
		// The tty is gone; nothing more can be drawn or read.
		t.active = false
		return Event{Type: EventClose}

	default:
		return Event{Type: EventUnknown, Native: fmt.Sprintf("%T", ev)}
	}
}

const (
	clickMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle
	wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight
)

// convertMouse classifies a tcell mouse report. tcell only reports the
// current button mask, so presses and releases are found by comparing it
// with the previous mask.
func (t *Terminal) convertMouse(e *tcell.EventMouse) Event {
	x, y := e.Position()
	mask := e.Buttons()

	if wheel := mask & wheelMask; wheel != 0 {
		ev := Event{Type: EventMouseWheel, Mouse: t.mouseState(x, y, t.buttons), Mod: e.Modifiers()}
		switch {
		case wheel&tcell.WheelUp != 0:
			ev.WheelY = 1
		case wheel&tcell.WheelDown != 0:
			ev.WheelY = -1
		case wheel&tcell.WheelLeft != 0:
			ev.WheelX = -1
		case wheel&tcell.WheelRight != 0:
			ev.WheelX = 1
		}
		return ev
	}

	buttons := mask & clickMask
	prev := t.buttons
	t.buttons = buttons

	typ := EventMouseMove
	switch {
	case buttons&^prev != 0:
		typ = EventMousePress
	case prev&^buttons != 0:
		typ = EventMouseRelease
	}

	return Event{
		Type:  typ,
		Mouse: t.mouseState(x, y, buttons),
		Mod:   e.Modifiers(),
	}
}

func (t *Terminal) mouseState(x, y int, buttons tcell.ButtonMask) MouseState {
	return MouseState{
		X:       x,
		Y:       y,
		LButton: buttons&tcell.ButtonPrimary != 0,
		RButton: buttons&tcell.ButtonSecondary != 0,
		MButton: buttons&tcell.ButtonMiddle != 0,
	}
}
