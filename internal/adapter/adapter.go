// Package adapter backs the host windowing contract with the native cell
// console.
//
// An Adapter owns the process-wide root console from New (or Wrap) until
// Close. It translates window settings into console options, native
// console events into generic input events, and forwards presentation and
// title changes. It adds no buffering: PollEvent looks at the console's
// queue exactly once per call.
//
// Adapters are not safe for concurrent use.
package adapter

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/cellwindow/internal/console"
	"github.com/dshills/cellwindow/internal/input"
	"github.com/dshills/cellwindow/internal/logging"
	"github.com/dshills/cellwindow/internal/window"
)

// State is the adapter lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures an Adapter.
type Option func(*options)

type options struct {
	console console.Console
	logger  *logging.Logger
}

// WithConsole makes New initialize c instead of opening the terminal.
func WithConsole(c console.Console) Option {
	return func(o *options) {
		o.console = c
	}
}

// WithLogger sets the adapter's logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Adapter is a window back-end over a console.Console.
type Adapter struct {
	id      string
	console console.Console
	logger  *logging.Logger

	title       string
	exitOnEsc   bool
	shouldClose bool
	closed      bool
	size        window.Size

	mousePrev   console.MouseState
	relPending  bool
	relX, relY  float64
	decodeFails int
}

var _ window.AdvancedWindow = (*Adapter)(nil)

// New opens the root console described by settings.
//
// New fails with an *InitializationError when the size is zero, when
// another adapter owns the root console, or when the console cannot be
// initialized.
func New(settings window.Settings, opts ...Option) (*Adapter, error) {
	o := applyOptions(opts)

	size := settings.Size()
	if size.IsZero() {
		return nil, newInitError("validate", fmt.Errorf("%w: %s", ErrInvalidSize, size))
	}

	if !acquireRoot() {
		return nil, newInitError("acquire", ErrAlreadyInitialized)
	}

	con := o.console
	if con == nil {
		term, err := console.NewTerminal()
		if err != nil {
			releaseRoot()
			return nil, newInitError("open terminal", err)
		}
		con = term
	}

	err := con.Init(console.Options{
		Title:      settings.Title(),
		Width:      size.Width,
		Height:     size.Height,
		Fullscreen: settings.Fullscreen(),
		Samples:    settings.Samples(),
		VSync:      settings.VSync(),
	})
	if err != nil {
		releaseRoot()
		return nil, newInitError("init", err)
	}

	a := newAdapter(con, settings, o.logger)
	if settings.Samples() > 0 {
		a.logger.Debug("console ignores %d antialiasing samples", settings.Samples())
	}
	a.logger.Info("window %q opened at %s", a.title, a.size)
	return a, nil
}

// Wrap adopts an already initialized console. The adapter takes ownership
// and finalizes the console on Close.
func Wrap(con console.Console, settings window.Settings, opts ...Option) (*Adapter, error) {
	o := applyOptions(opts)

	if con == nil {
		return nil, newInitError("wrap", errors.New("nil console"))
	}
	if !con.Active() {
		return nil, newInitError("wrap", console.ErrNotActive)
	}
	if !acquireRoot() {
		return nil, newInitError("acquire", ErrAlreadyInitialized)
	}

	a := newAdapter(con, settings, o.logger)
	a.logger.Info("window %q wrapped at %s", a.title, a.size)
	return a, nil
}

// Build creates an Adapter on the terminal. It satisfies window.Builder
// through window.BuilderFunc(Build).
func Build(settings window.Settings) (window.AdvancedWindow, error) {
	a, err := New(settings)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func applyOptions(opts []Option) options {
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newAdapter(con console.Console, settings window.Settings, logger *logging.Logger) *Adapter {
	id := uuid.NewString()
	w, h := con.Size()
	return &Adapter{
		id:        id,
		console:   con,
		logger:    logger.WithComponent("adapter").WithField("window", id[:8]),
		title:     settings.Title(),
		exitOnEsc: settings.ExitOnEsc(),
		size:      window.Size{Width: w, Height: h},
	}
}

// ID returns the adapter's unique identifier.
func (a *Adapter) ID() string {
	return a.id
}

// Console returns the wrapped console for drawing.
func (a *Adapter) Console() console.Console {
	return a.console
}

// State returns the lifecycle state.
func (a *Adapter) State() State {
	if a.ShouldClose() {
		return StateClosed
	}
	return StateActive
}

// ShouldClose reports whether a close was requested, Escape was pressed
// with exit-on-escape enabled, or the console went inactive.
func (a *Adapter) ShouldClose() bool {
	return a.closed || a.shouldClose || !a.console.Active()
}

// SetShouldClose overrides the close flag.
func (a *Adapter) SetShouldClose(value bool) {
	a.shouldClose = value
}

// Size returns the last known logical size.
func (a *Adapter) Size() window.Size {
	return a.size
}

// DrawSize returns the drawable size, which for a cell console is the
// logical size.
func (a *Adapter) DrawSize() window.Size {
	return a.size
}

// SwapBuffers presents the console. The console reports no flush errors,
// so neither does SwapBuffers.
func (a *Adapter) SwapBuffers() {
	if a.closed {
		return
	}
	a.console.Flush()
}

// PollEvent returns the next pending event without blocking.
func (a *Adapter) PollEvent() (input.Event, bool) {
	if a.closed {
		return input.Event{}, false
	}

	if a.relPending {
		a.relPending = false
		return input.MouseRelative(a.relX, a.relY), true
	}

	ev, ok := a.console.CheckForEvent()
	if !ok {
		return input.Event{}, false
	}
	return a.translate(ev), true
}

func (a *Adapter) translate(ev console.Event) input.Event {
	switch ev.Type {
	case console.EventKeyPress:
		k := mapKey(ev)
		if a.exitOnEsc && k == input.KeyEscape {
			a.logger.Debug("escape pressed, closing")
			a.shouldClose = true
		}
		return input.KeyPressed(k).WithMods(mapMods(ev))

	case console.EventKeyRelease:
		return input.KeyReleased(mapKey(ev)).WithMods(mapMods(ev))

	case console.EventMousePress:
		b := mapMouse(a.mousePrev, ev.Mouse)
		a.mousePrev = ev.Mouse
		return input.Press(input.Mouse(b))

	case console.EventMouseRelease:
		b := mapMouse(a.mousePrev, ev.Mouse)
		a.mousePrev = ev.Mouse
		return input.Release(input.Mouse(b))

	case console.EventMouseMove:
		a.relPending = true
		a.relX = float64(ev.Mouse.X - a.mousePrev.X)
		a.relY = float64(ev.Mouse.Y - a.mousePrev.Y)
		a.mousePrev = ev.Mouse
		return input.MouseCursor(float64(ev.Mouse.X), float64(ev.Mouse.Y))

	case console.EventMouseWheel:
		return input.MouseScroll(float64(ev.WheelX), float64(ev.WheelY))

	case console.EventResize:
		a.size = window.Size{Width: ev.Width, Height: ev.Height}
		a.logger.Debug("resized to %s", a.size)
		return input.Resized(ev.Width, ev.Height)

	case console.EventClose:
		a.logger.Debug("close requested")
		a.shouldClose = true
		return input.CloseRequested()

	default:
		a.decodeFails++
		a.logger.Debug("%v", &DecodeError{Type: ev.Type, Native: ev.Native})
		return input.Unknown()
	}
}

// DecodeFailures returns how many native events mapped to input.Unknown.
func (a *Adapter) DecodeFailures() int {
	return a.decodeFails
}

// Title returns the window title.
func (a *Adapter) Title() string {
	return a.title
}

// SetTitle changes the window title.
func (a *Adapter) SetTitle(title string) {
	a.title = title
	if !a.closed {
		a.console.SetTitle(title)
	}
}

// ExitOnEsc reports whether Escape closes the window.
func (a *Adapter) ExitOnEsc() bool {
	return a.exitOnEsc
}

// SetExitOnEsc enables or disables closing on Escape.
func (a *Adapter) SetExitOnEsc(value bool) {
	a.exitOnEsc = value
}

// SetCaptureCursor is a no-op: a terminal cannot grab the pointer.
func (a *Adapter) SetCaptureCursor(bool) {}

// SetDrawColor sets the default foreground and background colors.
func (a *Adapter) SetDrawColor(fg, bg console.Color) {
	if !a.closed {
		a.console.SetColors(fg, bg)
	}
}

// Print draws s at cell (x, y).
func (a *Adapter) Print(x, y int, s string) {
	if !a.closed {
		a.console.Print(x, y, s)
	}
}

// Clear blanks the console.
func (a *Adapter) Clear() {
	if !a.closed {
		a.console.Clear()
	}
}

// Close finalizes the console and releases the root console for the next
// adapter. Calling Close more than once is a no-op.
func (a *Adapter) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.console.Fini()
	releaseRoot()
	a.logger.Info("window %q closed", a.title)
	return nil
}
