// Package input defines the generic input events a window back-end hands
// to the host engine.
//
// An Event is a tagged value: Kind selects which of the payload fields is
// meaningful. Keyboard and mouse buttons share the Press and Release kinds
// and are told apart by Button.Device.
package input

import "fmt"

// Kind identifies the variant held by an Event.
type Kind uint8

const (
	// KindUnknown is a native event with no generic equivalent.
	KindUnknown Kind = iota
	// KindPress is a button press.
	KindPress
	// KindRelease is a button release.
	KindRelease
	// KindMove is cursor motion.
	KindMove
	// KindClose is a close request from the window system.
	KindClose
	// KindResize reports a new window size.
	KindResize
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRelease:
		return "release"
	case KindMove:
		return "move"
	case KindClose:
		return "close"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Device distinguishes keyboard from mouse buttons.
type Device uint8

const (
	DeviceKeyboard Device = iota
	DeviceMouse
)

// Button is a keyboard key or a mouse button.
type Button struct {
	Device Device
	Key    Key
	Mouse  MouseButton
}

// Keyboard returns the button for key k.
func Keyboard(k Key) Button {
	return Button{Device: DeviceKeyboard, Key: k}
}

// Mouse returns the button for mouse button b.
func Mouse(b MouseButton) Button {
	return Button{Device: DeviceMouse, Mouse: b}
}

// String returns a readable form such as "key:Escape" or "mouse:left".
func (b Button) String() string {
	if b.Device == DeviceMouse {
		return "mouse:" + b.Mouse.String()
	}
	return "key:" + b.Key.String()
}

// MotionKind identifies the kind of motion.
type MotionKind uint8

const (
	// MotionCursor is an absolute cursor position inside the window.
	MotionCursor MotionKind = iota
	// MotionRelative is the cursor delta since the previous position.
	MotionRelative
	// MotionScroll is a scroll wheel movement in notches.
	MotionScroll
)

// Motion is a cursor position or delta, in console cells.
type Motion struct {
	Kind MotionKind
	X, Y float64
}

// Event is a generic input event.
type Event struct {
	Kind   Kind
	Button Button
	Motion Motion
	Width  int
	Height int
	// Mods holds the modifiers of a keyboard press or release.
	Mods Mods
}

// Press returns a press event for b.
func Press(b Button) Event {
	return Event{Kind: KindPress, Button: b}
}

// Release returns a release event for b.
func Release(b Button) Event {
	return Event{Kind: KindRelease, Button: b}
}

// KeyPressed returns a press event for keyboard key k.
func KeyPressed(k Key) Event {
	return Press(Keyboard(k))
}

// WithMods returns a copy of e carrying modifiers m.
func (e Event) WithMods(m Mods) Event {
	e.Mods = m
	return e
}

// KeyReleased returns a release event for keyboard key k.
func KeyReleased(k Key) Event {
	return Release(Keyboard(k))
}

// MouseCursor returns an absolute cursor move event.
func MouseCursor(x, y float64) Event {
	return Event{Kind: KindMove, Motion: Motion{Kind: MotionCursor, X: x, Y: y}}
}

// MouseRelative returns a relative cursor move event.
func MouseRelative(dx, dy float64) Event {
	return Event{Kind: KindMove, Motion: Motion{Kind: MotionRelative, X: dx, Y: dy}}
}

// MouseScroll returns a scroll event. Positive dy scrolls up.
func MouseScroll(dx, dy float64) Event {
	return Event{Kind: KindMove, Motion: Motion{Kind: MotionScroll, X: dx, Y: dy}}
}

// CloseRequested returns a close event.
func CloseRequested() Event {
	return Event{Kind: KindClose}
}

// Resized returns a resize event.
func Resized(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// Unknown returns an event with no generic meaning.
func Unknown() Event {
	return Event{Kind: KindUnknown}
}

// PressedKey returns the key if e is a keyboard press.
func (e Event) PressedKey() (Key, bool) {
	if e.Kind == KindPress && e.Button.Device == DeviceKeyboard {
		return e.Button.Key, true
	}
	return KeyUnknown, false
}

// ReleasedKey returns the key if e is a keyboard release.
func (e Event) ReleasedKey() (Key, bool) {
	if e.Kind == KindRelease && e.Button.Device == DeviceKeyboard {
		return e.Button.Key, true
	}
	return KeyUnknown, false
}

// Cursor returns the position if e is an absolute cursor move.
func (e Event) Cursor() (x, y float64, ok bool) {
	if e.Kind == KindMove && e.Motion.Kind == MotionCursor {
		return e.Motion.X, e.Motion.Y, true
	}
	return 0, 0, false
}

// String returns a readable form of the event.
func (e Event) String() string {
	switch e.Kind {
	case KindPress, KindRelease:
		if e.Mods != ModNone {
			return fmt.Sprintf("%s(%s %s)", e.Kind, e.Mods, e.Button)
		}
		return fmt.Sprintf("%s(%s)", e.Kind, e.Button)
	case KindMove:
		switch e.Motion.Kind {
		case MotionRelative:
			return fmt.Sprintf("move(relative %g,%g)", e.Motion.X, e.Motion.Y)
		case MotionScroll:
			return fmt.Sprintf("scroll(%g,%g)", e.Motion.X, e.Motion.Y)
		}
		return fmt.Sprintf("move(cursor %g,%g)", e.Motion.X, e.Motion.Y)
	case KindResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	default:
		return e.Kind.String()
	}
}
