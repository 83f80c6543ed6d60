package input

// MouseButton represents a mouse button.
type MouseButton uint8

const (
	// MouseUnknown is a button the back-end could not identify.
	MouseUnknown MouseButton = iota
	// MouseLeft is the primary (left) mouse button.
	MouseLeft
	// MouseRight is the secondary (right) mouse button.
	MouseRight
	// MouseMiddle is the middle mouse button (scroll wheel click).
	MouseMiddle
	// MouseX1 is the back navigation button.
	MouseX1
	// MouseX2 is the forward navigation button.
	MouseX2
)

// String returns a string representation of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	case MouseX1:
		return "x1"
	case MouseX2:
		return "x2"
	default:
		return "unknown"
	}
}
