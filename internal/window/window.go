// Package window defines the contract a window back-end satisfies for the
// host engine.
//
// The host drives a back-end exclusively through these interfaces: it
// builds one from Settings, polls it for input each frame, presents with
// SwapBuffers, and stops when ShouldClose reports true.
package window

import (
	"fmt"

	"github.com/dshills/cellwindow/internal/input"
)

// Size is a window size in console cells.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether either dimension is zero or negative.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// String returns "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Window is the minimal back-end contract.
type Window interface {
	// ShouldClose reports whether the host loop should stop.
	ShouldClose() bool

	// SetShouldClose overrides the close flag.
	SetShouldClose(value bool)

	// Size returns the logical window size.
	Size() Size

	// DrawSize returns the size of the drawable area.
	DrawSize() Size

	// SwapBuffers presents everything drawn since the previous call.
	SwapBuffers()

	// PollEvent returns the next pending input event without blocking.
	// The second result is false when nothing is pending.
	PollEvent() (input.Event, bool)
}

// AdvancedWindow adds title and policy controls.
type AdvancedWindow interface {
	Window

	Title() string
	SetTitle(title string)

	ExitOnEsc() bool
	SetExitOnEsc(value bool)

	// SetCaptureCursor grabs or releases the cursor where supported.
	SetCaptureCursor(value bool)
}

// Builder creates back-ends from settings.
type Builder interface {
	Build(settings Settings) (AdvancedWindow, error)
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(settings Settings) (AdvancedWindow, error)

// Build calls f(settings).
func (f BuilderFunc) Build(settings Settings) (AdvancedWindow, error) {
	return f(settings)
}
