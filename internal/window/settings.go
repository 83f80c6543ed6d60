package window

// Settings describes the window a back-end should create.
// Setters return a modified copy, so a Settings value can be shared and
// refined without affecting other holders.
type Settings struct {
	title      string
	size       Size
	fullscreen bool
	exitOnEsc  bool
	samples    uint8
	vsync      bool
}

// NewSettings returns settings for a windowed, non-fullscreen window with
// no antialiasing and exit-on-escape disabled.
func NewSettings(title string, size Size) Settings {
	return Settings{
		title: title,
		size:  size,
	}
}

// Title returns the window title.
func (s Settings) Title() string { return s.title }

// Size returns the requested size.
func (s Settings) Size() Size { return s.size }

// Fullscreen reports whether the window covers the whole display.
func (s Settings) Fullscreen() bool { return s.fullscreen }

// ExitOnEsc reports whether the Escape key closes the window.
func (s Settings) ExitOnEsc() bool { return s.exitOnEsc }

// Samples returns the antialiasing sample count.
func (s Settings) Samples() uint8 { return s.samples }

// VSync reports whether presentation should wait for vertical sync.
func (s Settings) VSync() bool { return s.vsync }

// WithTitle returns a copy with the title set.
func (s Settings) WithTitle(title string) Settings {
	s.title = title
	return s
}

// WithSize returns a copy with the size set.
func (s Settings) WithSize(size Size) Settings {
	s.size = size
	return s
}

// WithFullscreen returns a copy with the fullscreen flag set.
func (s Settings) WithFullscreen(value bool) Settings {
	s.fullscreen = value
	return s
}

// WithExitOnEsc returns a copy with exit-on-escape set.
func (s Settings) WithExitOnEsc(value bool) Settings {
	s.exitOnEsc = value
	return s
}

// WithSamples returns a copy with the antialiasing sample count set.
func (s Settings) WithSamples(samples uint8) Settings {
	s.samples = samples
	return s
}

// WithVSync returns a copy with vsync set.
func (s Settings) WithVSync(value bool) Settings {
	s.vsync = value
	return s
}
