package window

import (
	"errors"
	"testing"
)

func TestSize_IsZero(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{Size{80, 50}, false},
		{Size{0, 50}, true},
		{Size{80, 0}, true},
		{Size{-1, 10}, true},
		{Size{}, true},
	}

	for _, tt := range tests {
		if got := tt.size.IsZero(); got != tt.want {
			t.Errorf("%v.IsZero() = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestSize_String(t *testing.T) {
	if got := (Size{99, 61}).String(); got != "99x61" {
		t.Errorf("String() = %q, want 99x61", got)
	}
}

func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings("My Application", Size{100, 100})

	if s.Title() != "My Application" {
		t.Errorf("Title() = %q", s.Title())
	}
	if s.Size() != (Size{100, 100}) {
		t.Errorf("Size() = %v", s.Size())
	}
	if s.Fullscreen() || s.ExitOnEsc() || s.VSync() {
		t.Error("flags should default to false")
	}
	if s.Samples() != 0 {
		t.Errorf("Samples() = %d, want 0", s.Samples())
	}
}

func TestSettings_BuilderCopies(t *testing.T) {
	base := NewSettings("base", Size{10, 10})
	derived := base.
		WithTitle("derived").
		WithSize(Size{20, 30}).
		WithFullscreen(true).
		WithExitOnEsc(true).
		WithSamples(4).
		WithVSync(true)

	if base.Title() != "base" || base.ExitOnEsc() || base.Fullscreen() {
		t.Error("builder methods must not modify the receiver")
	}
	if derived.Title() != "derived" || derived.Size() != (Size{20, 30}) {
		t.Errorf("derived = %+v", derived)
	}
	if !derived.Fullscreen() || !derived.ExitOnEsc() || !derived.VSync() || derived.Samples() != 4 {
		t.Errorf("derived flags = %+v", derived)
	}
}

func TestBuilderFunc(t *testing.T) {
	errBoom := errors.New("boom")
	var got Settings
	b := BuilderFunc(func(s Settings) (AdvancedWindow, error) {
		got = s
		return nil, errBoom
	})

	_, err := b.Build(NewSettings("t", Size{1, 1}))
	if !errors.Is(err, errBoom) {
		t.Errorf("Build() error = %v, want %v", err, errBoom)
	}
	if got.Title() != "t" {
		t.Error("settings were not passed through")
	}
}
