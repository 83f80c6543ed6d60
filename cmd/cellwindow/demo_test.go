package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cellwindow/internal/adapter"
	"github.com/dshills/cellwindow/internal/console"
	"github.com/dshills/cellwindow/internal/input"
	"github.com/dshills/cellwindow/internal/logging"
	"github.com/dshills/cellwindow/internal/loop"
	"github.com/dshills/cellwindow/internal/window"
)

func newTestWindow(t *testing.T) (*adapter.Adapter, *console.NullConsole) {
	t.Helper()
	con := console.NewNullConsole(80, 25)
	settings := window.NewSettings("demo", window.Size{Width: 40, Height: 12}).WithExitOnEsc(true)
	win, err := adapter.New(settings, adapter.WithConsole(con))
	if err != nil {
		t.Fatalf("adapter.New: %v", err)
	}
	t.Cleanup(func() { win.Close() })
	return win, con
}

func screenText(con *console.NullConsole) string {
	_, h := con.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(con.Row(y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestNewDemo(t *testing.T) {
	for _, name := range []string{"", "hello", "mouse", "fps"} {
		if _, err := newDemo(name); err != nil {
			t.Errorf("newDemo(%q): %v", name, err)
		}
	}
	if _, err := newDemo("teapot"); err == nil {
		t.Error("newDemo should reject unknown names")
	}
}

func TestHelloDemo(t *testing.T) {
	win, con := newTestWindow(t)
	d, _ := newDemo("hello")

	d.input(input.KeyPressed(input.Key('q')))
	d.update(0.1)
	d.render(win, loop.Stats{})

	text := screenText(con)
	for _, want := range []string{"demo", "Window 40x12", "press(key:q)", "Press Esc to quit"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q:\n%s", want, text)
		}
	}
}

func TestMouseDemo(t *testing.T) {
	win, con := newTestWindow(t)
	d, _ := newDemo("mouse")

	d.input(input.MouseCursor(10, 9))
	d.input(input.MouseRelative(1, -1))
	d.input(input.MouseScroll(0, 1))
	d.input(input.Press(input.Mouse(input.MouseLeft)))
	d.render(win, loop.Stats{})

	text := screenText(con)
	for _, want := range []string{"cursor   10,9", "relative 1,-1", "scroll   1", "press(mouse:left)"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q:\n%s", want, text)
		}
	}
	if got := con.Cell(10, 9).Rune; got != '+' {
		t.Errorf("cursor marker = %q, want '+'", got)
	}
}

func TestFPSDemo(t *testing.T) {
	win, con := newTestWindow(t)
	d, _ := newDemo("fps")

	d.update(0.01)
	d.render(win, loop.Stats{Updates: 3, Renders: 2, Inputs: 1})

	text := screenText(con)
	for _, want := range []string{"1 fps", "updates  3", "renders  2", "inputs   1"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q:\n%s", want, text)
		}
	}
}

func TestCtrlCClosesWindow(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	term := console.NewTerminalWithScreen(sim)
	settings := window.NewSettings("demo", window.Size{Width: 40, Height: 12}).WithExitOnEsc(false)
	win, err := adapter.New(settings, adapter.WithConsole(term))
	if err != nil {
		t.Fatalf("adapter.New: %v", err)
	}
	t.Cleanup(func() { win.Close() })

	if got := quitHint(win); got != "Press Ctrl+C to quit" {
		t.Errorf("quitHint = %q", got)
	}

	d, _ := newDemo("hello")
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	for i := 0; i < 2; i++ {
		ev, ok := win.PollEvent()
		if !ok {
			t.Fatalf("PollEvent %d returned nothing", i)
		}
		handleInput(win, d, ev, logging.Nop())
	}

	if !win.ShouldClose() {
		t.Error("ctrl+c should close the window")
	}
	if got := d.(*helloDemo).presses; got != 1 {
		t.Errorf("demo saw %d presses, want 1 (ctrl+c is not forwarded)", got)
	}
}

func TestIsInterrupt(t *testing.T) {
	tests := []struct {
		name string
		ev   input.Event
		want bool
	}{
		{"ctrl+c", input.KeyPressed(input.Key('c')).WithMods(input.ModCtrl), true},
		{"ctrl+shift+c", input.KeyPressed(input.Key('c')).WithMods(input.ModCtrl | input.ModShift), true},
		{"plain c", input.KeyPressed(input.Key('c')), false},
		{"ctrl+d", input.KeyPressed(input.Key('d')).WithMods(input.ModCtrl), false},
		{"release", input.KeyReleased(input.Key('c')).WithMods(input.ModCtrl), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isInterrupt(tt.ev); got != tt.want {
				t.Errorf("isInterrupt(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}
