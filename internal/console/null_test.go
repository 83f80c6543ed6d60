package console

import (
	"errors"
	"testing"
)

func TestNullConsoleInit(t *testing.T) {
	c := NewNullConsole(80, 50)
	if err := c.Init(Options{Title: "t", Width: 80, Height: 50}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if !c.Active() {
		t.Error("console should be active")
	}
	if w, h := c.Size(); w != 80 || h != 50 {
		t.Errorf("Size() = (%d, %d), want (80, 50)", w, h)
	}
	if c.Title() != "t" {
		t.Errorf("Title() = %q, want t", c.Title())
	}
	if err := c.Init(Options{Width: 1, Height: 1}); err != ErrAlreadyActive {
		t.Errorf("second Init error = %v, want ErrAlreadyActive", err)
	}
}

func TestNullConsoleFailInit(t *testing.T) {
	errNoDisplay := errors.New("no display")
	c := NewNullConsole(80, 50)
	c.FailInit(errNoDisplay)

	if err := c.Init(Options{Width: 10, Height: 10}); !errors.Is(err, errNoDisplay) {
		t.Fatalf("Init error = %v, want %v", err, errNoDisplay)
	}
	if c.Active() {
		t.Error("console should not be active after failed Init")
	}
	if err := c.Init(Options{Width: 10, Height: 10}); err != nil {
		t.Errorf("retry Init failed: %v", err)
	}
}

func TestNullConsoleEventsFIFO(t *testing.T) {
	c := NewNullConsole(80, 50)
	_ = c.Init(Options{Width: 80, Height: 50})

	if _, ok := c.CheckForEvent(); ok {
		t.Fatal("expected empty queue")
	}

	c.Post(RuneEvent('a'))
	c.Post(Event{Type: EventClose})

	if c.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", c.Pending())
	}

	ev, _ := c.CheckForEvent()
	if ev.Type != EventKeyPress || ev.Rune != 'a' {
		t.Errorf("first event = %+v", ev)
	}
	ev, _ = c.CheckForEvent()
	if ev.Type != EventClose {
		t.Errorf("second event = %+v", ev)
	}
	if _, ok := c.CheckForEvent(); ok {
		t.Error("queue should be drained")
	}
}

func TestNullConsoleResize(t *testing.T) {
	c := NewNullConsole(80, 50)
	_ = c.Init(Options{Width: 80, Height: 50, Fullscreen: true})
	c.Print(0, 0, "keep")

	c.Resize(100, 60)

	ev, ok := c.CheckForEvent()
	if !ok || ev.Type != EventResize || ev.Width != 100 || ev.Height != 60 {
		t.Fatalf("event = %+v, want resize 100x60", ev)
	}
	if c.Row(0)[:4] != "keep" {
		t.Errorf("resize should preserve content, row 0 = %q", c.Row(0))
	}
}

func TestNullConsolePrint(t *testing.T) {
	c := NewNullConsole(10, 3)
	_ = c.Init(Options{Width: 10, Height: 3})
	c.SetColors(ColorWhite, ColorBlue)

	c.Print(0, 0, "Hello, world!")
	if got := c.Row(0); got != "Hello, wor" {
		t.Errorf("Row(0) = %q, want clipped text", got)
	}

	cell := c.Cell(0, 0)
	if cell.Fg != ColorWhite || cell.Bg != ColorBlue {
		t.Errorf("cell colors = (%v, %v)", cell.Fg, cell.Bg)
	}

	c.Print(0, 5, "off screen")
	c.Print(-3, 1, "abcd")
	if got := c.Cell(0, 1).Rune; got != 'd' {
		t.Errorf("cell (0,1) = %q, want 'd'", got)
	}
}

func TestNullConsoleClear(t *testing.T) {
	c := NewNullConsole(5, 1)
	_ = c.Init(Options{Width: 5, Height: 1})
	c.Print(0, 0, "xxxxx")

	c.Clear()
	if got := c.Row(0); got != "     " {
		t.Errorf("Row(0) after Clear = %q", got)
	}
}

func TestNullConsoleFlushAndFini(t *testing.T) {
	c := NewNullConsole(5, 5)
	_ = c.Init(Options{Width: 5, Height: 5})

	c.Flush()
	c.Flush()
	if c.Flushes() != 2 {
		t.Errorf("Flushes() = %d, want 2", c.Flushes())
	}

	c.Fini()
	c.Fini()
	if c.Finis() != 1 {
		t.Errorf("Finis() = %d, want 1", c.Finis())
	}
	if c.Active() {
		t.Error("console should be inactive after Fini")
	}
}

func TestEventType_String(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventKeyPress, "key-press"},
		{EventMouseWheel, "mouse-wheel"},
		{EventClose, "close"},
		{EventType(42), "EventType(42)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
