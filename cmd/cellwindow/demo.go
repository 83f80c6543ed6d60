package main

import (
	"fmt"
	"math"

	"github.com/dshills/cellwindow/internal/adapter"
	"github.com/dshills/cellwindow/internal/console"
	"github.com/dshills/cellwindow/internal/input"
	"github.com/dshills/cellwindow/internal/loop"
)

// demo is one of the selectable demo scenes.
type demo interface {
	input(ev input.Event)
	update(dt float64)
	render(win *adapter.Adapter, stats loop.Stats)
}

func newDemo(name string) (demo, error) {
	switch name {
	case "hello", "":
		return &helloDemo{}, nil
	case "mouse":
		return &mouseDemo{}, nil
	case "fps":
		return &fpsDemo{counter: loop.NewFPSCounter()}, nil
	default:
		return nil, fmt.Errorf("unknown demo %q (must be hello, mouse, or fps)", name)
	}
}

// printCentered prints s centered on row y.
func printCentered(win *adapter.Adapter, y int, s string) {
	x := (win.Size().Width - console.StringWidth(s)) / 2
	win.Print(max(x, 0), y, s)
}

// isInterrupt reports whether ev is Ctrl+C. The terminal runs in raw mode,
// so Ctrl+C arrives as a key press rather than SIGINT.
func isInterrupt(ev input.Event) bool {
	k, ok := ev.PressedKey()
	return ok && k == input.Key('c') && ev.Mods.Has(input.ModCtrl)
}

func quitHint(win *adapter.Adapter) string {
	if win.ExitOnEsc() {
		return "Press Esc to quit"
	}
	return "Press Ctrl+C to quit"
}

type helloDemo struct {
	last    input.Event
	presses int
	elapsed float64
}

func (d *helloDemo) input(ev input.Event) {
	if ev.Kind == input.KindPress || ev.Kind == input.KindRelease {
		d.last = ev
		if ev.Kind == input.KindPress {
			d.presses++
		}
	}
}

func (d *helloDemo) update(dt float64) {
	d.elapsed += dt
}

var spinner = []string{"|", "/", "-", "\\"}

func (d *helloDemo) render(win *adapter.Adapter, _ loop.Stats) {
	mid := win.Size().Height / 2
	frame := spinner[int(d.elapsed*8)%len(spinner)]

	printCentered(win, mid-2, fmt.Sprintf("%s %s %s", frame, win.Title(), frame))
	printCentered(win, mid, fmt.Sprintf("Window %s", win.Size()))
	if d.presses > 0 {
		printCentered(win, mid+1, fmt.Sprintf("Last: %s (%d presses)", d.last, d.presses))
	}
	printCentered(win, mid+3, quitHint(win))
}

type mouseDemo struct {
	x, y       float64
	dx, dy     float64
	scroll     float64
	lastButton string
	seen       bool
}

func (d *mouseDemo) input(ev input.Event) {
	switch ev.Kind {
	case input.KindMove:
		switch ev.Motion.Kind {
		case input.MotionCursor:
			d.x, d.y = ev.Motion.X, ev.Motion.Y
			d.seen = true
		case input.MotionRelative:
			d.dx, d.dy = ev.Motion.X, ev.Motion.Y
		case input.MotionScroll:
			d.scroll += ev.Motion.Y
		}
	case input.KindPress, input.KindRelease:
		if ev.Button.Device == input.DeviceMouse {
			d.lastButton = ev.String()
		}
	}
}

func (d *mouseDemo) update(float64) {}

func (d *mouseDemo) render(win *adapter.Adapter, _ loop.Stats) {
	win.Print(1, 1, "Move, click and scroll the mouse.")
	win.Print(1, 2, quitHint(win))
	win.Print(1, 4, fmt.Sprintf("cursor   %g,%g", d.x, d.y))
	win.Print(1, 5, fmt.Sprintf("relative %g,%g", d.dx, d.dy))
	win.Print(1, 6, fmt.Sprintf("scroll   %g", d.scroll))
	if d.lastButton != "" {
		win.Print(1, 7, "button   "+d.lastButton)
	}
	if d.seen {
		win.Print(int(math.Round(d.x)), int(math.Round(d.y)), "+")
	}
}

type fpsDemo struct {
	counter *loop.FPSCounter
	fps     int
	updates int
}

func (d *fpsDemo) input(input.Event) {}

func (d *fpsDemo) update(float64) {
	d.updates++
}

func (d *fpsDemo) render(win *adapter.Adapter, stats loop.Stats) {
	d.fps = d.counter.Tick()

	printCentered(win, 1, fmt.Sprintf("%d fps", d.fps))
	win.Print(1, 3, fmt.Sprintf("updates  %d", stats.Updates))
	win.Print(1, 4, fmt.Sprintf("renders  %d", stats.Renders))
	win.Print(1, 5, fmt.Sprintf("inputs   %d", stats.Inputs))
	win.Print(1, 6, fmt.Sprintf("skipped  %d", stats.Skipped))

	// A bar that sweeps once per hundred updates.
	w := win.Size().Width - 2
	if w > 0 {
		pos := d.updates % 100 * w / 100
		win.Print(1+pos, 8, "#")
	}
	win.Print(1, 10, quitHint(win))
}
