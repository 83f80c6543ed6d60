// Package loop drives a window with a fixed-rate game loop.
//
// Events interleaves three kinds of events: input polled from the window,
// fixed-step updates at the configured updates per second, and renders
// capped at the configured maximum frame rate. Buffers are swapped after
// every render, before the next event is produced.
package loop

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dshills/cellwindow/internal/input"
	"github.com/dshills/cellwindow/internal/window"
)

// Default rates.
const (
	DefaultUPS    = 120
	DefaultMaxFPS = 60

	// maxLag bounds how far behind the update clock may fall before
	// pending updates are dropped.
	maxLag = 250 * time.Millisecond

	// maxIdle bounds a single idle sleep so input stays responsive.
	maxIdle = 5 * time.Millisecond
)

// Kind identifies a loop event.
type Kind uint8

const (
	KindInput Kind = iota
	KindUpdate
	KindRender
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindUpdate:
		return "update"
	case KindRender:
		return "render"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one step of the loop.
type Event struct {
	Kind Kind

	// Input is set for KindInput.
	Input input.Event

	// Dt is the fixed step in seconds for KindUpdate, and the time since
	// the last update for KindRender.
	Dt float64

	// Size is the window's draw size for KindRender.
	Size window.Size
}

// Events is the loop state. The zero value is not usable; call New.
type Events struct {
	ups    int
	maxFPS int

	started    bool
	nextUpdate time.Time
	lastUpdate time.Time
	nextRender time.Time
	swapDue    bool

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)

	inputs  atomic.Uint64
	updates atomic.Uint64
	renders atomic.Uint64
	skipped atomic.Uint64
}

// New returns a loop running at DefaultUPS and DefaultMaxFPS.
func New() *Events {
	return &Events{
		ups:    DefaultUPS,
		maxFPS: DefaultMaxFPS,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

// UPS sets the updates per second. Values below 1 are raised to 1.
func (e *Events) UPS(n int) *Events {
	e.ups = max(n, 1)
	return e
}

// MaxFPS sets the maximum renders per second. Values below 1 are raised
// to 1.
func (e *Events) MaxFPS(n int) *Events {
	e.maxFPS = max(n, 1)
	return e
}

func (e *Events) updatePeriod() time.Duration {
	return time.Second / time.Duration(e.ups)
}

func (e *Events) framePeriod() time.Duration {
	return time.Second / time.Duration(e.maxFPS)
}

// Next returns the next loop event for w. It returns false once w should
// close or ctx is done. Next blocks only while idle between events.
func (e *Events) Next(ctx context.Context, w window.Window) (Event, bool) {
	if e.swapDue {
		e.swapDue = false
		w.SwapBuffers()
	}

	if !e.started {
		now := e.now()
		e.started = true
		e.lastUpdate = now
		e.nextUpdate = now.Add(e.updatePeriod())
		e.nextRender = now
	}

	for {
		if ctx.Err() != nil || w.ShouldClose() {
			return Event{}, false
		}

		if ev, ok := w.PollEvent(); ok {
			e.inputs.Add(1)
			return Event{Kind: KindInput, Input: ev}, true
		}

		now := e.now()

		if !now.Before(e.nextUpdate) {
			period := e.updatePeriod()
			if now.Sub(e.nextUpdate) > maxLag {
				behind := int64(now.Sub(e.nextUpdate) / period)
				e.skipped.Add(uint64(behind))
				e.nextUpdate = now
			}
			e.lastUpdate = e.nextUpdate
			e.nextUpdate = e.nextUpdate.Add(period)
			e.updates.Add(1)
			return Event{Kind: KindUpdate, Dt: period.Seconds()}, true
		}

		if !now.Before(e.nextRender) {
			e.nextRender = now.Add(e.framePeriod())
			e.swapDue = true
			e.renders.Add(1)
			return Event{
				Kind: KindRender,
				Dt:   now.Sub(e.lastUpdate).Seconds(),
				Size: w.DrawSize(),
			}, true
		}

		wake := e.nextUpdate
		if e.nextRender.Before(wake) {
			wake = e.nextRender
		}
		e.sleep(ctx, min(wake.Sub(now), maxIdle))
	}
}

// Stats is a point-in-time view of loop counters.
type Stats struct {
	Inputs  uint64
	Updates uint64
	Renders uint64
	Skipped uint64
}

// Stats returns the loop counters. It is safe to call from any goroutine.
func (e *Events) Stats() Stats {
	return Stats{
		Inputs:  e.inputs.Load(),
		Updates: e.updates.Load(),
		Renders: e.renders.Load(),
		Skipped: e.skipped.Load(),
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
