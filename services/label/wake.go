package label

import (
	"context"
	"sync/atomic"
)

// WakeFlag is the single notification shared between the wake interrupt
// handlers and the main loop. Signal may be called from an ISR: it never
// blocks and never allocates. Capacity is one, so several edges during one
// sleep collapse into a single wake.
type WakeFlag struct {
	ch      chan struct{}
	signals atomic.Uint32
	drops   atomic.Uint32
}

func NewWakeFlag() *WakeFlag {
	return &WakeFlag{ch: make(chan struct{}, 1)}
}

// Signal raises the flag.
func (w *WakeFlag) Signal() {
	w.signals.Add(1)
	select {
	case w.ch <- struct{}{}:
	default:
		w.drops.Add(1) // already raised
	}
}

// Take lowers the flag and reports whether it was raised.
func (w *WakeFlag) Take() bool {
	select {
	case <-w.ch:
		return true
	default:
		return false
	}
}

// Clear lowers the flag. Called before arming so a stale edge from the
// previous cycle cannot end the next sleep.
func (w *WakeFlag) Clear() { w.Take() }

// C is the receive side for select loops.
func (w *WakeFlag) C() <-chan struct{} { return w.ch }

// Wait blocks until the flag is raised or ctx ends.
func (w *WakeFlag) Wait(ctx context.Context) error {
	select {
	case <-w.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Signals and Drops are diagnostic counters.
func (w *WakeFlag) Signals() uint32 { return w.signals.Load() }
func (w *WakeFlag) Drops() uint32   { return w.drops.Load() }
