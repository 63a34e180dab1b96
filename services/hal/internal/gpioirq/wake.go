// services/hal/internal/gpioirq/wake.go
package gpioirq

import (
	"strconv"
	"sync/atomic"

	"qrlabel-go/errcode"
	"qrlabel-go/services/hal/internal/halcore"
)

// Armer turns button press edges into wake signals. Each line's ISR
// handler is built once in Add, so Arm, Disarm and the interrupt itself
// never allocate.
type Armer struct {
	lines  []*line
	signal func()
	fired  atomic.Uint32
}

type line struct {
	pin     halcore.IRQPin
	edge    halcore.Edge
	handler func()
	armed   bool
}

// New returns an Armer whose handlers call signal. signal must be safe
// in interrupt context.
func New(signal func()) *Armer {
	return &Armer{signal: signal}
}

// Add registers pin as wake source number len(lines) and returns it.
func (a *Armer) Add(pin halcore.IRQPin, edge halcore.Edge) int {
	l := &line{pin: pin, edge: edge}
	l.handler = func() {
		a.fired.Add(1)
		a.signal()
	}
	a.lines = append(a.lines, l)
	return len(a.lines) - 1
}

// Arm enables the IRQ on source i. Arming twice is a no-op.
func (a *Armer) Arm(i int) error {
	if i < 0 || i >= len(a.lines) {
		return errcode.New(errcode.InvalidParams, "gpioirq.arm", "no wake source "+strconv.Itoa(i))
	}
	l := a.lines[i]
	if l.armed || l.edge == halcore.EdgeNone {
		return nil
	}
	if err := l.pin.SetIRQ(l.edge, l.handler); err != nil {
		return errcode.Wrap(errcode.Unsupported, "gpioirq.arm", err)
	}
	l.armed = true
	return nil
}

// Disarm clears the IRQ on source i.
func (a *Armer) Disarm(i int) {
	if i < 0 || i >= len(a.lines) || !a.lines[i].armed {
		return
	}
	_ = a.lines[i].pin.ClearIRQ()
	a.lines[i].armed = false
}

func (a *Armer) Armed(i int) bool { return i >= 0 && i < len(a.lines) && a.lines[i].armed }

func (a *Armer) Len() int { return len(a.lines) }

// Fired counts handler invocations.
func (a *Armer) Fired() uint32 { return a.fired.Load() }
