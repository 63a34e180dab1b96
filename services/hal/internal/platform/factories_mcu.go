// services/hal/internal/platform/factories_mcu.go
//go:build rp2040 || rp2350 || stm32f103

package platform

import (
	"machine"

	"qrlabel-go/services/hal/internal/halcore"
)

// DefaultPinFactory maps logical numbers directly to machine.Pin(n): GP
// numbering on the Pico, port*16+bit on the blue pill.
func DefaultPinFactory() halcore.PinFactory { return mcuPinFactory{} }

type mcuPinFactory struct{}

func (mcuPinFactory) ByNumber(n int) (halcore.IRQPin, bool) {
	if n < 0 || n > gpioMax {
		return nil, false
	}
	return &mcuPin{p: machine.Pin(n), n: n}, true
}

type mcuPin struct {
	p machine.Pin
	n int
}

func (r *mcuPin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *mcuPin) Get() bool   { return r.p.Get() }
func (r *mcuPin) Number() int { return r.n }

func (r *mcuPin) SetIRQ(edge halcore.Edge, handler func()) error {
	return r.p.SetInterrupt(toPinChange(edge), func(machine.Pin) { handler() })
}

func (r *mcuPin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e halcore.Edge) machine.PinChange {
	switch e {
	case halcore.EdgeRising:
		return machine.PinRising
	case halcore.EdgeFalling:
		return machine.PinFalling
	case halcore.EdgeBoth:
		return machine.PinToggle
	default:
		// Zero value is a no-op/disabled.
		var zero machine.PinChange
		return zero
	}
}
