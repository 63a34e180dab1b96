// services/hal/internal/halcore/types.go
package halcore

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOPin is an input line in electrical polarity.
type GPIOPin interface {
	ConfigureInput(pull Pull) error
	Get() bool
	Number() int
}

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// IRQPin extends GPIOPin with interrupts. The handler runs in interrupt
// context on MCUs: it must not block or allocate.
type IRQPin interface {
	GPIOPin
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}

// PinFactory supplies pins by the MCU's machine.Pin numbering.
type PinFactory interface {
	ByNumber(n int) (IRQPin, bool)
}

// PressEdge is the electrical edge of a press: falling for an active-low
// button with a pull-up, rising otherwise.
func PressEdge(activeLow bool) Edge {
	if activeLow {
		return EdgeFalling
	}
	return EdgeRising
}

// PressPull is the bias that holds a released button at its idle level.
func PressPull(activeLow bool) Pull {
	if activeLow {
		return PullUp
	}
	return PullDown
}
