// services/hal/hal.go
package hal

import (
	"io"
	"strconv"

	"qrlabel-go/errcode"
	"qrlabel-go/services/display"
	"qrlabel-go/services/hal/internal/gpioirq"
	"qrlabel-go/services/hal/internal/halcore"
	"qrlabel-go/services/hal/internal/platform"
	"qrlabel-go/services/label"
	"qrlabel-go/types"
)

// PinFactory supplies input pins by machine.Pin number.
type PinFactory = halcore.PinFactory

// DefaultPins is the platform's pin bank: machine pins on MCUs, a
// simulated bank on the host.
func DefaultPins() PinFactory { return platform.DefaultPinFactory() }

// NewPanel brings up the display configured in cfg.
func NewPanel(cfg types.DisplayConfig) (display.Panel, error) { return platform.NewPanel(cfg) }

// Console returns the writer the event monitor logs to.
func Console(cfg types.ConsoleConfig) io.Writer { return platform.Console(cfg) }

// Board is the set of configured button lines.
type Board struct {
	Name   string
	Inputs []label.Input
	Armer  *gpioirq.Armer

	lines []button
}

// Setup configures every button in cfg as a biased input and registers its
// press edge with a wake armer that raises wake.
func Setup(cfg types.DeviceConfig, pins PinFactory, wake *label.WakeFlag) (*Board, error) {
	b := &Board{
		Name:  cfg.Board,
		Armer: gpioirq.New(wake.Signal),
	}
	seen := map[int]bool{}
	for _, bc := range cfg.Buttons {
		if seen[bc.Pin] {
			return nil, errcode.New(errcode.PinInUse, "hal.setup", "pin "+strconv.Itoa(bc.Pin)+" used twice")
		}
		seen[bc.Pin] = true

		pin, ok := pins.ByNumber(bc.Pin)
		if !ok {
			return nil, errcode.New(errcode.UnknownPin, "hal.setup", "button "+bc.Name+": pin "+strconv.Itoa(bc.Pin))
		}
		if err := pin.ConfigureInput(halcore.PressPull(bc.ActiveLow)); err != nil {
			return nil, errcode.Wrap(errcode.Error, "hal.setup", err)
		}
		line := button{pin: pin, activeLow: bc.ActiveLow}
		b.lines = append(b.lines, line)
		b.Inputs = append(b.Inputs, line)
		b.Armer.Add(pin, halcore.PressEdge(bc.ActiveLow))
	}
	println("[hal]", cfg.Board, "buttons:", len(b.lines))
	return b, nil
}

// Pin returns the line behind button i.
func (b *Board) Pin(i int) halcore.IRQPin { return b.lines[i].pin }

// button reads a pin in pressed polarity.
type button struct {
	pin       halcore.IRQPin
	activeLow bool
}

func (b button) Pressed() bool { return b.pin.Get() != b.activeLow }
