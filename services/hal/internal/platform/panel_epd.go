// services/hal/internal/platform/panel_epd.go
//go:build rp2040 || rp2350 || stm32f103

package platform

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/waveshare-epd/epd2in9"

	"qrlabel-go/errcode"
	"qrlabel-go/services/display"
	"qrlabel-go/types"
)

// SSD1608 power-off sequence: clock and analog off, then activate.
const (
	cmdUpdateControl2 = 0x22
	cmdMasterActivate = 0x20
	seqPowerOff       = 0xC3
)

// epdPanel adapts the 2.9" GDEH029A1 module. Full and partial updates
// need different waveform tables, so the LUT is switched on mode changes.
type epdPanel struct {
	dev     *epd2in9.Device
	partial bool
}

// NewPanel brings up SPI0 and the e-paper module and clears the glass.
func NewPanel(cfg types.DisplayConfig) (display.Panel, error) {
	p := cfg.Pins
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		Frequency: 4 * machine.MHz,
		SCK:       machine.Pin(p.SCK),
		SDO:       machine.Pin(p.SDO),
		SDI:       machine.Pin(p.SDI),
	}); err != nil {
		return nil, errcode.Wrap(errcode.Unsupported, "platform.panel", err)
	}

	dev := epd2in9.New(spi, machine.Pin(p.CS), machine.Pin(p.DC), machine.Pin(p.RST), machine.Pin(p.Busy))
	dev.Configure(epd2in9.Config{
		Width:    128,
		Height:   296,
		Rotation: epd2in9.Rotation(cfg.Rotation),
	})
	dev.ClearBuffer()
	dev.ClearDisplay()
	dev.WaitUntilIdle()
	println("[display] epd2in9 ready")
	return &epdPanel{dev: &dev}, nil
}

func (e *epdPanel) Size() (x, y int16) { return e.dev.Size() }

func (e *epdPanel) SetPixel(x, y int16, c color.RGBA) { e.dev.SetPixel(x, y, c) }

func (e *epdPanel) Display() error {
	if e.partial {
		e.dev.SetLUT(true)
		e.partial = false
	}
	err := e.dev.Display()
	e.dev.WaitUntilIdle()
	return err
}

func (e *epdPanel) DisplayRect(x, y, w, h int16) error {
	if !e.partial {
		e.dev.SetLUT(false)
		e.partial = true
	}
	err := e.dev.DisplayRect(x, y, w, h)
	e.dev.WaitUntilIdle()
	return err
}

func (e *epdPanel) ClearBuffer() { e.dev.ClearBuffer() }

// PowerOff stops the charge pump but keeps controller RAM, so the next
// partial update still has the full frame to diff against.
func (e *epdPanel) PowerOff() {
	e.dev.SendCommand(cmdUpdateControl2)
	e.dev.SendData(seqPowerOff)
	e.dev.SendCommand(cmdMasterActivate)
	e.dev.WaitUntilIdle()
}
