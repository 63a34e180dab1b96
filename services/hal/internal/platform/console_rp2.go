// services/hal/internal/platform/console_rp2.go
//go:build rp2040 || rp2350

package platform

import (
	"io"
	"machine"
	"os"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"qrlabel-go/types"
)

// Console returns the monitor's output. With a baud rate configured the
// monitor gets UART0 to itself; otherwise it shares the USB CDC stdout.
func Console(cfg types.ConsoleConfig) io.Writer {
	if cfg.Baud == 0 {
		return os.Stdout
	}
	hw := uartx.UART0
	// Configure pins and baud. Defaults inside uartx will apply if zero.
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: cfg.Baud,
		TX:       machine.Pin(cfg.TX),
		RX:       machine.Pin(cfg.RX),
	}); err != nil {
		println("[main] uart0 console:", err.Error())
		return os.Stdout
	}
	return hw
}
