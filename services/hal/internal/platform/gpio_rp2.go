//go:build rp2040 || rp2350

package platform

// User GPIOs GP0..GP28.
const gpioMax = 28
