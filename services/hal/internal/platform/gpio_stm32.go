//go:build stm32f103

package platform

// PA0..PC15 on the 48-pin package.
const gpioMax = 47
