//go:build !tinygo

package hal

import "qrlabel-go/services/hal/internal/platform"

// SimPins is the host pin bank.
type SimPins = platform.SimPins

func NewSimPins() *SimPins { return platform.NewSimPins() }

// Press drives button i on a simulated board to its pressed or released
// level. It reports false when the pin is not simulated.
func (b *Board) Press(i int, down bool) bool {
	p, ok := b.lines[i].pin.(*platform.SimPin)
	if !ok {
		return false
	}
	p.Drive(down != b.lines[i].activeLow)
	return true
}
