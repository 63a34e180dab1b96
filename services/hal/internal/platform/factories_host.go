// services/hal/internal/platform/factories_host.go
//go:build !tinygo

package platform

import (
	"sync"

	"qrlabel-go/services/display"
	"qrlabel-go/services/hal/internal/halcore"
	"qrlabel-go/types"
)

// ----------------------------- GPIO (host) -----------------------------------

// SimPins is a host pin bank driven by the simulator and tests.
type SimPins struct {
	mu   sync.Mutex
	pins map[int]*SimPin
}

func NewSimPins() *SimPins { return &SimPins{pins: map[int]*SimPin{}} }

// DefaultPinFactory returns a fresh simulated bank on the host.
func DefaultPinFactory() halcore.PinFactory { return NewSimPins() }

func (s *SimPins) ByNumber(n int) (halcore.IRQPin, bool) {
	if n < 0 {
		return nil, false
	}
	return s.Pin(n), true
}

// Pin returns pin n, creating it on first use.
func (s *SimPins) Pin(n int) *SimPin {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pins[n]
	if !ok {
		p = &SimPin{n: n}
		s.pins[n] = p
	}
	return p
}

// SimPin holds an electrical level. Drive fires the registered handler
// when the transition matches its edge, the way a pin interrupt would.
type SimPin struct {
	mu      sync.Mutex
	n       int
	level   bool
	pull    halcore.Pull
	edge    halcore.Edge
	handler func()
}

func (p *SimPin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	p.pull = pull
	p.level = pull == halcore.PullUp
	p.mu.Unlock()
	return nil
}

func (p *SimPin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *SimPin) Number() int { return p.n }

func (p *SimPin) SetIRQ(edge halcore.Edge, handler func()) error {
	p.mu.Lock()
	p.edge, p.handler = edge, handler
	p.mu.Unlock()
	return nil
}

func (p *SimPin) ClearIRQ() error {
	p.mu.Lock()
	p.edge, p.handler = halcore.EdgeNone, nil
	p.mu.Unlock()
	return nil
}

// Drive sets the electrical level.
func (p *SimPin) Drive(level bool) {
	p.mu.Lock()
	prev := p.level
	p.level = level
	h := p.handler
	fire := false
	switch p.edge {
	case halcore.EdgeRising:
		fire = !prev && level
	case halcore.EdgeFalling:
		fire = prev && !level
	case halcore.EdgeBoth:
		fire = prev != level
	}
	p.mu.Unlock()
	if fire && h != nil {
		h()
	}
}

// ----------------------------- Panel (host) ----------------------------------

// NewPanel returns an in-memory framebuffer of the configured size.
func NewPanel(cfg types.DisplayConfig) (display.Panel, error) {
	return display.NewFramebuffer(cfg.Width, cfg.Height), nil
}
