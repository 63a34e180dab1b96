// services/hal/internal/gpioirq/wake_test.go

package gpioirq

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrlabel-go/errcode"
	"qrlabel-go/services/hal/internal/halcore"
)

// fakeIRQPin implements halcore.IRQPin with minimal behaviour for tests.
type fakeIRQPin struct {
	mu      sync.Mutex
	level   bool
	edge    halcore.Edge
	handler func()
	number  int
	failIRQ bool
}

func (p *fakeIRQPin) ConfigureInput(_ halcore.Pull) error { return nil }
func (p *fakeIRQPin) Get() bool                           { p.mu.Lock(); defer p.mu.Unlock(); return p.level }
func (p *fakeIRQPin) Number() int                         { return p.number }
func (p *fakeIRQPin) SetIRQ(e halcore.Edge, h func()) error {
	if p.failIRQ {
		return errors.New("no irq")
	}
	p.edge, p.handler = e, h
	return nil
}
func (p *fakeIRQPin) ClearIRQ() error { p.edge, p.handler = halcore.EdgeNone, nil; return nil }
func (p *fakeIRQPin) fire() {
	if p.handler != nil {
		p.handler()
	}
}

func TestArmFireDisarm(t *testing.T) {
	var signals int
	a := New(func() { signals++ })
	pin := &fakeIRQPin{number: 9}
	i := a.Add(pin, halcore.EdgeFalling)
	require.Equal(t, 0, i)

	pin.fire()
	assert.Zero(t, signals, "not armed yet")

	require.NoError(t, a.Arm(i))
	require.NoError(t, a.Arm(i))
	assert.True(t, a.Armed(i))
	assert.Equal(t, halcore.EdgeFalling, pin.edge)

	pin.fire()
	pin.fire()
	assert.Equal(t, 2, signals)
	assert.Equal(t, uint32(2), a.Fired())

	a.Disarm(i)
	a.Disarm(i)
	assert.False(t, a.Armed(i))
	pin.fire()
	assert.Equal(t, 2, signals)
}

func TestArmErrors(t *testing.T) {
	a := New(func() {})
	assert.Equal(t, errcode.InvalidParams, errcode.Of(a.Arm(3)))

	i := a.Add(&fakeIRQPin{failIRQ: true}, halcore.EdgeFalling)
	err := a.Arm(i)
	assert.Equal(t, errcode.Unsupported, errcode.Of(err))
	assert.False(t, a.Armed(i))

	j := a.Add(&fakeIRQPin{}, halcore.EdgeNone)
	assert.NoError(t, a.Arm(j))
	assert.False(t, a.Armed(j))
	assert.Equal(t, 2, a.Len())
}
