package label

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWakeFlagCollapses(t *testing.T) {
	w := NewWakeFlag()
	assert.False(t, w.Take())

	w.Signal()
	w.Signal()
	assert.True(t, w.Take())
	assert.False(t, w.Take(), "two edges, one wake")
	assert.Equal(t, uint32(2), w.Signals())
	assert.Equal(t, uint32(1), w.Drops())
}

func TestWakeFlagClear(t *testing.T) {
	w := NewWakeFlag()
	w.Signal()
	w.Clear()
	assert.False(t, w.Take())
}

func TestWakeFlagWait(t *testing.T) {
	w := NewWakeFlag()
	go func() {
		time.Sleep(5 * time.Millisecond)
		w.Signal()
	}()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Wait(ctx))

	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Wait(ctx), context.Canceled)
}
