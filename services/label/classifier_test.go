package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feed drives c with level from..to (exclusive) in 10 ms ticks and returns
// every non-empty event.
func feed(c *Classifier, level bool, from, to int64) []Event {
	var out []Event
	for now := from; now < to; now += 10 {
		if ev := c.Update(level, now); ev.Kind != EventNone {
			out = append(out, ev)
		}
	}
	return out
}

func kinds(evs []Event) []EventKind {
	out := make([]EventKind, len(evs))
	for i, e := range evs {
		out[i] = e.Kind
	}
	return out
}

func TestClassifierShortPress(t *testing.T) {
	c := NewClassifier(Policy{LongPressMs: 1500})
	evs := feed(&c, true, 0, 100)
	evs = append(evs, c.Update(false, 100))

	assert.Equal(t, []EventKind{EventPressStart, EventShort}, kinds(evs))
	assert.Equal(t, int64(100), evs[1].HeldMs)
	assert.False(t, c.State().Held())
}

func TestClassifierLongPressOnRelease(t *testing.T) {
	c := NewClassifier(Policy{LongPressMs: 1500})
	evs := feed(&c, true, 0, 1600)
	require.Equal(t, []EventKind{EventPressStart}, kinds(evs), "simple policy emits nothing while held")

	ev := c.Update(false, 1600)
	assert.Equal(t, EventLong, ev.Kind)
	assert.Equal(t, int64(1600), ev.HeldMs)
}

func TestClassifierThresholdIsInclusive(t *testing.T) {
	c := NewClassifier(Policy{LongPressMs: 1500})
	c.Update(true, 0)
	assert.Equal(t, EventLong, c.Update(false, 1500).Kind)

	c.Update(true, 2000)
	assert.Equal(t, EventShort, c.Update(false, 3499).Kind)
}

func TestClassifierRepeatShortPressHasNoRepeat(t *testing.T) {
	c := NewClassifier(Policy{LongPressMs: 1500, RepeatMs: 500, Repeat: true})
	evs := feed(&c, true, 0, 300)
	evs = append(evs, c.Update(false, 300))

	assert.Equal(t, []EventKind{EventPressStart, EventShort}, kinds(evs))
}

func TestClassifierRepeatCadence(t *testing.T) {
	c := NewClassifier(Policy{LongPressMs: 1500, RepeatMs: 500, RepeatStep: 3, Repeat: true})
	var at []int64
	for now := int64(0); now <= 2600; now += 10 {
		ev := c.Update(true, now)
		if ev.Kind == EventRepeat {
			at = append(at, now)
			assert.Equal(t, 3, ev.Step)
		}
	}
	assert.Equal(t, []int64{1500, 2000, 2500}, at)
	assert.Equal(t, PhaseRepeating, c.State().Phase)

	// Release after repeating: the repeats already navigated.
	assert.Equal(t, EventNone, c.Update(false, 2610).Kind)
}

func TestClassifierRepeatReleaseAfterThresholdBeforeTick(t *testing.T) {
	// Released exactly on the tick the threshold is crossed: the release
	// wins and no long event is reported for a repeat button.
	c := NewClassifier(Policy{LongPressMs: 1500, RepeatMs: 500, Repeat: true})
	feed(&c, true, 0, 1500)
	assert.Equal(t, EventNone, c.Update(false, 1500).Kind)
}

func TestClassifierResetWhileHeld(t *testing.T) {
	c := NewClassifier(Policy{LongPressMs: 1500})
	c.Update(true, 0)
	c.Reset(true)

	assert.Empty(t, feed(&c, true, 10, 3000))
	assert.Equal(t, EventNone, c.Update(false, 3000).Kind, "press from before reset is forgotten")

	assert.Equal(t, EventPressStart, c.Update(true, 3010).Kind)
}

func TestClassifierDefaultsRepeatStep(t *testing.T) {
	c := NewClassifier(Policy{LongPressMs: 10, RepeatMs: 10, Repeat: true})
	assert.Equal(t, 1, c.Policy().RepeatStep)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "short", EventShort.String())
	assert.Equal(t, "none", EventNone.String())
}
