package bus

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("label", "press"))
	conn.Publish(conn.NewMessage(T("label", "press"), "short", false))

	expectOneOf(t, sub, "short")
}

func TestRetainedMessage(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(conn.NewMessage(T("label", "power"), "active", true))
	sub := conn.Subscribe(T("label", "power"))

	expectOneOf(t, sub, "active")
}

func TestQueueDropsOldest(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")
	sub := c.Subscribe(T("label", "nav"))

	for _, p := range []string{"n1", "n2", "n3"} {
		c.Publish(b.NewMessage(T("label", "nav"), p, false))
	}
	assert.Equal(t, []string{"n2", "n3"}, drainPayloads(t, sub, 2))
}

func TestWildcard_SingleLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	s1 := c.Subscribe(T("a", "+", "c"))
	s2 := c.Subscribe(T("a", "+", "+"))
	s3 := c.Subscribe(T("a", "b", "+"))
	sNo := c.Subscribe(T("a", "+", "d"))

	c.Publish(b.NewMessage(T("a", "b", "c"), "m1", false))
	expectOneOf(t, s1, "m1")
	expectOneOf(t, s2, "m1")
	expectOneOf(t, s3, "m1")
	expectNoMessage(t, sNo)

	c.Publish(b.NewMessage(T("a", "c"), "m2", false))
	expectNoMessage(t, s1)
	expectNoMessage(t, s2)
}

func TestWildcard_MultiLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	sAHash := c.Subscribe(T("label", "#"))
	sHash := c.Subscribe(T("#"))
	sAExact := c.Subscribe(T("label"))

	c.Publish(b.NewMessage(T("label"), "p1", false))
	expectOneOf(t, sAHash, "p1")
	expectOneOf(t, sHash, "p1")
	expectOneOf(t, sAExact, "p1")

	c.Publish(b.NewMessage(T("label", "refresh"), "p2", false))
	expectOneOf(t, sAHash, "p2")
	expectOneOf(t, sHash, "p2")
	expectNoMessage(t, sAExact)
}

func TestWildcard_RetainedDelivery(t *testing.T) {
	b := NewBus(32)
	c := b.NewConnection("test")

	c.Publish(b.NewMessage(T("label"), "r0", true))
	c.Publish(b.NewMessage(T("label", "nav"), "r1", true))
	c.Publish(b.NewMessage(T("label", "nav", 0), "r2", true))
	c.Publish(b.NewMessage(T("label", "power"), "r3", true))

	assertUnorderedEqual(t, drainPayloads(t, c.Subscribe(T("label", "#")), 4), []string{"r0", "r1", "r2", "r3"})
	assertUnorderedEqual(t, drainPayloads(t, c.Subscribe(T("label", "+")), 2), []string{"r1", "r3"})
}

func TestWildcard_RetainedClear(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	c.Publish(b.NewMessage(T("label", "nav"), "keep", true))
	c.Publish(b.NewMessage(T("label", "power"), "other", true))
	c.Publish(b.NewMessage(T("label", "nav"), nil, true))

	got := drainPayloads(t, c.Subscribe(T("label", "#")), 1)
	assert.Equal(t, []string{"other"}, got)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")
	sub := c.Subscribe(T("label", "nav"))
	sub.Unsubscribe()

	_, ok := <-sub.Channel()
	assert.False(t, ok)

	// Second unsubscribe is a no-op.
	c.Unsubscribe(sub)
	c.Publish(b.NewMessage(T("label", "nav"), "x", false))
}

func TestDisconnect(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("monitor")
	s1 := c.Subscribe(T("label", "#"))
	s2 := c.Subscribe(T("config", "device"))
	c.Disconnect()

	_, ok1 := <-s1.Channel()
	_, ok2 := <-s2.Channel()
	assert.False(t, ok1)
	assert.False(t, ok2)
	assert.Equal(t, "monitor", c.ID())
}

func TestTopic_InvalidTokenPanics(t *testing.T) {
	require.Panics(t, func() { _ = T([]byte{1, 2, 3}) })
	tp := T("label", 3)
	assert.Equal(t, 2, tp.Len())
	assert.Equal(t, 3, tp.At(1))
}

// -----------------------------------------------------------------------------
// helpers
// -----------------------------------------------------------------------------

func expectOneOf(t *testing.T, sub *Subscription, want string) {
	t.Helper()
	select {
	case got := <-sub.Channel():
		s, ok := got.Payload.(string)
		require.True(t, ok, "payload type %T", got.Payload)
		require.Equal(t, want, s)
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("timeout waiting for %q", want)
	}
}

func expectNoMessage(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case got := <-sub.Channel():
		t.Fatalf("unexpected message: %#v", got)
	case <-time.After(30 * time.Millisecond):
	}
}

func drainPayloads(t *testing.T, sub *Subscription, n int) []string {
	t.Helper()
	var out []string
	deadline := time.Now().Add(300 * time.Millisecond)
	for len(out) < n && time.Now().Before(deadline) {
		select {
		case m := <-sub.Channel():
			s, ok := m.Payload.(string)
			require.True(t, ok, "non-string payload in drain: %#v", m.Payload)
			out = append(out, s)
		case <-time.After(10 * time.Millisecond):
		}
	}
	require.Len(t, out, n, "drainPayloads: got %v", out)
	return out
}

func assertUnorderedEqual(t *testing.T, got, want []string) {
	t.Helper()
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}
