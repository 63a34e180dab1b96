package label

import (
	"qrlabel-go/bus"
	"qrlabel-go/types"
)

// Topics published by the controller.
var (
	TopicNav     = bus.T("label", "nav")
	TopicPress   = bus.T("label", "press")
	TopicRefresh = bus.T("label", "refresh")
	TopicPower   = bus.T("label", "power")
)

// tap publishes controller events when a bus connection is configured.
// A nil connection makes every method a no-op.
type tap struct {
	conn *bus.Connection
}

func (t *tap) nav(v types.NavState) {
	if t.conn != nil {
		t.conn.Publish(t.conn.NewMessage(TopicNav, v, true))
	}
}

func (t *tap) press(v types.PressEvent) {
	if t.conn != nil {
		t.conn.Publish(t.conn.NewMessage(TopicPress, v, false))
	}
}

func (t *tap) refresh(v types.RefreshEvent) {
	if t.conn != nil {
		t.conn.Publish(t.conn.NewMessage(TopicRefresh, v, false))
	}
}

func (t *tap) power(v types.PowerState) {
	if t.conn != nil {
		t.conn.Publish(t.conn.NewMessage(TopicPower, v, true))
	}
}

func pressKind(k EventKind) types.PressKind {
	switch k {
	case EventShort:
		return types.PressShort
	case EventLong:
		return types.PressLong
	case EventRepeat:
		return types.PressRepeat
	default:
		return types.PressStart
	}
}
