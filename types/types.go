package types

// Payloads published by the label controller on "label/...".

// NavState is the current selection (retained on label/nav).
type NavState struct {
	Group     int    `json:"group"`
	Item      int    `json:"item"`
	GroupName string `json:"group_name"`
	Label     string `json:"label"`
	Code      int    `json:"code"`
	TS        int64  `json:"ts_ms"`
}

type PressKind string

const (
	PressStart  PressKind = "press"
	PressShort  PressKind = "short"
	PressLong   PressKind = "long"
	PressRepeat PressKind = "repeat"
)

// PressEvent is a classified button event (label/press).
type PressEvent struct {
	Button string    `json:"button"`
	Kind   PressKind `json:"kind"`
	HeldMs int64     `json:"held_ms"`
	TS     int64     `json:"ts_ms"`
}

type RefreshKind string

const (
	RefreshLabel RefreshKind = "label"
	RefreshFull  RefreshKind = "full"
	RefreshSleep RefreshKind = "sleep"
)

// RefreshEvent reports one draw request and its outcome (label/refresh).
type RefreshEvent struct {
	Kind    RefreshKind `json:"kind"`
	Label   string      `json:"label,omitempty"`
	Payload string      `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
	TS      int64       `json:"ts_ms"`
}

type PowerLevel string

const (
	PowerActive   PowerLevel = "active"
	PowerSleeping PowerLevel = "sleeping"
)

// PowerState is retained on label/power.
type PowerState struct {
	Level  PowerLevel `json:"level"`
	Reason string     `json:"reason,omitempty"` // "idle", "button", "wake", "boot"
	TS     int64      `json:"ts_ms"`
}
