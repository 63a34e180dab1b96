package label

import (
	"qrlabel-go/errcode"
	"qrlabel-go/types"
)

type PowerState uint8

const (
	Active PowerState = iota
	Sleeping
)

func (p PowerState) String() string {
	if p == Sleeping {
		return "sleeping"
	}
	return "active"
}

// PowerMachine moves between Active and Sleeping. Sleep is entered on
// inactivity or on request; wake happens only on an armed button edge.
type PowerMachine struct {
	r         Renderer
	armer     WakeArmer
	wake      *WakeFlag
	clock     *ActivityClock
	timeoutMs int64
	sources   []int

	state PowerState
	armed []bool

	stats *Stats
	tap   *tap
}

func newPowerMachine(r Renderer, armer WakeArmer, wake *WakeFlag, clock *ActivityClock, timeoutMs int64, sources []int, stats *Stats, t *tap) *PowerMachine {
	return &PowerMachine{
		r:         r,
		armer:     armer,
		wake:      wake,
		clock:     clock,
		timeoutMs: timeoutMs,
		sources:   sources,
		armed:     make([]bool, len(sources)),
		stats:     stats,
		tap:       t,
	}
}

func (p *PowerMachine) State() PowerState { return p.state }
func (p *PowerMachine) Sleeping() bool    { return p.state == Sleeping }

// Tick enters Sleeping once the activity clock has been idle for the
// timeout. While Sleeping it does nothing, so one idle period sleeps once.
func (p *PowerMachine) Tick(now int64) bool {
	if p.state != Active || p.clock.Idle(now) < p.timeoutMs {
		return false
	}
	p.enter(now, "idle")
	return true
}

// RequestSleep enters Sleeping immediately, regardless of the timer.
func (p *PowerMachine) RequestSleep(now int64) {
	if p.state == Active {
		p.enter(now, "button")
	}
}

func (p *PowerMachine) enter(now int64, reason string) {
	println("[power] sleeping, reason:", reason)
	err := p.r.DrawSleepNotice()
	ev := types.RefreshEvent{Kind: types.RefreshSleep, TS: now}
	if err != nil {
		p.stats.DrawFailures++
		ev.Error = string(errcode.Of(err))
		println("[power] sleep notice failed:", err.Error())
	}
	p.tap.refresh(ev)
	p.r.PowerDown()

	p.wake.Clear()
	n := 0
	for i, b := range p.sources {
		if err := p.armer.Arm(b); err != nil {
			println("[power] arm failed for button", b, "err:", err.Error())
			continue
		}
		p.armed[i] = true
		n++
	}
	if n == 0 && len(p.sources) > 0 {
		println("[power] no wake source armed")
	}
	p.state = Sleeping
	p.stats.Sleeps++
	p.tap.power(types.PowerState{Level: types.PowerSleeping, Reason: reason, TS: now})
}

// Wake disarms every source, restarts the activity clock and returns to
// Active. The caller repaints the current item.
func (p *PowerMachine) Wake(now int64) {
	if p.state != Sleeping {
		return
	}
	for i, b := range p.sources {
		if p.armed[i] {
			p.armer.Disarm(b)
			p.armed[i] = false
		}
	}
	p.clock.Touch(now)
	p.state = Active
	p.stats.Wakes++
	println("[power] awake")
	p.tap.power(types.PowerState{Level: types.PowerActive, Reason: "wake", TS: now})
}
