package label

// ActivityClock holds the time of the last accepted navigation command.
// Written by the navigator and on wake; read by the refresh scheduler and
// the power state machine.
type ActivityClock struct {
	last int64
}

func (a *ActivityClock) Touch(now int64) { a.last = now }
func (a *ActivityClock) Last() int64     { return a.last }

// Idle returns the milliseconds elapsed since the last touch.
func (a *ActivityClock) Idle(now int64) int64 { return now - a.last }
