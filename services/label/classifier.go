package label

// Policy is the per-button timing policy. Repeat selects the repeat
// discriminator (auto-repeat while held); otherwise the simple
// discriminator reports short or long on release.
type Policy struct {
	LongPressMs int64
	RepeatMs    int64
	RepeatStep  int
	Repeat      bool
}

type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePressed
	PhaseRepeating
)

type EventKind uint8

const (
	EventNone EventKind = iota
	EventPressStart
	EventShort
	EventLong
	EventRepeat
)

func (k EventKind) String() string {
	switch k {
	case EventPressStart:
		return "press"
	case EventShort:
		return "short"
	case EventLong:
		return "long"
	case EventRepeat:
		return "repeat"
	default:
		return "none"
	}
}

// Event is a classified press. HeldMs is the time since the press edge;
// Step is the policy's repeat step on EventRepeat and 1 otherwise.
type Event struct {
	Kind   EventKind
	HeldMs int64
	Step   int
}

// ButtonState is the classifier's per-button memory.
type ButtonState struct {
	Level      bool
	Phase      Phase
	PressStart int64
	LastRepeat int64
}

// Held reports whether a classified press is in progress.
func (s ButtonState) Held() bool { return s.Phase != PhaseIdle }

// Classifier turns one button's level sequence into press events.
// Thresholds compare with >=: a hold of exactly LongPressMs is long.
type Classifier struct {
	policy Policy
	st     ButtonState
}

func NewClassifier(p Policy) Classifier {
	if p.RepeatStep <= 0 {
		p.RepeatStep = 1
	}
	return Classifier{policy: p}
}

func (c *Classifier) Policy() Policy     { return c.policy }
func (c *Classifier) State() ButtonState { return c.st }

// Reset forgets any press in progress and takes level as the baseline.
// A line that is already down after Reset produces no events until it is
// released and pressed again.
func (c *Classifier) Reset(level bool) {
	c.st = ButtonState{Level: level}
}

// Update consumes this tick's level. At most one event per tick.
func (c *Classifier) Update(level bool, now int64) Event {
	prev := c.st.Level
	c.st.Level = level

	switch {
	case level && !prev:
		c.st.Phase = PhasePressed
		c.st.PressStart = now
		return Event{Kind: EventPressStart, Step: 1}

	case !level && prev:
		phase := c.st.Phase
		c.st.Phase = PhaseIdle
		if phase != PhasePressed {
			// Idle: press began before a Reset. Repeating: the repeats
			// already drove navigation.
			return Event{}
		}
		held := now - c.st.PressStart
		switch {
		case held < c.policy.LongPressMs:
			return Event{Kind: EventShort, HeldMs: held, Step: 1}
		case !c.policy.Repeat:
			return Event{Kind: EventLong, HeldMs: held, Step: 1}
		}
		return Event{}

	case level && prev && c.policy.Repeat:
		held := now - c.st.PressStart
		switch c.st.Phase {
		case PhasePressed:
			if held >= c.policy.LongPressMs {
				c.st.Phase = PhaseRepeating
				c.st.LastRepeat = now
				return Event{Kind: EventRepeat, HeldMs: held, Step: c.policy.RepeatStep}
			}
		case PhaseRepeating:
			if now-c.st.LastRepeat >= c.policy.RepeatMs {
				c.st.LastRepeat = now
				return Event{Kind: EventRepeat, HeldMs: held, Step: c.policy.RepeatStep}
			}
		}
	}
	return Event{}
}
