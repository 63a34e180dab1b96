// Package label is the input-to-refresh control core of the label device.
//
// Each tick the Controller samples the buttons, classifies presses, applies
// the bound navigation commands, schedules display refreshes and runs the
// Active/Sleeping power cycle. Everything runs on the caller's goroutine;
// the only value touched from elsewhere is the WakeFlag.
package label

import (
	"context"
	"time"

	"qrlabel-go/bus"
	"qrlabel-go/catalog"
	"qrlabel-go/errcode"
	"qrlabel-go/types"
	"qrlabel-go/x/timex"
)

// Binding maps press events to commands for one button.
type Binding struct {
	OnPress  types.Command
	OnShort  types.Command
	OnLong   types.Command
	OnRepeat types.Command
}

// For returns the command bound to kind.
func (b Binding) For(kind EventKind) types.Command {
	switch kind {
	case EventPressStart:
		return b.OnPress
	case EventShort:
		return b.OnShort
	case EventLong:
		return b.OnLong
	case EventRepeat:
		return b.OnRepeat
	}
	return types.CmdNone
}

// Button is one configured input line.
type Button struct {
	Name    string
	Input   Input
	Policy  Policy
	Binding Binding
	Wake    bool // arm as a wake source while Sleeping
}

type Options struct {
	Catalog  *catalog.Catalog
	Buttons  []Button
	Renderer Renderer
	Armer    WakeArmer
	Wake     *WakeFlag
	Clock    timex.Clock

	Tick         time.Duration
	QuietMs      int64
	InactivityMs int64
	QRPrefix     string

	// Conn, when set, receives label/... events.
	Conn *bus.Connection
}

// Stats are cumulative counters.
type Stats struct {
	LabelDraws   uint32
	FullDraws    uint32
	DrawFailures uint32
	Sleeps       uint32
	Wakes        uint32
}

// Snapshot is a read-only view of the controller state.
type Snapshot struct {
	Nav         NavigationState
	Item        catalog.Item
	Power       PowerState
	PendingFull bool
	LastActive  int64
}

type Controller struct {
	buttons     []Button
	classifiers []Classifier
	sampler     *Sampler
	nav         *Navigator
	sched       *Scheduler
	power       *PowerMachine
	activity    ActivityClock
	wake        *WakeFlag
	clock       timex.Clock
	tick        time.Duration

	stats Stats
	tap   tap
}

// New validates opts and wires the components. Nothing is drawn until
// Start.
func New(opts Options) (*Controller, error) {
	if opts.Catalog == nil {
		return nil, errcode.New(errcode.EmptyCatalog, "label.new", "nil catalog")
	}
	if opts.Renderer == nil || opts.Armer == nil || opts.Clock == nil {
		return nil, errcode.New(errcode.InvalidParams, "label.new", "renderer, armer and clock are required")
	}
	if len(opts.Buttons) == 0 {
		return nil, errcode.New(errcode.InvalidParams, "label.new", "no buttons")
	}
	if opts.QuietMs <= 0 || opts.InactivityMs <= 0 {
		return nil, errcode.New(errcode.InvalidParams, "label.new", "quiet and inactivity intervals must be positive")
	}
	if opts.Tick <= 0 {
		opts.Tick = 10 * time.Millisecond
	}
	if opts.Wake == nil {
		opts.Wake = NewWakeFlag()
	}

	c := &Controller{
		buttons:     opts.Buttons,
		classifiers: make([]Classifier, len(opts.Buttons)),
		wake:        opts.Wake,
		clock:       opts.Clock,
		tick:        opts.Tick,
		tap:         tap{conn: opts.Conn},
	}
	inputs := make([]Input, len(opts.Buttons))
	var sources []int
	for i, b := range opts.Buttons {
		if b.Input == nil {
			return nil, errcode.New(errcode.InvalidParams, "label.new", "button "+b.Name+" has no input")
		}
		if b.Policy.LongPressMs <= 0 || (b.Policy.Repeat && b.Policy.RepeatMs <= 0) {
			return nil, errcode.New(errcode.InvalidParams, "label.new", "button "+b.Name+" has no timing policy")
		}
		inputs[i] = b.Input
		c.classifiers[i] = NewClassifier(b.Policy)
		if b.Wake {
			sources = append(sources, i)
		}
	}
	c.sampler = NewSampler(inputs)
	c.power = newPowerMachine(opts.Renderer, opts.Armer, opts.Wake, &c.activity, opts.InactivityMs, sources, &c.stats, &c.tap)
	c.nav = NewNavigator(opts.Catalog, &c.activity, c.power)
	c.sched = newScheduler(opts.Renderer, &c.activity, opts.QuietMs, opts.QRPrefix, &c.stats, &c.tap)
	return c, nil
}

// Start paints the full view of the first item and starts the activity
// clock.
func (c *Controller) Start() {
	now := c.clock.NowMs()
	c.sampler.Resync()
	c.resetClassifiers()
	c.activity.Touch(now)
	c.tap.power(types.PowerState{Level: types.PowerActive, Reason: "boot", TS: now})
	c.publishNav(now)
	c.sched.Submit(RefreshRequest{Kind: RefreshFull, Item: c.nav.Current()}, now)
}

// Tick runs one control step at the clock's current time.
func (c *Controller) Tick() {
	now := c.clock.NowMs()

	if c.power.Sleeping() {
		if c.wake.Take() {
			c.resume(now)
		}
		return
	}

	levels := c.sampler.Sample()
	for i := range c.buttons {
		ev := c.classifiers[i].Update(levels[i], now)
		if ev.Kind == EventNone {
			continue
		}
		c.tap.press(types.PressEvent{Button: c.buttons[i].Name, Kind: pressKind(ev.Kind), HeldMs: ev.HeldMs, TS: now})

		cmd := c.buttons[i].Binding.For(ev.Kind)
		if req, ok := c.nav.Handle(cmd, ev.Step, now); ok {
			c.publishNav(now)
			c.sched.Submit(req, now)
		}
		if c.power.Sleeping() {
			return
		}
	}

	c.sched.Tick(now)
	c.power.Tick(now)
}

// Run starts the controller and ticks it until ctx ends. While Sleeping it
// blocks on the wake flag instead of ticking.
func (c *Controller) Run(ctx context.Context) error {
	c.Start()
	t := time.NewTicker(c.tick)
	defer t.Stop()

	for {
		if c.power.Sleeping() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-c.wake.C():
				c.resume(c.clock.NowMs())
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			c.Tick()
		}
	}
}

// resume completes a wake: disarm, restart activity, forget presses in
// flight and repaint the current item in full.
func (c *Controller) resume(now int64) {
	c.power.Wake(now)
	c.sampler.Resync()
	c.resetClassifiers()
	c.sched.Submit(RefreshRequest{Kind: RefreshFull, Item: c.nav.Current()}, now)
}

func (c *Controller) resetClassifiers() {
	for i := range c.classifiers {
		c.classifiers[i].Reset(c.sampler.Level(i))
	}
}

func (c *Controller) publishNav(now int64) {
	st := c.nav.State()
	it := c.nav.Current()
	c.tap.nav(types.NavState{
		Group:     st.Group,
		Item:      st.Item,
		GroupName: c.nav.Catalog().GroupName(st.Group),
		Label:     it.Label,
		Code:      it.Code,
		TS:        now,
	})
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Nav:         c.nav.State(),
		Item:        c.nav.Current(),
		Power:       c.power.State(),
		PendingFull: c.sched.Pending(),
		LastActive:  c.activity.Last(),
	}
}

func (c *Controller) Stats() Stats { return c.stats }

// Payload returns the QR payload the controller would draw for item.
func (c *Controller) Payload(item catalog.Item) string { return c.sched.Payload(item) }

// ButtonsFromConfig pairs each configured button with its input line.
func ButtonsFromConfig(cfg []types.ButtonConfig, inputs []Input) ([]Button, error) {
	if len(cfg) != len(inputs) {
		return nil, errcode.New(errcode.InvalidParams, "label.buttons", "button and input counts differ")
	}
	out := make([]Button, len(cfg))
	for i, b := range cfg {
		out[i] = Button{
			Name:  b.Name,
			Input: inputs[i],
			Policy: Policy{
				LongPressMs: int64(b.LongPressMs),
				RepeatMs:    int64(b.RepeatMs),
				RepeatStep:  b.RepeatStep,
				Repeat:      b.Repeat,
			},
			Binding: Binding{
				OnPress:  b.OnPress,
				OnShort:  b.OnShort,
				OnLong:   b.OnLong,
				OnRepeat: b.OnRepeat,
			},
			Wake: b.Wake,
		}
	}
	return out, nil
}

// OptionsFromConfig fills the timing and button fields of Options from a
// validated device profile.
func OptionsFromConfig(cfg types.DeviceConfig, cat *catalog.Catalog, inputs []Input) (Options, error) {
	buttons, err := ButtonsFromConfig(cfg.Buttons, inputs)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Catalog:      cat,
		Buttons:      buttons,
		Tick:         timex.Ms(cfg.TickMs),
		QuietMs:      int64(cfg.QuietIntervalMs),
		InactivityMs: int64(cfg.InactivityTimeoutMs),
		QRPrefix:     cfg.QRPrefix,
	}, nil
}
