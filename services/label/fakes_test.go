package label

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"qrlabel-go/bus"
	"qrlabel-go/catalog"
	"qrlabel-go/types"
	"qrlabel-go/x/timex"
)

type drawCall struct {
	kind    string // "label", "full", "sleep", "off"
	text    string
	payload string
}

type fakeRenderer struct {
	calls   []drawCall
	failAll bool
}

var errPanel = errors.New("panel busy")

func (r *fakeRenderer) DrawLabel(text string) error {
	r.calls = append(r.calls, drawCall{kind: "label", text: text})
	if r.failAll {
		return errPanel
	}
	return nil
}

func (r *fakeRenderer) DrawFull(text, payload string) error {
	r.calls = append(r.calls, drawCall{kind: "full", text: text, payload: payload})
	if r.failAll {
		return errPanel
	}
	return nil
}

func (r *fakeRenderer) DrawSleepNotice() error {
	r.calls = append(r.calls, drawCall{kind: "sleep"})
	if r.failAll {
		return errPanel
	}
	return nil
}

func (r *fakeRenderer) PowerDown() { r.calls = append(r.calls, drawCall{kind: "off"}) }

func (r *fakeRenderer) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func (r *fakeRenderer) last(kind string) drawCall {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].kind == kind {
			return r.calls[i]
		}
	}
	return drawCall{}
}

func (r *fakeRenderer) reset() { r.calls = nil }

// fakeArmer signals the wake flag when an armed button is "pressed".
type fakeArmer struct {
	wake  *WakeFlag
	armed map[int]bool
	fail  map[int]bool
	arms  int
}

func newFakeArmer(w *WakeFlag) *fakeArmer {
	return &fakeArmer{wake: w, armed: map[int]bool{}, fail: map[int]bool{}}
}

func (a *fakeArmer) Arm(b int) error {
	if a.fail[b] {
		return errPanel
	}
	a.armed[b] = true
	a.arms++
	return nil
}

func (a *fakeArmer) Disarm(b int) { delete(a.armed, b) }

func (a *fakeArmer) edge(b int) {
	if a.armed[b] {
		a.wake.Signal()
	}
}

type line struct{ down bool }

func (l *line) Pressed() bool { return l.down }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var groups []catalog.Group
	for g, name := range []string{"A", "B"} {
		grp := catalog.Group{Name: name}
		for i := 0; i < 5; i++ {
			grp.Items = append(grp.Items, catalog.Item{
				Label: name + string(rune('1'+i)),
				Code:  (g+1)*100 + i,
			})
		}
		groups = append(groups, grp)
	}
	cat, err := catalog.New(groups)
	require.NoError(t, err)
	return cat
}

// rig is a controller with five buttons bound like the pico profile:
// 0 item:+1, 1 item:-1, 2 item:+10, 3 item:-10 (all on press),
// 4 short=group:next long=sleep.
type rig struct {
	t     *testing.T
	clk   *timex.Manual
	r     *fakeRenderer
	armer *fakeArmer
	wake  *WakeFlag
	lines []*line
	c     *Controller
}

const tickMs = 10

func cmd(t *testing.T, s string) types.Command {
	t.Helper()
	c, err := types.ParseCommand(s)
	require.NoError(t, err)
	return c
}

func newRig(t *testing.T, buttons ...Button) *rig {
	t.Helper()
	return newRigConn(t, nil, buttons...)
}

func newRigConn(t *testing.T, conn *bus.Connection, buttons ...Button) *rig {
	t.Helper()
	rg := &rig{t: t, clk: &timex.Manual{}, r: &fakeRenderer{}, wake: NewWakeFlag()}
	rg.armer = newFakeArmer(rg.wake)
	if len(buttons) == 0 {
		simple := Policy{LongPressMs: 1500}
		buttons = []Button{
			{Name: "A", Policy: simple, Binding: Binding{OnPress: cmd(t, "item:+1")}, Wake: true},
			{Name: "B", Policy: simple, Binding: Binding{OnPress: cmd(t, "item:-1")}, Wake: true},
			{Name: "C", Policy: simple, Binding: Binding{OnPress: cmd(t, "item:+10")}, Wake: true},
			{Name: "D", Policy: simple, Binding: Binding{OnPress: cmd(t, "item:-10")}, Wake: true},
			{Name: "E", Policy: simple, Binding: Binding{OnShort: cmd(t, "group:next"), OnLong: cmd(t, "sleep")}, Wake: true},
		}
	}
	for i := range buttons {
		l := &line{}
		rg.lines = append(rg.lines, l)
		buttons[i].Input = l
	}
	c, err := New(Options{
		Catalog:      testCatalog(t),
		Buttons:      buttons,
		Renderer:     rg.r,
		Armer:        rg.armer,
		Wake:         rg.wake,
		Clock:        rg.clk,
		Tick:         tickMs * time.Millisecond,
		QuietMs:      2000,
		InactivityMs: 180000,
		QRPrefix:     "P:",
		Conn:         conn,
	})
	require.NoError(t, err)
	rg.c = c
	c.Start()
	return rg
}

// step advances the clock one tick and runs the controller.
func (rg *rig) step() {
	rg.clk.Advance(tickMs * time.Millisecond)
	rg.c.Tick()
}

// run steps until ms have elapsed.
func (rg *rig) run(ms int64) {
	for end := rg.clk.NowMs() + ms; rg.clk.NowMs() < end; {
		rg.step()
	}
}

func (rg *rig) press(b int)   { rg.lines[b].down = true }
func (rg *rig) release(b int) { rg.lines[b].down = false }

// click presses and releases b over two ticks.
func (rg *rig) click(b int) {
	rg.press(b)
	rg.step()
	rg.release(b)
	rg.step()
}

func (rg *rig) hold(b int, ms int64) {
	rg.press(b)
	rg.run(ms)
	rg.release(b)
	rg.step()
}
