package label

import (
	"qrlabel-go/catalog"
	"qrlabel-go/errcode"
	"qrlabel-go/types"
	"qrlabel-go/x/conv"
)

type RefreshKind uint8

const (
	RefreshLabel RefreshKind = iota
	RefreshFull
)

// RefreshRequest is handed to the scheduler and not retained.
type RefreshRequest struct {
	Kind RefreshKind
	Item catalog.Item
}

// Scheduler paints the label immediately and defers the expensive full
// (QR) repaint until the activity clock has been quiet for quietMs.
// Bursts of navigation therefore cost one full repaint.
type Scheduler struct {
	r       Renderer
	clock   *ActivityClock
	quietMs int64
	prefix  string

	pending bool
	item    catalog.Item
	buf     [48]byte

	stats *Stats
	tap   *tap
}

func newScheduler(r Renderer, clock *ActivityClock, quietMs int64, prefix string, stats *Stats, t *tap) *Scheduler {
	return &Scheduler{r: r, clock: clock, quietMs: quietMs, prefix: prefix, stats: stats, tap: t}
}

// Pending reports whether a full repaint is owed.
func (s *Scheduler) Pending() bool { return s.pending }

// Submit handles a request. Label requests mark a full repaint pending;
// full requests settle it.
func (s *Scheduler) Submit(req RefreshRequest, now int64) {
	s.item = req.Item
	if req.Kind == RefreshFull {
		s.drawFull(now)
		return
	}
	err := s.r.DrawLabel(req.Item.Label)
	s.stats.LabelDraws++
	s.report(types.RefreshLabel, req.Item.Label, "", err, now)
	s.pending = true
}

// Tick issues the deferred full repaint once the quiet interval has passed.
func (s *Scheduler) Tick(now int64) bool {
	if !s.pending || s.clock.Idle(now) < s.quietMs {
		return false
	}
	s.drawFull(now)
	return true
}

// Cancel drops a pending full repaint.
func (s *Scheduler) Cancel() { s.pending = false }

// Payload returns the QR payload for item: prefix + decimal code.
func (s *Scheduler) Payload(item catalog.Item) string {
	return string(conv.AppendPrefixed(s.buf[:0], s.prefix, int64(item.Code)))
}

func (s *Scheduler) drawFull(now int64) {
	payload := s.Payload(s.item)
	err := s.r.DrawFull(s.item.Label, payload)
	s.stats.FullDraws++
	s.report(types.RefreshFull, s.item.Label, payload, err, now)
	// A failed full draw is not retried; the next navigation schedules another.
	s.pending = false
}

func (s *Scheduler) report(kind types.RefreshKind, label, payload string, err error, now int64) {
	ev := types.RefreshEvent{Kind: kind, Label: label, Payload: payload, TS: now}
	if err != nil {
		s.stats.DrawFailures++
		ev.Error = string(errcode.Of(err))
		println("[label]", string(kind), "draw failed:", err.Error())
	}
	s.tap.refresh(ev)
}
