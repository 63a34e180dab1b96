// Package monitor writes one line per label event to a console. It is the
// device's only diagnostic surface: a UART on the Pico, stdout on the host.
package monitor

import (
	"context"
	"io"
	"time"

	"qrlabel-go/bus"
	"qrlabel-go/types"
	"qrlabel-go/x/conv"
)

var (
	topicLabelAll      = bus.T("label", bus.Multi)
	topicConfigMonitor = bus.T("config", "monitor")
	topicConfigDevice  = bus.T("config", "device")
)

// Config is accepted on config/monitor. A zero interval disables the
// periodic summary line.
type Config struct {
	IntervalS int  `json:"interval_s"`
	Presses   bool `json:"presses"`
}

type Service struct {
	w   io.Writer
	cfg Config
	buf []byte

	events uint32
}

// New returns a monitor that logs presses and prints a summary every
// minute until reconfigured.
func New(w io.Writer) *Service {
	return &Service{w: w, cfg: Config{IntervalS: 60, Presses: true}, buf: make([]byte, 0, 96)}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	sub := conn.Subscribe(topicLabelAll)
	defer conn.Unsubscribe(sub)
	cfgSub := conn.Subscribe(topicConfigMonitor)
	defer conn.Unsubscribe(cfgSub)
	devSub := conn.Subscribe(topicConfigDevice)
	defer conn.Unsubscribe(devSub)

	tick := time.NewTicker(s.interval())
	defer tick.Stop()

	// loop until context is cancelled, respond to events, tick and config changes
	for {
		select {
		case <-ctx.Done():
			println("[monitor] stopping")
			return
		case msg := <-sub.Channel():
			s.Handle(msg)
		case msg := <-devSub.Channel():
			s.Handle(msg)
		case <-tick.C:
			if s.cfg.IntervalS > 0 {
				s.summary()
			}
		case msg := <-cfgSub.Channel():
			if c, ok := msg.Payload.(Config); ok {
				s.cfg = c
				tick.Reset(s.interval())
				println("[monitor] interval set to", c.IntervalS, "seconds")
			}
		}
	}
}

func (s *Service) interval() time.Duration {
	if s.cfg.IntervalS <= 0 {
		return time.Hour
	}
	return time.Duration(s.cfg.IntervalS) * time.Second
}

// Start the monitor service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}

// Handle writes msg as one line. Unknown payloads are ignored.
func (s *Service) Handle(msg *bus.Message) {
	line, ok := s.format(msg)
	if !ok {
		return
	}
	s.events++
	_, _ = s.w.Write(line)
}

func (s *Service) summary() {
	b := append(s.buf[:0], "events "...)
	b = conv.AppendInt(b, int64(s.events))
	_, _ = s.w.Write(append(b, '\n'))
}

func (s *Service) format(msg *bus.Message) ([]byte, bool) {
	b := s.buf[:0]
	switch p := msg.Payload.(type) {
	case types.NavState:
		b = stamp(b, p.TS, "nav ")
		b = append(b, p.GroupName...)
		b = append(b, '/')
		b = conv.AppendInt(b, int64(p.Item))
		b = append(b, ' ')
		b = append(b, p.Label...)
		b = append(b, ' ')
		b = conv.AppendInt(b, int64(p.Code))
	case types.PressEvent:
		if !s.cfg.Presses {
			return nil, false
		}
		b = stamp(b, p.TS, "press ")
		b = append(b, p.Button...)
		b = append(b, ' ')
		b = append(b, string(p.Kind)...)
		if p.Kind != types.PressStart {
			b = append(b, ' ')
			b = conv.AppendInt(b, p.HeldMs)
			b = append(b, "ms"...)
		}
	case types.RefreshEvent:
		b = stamp(b, p.TS, "refresh ")
		b = append(b, string(p.Kind)...)
		if p.Label != "" {
			b = append(b, ' ')
			b = append(b, p.Label...)
		}
		if p.Payload != "" {
			b = append(b, ' ')
			b = append(b, p.Payload...)
		}
		if p.Error != "" {
			b = append(b, " err="...)
			b = append(b, p.Error...)
		}
	case types.PowerState:
		b = stamp(b, p.TS, "power ")
		b = append(b, string(p.Level)...)
		if p.Reason != "" {
			b = append(b, ' ')
			b = append(b, p.Reason...)
		}
	case types.DeviceConfig:
		b = append(b, "config "...)
		b = append(b, p.Board...)
		b = append(b, " buttons="...)
		b = conv.AppendInt(b, int64(len(p.Buttons)))
		b = append(b, " groups="...)
		b = conv.AppendInt(b, int64(len(p.Groups)))
	default:
		return nil, false
	}
	s.buf = b
	return append(b, '\n'), true
}

func stamp(b []byte, ts int64, what string) []byte {
	b = conv.AppendInt(b, ts)
	b = append(b, ' ')
	return append(b, what...)
}
