package config

import (
	"bytes"
	"context"
	"embed"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"qrlabel-go/bus"
	"qrlabel-go/catalog"
	"qrlabel-go/errcode"
	"qrlabel-go/types"
	"qrlabel-go/x/strx"
)

const (
	serviceName  = "config"
	configPrefix = "config"
)

type ctxKey string

// CtxDeviceKey is the context key holding the board profile name.
const CtxDeviceKey ctxKey = "device"

// Defaults applied to zero fields of a decoded profile.
const (
	DefaultTickMs              = 10
	DefaultInactivityTimeoutMs = 180_000
	DefaultQuietIntervalMs     = 2_000
	DefaultLongPressMs         = 1_500
	DefaultRepeatMs            = 500
)

//go:embed profiles/*.toml
var profiles embed.FS

// EmbeddedConfigLookup allows overriding how profiles are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, err := profiles.ReadFile("profiles/" + board + ".toml")
	return b, err == nil && len(b) > 0
}

// Boards lists the embedded profile names.
func Boards() []string {
	ents, err := profiles.ReadDir("profiles")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(ents))
	for _, e := range ents {
		if name, ok := strings.CutSuffix(e.Name(), ".toml"); ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Load resolves, decodes and validates the profile for board.
func Load(board string) (types.DeviceConfig, *catalog.Catalog, error) {
	raw, ok := EmbeddedConfigLookup(board)
	if !ok {
		return types.DeviceConfig{}, nil, errcode.New(errcode.UnknownBoard, "config.load", strconv.Quote(board))
	}
	cfg, err := Decode(raw)
	if err != nil {
		return types.DeviceConfig{}, nil, err
	}
	cat, err := Validate(&cfg)
	if err != nil {
		return types.DeviceConfig{}, nil, err
	}
	return cfg, cat, nil
}

// Decode parses a TOML profile. Unknown keys are rejected so a typo in a
// binding never silently disables a button.
func Decode(raw []byte) (types.DeviceConfig, error) {
	var cfg types.DeviceConfig
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return types.DeviceConfig{}, errcode.Wrap(errcode.InvalidConfig, "config.decode", err)
	}
	return cfg, nil
}

// Validate fills defaults in place, checks button wiring and builds the
// catalog. The catalog is the only part that is copied out.
func Validate(cfg *types.DeviceConfig) (*catalog.Catalog, error) {
	if cfg.TickMs == 0 {
		cfg.TickMs = DefaultTickMs
	}
	if cfg.InactivityTimeoutMs == 0 {
		cfg.InactivityTimeoutMs = DefaultInactivityTimeoutMs
	}
	if cfg.QuietIntervalMs == 0 {
		cfg.QuietIntervalMs = DefaultQuietIntervalMs
	}
	validateDisplay(&cfg.Display)

	if len(cfg.Buttons) == 0 {
		return nil, errcode.New(errcode.InvalidConfig, "config.validate", "no buttons")
	}
	names := map[string]bool{}
	pins := map[int]bool{}
	for i := range cfg.Buttons {
		b := &cfg.Buttons[i]
		b.Name = strx.Coalesce(b.Name, "btn"+strconv.Itoa(i))
		if names[b.Name] {
			return nil, errcode.New(errcode.InvalidConfig, "config.validate", "duplicate button "+strconv.Quote(b.Name))
		}
		names[b.Name] = true
		if b.Pin < 0 {
			return nil, errcode.New(errcode.UnknownPin, "config.validate", "button "+b.Name)
		}
		if pins[b.Pin] {
			return nil, errcode.New(errcode.PinInUse, "config.validate", "pin "+strconv.Itoa(b.Pin))
		}
		pins[b.Pin] = true

		if b.LongPressMs == 0 {
			b.LongPressMs = DefaultLongPressMs
		}
		if b.Repeat {
			if b.RepeatMs == 0 {
				b.RepeatMs = DefaultRepeatMs
			}
			if b.RepeatStep <= 0 {
				b.RepeatStep = 1
			}
			if !b.OnLong.IsNone() {
				return nil, errcode.New(errcode.InvalidConfig, "config.validate", "button "+b.Name+": repeat buttons report no long press")
			}
		} else if !b.OnRepeat.IsNone() {
			return nil, errcode.New(errcode.InvalidConfig, "config.validate", "button "+b.Name+": on_repeat needs repeat = true")
		}
	}

	return catalog.New(cfg.Groups)
}

func validateDisplay(d *types.DisplayConfig) {
	if d.Width <= 0 || d.Height <= 0 {
		d.Width, d.Height = 296, 128
	}
	if d.LabelW <= 0 || d.LabelH <= 0 {
		d.LabelW, d.LabelH = 160, 32
	}
	if d.QRScale <= 0 {
		d.QRScale = 5
	}
	d.SleepText = strx.Coalesce(d.SleepText, "Entering Sleep...")
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type ConfigService struct {
	Name string
}

func NewConfigService() *ConfigService {
	return &ConfigService{Name: serviceName}
}

// publishConfig loads the board profile named in ctx and publishes it
// retained on config/device.
func (s *ConfigService) publishConfig(ctx context.Context, conn *bus.Connection) error {
	board, _ := ctx.Value(CtxDeviceKey).(string)
	if board == "" {
		return errcode.New(errcode.InvalidParams, "config.publish", "missing board in context")
	}
	cfg, _, err := Load(board)
	if err != nil {
		return err
	}
	conn.Publish(conn.NewMessage(bus.T(configPrefix, "device"), cfg, true))
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			println("[config] publish failed:", err.Error())
		}
	}()
}
