//go:build !tinygo

// Command labelsim runs the label controller on the host against an
// in-memory e-paper panel. Keys 1..n press the board's buttons.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"qrlabel-go/bus"
	"qrlabel-go/services/config"
	"qrlabel-go/services/display"
	"qrlabel-go/services/hal"
	"qrlabel-go/services/label"
	"qrlabel-go/services/monitor"
	"qrlabel-go/types"
	"qrlabel-go/x/timex"
)

type sim struct {
	cfg   types.DeviceConfig
	board *hal.Board
	fb    *display.Framebuffer
	ctrl  *label.Controller
}

func newSim(ctx context.Context, board string) (*sim, error) {
	cfg, cat, err := config.Load(board)
	if err != nil {
		return nil, err
	}

	b := bus.NewBus(16)
	if err := monitor.New(os.Stdout).Start(ctx, b.NewConnection("monitor")); err != nil {
		return nil, err
	}
	config.NewConfigService().Start(context.WithValue(ctx, config.CtxDeviceKey, board), b.NewConnection("config"))

	wake := label.NewWakeFlag()
	hb, err := hal.Setup(cfg, hal.NewSimPins(), wake)
	if err != nil {
		return nil, err
	}
	fb := display.NewFramebuffer(cfg.Display.Width, cfg.Display.Height)

	opts, err := label.OptionsFromConfig(cfg, cat, hb.Inputs)
	if err != nil {
		return nil, err
	}
	opts.Renderer = display.NewRenderer(fb, cfg.Display)
	opts.Armer = hb.Armer
	opts.Wake = wake
	opts.Clock = timex.NewMonotonic()
	opts.Conn = b.NewConnection("label")

	ctrl, err := label.New(opts)
	if err != nil {
		return nil, err
	}
	return &sim{cfg: cfg, board: hb, fb: fb, ctrl: ctrl}, nil
}

func main() {
	var board string
	var headless bool
	flag.StringVar(&board, "board", "pico", "Board profile to simulate.")
	flag.BoolVar(&headless, "headless", false, "Run without a window; read button commands from stdin.")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := newSim(ctx, board)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "boards:", config.Boards())
		os.Exit(1)
	}

	if headless {
		err = s.runHeadless(ctx, os.Stdin)
	} else {
		err = s.runWindow()
	}
	if err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
