//go:build tinygo

package main

import (
	"context"
	"time"

	"qrlabel-go/bus"
	"qrlabel-go/services/config"
	"qrlabel-go/services/display"
	"qrlabel-go/services/hal"
	"qrlabel-go/services/label"
	"qrlabel-go/services/monitor"
	"qrlabel-go/x/timex"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot", boardName)

	cfg, cat, err := config.Load(boardName)
	if err != nil {
		fatal(err)
	}

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, boardName)
	b := bus.NewBus(8)

	if err := monitor.New(hal.Console(cfg.Console)).Start(ctx, b.NewConnection("monitor")); err != nil {
		fatal(err)
	}
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	wake := label.NewWakeFlag()
	board, err := hal.Setup(cfg, hal.DefaultPins(), wake)
	if err != nil {
		fatal(err)
	}
	panel, err := hal.NewPanel(cfg.Display)
	if err != nil {
		fatal(err)
	}

	opts, err := label.OptionsFromConfig(cfg, cat, board.Inputs)
	if err != nil {
		fatal(err)
	}
	opts.Renderer = display.NewRenderer(panel, cfg.Display)
	opts.Armer = board.Armer
	opts.Wake = wake
	opts.Clock = timex.NewMonotonic()
	opts.Conn = b.NewConnection("label")

	ctrl, err := label.New(opts)
	if err != nil {
		fatal(err)
	}
	println("[main] running")
	_ = ctrl.Run(ctx)
}

// fatal keeps reporting a startup error; there is nothing to fall back to.
func fatal(err error) {
	for {
		println("[main] fatal:", err.Error())
		time.Sleep(5 * time.Second)
	}
}
