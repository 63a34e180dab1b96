// cmd/boardtest/main.go
//go:build tinygo && (rp2040 || rp2350 || stm32f103)

// Command boardtest exercises a freshly assembled board: it paints each of
// the three screens once, then reports button edges and wake interrupts.
package main

import (
	"time"

	"qrlabel-go/services/config"
	"qrlabel-go/services/display"
	"qrlabel-go/services/hal"
	"qrlabel-go/services/label"
)

// ---------- Configuration ----------

const (
	// Sequencing timing
	screenDwell = 3 * time.Second
	pollEvery   = 10 * time.Millisecond

	// Arm wake sources after this long without an edge.
	armAfter = 10 * time.Second
)

func main() {
	time.Sleep(2 * time.Second)
	println("[boardtest] boot", boardName)

	cfg, cat, err := config.Load(boardName)
	if err != nil {
		halt(err)
	}
	wake := label.NewWakeFlag()
	board, err := hal.Setup(cfg, hal.DefaultPins(), wake)
	if err != nil {
		halt(err)
	}
	panel, err := hal.NewPanel(cfg.Display)
	if err != nil {
		halt(err)
	}
	r := display.NewRenderer(panel, cfg.Display)

	// ---------- Screens ----------
	first := cat.Item(0, 0)
	report("full", r.DrawFull(first.Label, cfg.QRPrefix+"0"))
	time.Sleep(screenDwell)
	report("label", r.DrawLabel(cat.Item(0, cat.ItemCount(0)-1).Label))
	time.Sleep(screenDwell)
	report("sleep", r.DrawSleepNotice())
	r.PowerDown()

	// ---------- Buttons ----------
	s := label.NewSampler(board.Inputs)
	s.Resync()
	last := time.Now()
	armed := false
	for {
		s.Sample()
		for i := 0; i < s.Len(); i++ {
			switch {
			case s.Rose(i):
				println("[boardtest]", cfg.Buttons[i].Name, "down")
			case s.Fell(i):
				println("[boardtest]", cfg.Buttons[i].Name, "up")
			default:
				continue
			}
			last = time.Now()
		}

		if !armed && time.Since(last) > armAfter {
			for i := range cfg.Buttons {
				if err := board.Armer.Arm(i); err != nil {
					println("[boardtest] arm", cfg.Buttons[i].Name, "failed:", err.Error())
				}
			}
			armed = true
			println("[boardtest] wake sources armed, press any button")
		}
		if armed && wake.Take() {
			for i := range cfg.Buttons {
				board.Armer.Disarm(i)
			}
			armed = false
			last = time.Now()
			println("[boardtest] wake irq ok, fired:", board.Armer.Fired())
		}
		time.Sleep(pollEvery)
	}
}

func report(what string, err error) {
	if err != nil {
		println("[boardtest]", what, "FAILED:", err.Error())
		return
	}
	println("[boardtest]", what, "ok")
}

func halt(err error) {
	for {
		println("[boardtest] fatal:", err.Error())
		time.Sleep(5 * time.Second)
	}
}
