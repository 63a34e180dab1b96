//go:build !tinygo

package main

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"time"
)

// runHeadless runs the controller on a ticker and applies stdin commands:
//
//	down N | up N   press or release button N (1-based)
//	wait MS         let MS milliseconds pass
//	quit
func (s *sim) runHeadless(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	cmds := make(chan []string)
	go func() {
		defer close(cmds)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			f := strings.Fields(sc.Text())
			if len(f) == 0 {
				continue
			}
			if f[0] == "wait" && len(f) == 2 {
				if ms, err := strconv.Atoi(f[1]); err == nil {
					time.Sleep(time.Duration(ms) * time.Millisecond)
				}
				continue
			}
			select {
			case cmds <- f:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() { done <- s.ctrl.Run(ctx) }()

	for {
		select {
		case err := <-done:
			return err
		case f, ok := <-cmds:
			if !ok || f[0] == "quit" {
				cancel()
				return <-done
			}
			s.apply(f)
		}
	}
}

func (s *sim) apply(f []string) {
	if len(f) != 2 || (f[0] != "down" && f[0] != "up") {
		println("[sim] unknown command:", strings.Join(f, " "))
		return
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n < 1 || n > len(s.cfg.Buttons) {
		println("[sim] no button", f[1])
		return
	}
	s.board.Press(n-1, f[0] == "down")
}
