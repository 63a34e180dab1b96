//go:build !tinygo

package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"qrlabel-go/x/mathx"
)

// runWindow shows the panel and forwards keys 1..n as buttons. It blocks
// until the window closes.
func (s *sim) runWindow() error {
	w, h := s.fb.Size()
	g := &window{s: s}
	ebiten.SetWindowTitle("labelsim (" + s.cfg.Board + ")")
	ebiten.SetWindowSize(int(w)*3, int(h)*3)
	ebiten.SetTPS(int(1000 / mathx.Max(s.cfg.TickMs, 1)))
	s.ctrl.Start()
	return ebiten.RunGame(g)
}

type window struct {
	s     *sim
	img   *image.RGBA
	fbImg *ebiten.Image
}

var buttonKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

func (g *window) Update() error {
	for i := range g.s.cfg.Buttons {
		if i >= len(buttonKeys) {
			break
		}
		if inpututil.IsKeyJustPressed(buttonKeys[i]) {
			g.s.board.Press(i, true)
		}
		if inpututil.IsKeyJustReleased(buttonKeys[i]) {
			g.s.board.Press(i, false)
		}
	}
	g.s.ctrl.Tick()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *window) Draw(screen *ebiten.Image) {
	gray := g.s.fb.Image()
	b := gray.Bounds()
	if g.img == nil || g.img.Bounds() != b {
		g.img = image.NewRGBA(b)
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	dst := g.img.Pix
	for i, v := range gray.Pix {
		j := i * 4
		dst[j+0] = v
		dst[j+1] = v
		dst[j+2] = v
		dst[j+3] = 0xFF
	}
	g.fbImg.WritePixels(dst)
	screen.DrawImage(g.fbImg, nil)
}

func (g *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.s.fb.Size()
	return int(w), int(h)
}
