// Package display draws the label device's three screens onto a 1-bit
// e-paper panel: the label window, the full label + QR view and the sleep
// notice.
package display

import (
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"qrlabel-go/errcode"
	"qrlabel-go/types"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Renderer implements the label controller's display port.
type Renderer struct {
	p    Panel
	cfg  types.DisplayConfig
	font tinyfont.Fonter
}

func NewRenderer(p Panel, cfg types.DisplayConfig) *Renderer {
	return &Renderer{p: p, cfg: cfg, font: &freemono.Bold18pt7b}
}

// LabelWindow returns the partial-update rectangle. The label baseline sits
// on its bottom edge.
func (r *Renderer) LabelWindow() (x, y, w, h int16) {
	return r.cfg.LabelX, r.cfg.LabelY - r.cfg.LabelH, r.cfg.LabelW, r.cfg.LabelH
}

func (r *Renderer) DrawLabel(text string) error {
	x, y, w, h := r.LabelWindow()
	fill(r.p, x, y, w, h, white)
	tinyfont.WriteLine(r.p, r.font, r.cfg.LabelX, r.cfg.LabelY, text, black)
	if err := r.p.DisplayRect(x, y, w, h); err != nil {
		return errcode.Wrap(errcode.DrawFailed, "display.label", err)
	}
	return nil
}

func (r *Renderer) DrawFull(text, payload string) error {
	q, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return errcode.Wrap(errcode.DrawFailed, "display.qr", err)
	}
	q.DisableBorder = true
	bm := q.Bitmap()

	qx, qy, ok := r.QRPlacement(len(bm))
	if !ok {
		return errcode.New(errcode.DrawFailed, "display.qr", "code does not fit: "+payload)
	}

	r.p.ClearBuffer()
	tinyfont.WriteLine(r.p, r.font, r.cfg.LabelX, r.cfg.LabelY, text, black)
	s := r.cfg.QRScale
	for j, row := range bm {
		for i, on := range row {
			if on {
				fill(r.p, qx+int16(i)*s, qy+int16(j)*s, s, s, black)
			}
		}
	}
	err = r.p.Display()
	r.p.PowerOff()
	if err != nil {
		return errcode.Wrap(errcode.DrawFailed, "display.full", err)
	}
	return nil
}

// QRPlacement returns the top-left corner of a modules x modules code:
// right-aligned with the configured margin and vertically centred.
func (r *Renderer) QRPlacement(modules int) (x, y int16, ok bool) {
	w, h := r.p.Size()
	size := int16(modules) * r.cfg.QRScale
	x = w - size - r.cfg.QRMargin
	y = (h - size) / 2
	return x, y, x >= 0 && y >= 0
}

func (r *Renderer) DrawSleepNotice() error {
	_, h := r.p.Size()
	r.p.ClearBuffer()
	tinyfont.WriteLine(r.p, r.font, r.cfg.SleepX, h/2, r.cfg.SleepText, black)
	if err := r.p.Display(); err != nil {
		return errcode.Wrap(errcode.DrawFailed, "display.sleep", err)
	}
	return nil
}

func (r *Renderer) PowerDown() { r.p.PowerOff() }

func fill(d Panel, x, y, w, h int16, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			d.SetPixel(px, py, c)
		}
	}
}
