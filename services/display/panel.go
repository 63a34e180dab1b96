package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"

	"qrlabel-go/x/mathx"
)

// Panel is a 1-bit e-paper surface. SetPixel writes the back buffer;
// Display and DisplayRect push it to the glass with a full or partial
// update.
type Panel interface {
	drivers.Displayer
	DisplayRect(x, y, w, h int16) error
	ClearBuffer()
	PowerOff()
}

// Framebuffer is an in-memory Panel. The host simulator shows its front
// buffer; tests inspect it.
type Framebuffer struct {
	w, h  int16
	back  []byte
	front []byte

	FullUpdates    uint32
	PartialUpdates uint32
	PowerOffs      uint32

	// Fail, when set, is returned by Display and DisplayRect.
	Fail error
}

func NewFramebuffer(w, h int16) *Framebuffer {
	n := (int(w)*int(h) + 7) / 8
	return &Framebuffer{w: w, h: h, back: make([]byte, n), front: make([]byte, n)}
}

func (f *Framebuffer) Size() (x, y int16) { return f.w, f.h }

// SetPixel sets a black pixel for any colour darker than mid-grey.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	i := int(y)*int(f.w) + int(x)
	if isBlack(c) {
		f.back[i/8] |= 0x80 >> (i % 8)
	} else {
		f.back[i/8] &^= 0x80 >> (i % 8)
	}
}

func (f *Framebuffer) Display() error {
	if f.Fail != nil {
		return f.Fail
	}
	copy(f.front, f.back)
	f.FullUpdates++
	return nil
}

func (f *Framebuffer) DisplayRect(x, y, w, h int16) error {
	if f.Fail != nil {
		return f.Fail
	}
	x0, x1 := mathx.Clamp(x, 0, f.w), mathx.Clamp(x+w, 0, f.w)
	y0, y1 := mathx.Clamp(y, 0, f.h), mathx.Clamp(y+h, 0, f.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			i := int(py)*int(f.w) + int(px)
			m := byte(0x80 >> (i % 8))
			f.front[i/8] = f.front[i/8]&^m | f.back[i/8]&m
		}
	}
	f.PartialUpdates++
	return nil
}

func (f *Framebuffer) ClearBuffer() { clear(f.back) }

func (f *Framebuffer) PowerOff() { f.PowerOffs++ }

// Pixel reports whether the displayed pixel at (x, y) is black.
func (f *Framebuffer) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	i := int(y)*int(f.w) + int(x)
	return f.front[i/8]&(0x80>>(i%8)) != 0
}

// Image renders the displayed contents.
func (f *Framebuffer) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, int(f.w), int(f.h)))
	for y := int16(0); y < f.h; y++ {
		for x := int16(0); x < f.w; x++ {
			v := uint8(0xff)
			if f.Pixel(x, y) {
				v = 0
			}
			img.Pix[int(y)*img.Stride+int(x)] = v
		}
	}
	return img
}

func isBlack(c color.RGBA) bool {
	return int(c.R)+int(c.G)+int(c.B) < 3*0x80
}
