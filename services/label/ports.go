package label

// Renderer is the display collaborator. Label draws repaint a fixed
// sub-region; full draws repaint the whole surface including the QR code.
type Renderer interface {
	DrawLabel(text string) error
	DrawFull(text, qrPayload string) error
	DrawSleepNotice() error
	PowerDown()
}

// WakeArmer registers a button's falling edge as a wake trigger. Armed
// sources signal the shared WakeFlag.
type WakeArmer interface {
	Arm(button int) error
	Disarm(button int)
}

// Input is one button line, already converted to "pressed" polarity.
type Input interface {
	Pressed() bool
}

// InputFunc adapts a function to Input.
type InputFunc func() bool

func (f InputFunc) Pressed() bool { return f() }
