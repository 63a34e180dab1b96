package types

import "qrlabel-go/catalog"

// DeviceConfig is one board profile. Profiles are embedded TOML documents
// decoded by services/config.
type DeviceConfig struct {
	Board string `toml:"board"`

	TickMs              uint32 `toml:"tick_ms"`
	InactivityTimeoutMs uint32 `toml:"inactivity_timeout_ms"`
	QuietIntervalMs     uint32 `toml:"quiet_interval_ms"`
	QRPrefix            string `toml:"qr_prefix"`

	Display DisplayConfig   `toml:"display"`
	Console ConsoleConfig   `toml:"console"`
	Buttons []ButtonConfig  `toml:"buttons"`
	Groups  []catalog.Group `toml:"groups"`
}

// DisplayConfig places the label window, QR code and sleep notice on the panel.
type DisplayConfig struct {
	Width    int16 `toml:"width"`
	Height   int16 `toml:"height"`
	Rotation uint8 `toml:"rotation"`

	// Label baseline is (LabelX, LabelY); the partial window spans
	// LabelW x LabelH above the baseline.
	LabelX int16 `toml:"label_x"`
	LabelY int16 `toml:"label_y"`
	LabelW int16 `toml:"label_w"`
	LabelH int16 `toml:"label_h"`

	QRScale  int16 `toml:"qr_scale"`
	QRMargin int16 `toml:"qr_margin"`

	SleepText string `toml:"sleep_text"`
	SleepX    int16  `toml:"sleep_x"`

	Pins PanelPins `toml:"pins"`
}

// PanelPins wire the e-paper module to the SPI controller and its control
// lines. Numbers follow the MCU's machine.Pin numbering.
type PanelPins struct {
	SCK  int `toml:"sck"`
	SDO  int `toml:"sdo"`
	SDI  int `toml:"sdi"`
	CS   int `toml:"cs"`
	DC   int `toml:"dc"`
	RST  int `toml:"rst"`
	Busy int `toml:"busy"`
}

// ButtonConfig wires one physical button: its input line, press
// classification policy and the command bound to each press event.
type ButtonConfig struct {
	Name      string `toml:"name"`
	Pin       int    `toml:"pin"`
	ActiveLow bool   `toml:"active_low"`
	Wake      bool   `toml:"wake"`

	LongPressMs uint32 `toml:"long_press_ms"`
	RepeatMs    uint32 `toml:"repeat_ms"`
	RepeatStep  int    `toml:"repeat_step"`
	Repeat      bool   `toml:"repeat"`

	OnPress  Command `toml:"on_press"`
	OnShort  Command `toml:"on_short"`
	OnLong   Command `toml:"on_long"`
	OnRepeat Command `toml:"on_repeat"`
}

// ConsoleConfig selects the UART used for the event monitor. A zero Baud
// keeps the runtime's default serial console.
type ConsoleConfig struct {
	Baud uint32 `toml:"baud"`
	TX   int    `toml:"tx"`
	RX   int    `toml:"rx"`
}
