// Package hat abstracts the front-panel peripherals: three buttons, three
// LEDs, and a 4-cell alphanumeric display. The real implementation drives
// GPIO lines through the Linux character device; fakes allow testing without
// hardware. Display and LED failures are non-fatal to the caller.
package hat

// Button identifies one of the three front buttons. Each button is paired
// with the LED of the same identity.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonC
)

// ButtonCount is the number of front buttons (and paired LEDs).
const ButtonCount = 3

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonC:
		return "C"
	default:
		return "?"
	}
}

// ButtonPressMsg is sent into the program on a press edge. Release edges are
// never delivered.
type ButtonPressMsg struct {
	Button Button
}

// Display renders a short alphanumeric string. Hardware truncates anything
// beyond its cell count; a decimal point shares a cell with the digit before
// it.
type Display interface {
	Render(text string) error
	Close() error
}

// LED switches a single indicator LED.
type LED interface {
	Set(on bool) error
	Close() error
}

// NullDisplay discards renders. It stands in when no display hardware is
// attached (the terminal front panel shows the same text).
type NullDisplay struct{}

func (NullDisplay) Render(string) error { return nil }
func (NullDisplay) Close() error        { return nil }

// NullLED discards switch requests.
type NullLED struct{}

func (NullLED) Set(bool) error { return nil }
func (NullLED) Close() error   { return nil }
