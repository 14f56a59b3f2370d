//go:build !linux

package hat

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// GPIO is not available on non-Linux platforms.
type GPIO struct{}

// OpenGPIO returns an error on non-Linux platforms.
func OpenGPIO(chipName string, send func(tea.Msg)) (*GPIO, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

func (g *GPIO) LED(Button) LED { return NullLED{} }

func (g *GPIO) Close() error { return nil }
