//go:build linux

package hat

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/warthog618/go-gpiocdev"

	"tilt-monitor.klederson.com/internal/config"
)

// GPIO owns the button and LED lines of the front panel. Buttons are wired
// active-low (pull-up, press pulls the line down), so a falling edge is a
// press and rising edges are never requested.
type GPIO struct {
	chip    *gpiocdev.Chip
	buttons []*gpiocdev.Line
	leds    [ButtonCount]*gpioLED
}

type gpioLED struct {
	line *gpiocdev.Line
}

func (l *gpioLED) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	return l.line.SetValue(v)
}

func (l *gpioLED) Close() error {
	return l.line.Close()
}

// OpenGPIO requests the front-panel lines and streams press edges into the
// event loop via send (normally tea.Program.Send).
func OpenGPIO(chipName string, send func(tea.Msg)) (*GPIO, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	g := &GPIO{chip: chip}

	buttonPins := map[Button]int{
		ButtonA: config.PinButtonA,
		ButtonB: config.PinButtonB,
		ButtonC: config.PinButtonC,
	}
	ledPins := map[Button]int{
		ButtonA: config.PinLedA,
		ButtonB: config.PinLedB,
		ButtonC: config.PinLedC,
	}

	for b := ButtonA; b <= ButtonC; b++ {
		button := b
		line, err := chip.RequestLine(buttonPins[b],
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithFallingEdge,
			gpiocdev.WithEventHandler(func(gpiocdev.LineEvent) {
				send(ButtonPressMsg{Button: button})
			}))
		if err != nil {
			g.Close()
			return nil, fmt.Errorf("request button %s pin %d: %w", b, buttonPins[b], err)
		}
		g.buttons = append(g.buttons, line)
	}

	for b := ButtonA; b <= ButtonC; b++ {
		line, err := chip.RequestLine(ledPins[b], gpiocdev.AsOutput(0))
		if err != nil {
			g.Close()
			return nil, fmt.Errorf("request led %s pin %d: %w", b, ledPins[b], err)
		}
		g.leds[b] = &gpioLED{line: line}
	}

	return g, nil
}

// LED returns the LED paired with the given button.
func (g *GPIO) LED(b Button) LED {
	if g.leds[b] == nil {
		return NullLED{}
	}
	return g.leds[b]
}

// Close releases every requested line and the chip. A failure releasing one
// resource does not prevent releasing the others.
func (g *GPIO) Close() error {
	var firstErr error
	for _, line := range g.buttons {
		if err := line.Close(); err != nil {
			slog.Warn("close button line failed", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	for _, led := range g.leds {
		if led == nil {
			continue
		}
		// Leave the LEDs dark on the way out.
		_ = led.Set(false)
		if err := led.Close(); err != nil {
			slog.Warn("close led line failed", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if g.chip != nil {
		if err := g.chip.Close(); err != nil {
			slog.Warn("close gpio chip failed", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
