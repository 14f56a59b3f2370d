package app

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tilt-monitor.klederson.com/internal/bluetooth"
	"tilt-monitor.klederson.com/internal/config"
	"tilt-monitor.klederson.com/internal/hat"
	"tilt-monitor.klederson.com/internal/tilt"
	"tilt-monitor.klederson.com/internal/ui"
)

// shared holds collaborators shared between the Bubble Tea model copies and
// main.go. Because Bubble Tea uses value receivers, pointer fields ensure all
// copies see the same underlying peripherals.
type shared struct {
	display     hat.Display
	leds        [hat.ButtonCount]hat.LED
	tiltScanner *bluetooth.TiltScanner
	mockScanner *bluetooth.MockScanner
	gpio        *hat.GPIO
}

// Model is the root Bubble Tea model. All device state (mode, last reading,
// last-update time) is mutated exclusively inside Update, which Bubble Tea
// runs one message at a time.
type Model struct {
	width  int
	height int

	demoMode bool
	gpioMode bool
	adapter  string

	mode       Mode
	reading    *tilt.Reading
	lastUpdate time.Time
	segment    string // text currently on the display

	ledOn [hat.ButtonCount]bool // mirrored LED state for the status bar

	prompt     bool // command prompt open
	promptBuf  string
	note       string // feedback from the last command or scan error
	showStatus bool   // status (dump) panel toggle

	shared *shared
}

// New creates the monitor model in gravity mode with no reading yet.
func New(demoMode, gpioMode bool, adapter string) Model {
	m := Model{
		demoMode:   demoMode,
		gpioMode:   gpioMode,
		adapter:    adapter,
		mode:       ModeGravity,
		lastUpdate: time.Now(),
		shared:     &shared{display: hat.NullDisplay{}},
	}
	for b := range m.shared.leds {
		m.shared.leds[b] = hat.NullLED{}
	}
	m.segment = renderMode(m.mode, m.reading, m.lastUpdate, time.Now())
	return m
}

func (m Model) Init() tea.Cmd {
	return refreshCmd(m.mode)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case hat.ButtonPressMsg:
		return m.handleButton(msg.Button)

	case bluetooth.ReadingMsg:
		// Accepted unconditionally regardless of mode; the next scheduled
		// tick picks it up, bounding display staleness to one period.
		r := msg.Reading
		m.reading = &r
		m.lastUpdate = time.Now()
		return m, nil

	case RefreshTickMsg:
		return m.handleTick(msg)

	case LedOffMsg:
		m.setLed(msg.Button, false)
		return m, nil

	case OverrideMsg:
		return m.handleOverride(msg)

	case bluetooth.ScanErrorMsg:
		slog.Warn("scan error", "error", msg.Err)
		m.note = fmt.Sprintf("scan error: %v", msg.Err)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shutdown()
		return m, tea.Quit

	case "a", "A":
		return m.handleButton(hat.ButtonA)

	case "b", "B":
		return m.handleButton(hat.ButtonB)

	case "c", "C":
		return m.handleButton(hat.ButtonC)

	case "d", "D":
		m.showStatus = !m.showStatus

	case ":":
		m.prompt = true
		m.promptBuf = ""
		m.note = ""
	}

	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.prompt = false
		m.promptBuf = ""

	case tea.KeyEnter:
		m.prompt = false
		line := m.promptBuf
		m.promptBuf = ""
		override, note, err := parseCommand(line)
		if err != nil {
			m.note = err.Error()
			return m, nil
		}
		m.note = note
		if override != nil {
			ov := *override
			// Dispatch through the queue like any other input.
			return m, func() tea.Msg { return ov }
		}

	case tea.KeyBackspace:
		if len(m.promptBuf) > 0 {
			m.promptBuf = m.promptBuf[:len(m.promptBuf)-1]
		}

	case tea.KeyRunes, tea.KeySpace:
		m.promptBuf += msg.String()
	}
	return m, nil
}

// handleButton pulses the paired LED, applies the toggle rule, renders the
// new mode immediately, and schedules its self-refresh.
func (m Model) handleButton(b hat.Button) (tea.Model, tea.Cmd) {
	m.setLed(b, true)
	ledOff := ledOffCmd(b)

	m.mode = nextMode(m.mode, b)
	m.apply(renderMode(m.mode, m.reading, m.lastUpdate, time.Now()))
	return m, tea.Batch(ledOff, refreshCmd(m.mode))
}

func (m Model) handleTick(msg RefreshTickMsg) (tea.Model, tea.Cmd) {
	if msg.Mode != m.mode {
		// Stale timer from a superseded mode; drop without rescheduling so
		// mode switches never stack timer chains.
		return m, nil
	}
	if m.mode == ModeIdle {
		// The farewell was already shown; one-shot blank, no reschedule.
		m.apply("")
		return m, nil
	}
	m.apply(renderMode(m.mode, m.reading, m.lastUpdate, time.Now()))
	return m, refreshCmd(m.mode)
}

func (m Model) handleOverride(msg OverrideMsg) (tea.Model, tea.Cmd) {
	var r tilt.Reading
	if m.reading != nil {
		r = *m.reading
	}
	if msg.Gravity != nil {
		r.GravityMilli = int(math.Round(*msg.Gravity * 1000))
	}
	if msg.TempF != nil {
		r.TempF = *msg.TempF
	}
	m.reading = &r
	m.lastUpdate = time.Now()
	slog.Info("telemetry override", "gravity", r.GravityMilli, "temp_f", r.TempF)
	return m, nil
}

// apply pushes text to the display collaborator and mirrors it for the
// terminal front panel. Display failures are logged and swallowed; the next
// tick retries naturally.
func (m *Model) apply(text string) {
	m.segment = text
	if err := m.shared.display.Render(text); err != nil {
		slog.Warn("display render failed", "text", text, "error", err)
	}
}

func (m *Model) setLed(b hat.Button, on bool) {
	m.ledOn[b] = on
	if err := m.shared.leds[b].Set(on); err != nil {
		slog.Warn("led switch failed", "led", b, "on", on, "error", err)
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	menuBar := ui.RenderMenuBar(m.width, m.adapter, m.demoMode)

	var body string
	if m.showStatus {
		statusW := m.width / 3
		if statusW < 28 {
			statusW = 28
		}
		segW := m.width - statusW
		segment := ui.RenderSegmentPanel(segW, bodyH, m.segment)
		status := ui.RenderStatusPanel(statusW, bodyH, m.statusFields())
		body = ui.JoinPanels(segment, status)
	} else {
		body = ui.RenderSegmentPanel(m.width, bodyH, m.segment)
	}

	bottom := ""
	if m.prompt {
		bottom = ui.RenderPrompt(m.width, m.promptBuf)
	} else {
		bottom = ui.RenderStatusBar(m.width, m.ledOn, m.mode.String(), m.age(), m.note)
	}

	return ui.ComposeLayout(menuBar, body, bottom)
}

// statusFields reproduces the dump output of the debug surface.
func (m Model) statusFields() ui.StatusFields {
	f := ui.StatusFields{
		Color:       config.DefaultColor,
		Gravity:     config.NoReadingText,
		Temperature: config.NoReadingText,
		Mode:        m.mode.String(),
		LastUpdate:  m.age(),
		Refresh:     config.RefreshPeriod,
		LedPulse:    config.LedPulseDuration,
	}
	if r := m.reading; r != nil {
		if r.Color != tilt.ColorUnknown {
			f.Color = r.Color.String()
		}
		if r.GravityMilli > 0 {
			f.Gravity = fmt.Sprintf("%.3f", r.Gravity())
		}
		if r.TempF > 0 {
			f.Temperature = fmt.Sprintf("%dF (%.2fC)", r.TempF,
				tilt.CelsiusFromFahrenheit(float64(r.TempF)))
		}
	}
	return f
}

func (m Model) age() string {
	return fmt.Sprintf("%ds", int(time.Since(m.lastUpdate).Seconds()))
}

// StartPeripherals starts the advertisement feed and, when requested, the
// GPIO front panel. Must be called before p.Run().
func (m *Model) StartPeripherals(p *tea.Program) error {
	if m.demoMode {
		m.shared.mockScanner = bluetooth.NewMockScanner()
		if err := m.shared.mockScanner.Start(p); err != nil {
			return err
		}
	} else {
		m.shared.tiltScanner = bluetooth.NewTiltScanner()
		if err := m.shared.tiltScanner.Start(p); err != nil {
			return err
		}
	}

	if m.gpioMode {
		gpio, err := hat.OpenGPIO(config.GPIOChip, p.Send)
		if err != nil {
			// Keyboard buttons still work; monitor continues without the HAT.
			slog.Warn("gpio unavailable, continuing without front panel", "error", err)
			return nil
		}
		m.shared.gpio = gpio
		for b := hat.ButtonA; b <= hat.ButtonC; b++ {
			m.shared.leds[b] = gpio.LED(b)
		}
	}
	return nil
}

// shutdown releases the collaborators. Each release is independently
// fault-tolerant: a failure on one never blocks the others.
func (m *Model) shutdown() {
	s := m.shared
	if s.mockScanner != nil {
		s.mockScanner.Stop()
	}
	if s.tiltScanner != nil {
		s.tiltScanner.Stop()
	}
	if s.gpio != nil {
		if err := s.gpio.Close(); err != nil {
			slog.Warn("gpio close failed", "error", err)
		}
	}
	if err := s.display.Close(); err != nil {
		slog.Warn("display close failed", "error", err)
	}
}

func refreshCmd(mode Mode) tea.Cmd {
	return tea.Tick(config.RefreshPeriod, func(time.Time) tea.Msg {
		return RefreshTickMsg{Mode: mode}
	})
}

func ledOffCmd(b hat.Button) tea.Cmd {
	return tea.Tick(config.LedPulseDuration, func(time.Time) tea.Msg {
		return LedOffMsg{Button: b}
	})
}
