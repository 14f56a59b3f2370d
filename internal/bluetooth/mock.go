package bluetooth

import (
	"context"
	"math"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tilt-monitor.klederson.com/internal/config"
	"tilt-monitor.klederson.com/internal/tilt"
)

// MockScanner simulates a fermenting batch for demo mode: gravity creeps from
// pitch toward final gravity while the wort temperature wobbles around the
// starting point. Synthetic payloads go through the real decode path so demo
// mode exercises the same pipeline as hardware.
type MockScanner struct {
	program *tea.Program
	running bool
	cancel  context.CancelFunc

	color        tilt.Color
	gravityMilli float64
	tempF        float64
	phase        float64
}

// NewMockScanner creates a simulated Tilt at the start of fermentation.
func NewMockScanner() *MockScanner {
	colors := []tilt.Color{
		tilt.ColorRed, tilt.ColorGreen, tilt.ColorBlack, tilt.ColorPurple,
		tilt.ColorOrange, tilt.ColorBlue, tilt.ColorYellow, tilt.ColorPink,
	}
	return &MockScanner{
		color:        colors[rand.Intn(len(colors))],
		gravityMilli: config.DemoStartGravity,
		tempF:        config.DemoStartTempF,
		phase:        rand.Float64() * 2 * math.Pi,
	}
}

// Start begins emitting simulated broadcasts. Must be called before p.Run().
func (s *MockScanner) Start(p *tea.Program) error {
	s.program = p
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *MockScanner) loop(ctx context.Context) {
	ticker := time.NewTicker(config.DemoBeaconInterval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.running {
				return
			}
			t += config.DemoBeaconInterval.Seconds()
			s.emit(t)
		}
	}
}

func (s *MockScanner) emit(t float64) {
	// Attenuation slows down as gravity approaches FG.
	remaining := s.gravityMilli - config.DemoFinalGravity
	if remaining > 0 {
		s.gravityMilli -= remaining * 0.002
	}
	// Fermentation exotherm plus ambient drift.
	s.tempF = config.DemoStartTempF + 2*math.Sin(t/300+s.phase) + (rand.Float64()-0.5)

	// Occasionally drop a broadcast, as a lossy radio would.
	if rand.Float64() < 0.1 {
		return
	}

	raw := tilt.EncodeBeacon(s.color, int(math.Round(s.tempF)), int(math.Round(s.gravityMilli)))
	reading, err := tilt.Decode(raw, config.BeaconName)
	if err != nil {
		return
	}
	if s.program != nil {
		s.program.Send(ReadingMsg{Reading: reading})
	}
}

// Stop halts the mock scanner.
func (s *MockScanner) Stop() {
	s.running = false
	if s.cancel != nil {
		s.cancel()
	}
}
