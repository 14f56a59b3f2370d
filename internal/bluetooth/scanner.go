package bluetooth

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"tinygo.org/x/bluetooth"

	"tilt-monitor.klederson.com/internal/config"
	"tilt-monitor.klederson.com/internal/tilt"
)

// ReadingMsg is sent via tea.Program.Send when a Tilt broadcast is decoded.
type ReadingMsg struct {
	Reading tilt.Reading
}

// ScanErrorMsg reports a scanner failure after startup.
type ScanErrorMsg struct {
	Err error
}

// TiltScanner listens for Tilt hydrometer advertisements on the default
// adapter. Decoded readings are funneled into the event loop via
// program.Send; everything else stays on the scan callback goroutine.
type TiltScanner struct {
	adapter *bluetooth.Adapter
	program *tea.Program
	running bool
}

// NewTiltScanner creates a scanner on the default adapter.
func NewTiltScanner() *TiltScanner {
	return &TiltScanner{
		adapter: bluetooth.DefaultAdapter,
	}
}

// Start begins BLE scanning in a goroutine. Must be called before p.Run().
func (s *TiltScanner) Start(p *tea.Program) error {
	s.program = p

	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	s.running = true
	go func() {
		err := s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !s.running {
				return
			}
			s.handleResult(result)
		})
		if err != nil && s.running && s.program != nil {
			s.program.Send(ScanErrorMsg{Err: err})
		}
	}()

	return nil
}

func (s *TiltScanner) handleResult(result bluetooth.ScanResult) {
	name := result.LocalName()
	if name != config.BeaconName {
		return
	}
	raw := rawAD(name, result.ManufacturerData())

	reading, err := tilt.Decode(raw, name)
	if err != nil {
		slog.Debug("dropping undecodable advertisement",
			"addr", result.Address.String(), "error", err)
		return
	}

	slog.Debug("tilt broadcast decoded",
		"color", reading.Color, "temp_f", reading.TempF, "gravity", reading.GravityMilli,
		"rssi", result.RSSI)
	if s.program != nil {
		s.program.Send(ReadingMsg{Reading: reading})
	}
}

// rawAD rebuilds advertisement payload bytes from the parsed scan result,
// since the BlueZ backend does not hand back the raw packet.
func rawAD(name string, mfrs []bluetooth.ManufacturerDataElement) []byte {
	var raw []byte
	if name != "" && len(name) < 30 {
		raw = append(raw, byte(1+len(name)), 0x09)
		raw = append(raw, name...)
	}
	for _, md := range mfrs {
		data := make([]byte, 2+len(md.Data))
		binary.LittleEndian.PutUint16(data, md.CompanyID)
		copy(data[2:], md.Data)
		raw = append(raw, byte(1+len(data)), 0xFF)
		raw = append(raw, data...)
	}
	return raw
}

// Stop halts the scanner.
func (s *TiltScanner) Stop() {
	s.running = false
	_ = s.adapter.StopScan()
}
