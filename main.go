package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"tilt-monitor.klederson.com/internal/app"
)

var (
	flagDemo     bool
	flagGPIO     bool
	flagAdapter  string
	flagLogLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tilt-monitor",
		Short: "Tilt HAT - brewing telemetry monitor for the Tilt hydrometer",
		Long: `Tilt HAT monitors a Tilt hydrometer's BLE broadcasts and shows live
brewing telemetry (specific gravity, wort temperature) on a 4-cell
alphanumeric front panel. Buttons A/B/C cycle the display modes, each
press pulsing its LED.

Requires sudo or CAP_NET_ADMIN capability for real Bluetooth scanning.
Use --demo for a simulated fermentation without Bluetooth hardware, and
--gpio to drive a Rainbow-HAT-style button/LED panel.`,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Simulate a fermenting batch (no Bluetooth required)")
	rootCmd.Flags().BoolVar(&flagGPIO, "gpio", false, "Drive the GPIO button/LED front panel")
	rootCmd.Flags().StringVar(&flagAdapter, "adapter", "hci0", "Bluetooth adapter to use")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(flagLogLevel)

	model := app.New(flagDemo, flagGPIO, flagAdapter)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	// Start the advertisement feed and GPIO with a reference to the program.
	if err := model.StartPeripherals(p); err != nil {
		if !flagDemo {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			fmt.Fprintln(os.Stderr, "Bluetooth scanning requires elevated permissions.")
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintln(os.Stderr, "  sudo ./tilt-monitor")
			fmt.Fprintln(os.Stderr, "  sudo setcap cap_net_admin+ep ./tilt-monitor")
			fmt.Fprintln(os.Stderr, "  ./tilt-monitor --demo    (demo mode, no hardware needed)")
			return err
		}
	}

	_, err := p.Run()
	return err
}

// setupLogging writes tinted logs to stderr so they stay out of the
// altscreen UI on stdout.
func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(h))
}
