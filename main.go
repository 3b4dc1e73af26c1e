// SDRForge is a terminal dashboard around simulated RF signals: a labs menu,
// an animated doorbell→laptop→house scene, and a wave viewer for three
// synthetic waveform scenarios. Everything is procedurally generated; no
// hardware or network is touched.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olivier-w/sdrforge/internal/config"
	"github.com/olivier-w/sdrforge/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sdrforge",
	Short: "TUI signal lab (simulated)",
	Long: `SDRForge is a terminal dashboard showing a labs menu, an animated
signal-travel scene and a wave viewer for simulated waveforms. It reads an
optional sdrforge.yaml from the working directory and needs no arguments.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		// The dashboard works fine without a log file.
		logger = zap.NewNop()
	}
	defer logger.Sync()
	logger.Info("starting sdrforge",
		zap.Duration("animation_interval", cfg.UI.AnimationInterval),
		zap.Duration("wave_interval", cfg.UI.WaveInterval))

	p := tea.NewProgram(newStartupModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
