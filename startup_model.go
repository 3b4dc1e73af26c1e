package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/olivier-w/sdrforge/internal/asset"
	"github.com/olivier-w/sdrforge/internal/config"
	"github.com/olivier-w/sdrforge/internal/ui"
)

// preflightDoneMsg carries the resolved logo path into the dashboard.
type preflightDoneMsg struct {
	logoPath string
}

// startupModel shows a spinner while the logo cache is resolved, then hands
// control to the dashboard model. The preflight is the only startup side
// effect; the internal packages are importable without any.
type startupModel struct {
	cfg     *config.Config
	log     *zap.Logger
	spinner spinner.Model
	width   int
	height  int
}

func newStartupModel(cfg *config.Config, logger *zap.Logger) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	return startupModel{cfg: cfg, log: logger, spinner: s}
}

func (m startupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, preflightCmd(m.cfg, m.log))
}

// preflightCmd resolves the logo asset before the dashboard mounts.
// Regenerating the downsized cache can take a moment for a large original,
// hence the spinner.
func preflightCmd(cfg *config.Config, log *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		path := asset.Resolve(
			cfg.Assets.LogoPath,
			cfg.Assets.LogoCachePath,
			cfg.Assets.LogoTargetWidth,
			cfg.Assets.ResizeLogo,
		)
		if path == "" {
			log.Warn("no usable logo image, rendering text banner",
				zap.String("logo_path", cfg.Assets.LogoPath))
		} else {
			log.Info("logo resolved", zap.String("path", path))
		}
		return preflightDoneMsg{logoPath: path}
	}
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case preflightDoneMsg:
		dash := ui.New(m.cfg, m.log, msg.logoPath)
		cmds := []tea.Cmd{dash.Init()}
		if m.width > 0 || m.height > 0 {
			w, h := m.width, m.height
			cmds = append(cmds, func() tea.Msg {
				return tea.WindowSizeMsg{Width: w, Height: h}
			})
		}
		return dash, tea.Batch(cmds...)

	case tea.KeyMsg:
		if startupIsQuit(msg) {
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	return m, nil
}

func (m startupModel) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(startupHeaderStyle.Render("SDRForge"))
	b.WriteString("\n\n  ")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(startupStatusStyle.Render("Preparing assets..."))
	b.WriteString("\n\n  ")
	b.WriteString(startupHelpStyle.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func startupIsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

var (
	startupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
	startupStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
	startupHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)
