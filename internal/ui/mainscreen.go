package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/olivier-w/sdrforge/internal/visualizer"
	"github.com/olivier-w/sdrforge/internal/wave"
)

const (
	menuPanelWidth  = 34
	logoPanelHeight = 14
	dashPanelHeight = 4
)

func (m Model) handleMainKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, mainKeys.Quit):
		return m.quit()

	case key.Matches(msg, mainKeys.ToggleAnim):
		if m.anim.Toggle() {
			m.status = "Animation running."
		} else {
			m.status = "Animation paused."
		}
		return m, nil

	case key.Matches(msg, mainKeys.OpenWave):
		m.screen = screenWave
		m.sess = wave.NewSession()
		if n := m.cfg.UI.DefaultScenario; n >= 1 && n <= 3 && n != m.sess.Scenario() {
			m.sess.SetScenario(n)
		}
		m.meter = visualizer.NewLevelMeter(fpsFromInterval(m.cfg.UI.WaveInterval))
		m.waveSeq++
		m.status = "Wave Viewer open."
		m.log.Info("wave viewer opened", zap.Int("scenario", m.sess.Scenario()))
		return m, waveTickCmd(m.cfg.UI.WaveInterval, m.waveSeq)
	}

	// Unmatched keys are ignored by design.
	return m, nil
}

func (m Model) viewMain() string {
	w, h := m.width, m.height
	if w < 60 {
		w = 100
	}
	if h < 20 {
		h = 30
	}

	title := " " + headerStyle.Render("SDRForge") + subtitleStyle.Render("  TUI Signal Lab (SIM)")

	bodyH := h - 1 - dashPanelHeight - 1
	if bodyH < logoPanelHeight+8 {
		bodyH = logoPanelHeight + 8
	}

	menu := panelStyle.
		Width(menuPanelWidth - 2).
		Height(bodyH - 2).
		Render(menuContent())

	rightW := w - menuPanelWidth
	if rightW < 44 {
		rightW = 44
	}
	innerW := rightW - 4

	logo := panelStyle.
		Width(rightW - 2).
		Height(logoPanelHeight - 2).
		Render(lipgloss.Place(innerW, logoPanelHeight-2, lipgloss.Center, lipgloss.Center, m.logo))

	animH := bodyH - logoPanelHeight
	anim := panelStyle.
		Width(rightW - 2).
		Height(animH - 2).
		Render(m.animView(innerW))

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		menu,
		lipgloss.JoinVertical(lipgloss.Left, logo, anim),
	)

	dash := panelStyle.
		Width(w - 2).
		Render(m.dashContent())

	footer := " " + m.help.View(mainKeys)

	return lipgloss.JoinVertical(lipgloss.Left, title, body, dash, footer)
}

func menuContent() string {
	return labelStyle.Render("Labs") + "\n" +
		" 2.) Car Hacking\n" +
		" 3.) Satellite Hacking\n" +
		" 4.) TBD\n" +
		" 5.) TBD"
}

func (m Model) dashContent() string {
	return labelStyle.Render("Dashboard") + "  " +
		dimStyle.Render("Status:") + " " + statusStyle.Render(m.status) + "\n" +
		dimStyle.Render("d") + "=toggle  " + dimStyle.Render("g") + "=wave  " + dimStyle.Render("q") + "=quit"
}

// logoInnerWidth is the room the logo panel offers for a given terminal
// width, after the menu panel, borders and padding.
func logoInnerWidth(termWidth int) int {
	inner := termWidth - menuPanelWidth - 4
	if inner < 20 {
		inner = 20
	}
	return inner
}

func (m Model) animView(width int) string {
	if !m.anim.Running() {
		return dimStyle.Render("(animation paused)")
	}
	usable := width
	if usable < 20 {
		usable = 20
	}
	return m.anim.Compose(usable)
}
