package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/olivier-w/sdrforge/internal/visualizer"
)

const (
	bitsChunk   = 240
	bitsThresh  = 0.18
	bitsTailLen = 256
)

func (m Model) handleWaveKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, waveKeys.Quit):
		return m.quit()

	case key.Matches(msg, waveKeys.Back):
		// Back always succeeds; the session is discarded and the next visit
		// starts fresh.
		m.screen = screenMain
		m.sess = nil
		m.status = "Ready."
		return m, nil

	case key.Matches(msg, waveKeys.Pause):
		m.sess.TogglePause()
		return m, nil

	case key.Matches(msg, waveKeys.Regen):
		m.sess.Regenerate()
		return m, nil

	case key.Matches(msg, waveKeys.Scenario):
		if n := int(msg.String()[0] - '0'); n >= 1 && n <= 3 {
			m.sess.SetScenario(n)
			m.log.Info("scenario switched", zap.Int("scenario", n))
		}
		return m, nil
	}

	return m, nil
}

func (m Model) viewWave() string {
	w := m.width
	if w < 66 {
		w = 80
	}

	sparkWidth := w - 6
	if sparkWidth < 60 {
		sparkWidth = 60
	}
	if sparkWidth > 180 {
		sparkWidth = 180
	}

	sig := m.sess.Signal()
	window := m.sess.Window()
	spark := visualizer.Sparkline(window, sparkWidth)
	peak := visualizer.DominantFrequency(window, sig.SampleRate)

	var pos float64
	if len(sig.Samples) > 0 {
		pos = float64(m.sess.Cursor()) / float64(len(sig.Samples))
	}

	var top strings.Builder
	top.WriteString(headerStyle.Render("Wave Viewer (SIM)"))
	top.WriteString("\n────────────────────\n")
	top.WriteString(sig.Label)
	top.WriteString("\n")
	top.WriteString(fmt.Sprintf("Sample rate: %d Hz   •   paused: %v\n", sig.SampleRate, m.sess.Paused()))
	top.WriteString(spark)
	top.WriteString("\n\n")
	top.WriteString(dimStyle.Render("level "))
	top.WriteString(m.meter.View(sparkWidth - 12))
	top.WriteString("\n")
	top.WriteString(dimStyle.Render(fmt.Sprintf("peak ~%.0f Hz", peak)))
	top.WriteString("\n")
	top.WriteString(m.position.ViewAs(pos))

	bits := visualizer.Bits(sig.Samples, bitsChunk, bitsThresh)
	if len(bits) > bitsTailLen {
		bits = bits[len(bits)-bitsTailLen:]
	}

	var bottom strings.Builder
	bottom.WriteString(labelStyle.Render("Derived 01s"))
	bottom.WriteString(" ")
	bottom.WriteString(dimStyle.Render("(amp threshold, tail)"))
	bottom.WriteString("\n")
	bottom.WriteString(bits)
	bottom.WriteString("\n")
	bottom.WriteString(m.help.View(waveKeys))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panelStyle.Width(w-2).Render(top.String()),
		panelStyle.Width(w-2).Render(bottom.String()),
	)
}
