// Package ui implements the sdrforge dashboard: a main screen with the labs
// menu, the logo and the doorbell animation, and a wave viewer screen for
// the simulated signals. One Bubbletea model owns both screens and routes
// keys and ticks to whichever is active.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/olivier-w/sdrforge/internal/asset"
	"github.com/olivier-w/sdrforge/internal/config"
	"github.com/olivier-w/sdrforge/internal/scene"
	"github.com/olivier-w/sdrforge/internal/visualizer"
	"github.com/olivier-w/sdrforge/internal/wave"
)

type screen uint8

const (
	screenMain screen = iota
	screenWave
)

// Model is the Bubbletea model for the whole dashboard.
type Model struct {
	cfg *config.Config
	log *zap.Logger

	screen screen
	width  int
	height int

	anim   *scene.Animator
	status string

	logoPath string
	logo     string // rendered for the current panel width

	sess     *wave.Session
	meter    *visualizer.LevelMeter
	position progress.Model
	waveSeq  int

	help     help.Model
	quitting bool
}

// New creates the dashboard model. logoPath may be empty; the logo panel
// then shows the text banner.
func New(cfg *config.Config, logger *zap.Logger, logoPath string) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	pos := progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)
	return Model{
		cfg:      cfg,
		log:      logger,
		anim:     scene.NewAnimator(),
		status:   "Ready.",
		logoPath: logoPath,
		logo:     asset.Render(logoPath, 72, logoPanelHeight-2),
		position: pos,
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		animTickCmd(m.cfg.UI.AnimationInterval),
		tea.SetWindowTitle("SDRForge"),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logo = asset.Render(m.logoPath, logoInnerWidth(msg.Width), logoPanelHeight-2)
		barWidth := msg.Width - 20
		if barWidth < 20 {
			barWidth = 20
		}
		if barWidth > 120 {
			barWidth = 120
		}
		m.position.Width = barWidth
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.screen == screenWave {
			return m.handleWaveKey(msg)
		}
		return m.handleMainKey(msg)

	case animTickMsg:
		// The animator keeps its own running flag and survives wave viewer
		// visits; ticking it while the wave screen covers it is harmless.
		m.anim.Tick()
		return m, animTickCmd(m.cfg.UI.AnimationInterval)

	case waveTickMsg:
		if m.screen != screenWave || m.sess == nil || msg.seq != m.waveSeq {
			// Stale chain from a previous visit; let it die.
			return m, nil
		}
		m.sess.Tick()
		m.meter.Observe(m.sess.Window())
		return m, waveTickCmd(m.cfg.UI.WaveInterval, m.waveSeq)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen == screenWave {
		return m.viewWave()
	}
	return m.viewMain()
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.log.Info("shutting down")
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

func fpsFromInterval(interval time.Duration) int {
	if interval <= 0 {
		return 30
	}
	fps := int(time.Second / interval)
	if fps < 1 {
		fps = 1
	}
	return fps
}
