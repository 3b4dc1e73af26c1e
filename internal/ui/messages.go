package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// animTickMsg drives the main screen animation.
type animTickMsg time.Time

// waveTickMsg drives wave viewer playback. The sequence number ties a tick
// chain to one viewer visit so a stale chain dies instead of double-arming.
type waveTickMsg struct {
	seq int
}

func animTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func waveTickCmd(interval time.Duration, seq int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return waveTickMsg{seq: seq}
	})
}
