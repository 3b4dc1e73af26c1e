package visualizer

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// LevelMeter is a spring-smoothed horizontal amplitude bar. The spring keeps
// the bar from twitching when consecutive windows differ sharply.
type LevelMeter struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewLevelMeter creates a meter tuned for the given tick rate.
func NewLevelMeter(fps int) *LevelMeter {
	return &LevelMeter{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.9)}
}

// Observe advances the spring toward the mean absolute amplitude of the
// segment. An empty segment relaxes the bar toward zero.
func (m *LevelMeter) Observe(samples []float64) {
	var target float64
	if len(samples) > 0 {
		var sum float64
		for _, x := range samples {
			sum += math.Abs(x)
		}
		target = sum / float64(len(samples))
	}
	if target > 1 {
		target = 1
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, target)
}

// Level returns the current smoothed level in [0,1].
func (m *LevelMeter) Level() float64 {
	switch {
	case m.pos < 0:
		return 0
	case m.pos > 1:
		return 1
	}
	return m.pos
}

// View renders the bar at the given width.
func (m *LevelMeter) View(width int) string {
	if width < 10 {
		width = 10
	}
	filled := int(m.Level() * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("─", width-filled)
}
