package visualizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDominantFrequencyPureTone(t *testing.T) {
	const sr = 48000
	samples := make([]float64, 4800) // 10 Hz bin resolution
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 1400 * float64(i) / sr)
	}

	got := DominantFrequency(samples, sr)
	assert.InDelta(t, 1400, got, 15)
}

func TestDominantFrequencyDegenerateInput(t *testing.T) {
	assert.Zero(t, DominantFrequency(nil, 48000))
	assert.Zero(t, DominantFrequency(make([]float64, 8), 48000))
	assert.Zero(t, DominantFrequency(make([]float64, 100), 0))
}

func TestLevelMeterTracksAmplitude(t *testing.T) {
	m := NewLevelMeter(20)
	loud := []float64{0.9, -0.9, 0.9, -0.9}
	for i := 0; i < 200; i++ {
		m.Observe(loud)
	}
	assert.InDelta(t, 0.9, m.Level(), 0.05)

	for i := 0; i < 200; i++ {
		m.Observe(nil)
	}
	assert.InDelta(t, 0, m.Level(), 0.05)

	bar := m.View(20)
	assert.Equal(t, 20, len([]rune(bar)))
}
