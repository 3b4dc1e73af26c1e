// Package visualizer turns sample buffers into plain-text renderings for the
// dashboard panels.
package visualizer

import (
	"math"
	"strings"
)

const noSamples = "(no samples)"

var blocks = []rune(" ▁▂▃▄▅▆▇█")

// Sparkline renders samples as one line of block glyphs, quantizing the
// magnitude of up to width evenly spaced points into nine levels. The peak
// across the selected points sets the scale, floored at 1e-9 so a silent
// buffer renders flat instead of dividing by zero.
func Sparkline(samples []float64, width int) string {
	if len(samples) == 0 {
		return noSamples
	}
	if width < 10 {
		width = 10
	}

	step := len(samples) / width
	if step < 1 {
		step = 1
	}
	pts := make([]float64, 0, width)
	for i := 0; i < len(samples) && len(pts) < width; i += step {
		pts = append(pts, samples[i])
	}

	peak := 1e-9
	for _, x := range pts {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	var out strings.Builder
	for _, x := range pts {
		level := int(math.Round(math.Abs(x) / peak * 8))
		if level < 0 {
			level = 0
		}
		if level > 8 {
			level = 8
		}
		out.WriteRune(blocks[level])
	}
	return out.String()
}

// Bits collapses samples into a '0'/'1' string, one bit per chunk of the
// given size, set when the chunk's mean absolute amplitude reaches thresh.
// A trailing short chunk still produces a bit. Empty input or a
// non-positive chunk size yields an empty string.
func Bits(samples []float64, chunk int, thresh float64) string {
	if len(samples) == 0 || chunk <= 0 {
		return ""
	}
	var out strings.Builder
	for i := 0; i < len(samples); i += chunk {
		end := i + chunk
		if end > len(samples) {
			end = len(samples)
		}
		var sum float64
		for _, x := range samples[i:end] {
			sum += math.Abs(x)
		}
		if sum/float64(end-i) >= thresh {
			out.WriteByte('1')
		} else {
			out.WriteByte('0')
		}
	}
	return out.String()
}
