// Package wave owns the wave viewer's per-visit session: the active
// scenario, the synthesized signal, the playback cursor and the pause flag.
// A session lives exactly as long as the wave viewer screen is open;
// re-entering the screen starts from a fresh one.
package wave

import "github.com/olivier-w/sdrforge/internal/signal"

const (
	// cursorStride is how far the playback cursor moves per tick, in seconds.
	cursorStride = 0.03
	// windowSpan is how much signal the viewer shows at once, in seconds.
	windowSpan = 0.18
)

// Session is not safe for concurrent use; the UI event loop serializes
// ticks and key events.
type Session struct {
	scenario int
	paused   bool
	sig      signal.Signal
	cursor   int
}

// NewSession starts a playing session on the default scenario.
func NewSession() *Session {
	s := &Session{scenario: signal.ScenarioDoorbellBurst}
	s.Regenerate()
	return s
}

// SetScenario switches to scenario n and regenerates. The pause flag is
// preserved across the switch.
func (s *Session) SetScenario(n int) {
	s.scenario = n
	s.Regenerate()
}

// Regenerate synthesizes a fresh signal for the current scenario and rewinds
// the cursor.
func (s *Session) Regenerate() {
	s.sig = signal.Generate(s.scenario, signal.DefaultSeconds, signal.DefaultSampleRate)
	s.cursor = 0
}

// TogglePause flips the pause flag and reports the new value. The cursor and
// signal are untouched.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Tick advances the playback cursor by one stride, wrapping to the start
// when it runs off the end. Paused sessions ignore ticks.
func (s *Session) Tick() {
	if s.paused {
		return
	}
	s.cursor += int(float64(s.sig.SampleRate) * cursorStride)
	if s.cursor >= len(s.sig.Samples) {
		s.cursor = 0
	}
}

// Window returns the slice of samples currently visible, starting at the
// cursor and clamped to the end of the signal.
func (s *Session) Window() []float64 {
	start := s.cursor
	if start > len(s.sig.Samples) {
		start = len(s.sig.Samples)
	}
	end := start + int(float64(s.sig.SampleRate)*windowSpan)
	if end > len(s.sig.Samples) {
		end = len(s.sig.Samples)
	}
	return s.sig.Samples[start:end]
}

// Signal returns the full current signal.
func (s *Session) Signal() signal.Signal { return s.sig }

// Scenario returns the active scenario id.
func (s *Session) Scenario() int { return s.scenario }

// Paused reports whether playback is paused.
func (s *Session) Paused() bool { return s.paused }

// Cursor returns the playback offset into the signal.
func (s *Session) Cursor() int { return s.cursor }
