// Package signal synthesizes the simulated waveforms shown in the wave viewer.
// Everything here is procedural and deterministic; there is no acquisition,
// no hardware, and no randomness.
package signal

import "math"

// Defaults used by the wave viewer when regenerating a scenario.
const (
	DefaultSeconds    = 1.25
	DefaultSampleRate = 48000
)

// Scenario identifiers, matching the 1/2/3 keys in the wave viewer.
const (
	ScenarioPulseTrain    = 1
	ScenarioFSK           = 2
	ScenarioDoorbellBurst = 3
)

// Signal is an immutable block of synthesized samples.
type Signal struct {
	SampleRate int
	Samples    []float64
	Label      string
}

// Seconds returns the signal duration.
func (s Signal) Seconds() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// Generate synthesizes one of the three fixed scenarios. Unknown scenario
// values fall back to the doorbell burst; that fallback is part of the
// contract, not an error.
func Generate(scenario int, seconds float64, sampleRate int) Signal {
	n := int(seconds * float64(sampleRate))
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)

	var label string
	switch scenario {
	case ScenarioPulseTrain:
		label = "Scenario 1: pulse train"
		for i := range out {
			t := float64(i) / float64(sampleRate)
			burst := 0.0
			if math.Mod(t, 0.22) < 0.06 {
				burst = 1.0
			}
			out[i] = 0.8 * burst * math.Sin(2*math.Pi*880*t)
		}

	case ScenarioFSK:
		label = "Scenario 2: FSK-ish"
		const bitRate = 120
		const f0, f1 = 900.0, 1400.0
		for i := range out {
			t := float64(i) / float64(sampleRate)
			f := f1
			if int(t*bitRate)%3 == 0 {
				f = f0
			}
			out[i] = 0.75 * math.Sin(2*math.Pi*f*t)
		}

	default:
		label = "Scenario 3: doorbell burst"
		for i := range out {
			t := float64(i) / float64(sampleRate)
			if t > 0.85 {
				continue
			}
			f := 500 + 1500*math.Min(1.0, t/0.35)
			out[i] = 0.95 * math.Exp(-3.2*t) * math.Sin(2*math.Pi*f*t)
		}
	}

	return Signal{SampleRate: sampleRate, Samples: out, Label: label}
}
