package effect

import (
	"math"
	"sync/atomic"
)

// TremoloFrequencyHz is the warble rate used by the registry.
const TremoloFrequencyHz = 3.0

// Tremolo multiplies the input by a sine wave at a fixed modulation frequency.
//
// The phase is cycleIndex*angularStep with an unbounded counter, so output is
// bit-for-bit reproducible for a given call count. Precision of the phase
// argument degrades over very long sessions.
type Tremolo struct {
	frequency float32
	// angular step stored as float32 bits, swapped by SetSampleRate
	step       atomic.Uint32
	cycleIndex uint64
}

// NewTremolo creates a tremolo for the given modulation frequency and sample rate.
// A non-positive sample rate yields a zero step, which silences the output.
func NewTremolo(frequencyHz float32, sampleRate float64) *Tremolo {
	t := &Tremolo{frequency: frequencyHz}
	t.SetSampleRate(sampleRate)
	return t
}

func (t *Tremolo) Name() string {
	return "Tremolo/Warble"
}

// AngularStep returns the per-sample phase increment in radians.
func (t *Tremolo) AngularStep() float32 {
	return math.Float32frombits(t.step.Load())
}

// SetSampleRate recomputes the angular step. The cycle index is kept.
func (t *Tremolo) SetSampleRate(sampleRate float64) {
	var step float32
	if sampleRate > 0 {
		step = t.frequency * (2 * math.Pi) / float32(sampleRate)
	}
	t.step.Store(math.Float32bits(step))
}

func (t *Tremolo) ProcessSample(input float32) float32 {
	phase := float32(t.cycleIndex) * t.AngularStep()
	t.cycleIndex++
	return input * float32(math.Sin(float64(phase)))
}
