package effect

import "math/rand/v2"

// NoiseSeed is the fixed seed used by the registry. Noise output is
// deterministic across runs and is not suitable for anything security related.
const NoiseSeed = 42

// WhiteNoise ignores its input and emits uniform values in [0, 1).
type WhiteNoise struct {
	rng *rand.Rand
}

// NewWhiteNoise creates a noise generator whose sequence depends only on seed.
func NewWhiteNoise(seed uint64) *WhiteNoise {
	return &WhiteNoise{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (w *WhiteNoise) Name() string {
	return "White Noise"
}

func (w *WhiteNoise) ProcessSample(_ float32) float32 {
	return w.rng.Float32()
}
