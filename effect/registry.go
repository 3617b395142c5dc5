package effect

import "strings"

const (
	TremoloID    = "tremolo"
	WhiteNoiseID = "whitenoise"
	NoOpID       = "noop"
)

// Names returns the recognized effect identifiers.
func Names() []string {
	return []string{NoOpID, TremoloID, WhiteNoiseID}
}

// Select creates the effect registered under id. Matching ignores case and
// surrounding whitespace. Unknown or empty identifiers resolve to NoOp.
// The sample rate is read from rates once, when a tremolo is created.
func Select(id string, rates SampleRater) Effect {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case TremoloID:
		return NewTremolo(TremoloFrequencyHz, rates.SampleRate())
	case WhiteNoiseID:
		return NewWhiteNoise(NoiseSeed)
	default:
		return NoOp{}
	}
}
