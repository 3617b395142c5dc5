// Package effect implements the sample processors a stompbox session can run.
//
// Every effect converts exactly one input sample into one output sample per
// call. Implementations must stay allocation-free and O(1) per sample since
// ProcessSample runs on the real-time audio thread.
package effect

// Effect defines a single-channel sample processor
type Effect interface {
	// Name returns a human readable label used for diagnostics only
	Name() string

	// ProcessSample transforms one input sample into one output sample
	ProcessSample(input float32) float32
}

// RateAware is implemented by effects whose derived constants depend on the
// audio sample rate. SetSampleRate may be called from a goroutine other than
// the audio thread while ProcessSample is running.
type RateAware interface {
	SetSampleRate(sampleRate float64)
}

// SampleRater reports the current sample rate of an audio backend
type SampleRater interface {
	SampleRate() float64
}
