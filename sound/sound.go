package sound

// Source defines a mono sample source for offline processing
type Source interface {
	// SampleRate returns the source sample rate in Hz
	SampleRate() int

	// ReadFrames fills dst with mono samples and returns how many were written.
	// It returns io.EOF once the source is exhausted and no samples were read.
	ReadFrames(dst []float32) (int, error)
}

// Sink defines a mono sample destination for offline processing
type Sink interface {
	// WriteFrames writes all samples or returns an error
	WriteFrames(samples []float32) error
}
