package sound

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// RawSink writes mono float32 little endian samples with no header.
// The output can be played with e.g. `ffplay -f f32le -ar <rate> -ac 1`.
type RawSink struct {
	w      io.Writer
	buffer []byte
}

func NewRawSink(w io.Writer) *RawSink {
	return &RawSink{w: w}
}

func (s *RawSink) WriteFrames(samples []float32) error {
	need := len(samples) * 4
	if cap(s.buffer) < need {
		s.buffer = make([]byte, need)
	}
	buf := s.buffer[:need]
	for i, sample := range samples {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(sample))
	}
	if _, err := s.w.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}

// DecodeRaw converts float32 little endian bytes back into samples.
func DecodeRaw(data []byte) []float32 {
	samples := make([]float32, len(data)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4 : i*4+4]))
	}
	return samples
}
