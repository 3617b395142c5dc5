package sound

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

// go-mp3 always decodes to interleaved stereo 16-bit little endian
const mp3FrameBytes = 4

// MP3Source decodes an MP3 stream and downmixes it to mono float32
type MP3Source struct {
	decoder *mp3.Decoder
	buffer  []byte
}

// NewMP3Source wraps r with an MP3 decoder.
func NewMP3Source(r io.Reader) (*MP3Source, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}
	return &MP3Source{decoder: decoder}, nil
}

func (s *MP3Source) SampleRate() int {
	return s.decoder.SampleRate()
}

func (s *MP3Source) ReadFrames(dst []float32) (int, error) {
	need := len(dst) * mp3FrameBytes
	if cap(s.buffer) < need {
		s.buffer = make([]byte, need)
	}
	buf := s.buffer[:need]

	n, err := io.ReadFull(s.decoder, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	frames := n / mp3FrameBytes
	if frames == 0 && err == nil {
		err = io.EOF
	}
	downmixStereo16(buf[:frames*mp3FrameBytes], dst[:frames])
	return frames, err
}

// downmixStereo16 converts interleaved stereo s16le frames into mono samples in [-1, 1)
func downmixStereo16(src []byte, dst []float32) {
	for i := range dst {
		l := int16(binary.LittleEndian.Uint16(src[i*4 : i*4+2]))
		r := int16(binary.LittleEndian.Uint16(src[i*4+2 : i*4+4]))
		dst[i] = (float32(l) + float32(r)) / (2 * 32768)
	}
}
