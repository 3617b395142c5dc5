package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/d1nch8g/stompbox/sound"
)

type sliceSource struct {
	rate    int
	samples []float32
	pos     int
	err     error
}

func (s *sliceSource) SampleRate() int { return s.rate }

func (s *sliceSource) ReadFrames(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		if s.err != nil {
			return 0, s.err
		}
		return 0, io.EOF
	}
	n := copy(dst, s.samples[s.pos:])
	s.pos += n
	return n, nil
}

func TestFileBackendProcessesAllFrames(t *testing.T) {
	input := make([]float32, 10)
	for i := range input {
		input[i] = float32(i) / 10
	}
	src := &sliceSource{rate: 22050, samples: input}

	var buf bytes.Buffer
	fb := NewFileBackend(src, sound.NewRawSink(&buf), 4)

	if err := fb.Register(func(in, out []float32) {}); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("Register() before Open error = %v, want ErrNotOpen", err)
	}
	if err := fb.Open("test"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := fb.SampleRate(); got != 22050 {
		t.Errorf("SampleRate() = %v, want 22050", got)
	}

	var cycles []int
	err := fb.Register(func(in, out []float32) {
		cycles = append(cycles, len(in))
		for i := range in {
			out[i] = in[i] * 2
		}
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := fb.Activate(); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	<-fb.Done()
	if err := fb.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if err := fb.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	wantCycles := []int{4, 4, 2}
	if len(cycles) != len(wantCycles) {
		t.Fatalf("cycles = %v, want %v", cycles, wantCycles)
	}
	for i := range wantCycles {
		if cycles[i] != wantCycles[i] {
			t.Errorf("cycle %d length = %d, want %d", i, cycles[i], wantCycles[i])
		}
	}

	got := sound.DecodeRaw(buf.Bytes())
	if len(got) != len(input) {
		t.Fatalf("output length = %d, want %d", len(got), len(input))
	}
	for i := range input {
		if got[i] != input[i]*2 {
			t.Errorf("sample %d = %g, want %g", i, got[i], input[i]*2)
		}
	}
	if fb.Frames() != int64(len(input)) {
		t.Errorf("Frames() = %d, want %d", fb.Frames(), len(input))
	}
}

func TestFileBackendReadError(t *testing.T) {
	readErr := errors.New("corrupt frame")
	src := &sliceSource{rate: 8000, samples: []float32{1, 2}, err: readErr}
	fb := NewFileBackend(src, sound.NewRawSink(io.Discard), 8)

	if err := fb.Open("test"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := fb.Register(func(in, out []float32) { copy(out, in) }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := fb.Activate(); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	<-fb.Done()
	defer fb.Close()

	if err := fb.Err(); !errors.Is(err, readErr) {
		t.Errorf("Err() = %v, want %v", err, readErr)
	}
}

func TestFileBackendActivateWithoutCallback(t *testing.T) {
	fb := NewFileBackend(&sliceSource{rate: 8000}, sound.NewRawSink(io.Discard), 0)
	if err := fb.Activate(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Activate() error = %v, want ErrNotOpen", err)
	}
	if err := fb.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestPrintDevices(t *testing.T) {
	var buf bytes.Buffer
	PrintDevices(&buf, []DeviceInfo{
		{HostAPI: "JACK Audio Connection Kit", Name: "system", MaxInputChannels: 2, MaxOutputChannels: 2, DefaultSampleRate: 48000},
	})
	want := "[JACK Audio Connection Kit] system (in: 2, out: 2, 48000 Hz)\n"
	if buf.String() != want {
		t.Errorf("PrintDevices() = %q, want %q", buf.String(), want)
	}
}
