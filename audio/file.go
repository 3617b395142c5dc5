package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/d1nch8g/stompbox/sound"
)

// FileBackend drives the callback from a sample source as fast as it can
// and writes every processed cycle to a sink. Done is closed at end of input.
type FileBackend struct {
	source          sound.Source
	sink            sound.Sink
	framesPerBuffer int

	callback Callback
	opened   bool

	cancel    context.CancelFunc
	done      chan struct{}
	err       error
	wg        sync.WaitGroup
	closeOnce sync.Once
	frames    int64
}

func NewFileBackend(source sound.Source, sink sound.Sink, framesPerBuffer int) *FileBackend {
	if framesPerBuffer <= 0 {
		framesPerBuffer = GetDefaultConfig().FramesPerBuffer
	}
	return &FileBackend{
		source:          source,
		sink:            sink,
		framesPerBuffer: framesPerBuffer,
		done:            make(chan struct{}),
	}
}

func (f *FileBackend) Open(string) error {
	f.opened = true
	return nil
}

func (f *FileBackend) SampleRate() float64 {
	return float64(f.source.SampleRate())
}

func (f *FileBackend) Register(cb Callback) error {
	if !f.opened {
		return ErrNotOpen
	}
	f.callback = cb
	return nil
}

func (f *FileBackend) Activate() error {
	if f.callback == nil {
		return ErrNotOpen
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer close(f.done)
		f.err = f.run(ctx)
	}()
	return nil
}

func (f *FileBackend) run(ctx context.Context) error {
	in := make([]float32, f.framesPerBuffer)
	out := make([]float32, f.framesPerBuffer)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := f.source.ReadFrames(in)
		if n > 0 {
			f.callback(in[:n], out[:n])
			if werr := f.sink.WriteFrames(out[:n]); werr != nil {
				return werr
			}
			f.frames += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read samples: %w", err)
		}
	}
}

func (f *FileBackend) Done() <-chan struct{} {
	return f.done
}

func (f *FileBackend) Err() error {
	return f.err
}

// Frames returns the number of frames processed. Valid after Done is closed.
func (f *FileBackend) Frames() int64 {
	return f.frames
}

func (f *FileBackend) Close() error {
	f.closeOnce.Do(func() {
		if f.cancel != nil {
			f.cancel()
		}
		f.wg.Wait()
	})
	return nil
}
