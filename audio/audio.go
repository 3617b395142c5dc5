package audio

import "errors"

var (
	// ErrNotOpen is returned when a backend is used before Open
	ErrNotOpen = errors.New("audio backend not open")

	// ErrUnknownHostAPI is returned for an unrecognized host API name
	ErrUnknownHostAPI = errors.New("unknown host api")
)

// Callback processes one audio cycle. in and out have the same length and
// are only valid for the duration of the call.
type Callback func(in, out []float32)

// Backend defines the capability set of an audio server connection
type Backend interface {
	// Open connects to the audio server and resolves one mono input and one mono output port
	Open(clientName string) error

	// SampleRate returns the current sample rate in Hz
	SampleRate() float64

	// Register installs the per-cycle callback
	Register(cb Callback) error

	// Activate starts invoking the callback asynchronously
	Activate() error

	// Done is closed when the backend stops on its own
	Done() <-chan struct{}

	// Err returns the terminal error once Done is closed
	Err() error

	// Close stops the callback and releases the connection
	Close() error
}
