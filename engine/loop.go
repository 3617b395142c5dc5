package engine

import (
	"errors"
	"sync/atomic"

	"github.com/d1nch8g/stompbox/effect"
)

// ErrAlreadyRunning is returned when a loop is bound to a second callback
var ErrAlreadyRunning = errors.New("processing loop is already running")

// State of a processing loop
type State int32

const (
	// StateIdle means the loop is not yet registered as a callback
	StateIdle State = iota
	// StateRunning means the backend may invoke Process at any time
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Loop owns the active effect and applies it to every audio cycle.
type Loop struct {
	effect effect.Effect
	state  atomic.Int32
}

func NewLoop(fx effect.Effect) *Loop {
	if fx == nil {
		fx = effect.NoOp{}
	}
	return &Loop{effect: fx}
}

// Effect returns the effect owned by the loop
func (l *Loop) Effect() effect.Effect {
	return l.effect
}

func (l *Loop) State() State {
	return State(l.state.Load())
}

// Bind moves the loop from idle to running. It succeeds once.
func (l *Loop) Bind() error {
	if !l.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return ErrAlreadyRunning
	}
	return nil
}

// Process runs one audio cycle: out[i] = effect(in[i]) in index order.
// It never blocks or allocates. If the buffers differ in length only the
// common prefix is processed and the rest of out is silenced.
func (l *Loop) Process(in, out []float32) {
	n := min(len(in), len(out))
	for i := 0; i < n; i++ {
		out[i] = l.effect.ProcessSample(in[i])
	}
	clear(out[n:])
}
