package dtft

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-dtft/dsp/trig"
	"github.com/cwbudde/algo-dtft/internal/spsc"
)

// Engine evaluates DTFT spectra with an optional two-goroutine split path.
//
// The secondary worker goroutine is started by NewEngine and runs for the
// engine's lifetime; Close tears it down. Engines are not safe for
// concurrent use: the split protocol assumes a single caller. Close and
// Idle are the exceptions and may be called from any goroutine.
type Engine struct {
	lut     *trig.Table
	mbox    *spsc.Mailbox[splitTask]
	timeout time.Duration

	closeOnce sync.Once
	closed    atomic.Bool
}

// splitTask is the work descriptor handed to the secondary worker. The
// signal and output slices are shared with the primary for the duration of
// one call; the worker writes only bins [start, end).
type splitTask struct {
	signal []uint8
	omegas []float64
	start  int
	end    int
	out    []complex128
}

// Option configures an Engine.
type Option func(*Engine)

// WithTrigTable sets the trigonometric lookup table used by both
// execution units. Defaults to trig.Default.
func WithTrigTable(t *trig.Table) Option {
	return func(e *Engine) {
		if t != nil {
			e.lut = t
		}
	}
}

// WithWaitTimeout bounds how long a split call waits for the secondary
// worker before returning ErrTimeout. Zero (the default) waits forever,
// matching the reference protocol.
func WithWaitTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewEngine creates an engine and starts its secondary worker goroutine.
// Callers must call Close when done with the engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		lut:  trig.Default(),
		mbox: spsc.New[splitTask](),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	go e.workerLoop()

	return e
}

// Close stops the secondary worker. A split call in flight still
// completes; further split calls return ErrEngineClosed.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		e.mbox.Close()
	})
}

// Idle reports whether the secondary worker has finished the last
// published task. It is only needed after a split call returned
// ErrTimeout: the timed-out task stays with the worker, and the signal
// and output it references remain shared until Idle reports true.
func (e *Engine) Idle() bool {
	return e.mbox.Idle()
}

// workerLoop is the persistent idle loop of the secondary execution unit.
// It spins on the mailbox, computes the assigned bin sub-range of each
// published task, and signals completion.
func (e *Engine) workerLoop() {
	for {
		task, ok := e.mbox.Receive()
		if !ok {
			return
		}

		for k := task.start; k < task.end; k++ {
			task.out[k] = computeBin(e.lut, task.signal, task.omegas[k])
		}

		e.mbox.Complete()
	}
}

// ComputeBin evaluates one DTFT bin on the primary unit.
func (e *Engine) ComputeBin(x []uint8, omega float64) complex128 {
	return computeBin(e.lut, x, omega)
}

// ComputeSpectrum evaluates the full grid on the primary unit alone.
func (e *Engine) ComputeSpectrum(x []uint8, omegas []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	if len(omegas) == 0 {
		return nil, ErrEmptyGrid
	}

	out := make([]complex128, len(omegas))
	for k, omega := range omegas {
		out[k] = computeBin(e.lut, x, omega)
	}

	return out, nil
}

// ComputeSpectrumSplit evaluates the grid using both execution units. The
// bin range [0, K) is split into two contiguous halves: the secondary
// worker computes [K/2, K) while the calling goroutine computes [0, K/2),
// both writing disjoint ranges of one shared output slice.
//
// x must not be mutated until the call returns, and on ErrTimeout not
// until Idle reports true: the worker still owns the timed-out task and
// keeps reading x and writing the abandoned output until it completes.
// Further split calls return ErrWorkerBusy while that task is in flight.
// The result is bin-for-bin identical to ComputeSpectrum.
func (e *Engine) ComputeSpectrumSplit(x []uint8, omegas []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	if len(omegas) == 0 {
		return nil, ErrEmptyGrid
	}

	out := make([]complex128, len(omegas))
	split := len(omegas) / 2

	task := &splitTask{
		signal: x,
		omegas: omegas,
		start:  split,
		end:    len(omegas),
		out:    out,
	}

	if !e.mbox.TryPublish(task) {
		if e.closed.Load() {
			return nil, ErrEngineClosed
		}

		// A previous call timed out and its task is still in flight; the
		// output buffer of that call stays owned by the worker until it
		// completes.
		return nil, ErrWorkerBusy
	}

	for k := range split {
		out[k] = computeBin(e.lut, x, omegas[k])
	}

	if err := e.mbox.AwaitDone(e.timeout); err != nil {
		return nil, ErrTimeout
	}

	return out, nil
}
