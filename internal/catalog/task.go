package catalog

import (
	"context"
	"sync/atomic"

	"github.com/fairyhunter13/product-card-showcase/internal/model"
)

// Sequencer provides monotonically increasing sequence numbers.
type Sequencer struct{ n atomic.Uint64 }

// Next returns the next sequence number.
func (s *Sequencer) Next() uint64 { return s.n.Add(1) }

// Result is the outcome of one load task.
type Result struct {
	Token    uint64
	Products []model.Product
	Err      error
	// cancelled is set when the task was cancelled before the result was
	// produced; such results must not be applied.
	cancelled bool
}

// Cancelled reports whether the owning task was cancelled.
func (r Result) Cancelled() bool { return r.cancelled }

// Task is a single cancellable load.
type Task struct {
	token  uint64
	cancel context.CancelFunc
	ctx    context.Context
	done   chan Result
}

// Start runs f.Fetch once in the background. The token is drawn from seq.
func Start(parent context.Context, seq *Sequencer, f Fetcher) *Task {
	ctx, cancel := context.WithCancel(parent)
	t := &Task{
		token:  seq.Next(),
		cancel: cancel,
		ctx:    ctx,
		done:   make(chan Result, 1),
	}
	go t.run(f)
	return t
}

func (t *Task) run(f Fetcher) {
	defer t.cancel()
	products, err := f.Fetch(t.ctx)
	res := Result{Token: t.token, Products: products, Err: err}
	if t.ctx.Err() != nil {
		res.cancelled = true
	}
	t.done <- res
}

// Token identifies the task.
func (t *Task) Token() uint64 { return t.token }

// Cancel aborts the fetch. It is safe to call more than once.
func (t *Task) Cancel() { t.cancel() }

// Done delivers exactly one Result.
func (t *Task) Done() <-chan Result { return t.done }

// Wait blocks until the result arrives or ctx ends.
func (t *Task) Wait(ctx context.Context) (Result, error) {
	select {
	case r := <-t.done:
		return r, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
