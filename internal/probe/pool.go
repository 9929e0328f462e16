package probe

import (
	"context"

	"github.com/gammazero/workerpool"

	"github.com/hamed0406/pingprobe/internal/domain"
)

// Pool caps how many probe child processes run at once. Each submitted
// probe keeps its own context and timeout; the pool bounds parallelism
// only and imposes no ordering between requests.
type Pool struct {
	inner   Prober
	workers *workerpool.WorkerPool
}

// NewPool wraps inner with a launch cap of size workers. Size must be
// positive; callers wanting uncapped execution use the Prober directly.
func NewPool(inner Prober, size int) *Pool {
	return &Pool{inner: inner, workers: workerpool.New(size)}
}

func (p *Pool) Probe(ctx context.Context, host domain.Host) Outcome {
	done := make(chan Outcome, 1)
	p.workers.Submit(func() {
		done <- p.inner.Probe(ctx, host)
	})
	return <-done
}

// Stop lets queued probes finish and releases the workers.
func (p *Pool) Stop() {
	p.workers.StopWait()
}
