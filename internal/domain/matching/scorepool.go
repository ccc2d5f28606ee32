package matching

import (
	"context"
	"sync"
)

// scorePool fans pairwise scoring out over a fixed set of workers. Scoring is
// pure and side-effect free, so workers share no mutable state; the context is
// only consulted between tasks.
type scoreTask func() scoredTarget

type scorePool struct {
	workers int
	tasks   chan scoreTask
	wg      sync.WaitGroup
}

func newScorePool(workers, buffer int) *scorePool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &scorePool{
		workers: workers,
		tasks:   make(chan scoreTask, buffer),
	}
}

func (p *scorePool) Submit(t scoreTask) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *scorePool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

func (p *scorePool) Run(ctx context.Context) <-chan scoredTarget {
	out := make(chan scoredTarget, cap(p.tasks)+1)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					select {
					case <-ctx.Done():
						return
					case out <- t():
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
