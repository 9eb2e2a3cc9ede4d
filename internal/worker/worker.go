package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrStopped is returned by Do once the pool has been stopped.
var ErrStopped = errors.New("worker pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool bounds how many tasks run at once.
type Pool interface {
	// Do runs t on a worker and waits for it to finish or for ctx to end.
	Do(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), quit: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case job := <-p.jobs:
					run(job)
				case <-p.quit:
					return
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("worker task panicked")
		}
	}()
	job()
}

func (p *pool) Do(ctx context.Context, t Task) error {
	done := make(chan struct{})
	job := func() {
		defer close(done)
		t()
	}
	select {
	case p.jobs <- job:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrStopped
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop waits for running tasks and shuts the workers down. It is safe to
// call more than once.
func (p *pool) Stop() {
	p.once.Do(func() { close(p.quit) })
	p.wg.Wait()
}

// FakePool runs every task inline on the caller's goroutine.
type FakePool struct {
	DoFn func(ctx context.Context, t Task) error
}

func (f *FakePool) Do(ctx context.Context, t Task) error {
	if f.DoFn != nil {
		return f.DoFn(ctx, t)
	}
	t()
	return nil
}

func (f *FakePool) Stop() {}
