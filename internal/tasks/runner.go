// Package tasks runs fire-and-forget side effects off the request path.
package tasks

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Task is one unit of background work. The passed context is the
// runner's lifetime context, not the context of the triggering request.
type Task func(ctx context.Context)

// Option configures a Runner.
type Option func(*Runner)

// WithCompletionHook registers a callback invoked after every finished
// task. Tests use it to await work the caller never awaits.
func WithCompletionHook(fn func(name string)) Option {
	return func(r *Runner) { r.onDone = fn }
}

// Runner is a bounded queue drained by a fixed worker pool. Submission
// never blocks: when the queue is full the task is dropped and logged,
// matching the best-effort contract of everything submitted here.
type Runner struct {
	queue  chan namedTask
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	log    zerolog.Logger
	onDone func(name string)
}

type namedTask struct {
	name string
	run  Task
}

// NewRunner starts workers goroutines draining a queue of size buffer.
func NewRunner(workers, buffer int, logger zerolog.Logger, opts ...Option) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		queue:  make(chan namedTask, buffer),
		ctx:    ctx,
		cancel: cancel,
		log:    logger.With().Str("component", "tasks").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.work()
	}
	return r
}

// Go enqueues a task without blocking. A full queue drops the task.
func (r *Runner) Go(name string, task Task) {
	select {
	case r.queue <- namedTask{name: name, run: task}:
	case <-r.ctx.Done():
	default:
		r.log.Warn().Str("task", name).Msg("task queue full, dropping task")
	}
}

func (r *Runner) work() {
	defer r.wg.Done()
	for {
		select {
		case t := <-r.queue:
			r.execute(t)
		case <-r.ctx.Done():
			return
		}
	}
}

func (r *Runner) execute(t namedTask) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Str("task", t.name).Interface("panic", rec).Msg("task panicked")
		}
		if r.onDone != nil {
			r.onDone(t.name)
		}
	}()
	t.run(r.ctx)
}

// Shutdown stops the workers and waits for in-flight tasks to finish.
// Queued tasks that no worker picked up are abandoned.
func (r *Runner) Shutdown() {
	r.cancel()
	r.wg.Wait()
	r.log.Info().Msg("task runner stopped")
}
