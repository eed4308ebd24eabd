// Package worker drains the intake queue into the row store.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	"github.com/abubakarirfan/huddled-takehome/pkg/logger"
	"github.com/abubakarirfan/huddled-takehome/pkg/metrics"
)

const workerShutdownTimeout = 5 * time.Second

// Recorder persists one ingested event.
type Recorder interface {
	RecordEvent(ctx context.Context, e model.UserEvent) error
}

// Queue defines how workers receive events.
type Queue interface {
	Dequeue(ctx context.Context) <-chan model.UserEvent
}

// Worker consumes events off the queue and writes them through the Recorder.
type Worker struct {
	queue    Queue
	recorder Recorder
	name     string

	shutdown     chan struct{}
	shutdownOnce sync.Once
	done         chan struct{}

	log logger.Logger
}

// Option applies a configuration option to a Worker.
type Option func(*Worker)

// WithName names the worker for logging.
func WithName(name string) Option {
	return func(w *Worker) {
		if name != "" {
			w.name = name
			w.log = logger.Named(name)
		}
	}
}

// NewWorker creates a worker bound to a queue and recorder.
func NewWorker(queue Queue, recorder Recorder, opts ...Option) *Worker {
	w := &Worker{
		queue:    queue,
		recorder: recorder,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		log:      logger.Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run consumes events until the context is canceled, the worker shuts down,
// or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	events := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			if err := w.recorder.RecordEvent(ctx, e); err != nil {
				metrics.RecordWorkerError()
				w.log.Error(ctx, "failed to persist event",
					logger.String("user_id", e.UserID),
					logger.String("artist_id", e.ArtistID),
					logger.Error(err),
				)
				continue
			}
			metrics.RecordEventRecorded()
		}
	}
}

// signalShutdown asks the worker to stop. Safe to call more than once.
func (w *Worker) signalShutdown() {
	w.shutdownOnce.Do(func() { close(w.shutdown) })
}

// Shutdown stops the worker, waiting for the in-flight event.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.signalShutdown()
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker shutdown timed out: %w", ctx.Err())
	}
}

// Pool runs a fixed set of workers over one queue.
type Pool struct {
	workers []*Worker
}

// NewPool creates workerCount workers. A non-positive count defaults to the
// CPU count.
func NewPool(workerCount int, queue Queue, recorder Recorder) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}
	p := &Pool{workers: make([]*Worker, workerCount)}
	for i := range p.workers {
		p.workers[i] = NewWorker(queue, recorder, WithName("worker-"+strconv.Itoa(i)))
	}
	return p
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop shuts down all workers, bounding the wait per worker.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		w.signalShutdown()
	}
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}
