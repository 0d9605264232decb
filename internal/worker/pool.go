package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed number of goroutines.
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once

	// mu orders Enqueue against Stop: once stopped is set no job can
	// reach the queue, and every job sent before it is drained.
	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		quit:       make(chan struct{}),
	}
}

// WithJobTimeout overrides the per-job deadline.
func (p *Pool) WithJobTimeout(d time.Duration) *Pool {
	if d > 0 {
		p.jobTimeout = d
	}
	return p
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	logger.Info(LogMsgPoolStarted, "workers", p.workers, "queue_size", cap(p.jobQueue))
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(id, job)
		case <-p.quit:
			p.drain(id)
			return
		}
	}
}

// drain finishes jobs that were accepted before Stop was called.
func (p *Pool) drain(id int) {
	for {
		select {
		case job := <-p.jobQueue:
			p.run(id, job)
		default:
			return
		}
	}
}

func (p *Pool) run(id int, job Job) {
	ctx, cancel := context.WithTimeout(logger.WithRequestID(context.Background(), logger.GenerateRequestID()), p.jobTimeout)
	defer cancel()

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "worker", id, "error", err)
		metrics.WorkerJobsProcessed.WithLabelValues(metrics.OutcomeError).Inc()
		return
	}
	metrics.WorkerJobsProcessed.WithLabelValues(metrics.OutcomeSuccess).Inc()
}

// Enqueue adds a job to the queue without blocking.
// It returns false when the queue is full or the pool is stopping.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.Warn(LogMsgWorkerQueueFull, "queue_size", cap(p.jobQueue))
		metrics.WorkerJobsProcessed.WithLabelValues(metrics.OutcomeDropped).Inc()
		return false
	}
}

// Stop stops the workers and waits for queued jobs to finish
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		close(p.quit)
		p.mu.Unlock()
	})
	p.wg.Wait()
	logger.Info(LogMsgPoolStopped)
}

// Shutdown stops the pool, giving up once ctx is done.
func (p *Pool) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
