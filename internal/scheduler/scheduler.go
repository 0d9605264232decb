// Package scheduler enqueues recurring jobs onto a worker queue.
package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/worker"
)

const (
	LogMsgJobScheduled = "Recurring job scheduled"
	LogMsgJobSkipped   = "Recurring job skipped, queue unavailable"
	LogMsgStopped      = "Scheduler stopped"
)

// Queue accepts jobs without blocking.
type Queue interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	queue    Queue
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func New(queue Queue) *Scheduler {
	return &Scheduler{
		queue: queue,
		quit:  make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick that finds the
// queue full is skipped rather than retried; the next tick tries again.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	logger.Info(LogMsgJobScheduled, "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.queue.Enqueue(job) {
					logger.Warn(LogMsgJobSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop cancels all schedules and waits for their goroutines. Jobs already
// handed to the queue are left to it.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
	logger.Info(LogMsgStopped)
}
