package profile

import (
	"context"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/worker"
)

// Queue accepts background jobs without blocking.
type Queue interface {
	Enqueue(job worker.Job) bool
}

// autoSaveJob writes one snapshot in the background.
type autoSaveJob struct {
	svc      Service
	snapshot domain.SavedProfile
}

func (j *autoSaveJob) Process(ctx context.Context) error {
	_, err := j.svc.AutoSave(ctx, j.snapshot)
	return err
}

// AutoSaver hands snapshots to a worker queue so lookups never wait on the database.
type AutoSaver struct {
	svc   Service
	queue Queue
}

// NewAutoSaver creates an AutoSaver
func NewAutoSaver(svc Service, queue Queue) *AutoSaver {
	return &AutoSaver{svc: svc, queue: queue}
}

// Enqueue schedules snapshot for saving. It reports false when the job was dropped.
func (a *AutoSaver) Enqueue(ctx context.Context, snapshot domain.SavedProfile) bool {
	log := logger.FromContext(ctx)
	if a == nil || a.queue == nil {
		log.Debug(LogMsgAutoSaveNotQueued, "github_username", snapshot.GitHubUsername)
		return false
	}
	if !a.queue.Enqueue(&autoSaveJob{svc: a.svc, snapshot: snapshot}) {
		log.Warn(LogMsgAutoSaveNotQueued, "github_username", snapshot.GitHubUsername)
		return false
	}
	log.Debug(LogMsgAutoSaveQueued, "github_username", snapshot.GitHubUsername)
	return true
}
