package profile

import (
	"context"
	"time"
)

// PruneJob deletes stale ownerless snapshots when processed. It is meant to
// be scheduled periodically on the background worker pool.
type PruneJob struct {
	svc       Service
	retention time.Duration
}

func NewPruneJob(svc Service, retention time.Duration) *PruneJob {
	return &PruneJob{svc: svc, retention: retention}
}

func (j *PruneJob) Process(ctx context.Context) error {
	_, err := j.svc.PruneSnapshots(ctx, j.retention)
	return err
}
