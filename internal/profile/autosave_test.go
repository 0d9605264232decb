package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/worker"
)

type recordingQueue struct {
	accept bool
	jobs   []worker.Job
}

func (q *recordingQueue) Enqueue(job worker.Job) bool {
	if !q.accept {
		return false
	}
	q.jobs = append(q.jobs, job)
	return true
}

func TestAutoSaver_Enqueue(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("UpsertSnapshot", mock.Anything, mock.MatchedBy(func(p *domain.SavedProfile) bool {
		return p.GitHubUsername == "octocat"
	})).Return(nil)

	queue := &recordingQueue{accept: true}
	saver := NewAutoSaver(NewService(repo), queue)

	require.True(t, saver.Enqueue(ctx, sampleProfile()))
	require.Len(t, queue.jobs, 1)
	repo.AssertNotCalled(t, "UpsertSnapshot", mock.Anything, mock.Anything)

	require.NoError(t, queue.jobs[0].Process(ctx))
	repo.AssertExpectations(t)
}

func TestAutoSaver_QueueFull(t *testing.T) {
	saver := NewAutoSaver(NewService(new(MockRepository)), &recordingQueue{accept: false})
	assert.False(t, saver.Enqueue(context.Background(), sampleProfile()))
}

func TestAutoSaver_Nil(t *testing.T) {
	var saver *AutoSaver
	assert.False(t, saver.Enqueue(context.Background(), sampleProfile()))
}

func TestAutoSaver_WithPool(t *testing.T) {
	repo := new(MockRepository)
	done := make(chan struct{})
	repo.On("UpsertSnapshot", mock.Anything, mock.Anything).Run(func(mock.Arguments) { close(done) }).Return(nil)

	pool := worker.NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	saver := NewAutoSaver(NewService(repo), pool)
	require.True(t, saver.Enqueue(context.Background(), sampleProfile()))
	<-done
}
