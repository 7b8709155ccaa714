package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDispatchesLetterCleanup(t *testing.T) {
	done := make(chan Job, 1)
	q := NewQueue("letters-cleanup", func(ctx context.Context, job Job) error {
		done <- job
		return nil
	}, QueueConfig{Workers: 1})

	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "cleanup-1", Type: TypeLetterCleanup}))

	select {
	case job := <-done:
		assert.Equal(t, TypeLetterCleanup, job.Type)
		assert.False(t, job.Enqueued.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected cleanup job to run")
	}
}

func TestQueueRetriesFailedSweep(t *testing.T) {
	var attempts int32
	done := make(chan struct{})
	q := NewQueue("letters-cleanup", func(ctx context.Context, job Job) error {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return errors.New("disk busy")
		}
		close(done)
		return nil
	}, QueueConfig{Workers: 1, RetryDelay: 10 * time.Millisecond})

	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "cleanup-2", Type: TypeLetterCleanup}))

	select {
	case <-done:
		assert.EqualValues(t, 2, atomic.LoadInt32(&attempts))
	case <-time.After(2 * time.Second):
		t.Fatal("expected failed sweep to be retried")
	}
}

func TestQueueRejectsEnqueueBeforeStart(t *testing.T) {
	q := NewQueue("letters-cleanup", func(ctx context.Context, job Job) error { return nil }, QueueConfig{})
	require.Error(t, q.Enqueue(Job{ID: "cleanup-3", Type: TypeLetterCleanup}))
}
