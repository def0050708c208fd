package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueProcessesEveryJob(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
		wg   sync.WaitGroup
	)
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		mu.Lock()
		seen = append(seen, job.ID)
		mu.Unlock()
		wg.Done()
		return nil
	}, QueueConfig{Workers: 3})
	q.Start(context.Background())
	defer q.Stop()

	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		require.NoError(t, q.Enqueue(Job{ID: id}))
	}
	wg.Wait()

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, seen)
}

func TestQueueRetriesFailedJobs(t *testing.T) {
	done := make(chan Job, 1)
	q := NewQueue("retry", func(ctx context.Context, job Job) error {
		if job.Attempt < 2 {
			return errors.New("not yet")
		}
		done <- job
		return nil
	}, QueueConfig{MaxRetries: 3, RetryDelay: time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "flaky"}))

	select {
	case job := <-done:
		assert.Equal(t, 2, job.Attempt)
	case <-time.After(5 * time.Second):
		t.Fatal("job was not retried")
	}
}

func TestQueueGivesUpAfterMaxRetries(t *testing.T) {
	boom := errors.New("boom")
	gaveUp := make(chan Job, 1)
	var calls int
	var mu sync.Mutex
	q := NewQueue("give-up", func(ctx context.Context, job Job) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return boom
	}, QueueConfig{
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
		OnGiveUp: func(job Job, err error) {
			assert.ErrorIs(t, err, boom)
			gaveUp <- job
		},
	})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "doomed", Kind: "summary"}))

	select {
	case job := <-gaveUp:
		assert.Equal(t, "doomed", job.ID)
		assert.Equal(t, 2, job.Attempt)
	case <-time.After(5 * time.Second):
		t.Fatal("queue never gave up")
	}
	mu.Lock()
	assert.Equal(t, 2, calls)
	mu.Unlock()
}

func TestQueueEnqueueRequiresRunningQueue(t *testing.T) {
	q := NewQueue("idle", func(context.Context, Job) error { return nil }, QueueConfig{})
	assert.Error(t, q.Enqueue(Job{ID: "early"}))

	q.Start(context.Background())
	q.Stop()
	q.Stop()
	assert.Error(t, q.Enqueue(Job{ID: "late"}))
}

func TestQueueStopCancelsInFlightHandlers(t *testing.T) {
	started := make(chan struct{})
	var handlerErr error
	q := NewQueue("slow", func(ctx context.Context, job Job) error {
		close(started)
		<-ctx.Done()
		handlerErr = ctx.Err()
		return nil
	}, QueueConfig{})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "slow"}))
	<-started
	q.Stop()

	assert.ErrorIs(t, handlerErr, context.Canceled)
}
