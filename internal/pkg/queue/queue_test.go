package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type estimate struct {
	DistanceKm float64 `json:"distance_km"`
}

func setupQueue(t *testing.T) (*RedisQueue, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	q := NewRedisQueue(client, models.QueueConfig{Prefix: "test", JobTTL: time.Minute, ResultTTL: time.Minute})
	q.pollWait = 100 * time.Millisecond
	return q, mr
}

func runConsumer(t *testing.T, q *RedisQueue, queueName string, handler Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = q.Consume(ctx, queueName, handler)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
}

func TestRedisQueue_EnqueueDuplicate(t *testing.T) {
	q, mr := setupQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "route-estimation", "ride-1-route-estimation", estimate{}))
	err := q.Enqueue(ctx, "route-estimation", "ride-1-route-estimation", estimate{})

	assert.True(t, IsDuplicate(err))
	assert.True(t, mr.Exists("test:job:ride-1-route-estimation"))

	pending, err := q.Pending(ctx, "route-estimation")
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}

func TestRedisQueue_RoundTrip(t *testing.T) {
	q, mr := setupQueue(t)
	ctx := context.Background()

	runConsumer(t, q, "route-estimation", func(ctx context.Context, job Job) (interface{}, error) {
		var in estimate
		if err := job.Decode(&in); err != nil {
			return nil, err
		}
		return estimate{DistanceKm: in.DistanceKm * 2}, nil
	})

	require.NoError(t, q.Enqueue(ctx, "route-estimation", "ride-2-route-estimation", estimate{DistanceKm: 2.5}))

	result, err := q.Wait(ctx, "ride-2-route-estimation", 2*time.Second)
	require.NoError(t, err)
	require.NoError(t, result.Err())

	var out estimate
	require.NoError(t, result.Decode(&out))
	assert.Equal(t, 5.0, out.DistanceKm)

	// completion frees the job id for reuse
	assert.Eventually(t, func() bool {
		return !mr.Exists("test:job:ride-2-route-estimation")
	}, time.Second, 10*time.Millisecond)
	assert.NoError(t, q.Enqueue(ctx, "route-estimation", "ride-2-route-estimation", estimate{}))
}

func TestRedisQueue_HandlerErrorIsReported(t *testing.T) {
	q, _ := setupQueue(t)
	ctx := context.Background()

	runConsumer(t, q, "route-estimation", func(ctx context.Context, job Job) (interface{}, error) {
		return nil, errors.New("ZERO_RESULTS")
	})

	require.NoError(t, q.Enqueue(ctx, "route-estimation", "ride-3-route-estimation", estimate{}))

	result, err := q.Wait(ctx, "ride-3-route-estimation", 2*time.Second)
	require.NoError(t, err)
	assert.ErrorContains(t, result.Err(), "ZERO_RESULTS")
}

func TestRedisQueue_WaitTimeout(t *testing.T) {
	q, _ := setupQueue(t)

	_, err := q.Wait(context.Background(), "ride-4-route-estimation", time.Second)
	assert.ErrorIs(t, err, ErrJobTimeout)
}

func TestRedisQueue_Remove(t *testing.T) {
	q, mr := setupQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "route-estimation", "ride-5-route-estimation", estimate{}))
	require.NoError(t, q.Enqueue(ctx, "route-estimation", "ride-6-route-estimation", estimate{}))

	require.NoError(t, q.Remove(ctx, "route-estimation", "ride-5-route-estimation"))

	pending, err := q.Pending(ctx, "route-estimation")
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
	assert.False(t, mr.Exists("test:job:ride-5-route-estimation"))

	// removing an unknown job is not an error
	assert.NoError(t, q.Remove(ctx, "route-estimation", "ride-404-route-estimation"))
}
