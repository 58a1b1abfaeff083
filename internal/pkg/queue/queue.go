package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

var (
	// ErrDuplicateJob is returned when a job with the same id is still pending or running
	ErrDuplicateJob = errors.New("job already exists")
	// ErrJobTimeout is returned when no result arrives within the wait timeout
	ErrJobTimeout = errors.New("timed out waiting for job result")
)

// IsDuplicate reports whether err is a dedup rejection
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateJob)
}

// Job is a unit of work pushed onto a named queue
type Job struct {
	ID         string          `json:"id"`
	Queue      string          `json:"queue"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// Decode unmarshals the job payload into v
func (j Job) Decode(v interface{}) error {
	if err := json.Unmarshal(j.Payload, v); err != nil {
		return fmt.Errorf("failed to decode job %s payload: %w", j.ID, err)
	}
	return nil
}

// Result is what a consumer reports back for a job
type Result struct {
	JobID   string          `json:"job_id"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Err returns the handler failure carried by the result
func (r Result) Err() error {
	if r.Error == "" {
		return nil
	}
	return fmt.Errorf("job %s failed: %s", r.JobID, r.Error)
}

// Decode unmarshals the result payload into v
func (r Result) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Payload, v); err != nil {
		return fmt.Errorf("failed to decode job %s result: %w", r.JobID, err)
	}
	return nil
}

// Handler processes one job; the returned value is JSON-encoded into the result
type Handler func(ctx context.Context, job Job) (interface{}, error)

// Queue is implemented by RedisQueue
type Queue interface {
	Enqueue(ctx context.Context, queueName, jobID string, payload interface{}) error
	Wait(ctx context.Context, jobID string, timeout time.Duration) (Result, error)
	Remove(ctx context.Context, queueName, jobID string) error
	Consume(ctx context.Context, queueName string, handler Handler) error
}

// releaseLock deletes the dedup key only while it still belongs to this job
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisQueue is a job queue on Redis lists with SETNX job-id dedup
type RedisQueue struct {
	client    *redis.Client
	prefix    string
	jobTTL    time.Duration
	resultTTL time.Duration
	pollWait  time.Duration
}

// NewRedisQueue creates a queue using the given client
func NewRedisQueue(client *redis.Client, cfg models.QueueConfig) *RedisQueue {
	q := &RedisQueue{
		client:    client,
		prefix:    cfg.Prefix,
		jobTTL:    cfg.JobTTL,
		resultTTL: cfg.ResultTTL,
		pollWait:  time.Second,
	}
	if q.prefix == "" {
		q.prefix = "rides"
	}
	if q.jobTTL <= 0 {
		q.jobTTL = 2 * time.Minute
	}
	if q.resultTTL <= 0 {
		q.resultTTL = time.Minute
	}
	return q
}

func (q *RedisQueue) pendingKey(queueName string) string {
	return fmt.Sprintf(constants.KeyQueuePending, q.prefix, queueName)
}

func (q *RedisQueue) lockKey(jobID string) string {
	return fmt.Sprintf(constants.KeyJobLock, q.prefix, jobID)
}

func (q *RedisQueue) resultKey(jobID string) string {
	return fmt.Sprintf(constants.KeyJobResult, q.prefix, jobID)
}

// Enqueue pushes a job unless one with the same id is pending or running
func (q *RedisQueue) Enqueue(ctx context.Context, queueName, jobID string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal job payload: %w", err)
	}
	encoded, err := json.Marshal(Job{
		ID:         jobID,
		Queue:      queueName,
		Payload:    body,
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	acquired, err := q.client.SetNX(ctx, q.lockKey(jobID), encoded, q.jobTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire job lock: %w", err)
	}
	if !acquired {
		return ErrDuplicateJob
	}

	pipe := q.client.TxPipeline()
	pipe.Del(ctx, q.resultKey(jobID))
	pipe.LPush(ctx, q.pendingKey(queueName), encoded)
	if _, err := pipe.Exec(ctx); err != nil {
		q.client.Del(ctx, q.lockKey(jobID))
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}

// Wait blocks until the job result arrives or timeout elapses
func (q *RedisQueue) Wait(ctx context.Context, jobID string, timeout time.Duration) (Result, error) {
	values, err := q.client.BLPop(ctx, timeout, q.resultKey(jobID)).Result()
	if errors.Is(err, redis.Nil) {
		return Result{}, ErrJobTimeout
	}
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, fmt.Errorf("failed to wait for job result: %w", err)
	}

	var result Result
	if err := json.Unmarshal([]byte(values[1]), &result); err != nil {
		return Result{}, fmt.Errorf("failed to decode job result: %w", err)
	}
	return result, nil
}

// Remove drops a pending job and its bookkeeping keys; a job already taken by a worker keeps running
func (q *RedisQueue) Remove(ctx context.Context, queueName, jobID string) error {
	encoded, err := q.client.Get(ctx, q.lockKey(jobID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to read job lock: %w", err)
	}

	pipe := q.client.TxPipeline()
	if encoded != "" {
		pipe.LRem(ctx, q.pendingKey(queueName), 0, encoded)
	}
	pipe.Del(ctx, q.lockKey(jobID), q.resultKey(jobID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove job: %w", err)
	}
	return nil
}

// Pending returns the number of jobs waiting on a queue
func (q *RedisQueue) Pending(ctx context.Context, queueName string) (int64, error) {
	return q.client.LLen(ctx, q.pendingKey(queueName)).Result()
}

// Consume runs handler for each job on queueName until ctx is canceled
func (q *RedisQueue) Consume(ctx context.Context, queueName string, handler Handler) error {
	key := q.pendingKey(queueName)
	for {
		if ctx.Err() != nil {
			return nil
		}

		values, err := q.client.BRPop(ctx, q.pollWait, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Warn("Failed to pop job", logger.String("queue", queueName), logger.Err(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(q.pollWait):
			}
			continue
		}

		q.process(ctx, values[1], handler)
	}
}

func (q *RedisQueue) process(ctx context.Context, encoded string, handler Handler) {
	var job Job
	if err := json.Unmarshal([]byte(encoded), &job); err != nil {
		logger.Error("Dropping malformed job", logger.Err(err))
		return
	}

	result := Result{JobID: job.ID}
	value, err := handler(ctx, job)
	if err != nil {
		result.Error = err.Error()
		logger.Warn("Job failed",
			logger.String("queue", job.Queue),
			logger.String("job_id", job.ID),
			logger.Err(err))
	} else if value != nil {
		body, marshalErr := json.Marshal(value)
		if marshalErr != nil {
			result.Error = marshalErr.Error()
		} else {
			result.Payload = body
		}
	}

	if err := q.complete(ctx, job.ID, encoded, result); err != nil {
		logger.Error("Failed to store job result",
			logger.String("job_id", job.ID),
			logger.Err(err))
	}
}

func (q *RedisQueue) complete(ctx context.Context, jobID, encoded string, result Result) error {
	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal job result: %w", err)
	}

	pipe := q.client.TxPipeline()
	pipe.RPush(ctx, q.resultKey(jobID), body)
	pipe.Expire(ctx, q.resultKey(jobID), q.resultTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	return releaseLock.Run(ctx, q.client, []string{q.lockKey(jobID)}, encoded).Err()
}
