package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/database"
	"github.com/piresc/rideorchestrator/internal/pkg/metrics"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/rides"
)

// RedisNotifier publishes notifications on per-target Redis channels
type RedisNotifier struct {
	redisClient *database.RedisClient
}

// NewRedisNotifier creates the notification port
func NewRedisNotifier(redisClient *database.RedisClient) rides.Notifier {
	return &RedisNotifier{redisClient: redisClient}
}

// ChannelFor returns the channel a target subscribes to
func ChannelFor(target models.NotificationTarget, targetID uuid.UUID) string {
	return fmt.Sprintf(constants.ChannelNotify, target, targetID)
}

// Emit implements rides.Notifier
func (n *RedisNotifier) Emit(ctx context.Context, target models.NotificationTarget, targetID uuid.UUID, event string, payload interface{}) (bool, error) {
	body, err := json.Marshal(models.Notification{
		Event:     event,
		Target:    target,
		TargetID:  targetID,
		Payload:   payload,
		EmittedAt: time.Now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("failed to marshal notification: %w", err)
	}

	receivers, err := n.redisClient.GetClient().Publish(ctx, ChannelFor(target, targetID), body).Result()
	if err != nil {
		return false, fmt.Errorf("failed to publish notification: %w", err)
	}

	delivered := receivers > 0
	metrics.NotificationsEmitted.WithLabelValues(string(target), strconv.FormatBool(delivered)).Inc()
	return delivered, nil
}
