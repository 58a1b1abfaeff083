package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/rideorchestrator/services/rides Notifier,EventPublisher

// Notifier emits fire-and-forget notifications to riders and drivers.
// delivered is false when nobody is listening on the target channel.
type Notifier interface {
	Emit(ctx context.Context, target models.NotificationTarget, targetID uuid.UUID, event string, payload interface{}) (bool, error)
}

// EventPublisher publishes ride lifecycle events for downstream subsystems
type EventPublisher interface {
	PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error
}
