package gateway

import (
	"context"

	"github.com/piresc/rideorchestrator/internal/pkg/models"
	natspkg "github.com/piresc/rideorchestrator/internal/pkg/nats"
	nrpkg "github.com/piresc/rideorchestrator/internal/pkg/newrelic"
	"github.com/piresc/rideorchestrator/services/rides"
)

// NATSPublisher publishes ride lifecycle events on NATS subjects
type NATSPublisher struct {
	client *natspkg.Client
}

// NewNATSPublisher creates the event gateway
func NewNATSPublisher(client *natspkg.Client) rides.EventPublisher {
	return &NATSPublisher{client: client}
}

// PublishRideEvent implements rides.EventPublisher; the subject doubles as the event type header
func (p *NATSPublisher) PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error {
	defer nrpkg.StartSegment(ctx, "NATS/Publish/"+subject)()
	return p.client.PublishJSON(subject, subject, event)
}
