package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/database"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/location"
)

// overfetch compensates for unavailable drivers filtered out after GEORADIUS
const overfetch = 3

type locationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
	}
}

// UpdateDriverLocation stores the driver position and refreshes an existing availability mark
func (r *locationRepo) UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, loc models.Location, availabilityTTL time.Duration) error {
	client := r.redisClient.GetClient()

	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.GeoAdd(ctx, constants.KeyDriverGeo, &redis.GeoLocation{
			Name:      driverID.String(),
			Longitude: loc.Longitude,
			Latitude:  loc.Latitude,
		})
		// EXPIRE is a no-op for drivers that are not available
		pipe.Expire(ctx, availabilityKey(driverID), availabilityTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}

	return nil
}

// SetDriverAvailability marks the driver available for ttl, or removes the mark
func (r *locationRepo) SetDriverAvailability(ctx context.Context, driverID uuid.UUID, available bool, ttl time.Duration) error {
	client := r.redisClient.GetClient()
	key := availabilityKey(driverID)

	var err error
	if available {
		err = client.Set(ctx, key, "1", ttl).Err()
	} else {
		err = client.Del(ctx, key).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to set driver availability: %w", err)
	}

	return nil
}

// GetNearbyDrivers returns available drivers within radius, nearest first
func (r *locationRepo) GetNearbyDrivers(ctx context.Context, loc models.Location, radiusMeters float64, limit int) ([]models.NearbyDriver, error) {
	results, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, radiusMeters, limit*overfetch)
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby drivers: %w", err)
	}
	if len(results) == 0 {
		return []models.NearbyDriver{}, nil
	}

	client := r.redisClient.GetClient()
	pipe := client.Pipeline()
	exists := make([]*redis.IntCmd, len(results))
	for i, result := range results {
		exists[i] = pipe.Exists(ctx, fmt.Sprintf(constants.KeyDriverAvailable, result.Name))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to check driver availability: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(results))
	drivers := make([]models.NearbyDriver, 0, limit)
	for i, result := range results {
		if exists[i].Val() == 0 {
			continue
		}

		driverID, err := uuid.Parse(result.Name)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping malformed driver id in geo index",
				logger.String("member", result.Name))
			continue
		}
		if _, dup := seen[driverID]; dup {
			continue
		}
		seen[driverID] = struct{}{}

		drivers = append(drivers, models.NearbyDriver{
			DriverID:       driverID,
			DistanceMeters: result.Dist,
		})
		if len(drivers) == limit {
			break
		}
	}

	return drivers, nil
}

func availabilityKey(driverID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyDriverAvailable, driverID.String())
}
