package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/database"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/utils"
	"github.com/piresc/rideorchestrator/services/trip"
)

// maxWatchAttempts bounds optimistic retries when concurrent writers touch the same ride
const maxWatchAttempts = 10

var errLedgerContention = errors.New("ledger update kept conflicting")

type ledgerRepo struct {
	redisClient *database.RedisClient
}

// NewLedgerRepository creates the Redis-backed distance ledger
func NewLedgerRepository(redisClient *database.RedisClient) trip.LedgerRepo {
	return &ledgerRepo{redisClient: redisClient}
}

func stateKey(rideID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyTripState, rideID)
}

func eventsKey(rideID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyTripEvents, rideID)
}

// RecordLocation implements trip.LedgerRepo. The state hash is WATCHed so the running
// total is never computed from a stale previous driver position.
func (r *ledgerRepo) RecordLocation(ctx context.Context, rideID, participantID uuid.UUID, role models.ParticipantRole, loc models.Location, ttl time.Duration) (*models.TripLocationEvent, error) {
	sKey, eKey := stateKey(rideID), eventsKey(rideID)

	recordedAt := loc.Timestamp
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	var event models.TripLocationEvent
	txf := func(tx *redis.Tx) error {
		state, err := tx.HGetAll(ctx, sKey).Result()
		if err != nil {
			return err
		}

		total := parseFloat(state[constants.FieldTotalDistance])
		event = models.TripLocationEvent{
			RideID:          rideID,
			ParticipantID:   participantID,
			ParticipantRole: role,
			Latitude:        loc.Latitude,
			Longitude:       loc.Longitude,
			RecordedAt:      recordedAt,
		}

		fields := map[string]interface{}{}
		switch role {
		case models.ParticipantDriver:
			if prev, ok := parseLocation(state, constants.FieldDriverLatitude, constants.FieldDriverLongitude, constants.FieldDriverTimestamp); ok {
				event.DistanceDeltaMeters = utils.DistanceMeters(*prev, loc)
			}
			total += event.DistanceDeltaMeters
			fields[constants.FieldDriverLatitude] = formatFloat(loc.Latitude)
			fields[constants.FieldDriverLongitude] = formatFloat(loc.Longitude)
			fields[constants.FieldDriverTimestamp] = recordedAt.UnixMilli()
			fields[constants.FieldTotalDistance] = formatFloat(total)
		case models.ParticipantRider:
			fields[constants.FieldRiderLatitude] = formatFloat(loc.Latitude)
			fields[constants.FieldRiderLongitude] = formatFloat(loc.Longitude)
			fields[constants.FieldRiderTimestamp] = recordedAt.UnixMilli()
		default:
			return fmt.Errorf("unknown participant role %q", role)
		}
		event.TotalDistanceMeters = total

		encoded, err := json.Marshal(event)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, sKey, fields)
			pipe.Expire(ctx, sKey, ttl)
			pipe.RPush(ctx, eKey, encoded)
			pipe.Expire(ctx, eKey, ttl)
			pipe.SAdd(ctx, constants.KeyTripActiveRides, rideID.String())
			return nil
		})
		return err
	}

	if err := r.watch(ctx, txf, sKey); err != nil {
		return nil, fmt.Errorf("failed to record trip location: %w", err)
	}
	return &event, nil
}

// GetSnapshot implements trip.LedgerRepo; an unknown ride yields an empty snapshot
func (r *ledgerRepo) GetSnapshot(ctx context.Context, rideID uuid.UUID) (*models.LedgerSnapshot, error) {
	state, err := r.redisClient.GetClient().HGetAll(ctx, stateKey(rideID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read trip ledger: %w", err)
	}

	snapshot := &models.LedgerSnapshot{
		RideID:              rideID,
		TotalDistanceMeters: parseFloat(state[constants.FieldTotalDistance]),
		Completed:           state[constants.FieldCompleted] == "1",
	}
	if loc, ok := parseLocation(state, constants.FieldDriverLatitude, constants.FieldDriverLongitude, constants.FieldDriverTimestamp); ok {
		snapshot.LastDriverLocation = loc
	}
	if loc, ok := parseLocation(state, constants.FieldRiderLatitude, constants.FieldRiderLongitude, constants.FieldRiderTimestamp); ok {
		snapshot.LastRiderLocation = loc
	}
	return snapshot, nil
}

// MarkCompleted implements trip.LedgerRepo
func (r *ledgerRepo) MarkCompleted(ctx context.Context, rideID uuid.UUID, ttl time.Duration) error {
	key := stateKey(rideID)
	_, err := r.redisClient.GetClient().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, constants.FieldCompleted, "1")
		pipe.Expire(ctx, key, ttl)
		pipe.SAdd(ctx, constants.KeyTripActiveRides, rideID.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to mark trip ledger completed: %w", err)
	}
	return nil
}

// ActiveRides implements trip.LedgerRepo
func (r *ledgerRepo) ActiveRides(ctx context.Context) ([]uuid.UUID, error) {
	client := r.redisClient.GetClient()
	members, err := client.SMembers(ctx, constants.KeyTripActiveRides).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list active rides: %w", err)
	}

	rides := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		rideID, err := uuid.Parse(member)
		if err != nil {
			logger.WarnCtx(ctx, "Dropping malformed active ride id", logger.String("member", member))
			client.SRem(ctx, constants.KeyTripActiveRides, member)
			continue
		}
		rides = append(rides, rideID)
	}
	return rides, nil
}

// PeekEvents implements trip.LedgerRepo
func (r *ledgerRepo) PeekEvents(ctx context.Context, rideID uuid.UUID, limit int) ([]models.TripLocationEvent, error) {
	raw, err := r.redisClient.GetClient().LRange(ctx, eventsKey(rideID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read trip events: %w", err)
	}

	events := make([]models.TripLocationEvent, 0, len(raw))
	for _, item := range raw {
		var event models.TripLocationEvent
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			return nil, fmt.Errorf("failed to decode trip event: %w", err)
		}
		events = append(events, event)
	}
	return events, nil
}

// TrimEvents implements trip.LedgerRepo
func (r *ledgerRepo) TrimEvents(ctx context.Context, rideID uuid.UUID, count int) error {
	if count <= 0 {
		return nil
	}
	if err := r.redisClient.GetClient().LTrim(ctx, eventsKey(rideID), int64(count), -1).Err(); err != nil {
		return fmt.Errorf("failed to trim trip events: %w", err)
	}
	return nil
}

// PurgeIfDrained implements trip.LedgerRepo. A ride whose state already expired is
// dropped from the active set as well.
func (r *ledgerRepo) PurgeIfDrained(ctx context.Context, rideID uuid.UUID) (bool, error) {
	sKey, eKey := stateKey(rideID), eventsKey(rideID)
	purged := false

	txf := func(tx *redis.Tx) error {
		purged = false

		pending, err := tx.LLen(ctx, eKey).Result()
		if err != nil {
			return err
		}
		if pending > 0 {
			return nil
		}

		state, err := tx.HGetAll(ctx, sKey).Result()
		if err != nil {
			return err
		}
		if len(state) > 0 && state[constants.FieldCompleted] != "1" {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, sKey, eKey)
			pipe.SRem(ctx, constants.KeyTripActiveRides, rideID.String())
			return nil
		})
		if err == nil {
			purged = true
		}
		return err
	}

	if err := r.watch(ctx, txf, sKey, eKey); err != nil {
		return false, fmt.Errorf("failed to purge trip ledger: %w", err)
	}
	return purged, nil
}

func (r *ledgerRepo) watch(ctx context.Context, txf func(tx *redis.Tx) error, keys ...string) error {
	client := r.redisClient.GetClient()
	for attempt := 0; attempt < maxWatchAttempts; attempt++ {
		err := client.Watch(ctx, txf, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return errLedgerContention
}

func parseLocation(state map[string]string, latField, lngField, tsField string) (*models.Location, bool) {
	rawLat, okLat := state[latField]
	rawLng, okLng := state[lngField]
	if !okLat || !okLng {
		return nil, false
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, false
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, false
	}

	loc := &models.Location{Latitude: lat, Longitude: lng}
	if ms, err := strconv.ParseInt(state[tsField], 10, 64); err == nil {
		loc.Timestamp = time.UnixMilli(ms).UTC()
	}
	return loc, true
}

func parseFloat(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
