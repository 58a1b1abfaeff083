package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	billinguc "github.com/piresc/rideorchestrator/services/billing/usecase"
	"github.com/piresc/rideorchestrator/services/rides"
	"github.com/stretchr/testify/require"
)

var (
	_ rides.RideRepo      = (*memStore)(nil)
	_ rides.CandidateRepo = (*memStore)(nil)
)

// memStore keeps rides and invitations in memory behind one lock. A transition is applied
// to copies and swapped in whole, so a failed write leaves nothing behind.
type memStore struct {
	mu         sync.Mutex
	rides      map[uuid.UUID]models.Ride
	candidates map[uuid.UUID]map[uuid.UUID]models.RideDriverCandidate
	history    map[uuid.UUID][]models.RideStatusHistory

	// candidateWriteErr fails the candidate write of every transition that carries one
	candidateWriteErr error
}

// newStoreFixture wires the usecase to a memStore instead of repository mocks
func newStoreFixture(t *testing.T) (*fixture, *memStore) {
	f := newFixture(t)
	store := newMemStore()
	cfg := testConfig()
	f.uc = NewRideUC(cfg, store, store, f.locationUC, f.routeClient,
		billinguc.NewFareUC(cfg.Pricing), f.ledgerUC, f.notifier, f.events)
	f.uc.now = func() time.Time { return fixedNow }
	return f, store
}

func newMemStore() *memStore {
	return &memStore{
		rides:      map[uuid.UUID]models.Ride{},
		candidates: map[uuid.UUID]map[uuid.UUID]models.RideDriverCandidate{},
		history:    map[uuid.UUID][]models.RideStatusHistory{},
	}
}

// seed stores ride with one invitation per driver
func (s *memStore) seed(t *testing.T, ride *models.Ride, drivers ...uuid.UUID) {
	t.Helper()
	s.mu.Lock()
	s.rides[ride.ID] = cloneRide(*ride)
	s.mu.Unlock()

	candidates := make([]models.RideDriverCandidate, 0, len(drivers))
	for i, driverID := range drivers {
		candidates = append(candidates, models.RideDriverCandidate{
			ID:             uuid.New(),
			RideID:         ride.ID,
			DriverID:       driverID,
			Status:         models.CandidateStatusInvited,
			DistanceMeters: float64(100 * (i + 1)),
		})
	}
	require.NoError(t, s.CreateCandidates(context.Background(), candidates))
}

func (s *memStore) setCandidate(rideID, driverID uuid.UUID, status models.CandidateStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.candidates[rideID][driverID]
	c.Status = status
	s.candidates[rideID][driverID] = c
}

func (s *memStore) ride(id uuid.UUID) models.Ride {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRide(s.rides[id])
}

func (s *memStore) candidateStatus(rideID, driverID uuid.UUID) models.CandidateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.candidates[rideID][driverID].Status
}

func (s *memStore) historyOf(rideID uuid.UUID) []models.RideStatusHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RideStatusHistory(nil), s.history[rideID]...)
}

func (s *memStore) CreateRide(_ context.Context, ride *models.Ride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rides[ride.ID] = cloneRide(*ride)
	s.history[ride.ID] = append(s.history[ride.ID], historyRow(ride.ID, nil, ride.Status, ""))
	return nil
}

func (s *memStore) GetRide(_ context.Context, rideID uuid.UUID) (*models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ride, ok := s.rides[rideID]
	if !ok || ride.DeletedAt != nil {
		return nil, nil
	}
	found := cloneRide(ride)
	return &found, nil
}

func (s *memStore) DeleteRide(_ context.Context, rideID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rides, rideID)
	delete(s.candidates, rideID)
	delete(s.history, rideID)
	return nil
}

func (s *memStore) SoftDeleteRide(_ context.Context, rideID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ride, ok := s.rides[rideID]
	if !ok || ride.DeletedAt != nil {
		return apperrors.NotFound("ride not found")
	}
	now := fixedNow
	ride.DeletedAt = &now
	s.rides[rideID] = ride
	return nil
}

func (s *memStore) TransitionStatus(_ context.Context, t models.StatusTransition) (*models.TransitionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.rides[t.RideID]
	if !ok || stored.DeletedAt != nil {
		return nil, apperrors.NotFound("ride not found")
	}
	previous := cloneRide(stored)
	if !t.Applies(&previous) {
		return &models.TransitionResult{Ride: &previous}, nil
	}

	next := cloneRide(stored)
	next.Status = t.To
	switch {
	case t.ClaimDriverID != nil:
		driverID := *t.ClaimDriverID
		next.DriverID = &driverID
	case t.ClearsDriver():
		next.DriverID = nil
	}
	if t.To == models.RideStatusCanceled {
		zero := 0.0
		next.FareFinal = &zero
		next.CancelReason = t.CancelReason
	}
	if c := t.Completion; c != nil {
		next.DistanceActualKm = &c.DistanceActualKm
		next.FareFinal = &c.FareFinal
	}

	invitations := make(map[uuid.UUID]models.RideDriverCandidate, len(s.candidates[t.RideID]))
	for id, c := range s.candidates[t.RideID] {
		invitations[id] = c
	}
	if change := t.Candidate; change != nil {
		if s.candidateWriteErr != nil {
			return nil, s.candidateWriteErr
		}
		if err := applyChange(invitations, *change); err != nil {
			return nil, err
		}
	}
	var canceled []uuid.UUID
	if sweep := t.Sweep; sweep != nil {
		for id, c := range invitations {
			if !c.Status.IsActive() || (sweep.KeepDriverID != nil && *sweep.KeepDriverID == id) {
				continue
			}
			reason := sweep.Reason
			c.Status = models.CandidateStatusCanceled
			c.Reason = &reason
			invitations[id] = c
			canceled = append(canceled, id)
		}
	}

	history := append([]models.RideStatusHistory(nil), s.history[t.RideID]...)
	from := previous.Status
	for _, step := range t.Via {
		history = append(history, historyRow(t.RideID, &from, step.Status, step.Context))
		from = step.Status
	}
	history = append(history, historyRow(t.RideID, &from, t.To, t.Context))

	s.rides[t.RideID] = next
	s.candidates[t.RideID] = invitations
	s.history[t.RideID] = history

	updated := cloneRide(next)
	return &models.TransitionResult{Ride: &updated, Changed: true, Previous: &previous, CanceledDrivers: canceled}, nil
}

func (s *memStore) UpdateRouteEstimate(_ context.Context, rideID uuid.UUID, update models.RouteEstimateUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ride, ok := s.rides[rideID]
	if !ok {
		return apperrors.NotFound("ride not found")
	}
	ride.DistanceEstimatedKm = &update.DistanceEstimatedKm
	ride.DurationEstimatedSeconds = &update.DurationEstimatedSeconds
	ride.FareEstimated = update.FareEstimated
	s.rides[rideID] = ride
	return nil
}

func (s *memStore) ListStatusHistory(_ context.Context, rideID uuid.UUID) ([]models.RideStatusHistory, error) {
	return s.historyOf(rideID), nil
}

func (s *memStore) CreateCandidates(_ context.Context, candidates []models.RideDriverCandidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range candidates {
		if s.candidates[c.RideID] == nil {
			s.candidates[c.RideID] = map[uuid.UUID]models.RideDriverCandidate{}
		}
		if _, exists := s.candidates[c.RideID][c.DriverID]; !exists {
			s.candidates[c.RideID][c.DriverID] = c
		}
	}
	return nil
}

func (s *memStore) GetCandidate(_ context.Context, rideID, driverID uuid.UUID) (*models.RideDriverCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.candidates[rideID][driverID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memStore) UpdateCandidateStatus(_ context.Context, rideID uuid.UUID, change models.CandidateChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return applyChange(s.candidates[rideID], change)
}

func (s *memStore) ListCandidates(_ context.Context, rideID uuid.UUID) ([]models.RideDriverCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]models.RideDriverCandidate, 0, len(s.candidates[rideID]))
	for _, c := range s.candidates[rideID] {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DistanceMeters < list[j].DistanceMeters })
	return list, nil
}

func applyChange(invitations map[uuid.UUID]models.RideDriverCandidate, change models.CandidateChange) error {
	c, ok := invitations[change.DriverID]
	if !ok || !change.Allows(c.Status) {
		return apperrors.Conflict("ride invitation is no longer active")
	}
	c.Status = change.To
	c.Reason = change.Reason
	invitations[change.DriverID] = c
	return nil
}

func historyRow(rideID uuid.UUID, from *models.RideStatus, to models.RideStatus, note string) models.RideStatusHistory {
	row := models.RideStatusHistory{ID: uuid.New(), RideID: rideID, ToStatus: to, CreatedAt: fixedNow}
	if from != nil {
		status := *from
		row.FromStatus = &status
	}
	if note != "" {
		row.Context = &note
	}
	return row
}

func cloneRide(ride models.Ride) models.Ride {
	if ride.DriverID != nil {
		driverID := *ride.DriverID
		ride.DriverID = &driverID
	}
	return ride
}
