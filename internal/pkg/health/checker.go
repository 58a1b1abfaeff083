package health

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/piresc/rideorchestrator/internal/pkg/database"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/nats"
)

// Checker reports whether one dependency is usable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// NewPostgresChecker pings the ride store
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	})
}

// NewRedisChecker pings the location index, ledger and queue backend
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(client.Ping)
}

// ErrNATSDisconnected is reported while the event bus connection is down
var ErrNATSDisconnected = errors.New("nats not connected")

// NewNATSChecker reports the event bus connection state
func NewNATSChecker(client *nats.Client) Checker {
	return CheckerFunc(func(context.Context) error {
		if !client.IsConnected() {
			return ErrNATSDisconnected
		}
		return nil
	})
}

// Service runs the registered checkers concurrently
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a checker under the dependency name
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Report is the readiness response body
type Report struct {
	Status       string                `json:"status"`
	Service      string                `json:"service"`
	Version      string                `json:"version,omitempty"`
	Timestamp    time.Time             `json:"timestamp"`
	Dependencies map[string]Dependency `json:"dependencies"`
}

// Dependency is the result of one checker
type Dependency struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Healthy reports whether every dependency passed
func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Check runs every checker and aggregates the results
func (s *Service) Check(ctx context.Context) Report {
	s.mu.RLock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	checkers := make(map[string]Checker, len(s.checkers))
	for name, checker := range s.checkers {
		checkers[name] = checker
	}
	s.mu.RUnlock()
	sort.Strings(names)

	results := make([]Dependency, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			if err := checkers[name].CheckHealth(ctx); err != nil {
				logger.WarnCtx(ctx, "Health check failed",
					logger.String("dependency", name),
					logger.Err(err))
				results[i] = Dependency{Status: StatusUnhealthy, Error: err.Error()}
				return
			}
			results[i] = Dependency{Status: StatusHealthy}
		}(i, name)
	}
	wg.Wait()

	report := Report{
		Status:       StatusHealthy,
		Timestamp:    time.Now().UTC(),
		Dependencies: make(map[string]Dependency, len(names)),
	}
	for i, name := range names {
		report.Dependencies[name] = results[i]
		if results[i].Status != StatusHealthy {
			report.Status = StatusUnhealthy
		}
	}
	return report
}
