package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, 3000.0, cfg.Pricing.RatePerKm)
	assert.Equal(t, 5.0, cfg.Pricing.AppFeePercent)
	assert.Equal(t, 3000.0, cfg.Pricing.MinimumAppFee)
	assert.Equal(t, 10000.0, cfg.Pricing.MinimumFareThreshold)
	assert.Equal(t, 10, cfg.Rides.DefaultCandidateLimit)
	assert.Equal(t, 20, cfg.Rides.MaxCandidateLimit)
	assert.Equal(t, 30*time.Second, cfg.Rides.RouteEstimationTimeout)
	assert.Equal(t, 20.0, cfg.Rides.ProximityRadiusMeters)
	assert.Equal(t, 5*time.Minute, cfg.Rides.AvailabilityTTL)
}

func TestInitConfig_LoadsDotenvInLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rides.env")
	require.NoError(t, os.WriteFile(path, []byte("RIDES_PROXIMITY_RADIUS_METERS=35\nTRACKING_FLUSH_INTERVAL=12s\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that are already set, so clear them for the duration of the test
	t.Setenv("RIDES_PROXIMITY_RADIUS_METERS", "")
	t.Setenv("TRACKING_FLUSH_INTERVAL", "")
	os.Unsetenv("RIDES_PROXIMITY_RADIUS_METERS")
	os.Unsetenv("TRACKING_FLUSH_INTERVAL")

	cfg := InitConfig(path)

	assert.Equal(t, 35.0, cfg.Rides.ProximityRadiusMeters)
	assert.Equal(t, 12*time.Second, cfg.Tracking.FlushInterval)
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("DURATION_STRING", "1500ms")
	t.Setenv("DURATION_SECONDS", "7")
	t.Setenv("DURATION_INVALID", "soon")

	assert.Equal(t, 1500*time.Millisecond, GetEnvAsDuration("DURATION_STRING", time.Second))
	assert.Equal(t, 7*time.Second, GetEnvAsDuration("DURATION_SECONDS", time.Second))
	assert.Equal(t, time.Second, GetEnvAsDuration("DURATION_INVALID", time.Second))
	assert.Equal(t, time.Minute, GetEnvAsDuration("DURATION_MISSING", time.Minute))
}

func TestGetEnvAsInt_Invalid(t *testing.T) {
	t.Setenv("INT_INVALID", "twelve")
	assert.Equal(t, 4, GetEnvAsInt("INT_INVALID", 4))
}
