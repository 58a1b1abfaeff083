package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ride-orchestrator")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9992)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 10)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 45)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.InternalAPIKey = GetEnv("INTERNAL_API_KEY", "")

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 20)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Pricing config
	configs.Pricing.RatePerKm = GetEnvAsFloat("PRICING_RATE_PER_KM", 3000)
	configs.Pricing.AppFeePercent = GetEnvAsFloat("PRICING_APP_FEE_PERCENT", 5)
	configs.Pricing.MinimumAppFee = GetEnvAsFloat("PRICING_MINIMUM_APP_FEE", 3000)
	configs.Pricing.MinimumFareThreshold = GetEnvAsFloat("PRICING_MINIMUM_FARE_THRESHOLD", 10000)
	configs.Pricing.Currency = GetEnv("PRICING_CURRENCY", "IDR")

	// Rides config
	configs.Rides.DefaultCandidateLimit = GetEnvAsInt("RIDES_DEFAULT_CANDIDATE_LIMIT", 10)
	configs.Rides.MaxCandidateLimit = GetEnvAsInt("RIDES_MAX_CANDIDATE_LIMIT", 20)
	configs.Rides.SearchRadiusMeters = GetEnvAsFloat("RIDES_SEARCH_RADIUS_METERS", 3000)
	configs.Rides.RouteEstimationTimeout = GetEnvAsDuration("RIDES_ROUTE_ESTIMATION_TIMEOUT", 30*time.Second)
	configs.Rides.ProximityRadiusMeters = GetEnvAsFloat("RIDES_PROXIMITY_RADIUS_METERS", 20)
	configs.Rides.AvailabilityTTL = GetEnvAsDuration("RIDES_DRIVER_AVAILABILITY_TTL", 5*time.Minute)

	// Tracking config
	configs.Tracking.FlushInterval = GetEnvAsDuration("TRACKING_FLUSH_INTERVAL", 30*time.Second)
	configs.Tracking.MinFlushInterval = GetEnvAsDuration("TRACKING_MIN_FLUSH_INTERVAL", 5*time.Second)
	configs.Tracking.FlushBatchSize = GetEnvAsInt("TRACKING_FLUSH_BATCH_SIZE", 500)
	configs.Tracking.StateTTL = GetEnvAsDuration("TRACKING_STATE_TTL", 24*time.Hour)

	// Routing config
	configs.Routing.GoogleMapsAPIKey = GetEnv("GOOGLE_MAPS_API_KEY", "")
	configs.Routing.Workers = GetEnvAsInt("ROUTING_WORKERS", 4)
	configs.Routing.AverageSpeedKmh = GetEnvAsFloat("ROUTING_AVERAGE_SPEED_KMH", 30)
	configs.Routing.MaxRetries = GetEnvAsInt("ROUTING_MAX_RETRIES", 2)
	configs.Routing.RetryBaseDelay = GetEnvAsDuration("ROUTING_RETRY_BASE_DELAY", 200*time.Millisecond)
	configs.Routing.BreakerFailures = uint32(GetEnvAsInt("ROUTING_BREAKER_FAILURES", 5))
	configs.Routing.BreakerOpenDuration = GetEnvAsDuration("ROUTING_BREAKER_OPEN_DURATION", 30*time.Second)

	// Queue config
	configs.Queue.Prefix = GetEnv("QUEUE_PREFIX", "rides")
	configs.Queue.JobTTL = GetEnvAsDuration("QUEUE_JOB_TTL", 2*time.Minute)
	configs.Queue.ResultTTL = GetEnvAsDuration("QUEUE_RESULT_TTL", time.Minute)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.MaxSize = GetEnvAsInt64("LOG_MAX_SIZE", 100)
	configs.Logger.MaxAge = GetEnvAsInt("LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = GetEnvAsInt("LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = GetEnvAsBool("LOG_COMPRESS", true)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("30s") or a plain number of seconds
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}

	log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
	return defaultValue
}
