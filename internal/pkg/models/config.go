package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Pricing  PricingConfig
	Rides    RidesConfig
	Tracking TrackingConfig
	Routing  RoutingConfig
	Queue    QueueConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	InternalAPIKey  string // guards the /internal routes
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// PricingConfig holds the fare rules
type PricingConfig struct {
	RatePerKm            float64 `json:"rate_per_km"`
	AppFeePercent        float64 `json:"app_fee_percent"`
	MinimumAppFee        float64 `json:"minimum_app_fee"`
	MinimumFareThreshold float64 `json:"minimum_fare_threshold"` // fares below this pay the minimum app fee
	Currency             string  `json:"currency"`
}

// RidesConfig contains ride orchestration settings
type RidesConfig struct {
	DefaultCandidateLimit  int
	MaxCandidateLimit      int
	SearchRadiusMeters     float64
	RouteEstimationTimeout time.Duration
	ProximityRadiusMeters  float64
	AvailabilityTTL        time.Duration // how long a driver stays available without a location ping
}

// TrackingConfig contains distance ledger settings
type TrackingConfig struct {
	FlushInterval    time.Duration
	MinFlushInterval time.Duration
	FlushBatchSize   int
	StateTTL         time.Duration
}

// RoutingConfig contains route estimation provider settings
type RoutingConfig struct {
	GoogleMapsAPIKey    string
	Workers             int
	AverageSpeedKmh     float64
	MaxRetries          int
	RetryBaseDelay      time.Duration
	BreakerFailures     uint32
	BreakerOpenDuration time.Duration
}

// QueueConfig contains job queue settings
type QueueConfig struct {
	Prefix    string
	JobTTL    time.Duration
	ResultTTL time.Duration
}
