package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments, security settings
// - default: Values common across all environments (timezone, limits, policies)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
	Seed    SeedConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type BookingConfig struct {
	// Rejects a booking whose (date, time) is already held by a non-rejected booking.
	EnforceSlotConflicts bool `envconfig:"BOOKING_ENFORCE_SLOT_CONFLICTS" default:"true"`
	// Only ranges covering the requested date offer slots.
	RequireRangeMembership bool `envconfig:"BOOKING_REQUIRE_RANGE_MEMBERSHIP" default:"false"`
	// Only pending bookings may change status.
	StrictStatusTransitions bool `envconfig:"BOOKING_STRICT_STATUS_TRANSITIONS" default:"false"`
	// Uploads above this size are accepted but logged.
	PaymentSlipRecommendedBytes int64 `envconfig:"BOOKING_PAYMENT_SLIP_RECOMMENDED_BYTES" default:"5242880"`
	// Hard cap on the multipart body read into memory.
	PaymentSlipMaxBytes int64 `envconfig:"BOOKING_PAYMENT_SLIP_MAX_BYTES" default:"20971520"`
}

type SeedConfig struct {
	Enabled bool `envconfig:"SEED_ENABLED" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			EnforceSlotConflicts:        true,
			RequireRangeMembership:      false,
			StrictStatusTransitions:     false,
			PaymentSlipRecommendedBytes: 5 << 20,
			PaymentSlipMaxBytes:         20 << 20,
		},
		Seed: SeedConfig{
			Enabled: true,
		},
	}
}
