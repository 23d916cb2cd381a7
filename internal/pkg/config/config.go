package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, signing secret)
// - default: Values common across all environments (delays, TTLs, timezone)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Handoff HandoffConfig
	Session SessionConfig
	Delays  DelaysConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
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

// HandoffConfig signs the reservation draft carried from the booking screen
// to the checkout screen.
type HandoffConfig struct {
	Secret string        `envconfig:"HANDOFF_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"HANDOFF_TTL" default:"30m"`
}

type SessionConfig struct {
	TTL      time.Duration `envconfig:"SESSION_TTL" default:"1h"`
	MaxItems int64         `envconfig:"SESSION_MAX_ITEMS" default:"10000"`
}

// DelaysConfig drives the simulated transitions. None of these call out
// anywhere; they exist to pace the client's loading states.
type DelaysConfig struct {
	Search   time.Duration `envconfig:"DELAY_SEARCH" default:"1s"`
	Booking  time.Duration `envconfig:"DELAY_BOOKING" default:"1s"`
	Payment  time.Duration `envconfig:"DELAY_PAYMENT" default:"2s"`
	Success  time.Duration `envconfig:"DELAY_SUCCESS" default:"2s"`
	Redirect time.Duration `envconfig:"DELAY_REDIRECT" default:"3s"`
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
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Handoff: HandoffConfig{
			Secret: "test-handoff-secret",
			TTL:    30 * time.Minute,
		},
		Session: SessionConfig{
			TTL:      time.Hour,
			MaxItems: 1000,
		},
		Delays: DelaysConfig{
			Search:   time.Second,
			Booking:  time.Second,
			Payment:  2 * time.Second,
			Success:  2 * time.Second,
			Redirect: 3 * time.Second,
		},
	}
}
