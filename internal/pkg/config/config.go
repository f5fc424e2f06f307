package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and must never fall back silently (session secret)
// - default: Values common across all environments (timeouts, cookie names, etc.), standard settings
// -----------------------------------------------------------------------------

const DefaultBookingAPIURL = "http://localhost:8000/api"

type Config struct {
	Server     ServerConfig
	BookingAPI BookingAPIConfig
	Session    SessionConfig
	CORS       CORSConfig
	Log        LogConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
}

// BookingAPIConfig points at the external booking backend. BaseURL has no trailing slash.
type BookingAPIConfig struct {
	BaseURL string        `envconfig:"BOOKING_API_URL" default:"http://localhost:8000/api"`
	Timeout time.Duration `envconfig:"BOOKING_API_TIMEOUT" default:"10s"`
}

type SessionConfig struct {
	Secret       string        `envconfig:"SESSION_SECRET" required:"true"`
	TTL          time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	JanitorEvery time.Duration `envconfig:"SESSION_JANITOR_INTERVAL" default:"5m"`
	CookieName   string        `envconfig:"SESSION_COOKIE_NAME" default:"miccheck_session"`
	Domain       string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	Secure       bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite     string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"lax"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type RateLimitConfig struct {
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func (c BookingAPIConfig) URL(path string) string {
	return c.BaseURL + path
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
		BookingAPI: BookingAPIConfig{
			BaseURL: DefaultBookingAPIURL,
			Timeout: 2 * time.Second,
		},
		Session: SessionConfig{
			Secret:       "test-session-secret",
			TTL:          time.Hour,
			JanitorEvery: time.Minute,
			CookieName:   "miccheck_session",
			SameSite:     "lax",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
	}
}
