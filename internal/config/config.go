package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Upstream    UpstreamConfig
	Shutdown    ShutdownConfig
	Logger      LoggerConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertPath  string
	TLSKeyPath   string
}

// UpstreamConfig points at the task API that owns all persistent state.
type UpstreamConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// ShutdownConfig controls the graceful shutdown sequence: readiness goes
// DOWN immediately on signal, DrainDelay elapses, then components stop.
type ShutdownConfig struct {
	DrainDelay time.Duration
	Timeout    time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "task-frontend"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("PORT", "3100"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertPath:  getString("TLS_CERT_PATH", "resources/localhost-ssl/localhost.crt"),
			TLSKeyPath:   getString("TLS_KEY_PATH", "resources/localhost-ssl/localhost.key"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getString("API_BASE_URL", "http://localhost:4000"),
			RequestTimeout: getDuration("API_REQUEST_TIMEOUT", 10*time.Second),
		},
		Shutdown: ShutdownConfig{
			DrainDelay: getDuration("SHUTDOWN_DRAIN_DELAY", 4*time.Second),
			Timeout:    getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}

// TLSEnabled reports whether the server should terminate TLS itself. The
// certificate files only ship with local development setups, so production
// traffic is expected to arrive via a TLS-terminating ingress.
func (c *Config) TLSEnabled() bool {
	if c.Environment != "development" {
		return false
	}
	if _, err := os.Stat(c.HTTP.TLSCertPath); err != nil {
		return false
	}
	if _, err := os.Stat(c.HTTP.TLSKeyPath); err != nil {
		return false
	}
	return true
}
