package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr       = ":8080"
	defaultAPIBaseURL = "http://127.0.0.1:5000"
)

// Provider exposes configuration values to the rest of the application.
// Handlers and tests depend on this interface rather than the concrete struct.
type Provider interface {
	GetAddr() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetSessionSecret() string
	GetStaticDir() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr          string
	APIBaseURL    string
	APITimeout    time.Duration
	SessionSecret string
	StaticDir     string
}

// New loads configuration from a .env file (when present) and environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := FromEnv()
	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable SESSION_SECRET is not set.")
	}
	return cfg
}

// FromEnv builds a Config from the current environment without loading .env
// and without enforcing required values.
func FromEnv() *Config {
	cfg := &Config{
		Addr:          getenv("APP_ADDR", defaultAddr),
		APIBaseURL:    getenv("API_BASE_URL", defaultAPIBaseURL),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		StaticDir:     os.Getenv("STATIC_DIR"),
	}

	// No timeout unless asked for: a hung API call leaves the dashboard loading.
	if raw := os.Getenv("API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Ignoring invalid API_TIMEOUT %q: %v", raw, err)
		} else {
			cfg.APITimeout = d
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string              { return c.Addr }
func (c *Config) GetAPIBaseURL() string        { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetStaticDir() string         { return c.StaticDir }
