package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	// Directory (Neynar)
	DirectoryAPIKey  string
	DirectoryBaseURL string

	// Events
	RedisURL      string // empty disables publishing
	EventsChannel string

	// Server
	APIPort          string
	AppEnv           string
	CORSAllowOrigins string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DirectoryAPIKey:  getEnv("NEYNAR_API_KEY", ""),
		DirectoryBaseURL: getEnv("NEYNAR_BASE_URL", "https://api.neynar.com"),

		RedisURL:      getEnv("REDIS_URL", ""),
		EventsChannel: getEnv("PROFILE_EVENTS_CHANNEL", "events:profile"),

		APIPort:          getEnv("API_PORT", "3000"),
		AppEnv:           getEnv("APP_ENV", EnvProduction),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}
}

// NewLogger builds the process logger for the configured environment.
func (c *Config) NewLogger() (*zap.Logger, error) {
	if c.AppEnv == EnvDevelopment {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (c *Config) HasDirectoryCredential() bool {
	return c.DirectoryAPIKey != ""
}

// DirectoryKeyPreview masks the credential for diagnostics output.
func (c *Config) DirectoryKeyPreview() string {
	key := c.DirectoryAPIKey
	switch {
	case key == "":
		return "Not set"
	case len(key) < 8:
		return "****"
	default:
		return key[:4] + "..." + key[len(key)-4:]
	}
}

func (c *Config) Validate(log *zap.Logger) {
	if !c.HasDirectoryCredential() {
		log.Warn("NEYNAR_API_KEY is not set, directory lookups will fail")
	}
	if c.RedisURL == "" {
		log.Info("REDIS_URL is not set, profile events are disabled")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
