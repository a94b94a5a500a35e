package config

import (
	"os"
	"time"
)

// Config holds the runtime settings, all sourced from environment
// variables with sensible local-development defaults.
type Config struct {
	// APIBaseURL is the MGNREGA backend base path.
	APIBaseURL string
	// ListenAddr is the address this dashboard server binds to.
	ListenAddr string
	// StateFile is where the persisted selection subset lives.
	StateFile string
	// SupportedState is the single allowlisted region for auto-detection.
	SupportedState string
	// HealthInterval is the liveness poll period.
	HealthInterval time.Duration
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		APIBaseURL:     getEnv("MGNREGA_API_URL", "http://localhost:8080/api"),
		ListenAddr:     getEnv("LISTEN_ADDR", ":3000"),
		StateFile:      getEnv("STATE_FILE", "data/selection.json"),
		SupportedState: getEnv("SUPPORTED_STATE", "Karnataka"),
		HealthInterval: getDuration("HEALTH_INTERVAL", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
