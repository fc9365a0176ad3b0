package config

import (
	"os"
	"strconv"
)

// AppConfig is the centralized configuration struct for the service.
// It is populated from environment variables; none of the values are sensitive,
// so all of them carry working defaults.
type AppConfig struct {
	// ServiceName is reported to the tracer and in readiness responses.
	ServiceName string
	// Port is the single listen port. The container image and the deployment
	// manifests declare the same value.
	Port string
	// MetricsEnabled controls whether /metrics is registered.
	MetricsEnabled bool
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		ServiceName:    getEnv("SERVICE_NAME", "greetsvc"),
		Port:           getEnv("PORT", "3000"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
