package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/openmohaa/mixup/internal/models"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Optimizer
	WorkerCount int
	MaxSteps    int
	Tuning      models.Tuning

	// Build cache, disabled when RedisURL is empty
	RedisURL      string
	BuildCacheTTL time.Duration

	// Requests
	MaxBodySize int64
}

// Load loads configuration from environment variables.
// It returns an error if a tuning list is malformed.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		WorkerCount: getEnvInt("WORKER_COUNT", 4),
		MaxSteps:    getEnvInt("MAX_STEPS", 1000),

		RedisURL:      getEnv("REDIS_URL", ""),
		BuildCacheTTL: getEnvDuration("BUILD_CACHE_TTL", 10*time.Minute),

		MaxBodySize: int64(getEnvInt("MAX_BODY_SIZE", 1048576)),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	tuning, err := loadTuning()
	if err != nil {
		return nil, err
	}
	cfg.Tuning = tuning

	return cfg, nil
}

// IsProduction reports whether ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func loadTuning() (models.Tuning, error) {
	tuning := models.DefaultTuning()

	weights, err := getEnvFloats("SKILL_WEIGHTS", tuning.SkillWeights[:])
	if err != nil {
		return tuning, err
	}
	copy(tuning.SkillWeights[:], weights)

	coeffs, err := getEnvFloats("TYPE_COEFFICIENTS", tuning.TypeCoefficients[:])
	if err != nil {
		return tuning, err
	}
	copy(tuning.TypeCoefficients[:], coeffs)

	defaultLimits := make([]float64, len(tuning.ClassLimits))
	for i, l := range tuning.ClassLimits {
		defaultLimits[i] = float64(l)
	}
	limits, err := getEnvFloats("CLASS_LIMITS", defaultLimits)
	if err != nil {
		return tuning, err
	}
	for i, l := range limits {
		if l != float64(int(l)) {
			return tuning, fmt.Errorf("CLASS_LIMITS: %v is not a whole number", l)
		}
		tuning.ClassLimits[i] = int(l)
	}

	if err := tuning.Validate(); err != nil {
		return tuning, fmt.Errorf("invalid tuning: %w", err)
	}
	return tuning, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvFloats parses a comma-separated list that must have exactly as many
// items as fallback.
func getEnvFloats(key string, fallback []float64) ([]float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) != len(fallback) {
		return nil, fmt.Errorf("%s: want %d comma-separated values, got %d", key, len(fallback), len(parts))
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[i] = f
	}
	return out, nil
}
