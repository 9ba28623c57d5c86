package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds process configuration read from the environment
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string
	JWTSecret string

	// SessionTTL bounds how long an unfinished check-in stays resumable
	SessionTTL time.Duration
	// TokenTTL is the lifetime of a check-in token
	TokenTTL time.Duration

	// QuestionBankFile optionally overrides the question bank with a YAML file
	QuestionBankFile string
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "mindpulse"),
		RedisAddr:        strings.TrimPrefix(getEnv("REDIS_URI", "localhost:6379"), "redis://"),
		HTTPPort:         getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		QuestionBankFile: os.Getenv("QUESTION_BANK_FILE"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 2*time.Hour); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsingDefaultSecret reports whether JWT_SECRET was left unset
func (c *Config) UsingDefaultSecret() bool {
	return os.Getenv("JWT_SECRET") == ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}
