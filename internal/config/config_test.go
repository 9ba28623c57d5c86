package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MONGO_URI", "MONGO_DB", "REDIS_URI", "PORT", "JWT_SECRET", "SESSION_TTL", "TOKEN_TTL", "QUESTION_BANK_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "mindpulse", cfg.MongoDB)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.QuestionBankFile)
	assert.True(t, cfg.UsingDefaultSecret())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("REDIS_URI", "redis://cache:6380")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("QUESTION_BANK_FILE", "/etc/mindpulse/bank.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "/etc/mindpulse/bank.yaml", cfg.QuestionBankFile)
	assert.False(t, cfg.UsingDefaultSecret())
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL")

	t.Setenv("SESSION_TTL", "-5m")
	_, err = Load()
	require.Error(t, err)
}
