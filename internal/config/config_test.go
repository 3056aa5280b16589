package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.Server.CORSOrigins)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 12*time.Hour, cfg.Admin.TokenTTL)
	assert.Equal(t, "https://warehouse414.com", cfg.Site.BaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_MAX_CONNS", "25")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("CORS_ORIGINS", "https://warehouse414.com, https://www.warehouse414.com")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SITE_URL", "https://staging.warehouse414.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://warehouse414.com", "https://www.warehouse414.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "https://staging.warehouse414.com", cfg.Site.BaseURL)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_MAX_CONNS", "plenty")
	t.Setenv("SERVER_WRITE_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
}
