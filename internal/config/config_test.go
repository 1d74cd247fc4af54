package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredDBEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "assetmagnets")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "assetmagnets")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredDBEnv(t)
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "default-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	for _, key := range []string{"SERVER_PORT", "LOG_LEVEL", "JWT_TOKEN_EXPIRY", "SEED_DEMO_DATA", "REDIS_HOST", "REDIS_PORT", "DIGEST_SCHEDULE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "default-secret", cfg.JWT.Secret)
	assert.False(t, cfg.JWT.InsecureDefault)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenExpiry)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, "0 8 * * *", cfg.Notify.DigestSchedule)
}

func TestLoad_DevelopmentSecret(t *testing.T) {
	setRequiredDBEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, DevelopmentJWTSecret, cfg.JWT.Secret)
	assert.True(t, cfg.JWT.InsecureDefault)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredDBEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_TOKEN_EXPIRY", "2h")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://assetmagnets.com, https://admin.assetmagnets.com,")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "prod-secret", cfg.JWT.Secret)
	assert.False(t, cfg.JWT.InsecureDefault)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TokenExpiry)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, []string{"https://assetmagnets.com", "https://admin.assetmagnets.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "redis:6380", cfg.RedisAddr())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{
			name:     "missing db host",
			env:      map[string]string{"DB_HOST": ""},
			contains: "DB_HOST",
		},
		{
			name:     "invalid db port",
			env:      map[string]string{"DB_PORT": "abc"},
			contains: "DB_PORT",
		},
		{
			name:     "unset environment without jwt secret",
			env:      map[string]string{"APP_ENV": "", "JWT_SECRET": ""},
			contains: "JWT_SECRET",
		},
		{
			name:     "production without jwt secret",
			env:      map[string]string{"APP_ENV": "production", "JWT_SECRET": ""},
			contains: "JWT_SECRET",
		},
		{
			name:     "invalid token expiry",
			env:      map[string]string{"JWT_TOKEN_EXPIRY": "soon"},
			contains: "JWT_TOKEN_EXPIRY",
		},
		{
			name:     "negative token expiry",
			env:      map[string]string{"JWT_TOKEN_EXPIRY": "-1h"},
			contains: "JWT_TOKEN_EXPIRY",
		},
		{
			name:     "invalid seed flag",
			env:      map[string]string{"SEED_DEMO_DATA": "maybe"},
			contains: "SEED_DEMO_DATA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredDBEnv(t)
			t.Setenv("APP_ENV", "development")
			t.Setenv("JWT_SECRET", "")
			t.Setenv("JWT_TOKEN_EXPIRY", "")
			t.Setenv("SEED_DEMO_DATA", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db",
		Port:     3306,
		User:     "user",
		Password: "pass",
		DBName:   "assetmagnets",
	}}

	dsn := cfg.DSN()
	assert.Equal(t, "user:pass@tcp(db:3306)/assetmagnets?parseTime=true&charset=utf8mb4&clientFoundRows=true", dsn)
}

func TestLoadClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("API_TIMEOUT", "")
		t.Setenv("ASSETCTL_STATE_PATH", "/tmp/state.db")
		t.Setenv("ASSETCTL_REDIS_URL", "")
		t.Setenv("ASSETCTL_DEMO_FALLBACK", "")

		cfg, err := LoadClient()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, "/tmp/state.db", cfg.StatePath)
		assert.True(t, cfg.DemoFallback)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.assetmagnets.com/api")
		t.Setenv("API_TIMEOUT", "3s")
		t.Setenv("ASSETCTL_REDIS_URL", "redis://localhost:6379/1")
		t.Setenv("ASSETCTL_DEMO_FALLBACK", "false")

		cfg, err := LoadClient()
		require.NoError(t, err)
		assert.Equal(t, "https://api.assetmagnets.com/api", cfg.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, "redis://localhost:6379/1", cfg.StateRedisURL)
		assert.False(t, cfg.DemoFallback)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("API_TIMEOUT", "fast")

		_, err := LoadClient()
		assert.Error(t, err)
	})
}
