package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, env map[string]string) *viper.Viper {
	t.Helper()
	for k, val := range env {
		t.Setenv(k, val)
	}
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(newViper(t, map[string]string{"TOKEN_SECRET": "secret"}))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5.0, cfg.Search.RateRPS)
	assert.Equal(t, 20, cfg.Search.RateBurst)
	assert.Equal(t, 15*time.Minute, cfg.Cache.BikeTTL)
	assert.Equal(t, time.Hour, cfg.Cache.BadgeTTL)
	assert.Equal(t, time.Hour, cfg.Cache.UserTTL)
	assert.Equal(t, "./internal/adapter/postgres/migrations", cfg.DB.MigrationsDir)
	assert.False(t, cfg.Cloudinary.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(newViper(t, map[string]string{
		"TOKEN_SECRET":          "secret",
		"APP_ENV":               "production",
		"HTTP_PORT":             "9000",
		"ALLOWED_ORIGINS":       "https://a.example, https://b.example",
		"CACHE_TTL_BIKE":        "5m",
		"SEARCH_RATE_BURST":     "3",
		"CLOUDINARY_CLOUD_NAME": "demo",
		"CLOUDINARY_API_KEY":    "key",
		"CLOUDINARY_API_SECRET": "shh",
		"DB_HOST":               "db",
		"DB_USER":               "app",
		"DB_PASSWORD":           "pw",
		"DB_NAME":               "registry",
	}))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.HTTP.Env)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.Cache.BikeTTL)
	assert.Equal(t, 3, cfg.Search.RateBurst)
	assert.True(t, cfg.Cloudinary.Enabled())
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=registry sslmode=disable", cfg.DB.DSN())
}

func TestLoad_RequiresTokenSecret(t *testing.T) {
	_, err := load(newViper(t, map[string]string{"TOKEN_SECRET": ""}))
	assert.Error(t, err)
}
