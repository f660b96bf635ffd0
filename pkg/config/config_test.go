package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, SourceFixture, cfg.Schedules.Source)
	assert.Equal(t, 10, cfg.Schedules.DefaultPageSize)
	assert.Equal(t, 100, cfg.Schedules.MaxPageSize)
	assert.Equal(t, 30*time.Minute, cfg.Views.IdleTTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, float64(10), cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.IdleTTL)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("SCHEDULE_SOURCE", "Postgres")
	v.Set("SCHEDULE_DEFAULT_PAGE_SIZE", 500)
	v.Set("SCHEDULE_MAX_PAGE_SIZE", 50)
	v.Set("CACHE_TTL", "not-a-duration")
	v.Set("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := fromViper(v)

	assert.Equal(t, SourcePostgres, cfg.Schedules.Source)
	assert.Equal(t, 50, cfg.Schedules.DefaultPageSize)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}
