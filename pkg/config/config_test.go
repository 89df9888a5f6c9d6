package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, CatalogSourceEmbedded, cfg.Catalog.Source)
	assert.False(t, cfg.Catalog.Strict)
	assert.False(t, cfg.PageCache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.PageCache.TTL)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_SOURCE", " Postgres ")
	t.Setenv("CATALOG_STRICT", "true")
	t.Setenv("ENABLE_PAGE_CACHE", "true")
	t.Setenv("PAGE_CACHE_TTL", "90s")
	t.Setenv("ALLOWED_ORIGINS", "https://club.example.com, ,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.Strict)
	assert.True(t, cfg.PageCache.Enabled)
	assert.Equal(t, 90*time.Second, cfg.PageCache.TTL)
	assert.Equal(t, []string{"https://club.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
	assert.Equal(t, 2*time.Hour, parseDuration("2h", time.Minute))
}
