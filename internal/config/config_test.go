package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "nats://localhost:4222", config.NATSURL)
	assert.Equal(t, "localhost:9000", config.ClickHouseDSN)
	assert.Equal(t, "jobmill", config.ClickHouseDatabase)
	assert.Equal(t, "localhost:6379", config.RedisAddr)
	assert.Equal(t, 24*time.Hour, config.CacheTTL)
	assert.Empty(t, config.TaxonomyPath)
	assert.Equal(t, 8, config.BatchWorkers)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("NATS_URL", "nats://broker:4222")
	t.Setenv("BATCH_WORKERS", "16")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("TAXONOMY_PATH", "/etc/jobmill/taxonomy.yaml")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "nats://broker:4222", config.NATSURL)
	assert.Equal(t, 16, config.BatchWorkers)
	assert.Equal(t, 30*time.Minute, config.CacheTTL)
	assert.Equal(t, "/etc/jobmill/taxonomy.yaml", config.TaxonomyPath)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "many")
	t.Setenv("CACHE_TTL", "soon")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8, config.BatchWorkers)
	assert.Equal(t, 24*time.Hour, config.CacheTTL)
}
