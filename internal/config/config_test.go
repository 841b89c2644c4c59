package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymap/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "MoneyMap", cfg.App.Name)
	assert.Equal(t, 10000, cfg.Ingest.BatchSize)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 32, cfg.Cache.Size)
	assert.Empty(t, cfg.Ingest.CategoriesFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INGEST_BATCH_SIZE", "500")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("DB_NAME", "ledger")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Ingest.BatchSize)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "postgres://postgres:@localhost:5432/ledger?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	t.Setenv("INGEST_BATCH_SIZE", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
