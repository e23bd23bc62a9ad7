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

	assert.Equal(t, "0.0.0.0:5000", cfg.Addr)
	assert.Equal(t, time.Second, cfg.SampleInterval)
	assert.Equal(t, 60, cfg.HistorySize)
	assert.Equal(t, 10, cfg.ProcessLimit)
	assert.Equal(t, "/", cfg.DiskPath)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PIMON_ADDR", "127.0.0.1:9000")
	t.Setenv("PIMON_SAMPLE_INTERVAL", "250ms")
	t.Setenv("PIMON_HISTORY_SIZE", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.SampleInterval)
	assert.Equal(t, 120, cfg.HistorySize)
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("PIMON_SAMPLE_INTERVAL", "0s")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveHistorySize(t *testing.T) {
	t.Setenv("PIMON_HISTORY_SIZE", "0")

	_, err := Load()
	assert.Error(t, err)
}
