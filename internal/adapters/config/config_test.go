package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "argus", cfg.App.Name)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, "USDT", cfg.Scanner.QuoteAsset)
	assert.Equal(t, []string{"15m", "1h", "4h"}, cfg.Scanner.Timeframes)
	assert.Equal(t, 1_000_000.0, cfg.Scanner.MinVolume)
	assert.Equal(t, 1.5, cfg.Scanner.MinPriceChange)
	assert.Equal(t, 50, cfg.Scanner.TopN)
	assert.Equal(t, 0, cfg.Scanner.MinConfidence)
	assert.Equal(t, 5*time.Minute, cfg.Worker.ScanInterval)
	assert.True(t, cfg.Worker.ScanEnabled)
	assert.False(t, cfg.ErrorTracking.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SCANNER_SYMBOLS", "BTCUSDT,ETHUSDT")
	t.Setenv("SCANNER_TIMEFRAMES", "5m,1h")
	t.Setenv("SCANNER_TOP_N", "10")
	t.Setenv("WORKER_SCAN_INTERVAL", "30s")
	t.Setenv("API_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, cfg.Scanner.Symbols)
	assert.Equal(t, []string{"5m", "1h"}, cfg.Scanner.Timeframes)
	assert.Equal(t, 10, cfg.Scanner.TopN)
	assert.Equal(t, 30*time.Second, cfg.Worker.ScanInterval)
	assert.Equal(t, 9090, cfg.API.Port)
}
