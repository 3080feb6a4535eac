package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	require.Equal(t, "gemini-2.5-flash", cfg.LLM.InsightModel)
	require.Equal(t, "trend", cfg.Terminal.ForecastMode)
	require.Equal(t, 5000.0, cfg.Trade.DefaultDistanceKM)
}

func TestValidateRejectsBadForecastMode(t *testing.T) {
	cfg := defaultConfig()
	cfg.Terminal.ForecastMode = "oracle"

	require.Error(t, cfg.Validate())
}

func TestValidateRejectsInvertedRateBand(t *testing.T) {
	cfg := defaultConfig()
	cfg.Trade.DomesticRateMax = cfg.Trade.DomesticRateMin - 1

	require.Error(t, cfg.Validate())
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("DATA_GOV_API_KEY", "gov-key")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TERMINAL_FORECAST_MODE", "jitter")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "gem-key", cfg.LLM.APIKey)
	require.Equal(t, "gov-key", cfg.Mandi.APIKey)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "jitter", cfg.Terminal.ForecastMode)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := []byte(`
http:
  address: ":7070"
llm:
  timeout: 5s
terminal:
  defaultCommodity: soybean
`)
	require.NoError(t, os.WriteFile(path, payload, 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, 5*time.Second, cfg.LLM.Timeout.Std())
	require.Equal(t, "soybean", cfg.Terminal.DefaultCommodity)
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()

	require.Error(t, err)
}
