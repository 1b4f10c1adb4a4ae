package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-kasir/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "EGP", cfg.CurrencyCode)
	require.Equal(t, "10.00", cfg.ShippingRatePerKg.String())
	require.Equal(t, "16000.00", cfg.FreeShipThreshold.String())
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, "kasir", cfg.MetricsNamespace)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("SHIPPING_RATE_PER_KG", "12.5")
	t.Setenv("FREE_SHIPPING_THRESHOLD", "20000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example , https://b.example")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, "12.50", cfg.ShippingRatePerKg.String())
	require.Equal(t, "20000.00", cfg.FreeShipThreshold.String())
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.False(t, cfg.MetricsEnabled)
}

func TestLoadRejectsBadMoney(t *testing.T) {
	t.Setenv("SHIPPING_RATE_PER_KG", "free")

	_, err := config.Load()
	require.Error(t, err)
}

func TestHTTPAddr(t *testing.T) {
	t.Parallel()

	require.Equal(t, ":9000", (&config.Config{Port: "9000"}).HTTPAddr())
	require.Equal(t, ":9000", (&config.Config{Port: ":9000"}).HTTPAddr())
	require.Equal(t, ":8080", (&config.Config{}).HTTPAddr())
}
