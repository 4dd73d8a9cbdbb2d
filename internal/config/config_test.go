package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
	"trip-route-cli/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ORS_KEY", "ORS_API_KEY", "ORS_BASE_URL", "ORS_PROFILE", "ORS_LANGUAGE",
		"FUEL_RATE_L_PER_KM", "GEOCODE_TIMEOUT", "DIRECTIONS_TIMEOUT", "ISS_URL", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ORS_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.ORSKey)
	assert.Equal(t, "https://api.openrouteservice.org", cfg.ORSBaseURL)
	assert.Equal(t, "driving-car", cfg.Profile)
	assert.Equal(t, 0.08, cfg.FuelRate)
	assert.Equal(t, 10*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, 20*time.Second, cfg.DirectionsTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.NoError(t, cfg.RequireORS())
}

func TestLoadFallsBackToORSAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("ORS_API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.ORSKey)
}

func TestRequireORSMissingKeyIsConfigError(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.RequireORS()
	var cerr *domain.ConfigError
	require.True(t, errors.As(err, &cerr), "got %v", err)
	assert.Equal(t, "ORS_KEY", cerr.Key)

	// The iss command does not need the key.
	assert.NoError(t, cfg.RequireISS())
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("FUEL_RATE_L_PER_KM", "lots")

	_, err := Load()
	var cerr *domain.ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "FUEL_RATE_L_PER_KM", cerr.Key)

	clearEnv(t)
	t.Setenv("GEOCODE_TIMEOUT", "ten")
	_, err = Load()
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "GEOCODE_TIMEOUT", cerr.Key)
}

func TestRequireORSRejectsNonPositiveFuelRate(t *testing.T) {
	clearEnv(t)
	t.Setenv("ORS_KEY", "secret")
	t.Setenv("FUEL_RATE_L_PER_KM", "-1")

	cfg, err := Load()
	require.NoError(t, err)

	var cerr *domain.ConfigError
	require.True(t, errors.As(cfg.RequireORS(), &cerr))
	assert.Equal(t, "FUEL_RATE_L_PER_KM", cerr.Key)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ORS_KEY=from-dotenv\n"), 0o600))

	// godotenv does not override variables that are already set, even empty ones.
	require.NoError(t, os.Unsetenv("ORS_KEY"))
	t.Cleanup(func() { _ = os.Unsetenv("ORS_KEY") })

	assert.True(t, LoadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("ORS_KEY"))

	assert.False(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
