package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alwanly/sec-edgar-navigator/pkg/validator"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadResponderConfig_DefaultPort(t *testing.T) {
	unsetenv(t, "PORT")

	cfg, err := LoadResponderConfig()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestLoadResponderConfig_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := LoadResponderConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
}

func TestLoadResponderConfig_InvalidPort(t *testing.T) {
	for _, v := range []string{"abc", "80.5", "70000", "-1"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("PORT", v)
			_, err := LoadResponderConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadFetcherConfig_Defaults(t *testing.T) {
	for _, k := range []string{"DOWNLOAD_ROOT", "DATABASE_PATH", "REQUEST_TIMEOUT", "EDGAR_MAX_RETRIES", "EDGAR_DOWNLOAD_DETAILS", "REDIS_HOST", "REDIS_PORT", "REDIS_PREFIX", "EDGAR_ARCHIVES_URL", "EDGAR_DATA_URL"} {
		unsetenv(t, k)
	}

	cfg, err := LoadFetcherConfig()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.DownloadRoot)
	assert.Equal(t, "./data/filings.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.False(t, cfg.DownloadDetails)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "edgar:", cfg.Redis.Prefix)
	assert.Equal(t, "https://www.sec.gov", cfg.ArchivesURL)
	assert.Equal(t, "https://data.sec.gov", cfg.DataURL)
}

func TestLoadFetcherConfig_InvalidEdgarURL(t *testing.T) {
	t.Setenv("EDGAR_DATA_URL", "not a url")
	_, err := LoadFetcherConfig()
	assert.Error(t, err)
}

func TestLoadFetcherConfig_Overrides(t *testing.T) {
	t.Setenv("DOWNLOAD_ROOT", "/tmp/filings")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PREFIX", "staging:edgar:")

	cfg, err := LoadFetcherConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/filings", cfg.DownloadRoot)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "staging:edgar:", cfg.Redis.Prefix)
}

func TestDefaultFilingRequest(t *testing.T) {
	req := DefaultFilingRequest()
	assert.Equal(t, "10-K", req.FilingType)
	assert.Equal(t, "NVDA", req.Ticker)
	assert.Equal(t, 1, req.Limit)
	assert.Equal(t, "Constantine your.email@example.com", req.Identity.UserAgent())
	assert.NoError(t, validator.ValidateStruct(req))
}

func TestFilingRequestValidation(t *testing.T) {
	req := DefaultFilingRequest()
	req.Identity.Email = "not-an-email"
	req.Limit = 0

	errs := validator.TranslateError(validator.ValidateStruct(req))
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Limit")
}
