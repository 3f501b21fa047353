package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:reader.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "https://newsapi.org/v2", cfg.NewsAPI.BaseURL)
	assert.Equal(t, "us", cfg.NewsAPI.Country)
	assert.Equal(t, 20, cfg.NewsAPI.PageSize)
	assert.Equal(t, 100, cfg.Cache.MaxArticles)
	assert.Equal(t, 24*time.Hour, cfg.Cache.MaxAge)
	assert.Equal(t, "1.1.1.1:53", cfg.Connectivity.ProbeAddr)
}

func TestLoad_File(t *testing.T) {
	content := `
server:
  listen: ":9090"
  timeout: 10s
database:
  dsn: "file:/tmp/test.db"
newsapi:
  api_key: secret-key
  country: gb
  page_size: 50
cache:
  max_articles: 25
connectivity:
  probe_addr: "8.8.8.8:53"
  interval: 30s
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:/tmp/test.db", cfg.Database.DSN)
	assert.Equal(t, "secret-key", cfg.NewsAPI.APIKey)
	assert.Equal(t, "gb", cfg.NewsAPI.Country)
	assert.Equal(t, 50, cfg.NewsAPI.PageSize)
	assert.Equal(t, 25, cfg.Cache.MaxArticles)
	assert.Equal(t, "8.8.8.8:53", cfg.Connectivity.ProbeAddr)
	assert.Equal(t, 30*time.Second, cfg.Connectivity.Interval)

	// unset values still get defaults
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "https://newsapi.org/v2", cfg.NewsAPI.BaseURL)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_NEWSAPI_KEY", "from-env")

	content := `
newsapi:
  api_key: ${TEST_NEWSAPI_KEY}
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.NewsAPI.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
