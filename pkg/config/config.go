package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:reader.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	NewsAPI NewsAPIConfig `yaml:"newsapi" json:"newsapi" jsonschema:"description=News API configuration"`

	Cache CacheConfig `yaml:"cache" json:"cache" jsonschema:"description=Article cache configuration"`

	Connectivity ConnectivityConfig `yaml:"connectivity" json:"connectivity" jsonschema:"description=Connectivity probe configuration"`
}

// NewsAPIConfig holds remote news API settings
type NewsAPIConfig struct {
	BaseURL  string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://newsapi.org/v2,description=News API base URL"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=News API key (can use environment variable)"`
	Country  string        `yaml:"country" json:"country" jsonschema:"default=us,description=Country for top headlines"`
	PageSize int           `yaml:"page_size" json:"page_size" jsonschema:"default=20,description=Number of articles per request"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// CacheConfig holds article cache settings
type CacheConfig struct {
	MaxArticles int           `yaml:"max_articles" json:"max_articles" jsonschema:"default=100,description=Maximum number of cached articles kept"`
	MaxAge      time.Duration `yaml:"max_age" json:"max_age" jsonschema:"default=24h,description=Advisory cache age limit (not enforced)"`
}

// ConnectivityConfig holds connectivity probe settings
type ConnectivityConfig struct {
	ProbeAddr string        `yaml:"probe_addr" json:"probe_addr" jsonschema:"default=1.1.1.1:53,description=Address dialed to test reachability"`
	Interval  time.Duration `yaml:"interval" json:"interval" jsonschema:"default=15s,description=Time between probes"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=3s,description=Per-probe dial timeout"`
}

// Load reads configuration from a YAML file, an empty path yields defaults
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:reader.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.NewsAPI.BaseURL == "" {
		c.NewsAPI.BaseURL = "https://newsapi.org/v2"
	}
	if c.NewsAPI.Country == "" {
		c.NewsAPI.Country = "us"
	}
	if c.NewsAPI.PageSize == 0 {
		c.NewsAPI.PageSize = 20
	}
	if c.NewsAPI.Timeout == 0 {
		c.NewsAPI.Timeout = 30 * time.Second
	}

	if c.Cache.MaxArticles == 0 {
		c.Cache.MaxArticles = 100
	}
	if c.Cache.MaxAge == 0 {
		c.Cache.MaxAge = 24 * time.Hour
	}

	if c.Connectivity.ProbeAddr == "" {
		c.Connectivity.ProbeAddr = "1.1.1.1:53"
	}
	if c.Connectivity.Interval == 0 {
		c.Connectivity.Interval = 15 * time.Second
	}
	if c.Connectivity.Timeout == 0 {
		c.Connectivity.Timeout = 3 * time.Second
	}
}
