package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "pawshare", cfg.Database.DatabaseName)
	assert.Equal(t, 5*time.Second, cfg.Metadata.Timeout)
	assert.Equal(t, 10, cfg.Metadata.SearchCeiling)
	assert.Equal(t, 5, cfg.Notification.Workers)
	assert.Equal(t, 100, cfg.Notification.InsertBatchSize)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 100, cfg.Cache.MaxEntries)
	assert.Equal(t, 50, cfg.Feed.Limit)
	assert.False(t, cfg.Firebase.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SEARCH_CACHE_TTL", "30m")
	t.Setenv("FEED_LIMIT", "25")
	t.Setenv("METADATA_SEARCH_CEILING", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 25, cfg.Feed.Limit)
	assert.Equal(t, 3, cfg.Metadata.SearchCeiling)
}

func TestLoad_MissingPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:         "localhost",
		Port:         3306,
		Username:     "root",
		Password:     "secret",
		DatabaseName: "pawshare",
	}
	assert.Equal(t,
		"root:secret@tcp(localhost:3306)/pawshare?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database:     DatabaseConfig{Password: "secret"},
			Metadata:     MetadataConfig{RateLimit: 5, SearchCeiling: 10},
			Notification: NotificationConfig{Workers: 5, InsertBatchSize: 100},
			Cache:        CacheConfig{TTL: time.Hour, MaxEntries: 100},
			Feed:         FeedConfig{Limit: 50},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing password", func(c *Config) { c.Database.Password = "" }, true},
		{"zero rate limit", func(c *Config) { c.Metadata.RateLimit = 0 }, true},
		{"zero search ceiling", func(c *Config) { c.Metadata.SearchCeiling = 0 }, true},
		{"zero workers", func(c *Config) { c.Notification.Workers = 0 }, true},
		{"zero batch size", func(c *Config) { c.Notification.InsertBatchSize = 0 }, true},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"zero feed limit", func(c *Config) { c.Feed.Limit = 0 }, true},
		{"firebase enabled without credentials", func(c *Config) { c.Firebase.Enabled = true }, true},
		{
			"firebase enabled with credentials",
			func(c *Config) {
				c.Firebase.Enabled = true
				c.Firebase.CredentialsFilePath = "/etc/firebase.json"
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
