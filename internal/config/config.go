package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all core service configuration.
type Config struct {
	Database     DatabaseConfig
	Metadata     MetadataConfig
	Notification NotificationConfig
	Cache        CacheConfig
	Feed         FeedConfig
	Firebase     FirebaseConfig
	Logging      LoggingConfig
}

// DatabaseConfig contains MySQL connection configuration.
type DatabaseConfig struct {
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         int    `envconfig:"DB_PORT" default:"3306"`
	Username     string `envconfig:"DB_USER" default:"root"`
	Password     string `envconfig:"DB_PASSWORD" required:"true"`
	DatabaseName string `envconfig:"DB_NAME" default:"pawshare"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

// MetadataConfig configures the external video metadata provider.
type MetadataConfig struct {
	APIKey        string        `envconfig:"YOUTUBE_API_KEY"`
	Timeout       time.Duration `envconfig:"METADATA_TIMEOUT" default:"5s"`
	RateLimit     float64       `envconfig:"METADATA_RATE_LIMIT" default:"5"`
	SearchCeiling int           `envconfig:"METADATA_SEARCH_CEILING" default:"10"`
}

// NotificationConfig configures the fan-out engine.
type NotificationConfig struct {
	Workers           int `envconfig:"NOTIF_WORKERS" default:"5"`
	ChannelBufferSize int `envconfig:"NOTIF_CHANNEL_BUFFER" default:"1000"`
	InsertBatchSize   int `envconfig:"NOTIF_INSERT_BATCH" default:"100"`
}

// CacheConfig configures the in-process search cache.
type CacheConfig struct {
	TTL        time.Duration `envconfig:"SEARCH_CACHE_TTL" default:"1h"`
	MaxEntries int           `envconfig:"SEARCH_CACHE_MAX_ENTRIES" default:"100"`
}

// FeedConfig configures feed assembly.
type FeedConfig struct {
	Limit int `envconfig:"FEED_LIMIT" default:"50"`
}

// FirebaseConfig contains Firebase Cloud Messaging configuration.
type FirebaseConfig struct {
	ProjectID           string `envconfig:"FIREBASE_PROJECT_ID"`
	CredentialsFilePath string `envconfig:"FIREBASE_CREDENTIALS_PATH"`
	Enabled             bool   `envconfig:"FIREBASE_ENABLED" default:"false"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// DSN returns the MySQL data source name.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.DatabaseName)
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Metadata); err != nil {
		return nil, fmt.Errorf("failed to load metadata config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Notification); err != nil {
		return nil, fmt.Errorf("failed to load notification config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Cache); err != nil {
		return nil, fmt.Errorf("failed to load cache config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Feed); err != nil {
		return nil, fmt.Errorf("failed to load feed config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Firebase); err != nil {
		return nil, fmt.Errorf("failed to load firebase config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to load logging config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Metadata.RateLimit <= 0 {
		return fmt.Errorf("METADATA_RATE_LIMIT must be positive")
	}
	if c.Metadata.SearchCeiling <= 0 {
		return fmt.Errorf("METADATA_SEARCH_CEILING must be positive")
	}
	if c.Notification.Workers <= 0 {
		return fmt.Errorf("NOTIF_WORKERS must be positive")
	}
	if c.Notification.InsertBatchSize <= 0 {
		return fmt.Errorf("NOTIF_INSERT_BATCH must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("SEARCH_CACHE_TTL must be positive")
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("SEARCH_CACHE_MAX_ENTRIES must be positive")
	}
	if c.Feed.Limit <= 0 {
		return fmt.Errorf("FEED_LIMIT must be positive")
	}
	if c.Firebase.Enabled && c.Firebase.CredentialsFilePath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required when FIREBASE_ENABLED is true")
	}
	return nil
}
