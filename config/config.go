package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	obs "github.com/Black-And-White-Club/pinball-bot/pkg/observability"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	Queue         QueueConfig         `yaml:"queue"`
	Competition   CompetitionConfig   `yaml:"competition"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the read API listener settings. RateLimit is requests per
// second per client IP.
type HTTPConfig struct {
	Address   string  `yaml:"address"`
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// QueueConfig tunes the River job queue.
type QueueConfig struct {
	MaxWorkers int `yaml:"max_workers"`
}

// CompetitionConfig holds weekly competition settings.
type CompetitionConfig struct {
	DefaultMode             string        `yaml:"default_mode"`
	HighScoreRankCutoff     int           `yaml:"high_score_rank_cutoff"`
	PendingAttachmentTTL    time.Duration `yaml:"pending_attachment_ttl"`
	BraggingRightsChannelID string        `yaml:"bragging_rights_channel_id"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
	ServiceVersion string `yaml:"service_version"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL environment variable not set")
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid HTTP_RATE_LIMIT value: %w", err)
		}
		cfg.HTTP.RateLimit = f
	}
	if v := os.Getenv("HTTP_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_RATE_BURST value: %w", err)
		}
		cfg.HTTP.RateBurst = n
	}
	if v := os.Getenv("QUEUE_MAX_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid QUEUE_MAX_WORKERS value: %w", err)
		}
		cfg.Queue.MaxWorkers = n
	}
	if v := os.Getenv("DEFAULT_MODE"); v != "" {
		cfg.Competition.DefaultMode = v
	}
	if v := os.Getenv("HIGH_SCORE_RANK_CUTOFF"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HIGH_SCORE_RANK_CUTOFF value: %w", err)
		}
		cfg.Competition.HighScoreRankCutoff = n
	}
	if v := os.Getenv("PENDING_ATTACHMENT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PENDING_ATTACHMENT_TTL value: %w", err)
		}
		cfg.Competition.PendingAttachmentTTL = d
	}
	if v := os.Getenv("BRAGGING_RIGHTS_CHANNEL_ID"); v != "" {
		cfg.Competition.BraggingRightsChannelID = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Observability.MetricsEnabled = v == "true"
	}
	if v := os.Getenv("SERVICE_VERSION"); v != "" {
		cfg.Observability.ServiceVersion = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.RateLimit <= 0 {
		cfg.HTTP.RateLimit = 5
	}
	if cfg.HTTP.RateBurst <= 0 {
		cfg.HTTP.RateBurst = 10
	}
	if cfg.Competition.DefaultMode == "" {
		cfg.Competition.DefaultMode = "default"
	}
	if cfg.Competition.HighScoreRankCutoff <= 0 {
		cfg.Competition.HighScoreRankCutoff = 10
	}
	if cfg.Competition.PendingAttachmentTTL <= 0 {
		cfg.Competition.PendingAttachmentTTL = 15 * time.Minute
	}
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
}

func ToObsConfig(appCfg *Config) obs.Config {
	return obs.Config{
		ServiceName:    "pinball-bot",
		Environment:    appCfg.Observability.Environment,
		Version:        appCfg.Observability.ServiceVersion,
		LogLevel:       appCfg.Observability.LogLevel,
		MetricsEnabled: appCfg.Observability.MetricsEnabled,
	}
}
