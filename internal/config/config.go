package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownBackend              = errors.New("unknown storage backend")
	ErrInvalidSchedule             = errors.New("invalid reminder schedule")
)

// Storage backends understood by the application.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"`       // current application environment (local, dev, production)
	TelegramBotToken string    `mapstructure:"-"`         // Telegram bot token loaded from environment
	Bot              Bot       `mapstructure:"bot"`       // bot access settings
	Storage          Storage   `mapstructure:"storage"`   // where progress is persisted
	DB               DB        `mapstructure:"database"`  // SQL backend settings
	Scheduler        Scheduler `mapstructure:"scheduler"` // due reminder settings
	Deck             Deck      `mapstructure:"deck"`      // extra cards imported at startup
}

// Bot restricts who may talk to the bot.
type Bot struct {
	OwnerChatID int64 `mapstructure:"owner_chat_id"` // 0 allows every chat
}

// Storage selects the progress backend.
type Storage struct {
	Backend string `mapstructure:"backend"` // memory, file, bolt, sqlite or postgres
	Path    string `mapstructure:"path"`    // data directory for file, bolt and sqlite
	Key     string `mapstructure:"key"`     // key of the progress blob
}

// DB contains database-related configuration parameters.
type DB struct {
	URL          string `mapstructure:"-"`              // connection string loaded from environment
	MaxOpenConns int    `mapstructure:"max_open_conns"` // maximum number of open connections in the pool
}

// Scheduler configures periodic due reminders.
type Scheduler struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval"`
	StartHour int           `mapstructure:"start_hour"`
	EndHour   int           `mapstructure:"end_hour"`
}

// Deck points at an optional spreadsheet of extra cards.
type Deck struct {
	ImportPath string `mapstructure:"import_path"`
	Sheet      string `mapstructure:"sheet"`
}

// SQLiteDSN returns the sqlite database file under the data directory.
// DATABASE_URL only applies to the postgres backend.
func (c *Config) SQLiteDSN() string {
	return filepath.Join(c.Storage.Path, "prepdeck.db")
}

// BoltPath returns the bbolt database file under the data directory.
func (c *Config) BoltPath() string {
	return filepath.Join(c.Storage.Path, "progress.bolt")
}

// Load reads .env, config/config.yaml and the environment.
func Load() (*Config, error) {
	return load("./config", ".env")
}

func load(configDir, envFile string) (*Config, error) {
	// A missing .env file is fine; variables may come from the real environment.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("bot.owner_chat_id", 0)
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.path", "data")
	v.SetDefault("storage.key", "flashcards_progress")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.interval", "1h")
	v.SetDefault("scheduler.start_hour", 8)
	v.SetDefault("scheduler.end_hour", 22)
	v.SetDefault("deck.import_path", "")
	v.SetDefault("deck.sheet", "Sheet1")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_bot_token", "TELEGRAM_BOT_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("bot.owner_chat_id", "OWNER_CHAT_ID")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramBotToken = v.GetString("telegram_bot_token")
	cfg.DB.URL = v.GetString("database_url")
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("%w: TELEGRAM_BOT_TOKEN", ErrMissingEnvironmentVariables)
	}

	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendBolt, BackendSQLite:
	case BackendPostgres:
		if c.DB.URL == "" {
			return fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}

	s := c.Scheduler
	if s.StartHour < 0 || s.StartHour > 23 || s.EndHour < 0 || s.EndHour > 23 || s.StartHour > s.EndHour {
		return fmt.Errorf("%w: hours %d-%d", ErrInvalidSchedule, s.StartHour, s.EndHour)
	}
	if s.Enabled && s.Interval <= 0 {
		return fmt.Errorf("%w: interval %s", ErrInvalidSchedule, s.Interval)
	}
	return nil
}
