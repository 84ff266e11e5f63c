package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// StorageBackend identifies the PersistentStore implementation
type StorageBackend string

const (
	StorageBolt   StorageBackend = "bolt"
	StorageSQLite StorageBackend = "sqlite"
	StorageMemory StorageBackend = "memory"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds movie-data API configuration
type APIConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Key        string        `mapstructure:"key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	Debug      bool          `mapstructure:"debug"` // Log request/response bodies
}

// StorageConfig selects where the watched list is persisted
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend"`
	Path    string         `mapstructure:"path"` // File path; empty means default for backend
}

// UIConfig holds UI configuration
type UIConfig struct {
	InitialQuery string   `mapstructure:"initial_query"`
	MaxRating    int      `mapstructure:"max_rating"`
	StarSize     int      `mapstructure:"star_size"` // Cells between rating icons
	Browser      string   `mapstructure:"browser"`      // Browser command; empty for system default
	BrowserArgs  []string `mapstructure:"browser_args"` // Extra browser arguments
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // "json" or "text"
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    "https://www.omdbapi.com/",
			Timeout:    10 * time.Second,
			MaxRetries: 2,
		},
		Storage: StorageConfig{
			Backend: StorageBolt,
		},
		UI: UIConfig{
			InitialQuery: "inception",
			MaxRating:    10,
			StarSize:     1,
		},
		Logging: LoggingConfig{
			File:       defaultLogPath(),
			Level:      "INFO",
			Format:     "json",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	return filepath.Join(defaultDataPath(), "popcorn.log")
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "popcorn")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "popcorn")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "popcorn")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "popcorn")
	}
}

// StoragePath returns the configured store file, or the backend default
func (c StorageConfig) StoragePath() string {
	if c.Path != "" {
		return expandHome(c.Path)
	}
	switch c.Backend {
	case StorageMemory:
		return ""
	case StorageSQLite:
		return filepath.Join(defaultDataPath(), "popcorn.sqlite")
	default:
		return filepath.Join(defaultDataPath(), "popcorn.db")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newViper returns a viper instance seeded with defaults and env overrides
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	// Environment variable overrides, e.g. POPCORN_API_KEY
	v.SetEnvPrefix("POPCORN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so env overrides and Unmarshal see them
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.key", cfg.API.Key)
	v.SetDefault("api.timeout", cfg.API.Timeout)
	v.SetDefault("api.max_retries", cfg.API.MaxRetries)
	v.SetDefault("api.debug", cfg.API.Debug)

	v.SetDefault("storage.backend", string(cfg.Storage.Backend))
	v.SetDefault("storage.path", cfg.Storage.Path)

	v.SetDefault("ui.initial_query", cfg.UI.InitialQuery)
	v.SetDefault("ui.max_rating", cfg.UI.MaxRating)
	v.SetDefault("ui.star_size", cfg.UI.StarSize)
	v.SetDefault("ui.browser", cfg.UI.Browser)
	v.SetDefault("ui.browser_args", cfg.UI.BrowserArgs)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age_days", cfg.Logging.MaxAgeDays)
	v.SetDefault("logging.compress", cfg.Logging.Compress)
}

// Validate rejects configurations the app cannot run with
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageBolt, StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.UI.MaxRating < 1 {
		return fmt.Errorf("ui.max_rating must be at least 1, got %d", c.UI.MaxRating)
	}
	return nil
}

// SaveConfig writes cfg as YAML. An empty path writes to the default location.
func SaveConfig(cfg *Config, path string) (string, error) {
	if path == "" {
		path = filepath.Join(defaultConfigPath(), "config.yaml")
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.key", cfg.API.Key)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("api.max_retries", cfg.API.MaxRetries)
	v.Set("api.debug", cfg.API.Debug)

	v.Set("storage.backend", string(cfg.Storage.Backend))
	v.Set("storage.path", cfg.Storage.Path)

	v.Set("ui.initial_query", cfg.UI.InitialQuery)
	v.Set("ui.max_rating", cfg.UI.MaxRating)
	v.Set("ui.star_size", cfg.UI.StarSize)
	v.Set("ui.browser", cfg.UI.Browser)
	v.Set("ui.browser_args", cfg.UI.BrowserArgs)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.format", cfg.Logging.Format)
	v.Set("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.Set("logging.max_backups", cfg.Logging.MaxBackups)
	v.Set("logging.max_age_days", cfg.Logging.MaxAgeDays)
	v.Set("logging.compress", cfg.Logging.Compress)

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
