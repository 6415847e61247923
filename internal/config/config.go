package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"hnsearch/internal/eventbus"
	"hnsearch/internal/logic"
)

const (
	// DefaultQuery is the search term shown on start
	DefaultQuery = "redux"
	// DefaultBaseURL is the Algolia Hacker News API root
	DefaultBaseURL = "https://hn.algolia.com/api/v1"
	// DefaultHitsPerPage is the page size sent with every search request
	DefaultHitsPerPage = 100

	maxHitsPerPage = 1000
	envPrefix      = "HNSEARCH"
	fileName       = "config.toml"
)

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version" mapstructure:"version"`
	DefaultQuery string     `toml:"default_query" mapstructure:"default_query"`
	API          APIConfig  `toml:"api" mapstructure:"api"`
	UI           UISettings `toml:"ui" mapstructure:"ui"`
	Log          LogConfig  `toml:"log" mapstructure:"log"`
}

// APIConfig holds the search endpoint settings
type APIConfig struct {
	BaseURL     string `toml:"base_url" mapstructure:"base_url"`
	HitsPerPage int    `toml:"hits_per_page" mapstructure:"hits_per_page"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultSort string `toml:"default_sort" mapstructure:"default_sort"`
	ShowURL     bool   `toml:"show_url" mapstructure:"show_url"`
	OpenCommand string `toml:"open_command" mapstructure:"open_command"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `toml:"level" mapstructure:"level"`
	File  string `toml:"file" mapstructure:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	LoadOrCreate(path string) (*Config, error)
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service bound to the default config path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the platform config location for hnsearch
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "hnsearch", fileName)
}

// Path returns the file the service reads and writes by default
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the default path, falling back to defaults
// when the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg, err := load("")
		if err != nil {
			return nil, err
		}
		cs.publishLoaded(cs.filePath, cfg)
		return cfg, nil
	}

	cfg, err := load(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cs.filePath, cfg)
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

// LoadOrCreate loads the config at path, writing the defaults there first when
// the file does not exist yet
func (cs *configService) LoadOrCreate(path string) (*Config, error) {
	if path == "" {
		path = cs.filePath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cs.SaveToPath(DefaultConfig(), path); err != nil {
			return nil, err
		}
	}
	return cs.LoadFromPath(path)
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:         path,
			DefaultQuery: cfg.DefaultQuery,
		})
	}
}

// load reads path (if non-empty) on top of the defaults and applies
// HNSEARCH_* environment overrides
func load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("default_query", d.DefaultQuery)
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.hits_per_page", d.API.HitsPerPage)
	v.SetDefault("ui.default_sort", d.UI.DefaultSort)
	v.SetDefault("ui.show_url", d.UI.ShowURL)
	v.SetDefault("ui.open_command", d.UI.OpenCommand)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Validate checks the values a user can get wrong in the file or environment
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DefaultQuery) == "" {
		return errors.New("invalid config: default_query must not be empty")
	}
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("invalid config: api.base_url must not be empty")
	}
	if c.API.HitsPerPage < 1 || c.API.HitsPerPage > maxHitsPerPage {
		return fmt.Errorf("invalid config: api.hits_per_page must be between 1 and %d, got %d",
			maxHitsPerPage, c.API.HitsPerPage)
	}
	if _, err := logic.ParseSortKey(c.UI.DefaultSort); err != nil {
		return fmt.Errorf("invalid config: ui.default_sort: %w", err)
	}
	return nil
}

// LogFilePath returns the configured log file, or hnsearch.log next to the
// config file when none is set
func (c *Config) LogFilePath(configPath string) string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(filepath.Dir(configPath), "hnsearch.log")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		DefaultQuery: DefaultQuery,
		API: APIConfig{
			BaseURL:     DefaultBaseURL,
			HitsPerPage: DefaultHitsPerPage,
		},
		UI: UISettings{
			DefaultSort: "none",
			ShowURL:     true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
