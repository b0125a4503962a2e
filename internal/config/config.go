package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
	"eventdeck/internal/logic"
)

// LocalFileName is looked up in the working directory before the user config dir
const LocalFileName = ".eventdeck.toml"

// Environment overrides
const (
	EnvSource   = "EVENTDECK_SOURCE"
	EnvLogLevel = "EVENTDECK_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	Source         string     `toml:"source"`
	TimeoutSeconds int        `toml:"timeout_seconds"`
	UISettings     UISettings `toml:"ui"`

	// LogLevel only comes from the environment
	LogLevel string `toml:"-"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Filters         []string `toml:"filters"`
	EnableSearch    bool     `toml:"enable_search"`
	CardWidth       int      `toml:"card_width"`
	ShowDescription bool     `toml:"show_description"`
}

// Timeout returns the load timeout, zero when none is configured
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FilterKeys returns the configured filters that are known, in configured order.
// Unknown names are logged and skipped; duplicates are dropped.
func (c *Config) FilterKeys() []domain.FilterKey {
	keys := make([]domain.FilterKey, 0, len(c.UISettings.Filters))
	seen := make(map[domain.FilterKey]bool)
	for _, name := range c.UISettings.Filters {
		key, err := logic.ParseFilterKey(name)
		if err != nil {
			log.Printf("config: ignoring filter: %v", err)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service. A .eventdeck.toml in the working
// directory wins over the one in the user config dir.
func NewConfigService() ConfigService {
	if _, err := os.Stat(LocalFileName); err == nil {
		return &configService{filePath: LocalFileName}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "eventdeck", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceForPath creates a config service bound to an explicit file
func NewConfigServiceForPath(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the configuration file, writing the defaults on first run, then
// applies environment overrides.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config

	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			// not fatal, the defaults still apply
			log.Printf("config: could not write defaults: %v", err)
		}
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	ApplyEnv(cfg)

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Source: cfg.Source})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.UISettings.Filters == nil {
		cfg.UISettings.Filters = []string{}
	}

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

	return nil
}

// ApplyEnv loads a .env file if one exists and applies EVENTDECK_* overrides
func ApplyEnv(cfg *Config) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: .env file couldn't be loaded: %v", err)
	}

	if source := strings.TrimSpace(os.Getenv(EnvSource)); source != "" {
		cfg.Source = source
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	filters := make([]string, 0, len(domain.FilterKeys))
	for _, key := range domain.FilterKeys {
		filters = append(filters, string(key))
	}

	return &Config{
		Version:  1,
		Source:   "",
		LogLevel: "info",
		UISettings: UISettings{
			Filters:         filters,
			EnableSearch:    true,
			CardWidth:       72,
			ShowDescription: true,
		},
	}
}
