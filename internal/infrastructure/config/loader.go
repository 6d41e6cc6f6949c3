package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "TABDOCK"

// Manager handles configuration loading and watching.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	viper     *viper.Viper
	dir       string
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager reading config.toml from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return NewManagerWithDir(configDir), nil
}

// NewManagerWithDir creates a manager reading config.toml from dir.
func NewManagerWithDir(dir string) *Manager {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// TABDOCK_DOCK_ZONE_SIZE overrides dock.zone_size.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT")

	return &Manager{
		config: DefaultConfig(),
		viper:  v,
		dir:    dir,
	}
}

// Load reads the configuration file, creating it with defaults when missing.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create default config: %w", err)
	}
	return nil
}

func (m *Manager) createDefaultConfig() error {
	path := m.GetConfigFile()
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return err
	}
	m.viper.SetConfigFile(path)
	return m.viper.ReadInConfig()
}

// decode unmarshals, normalizes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func normalizeConfig(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Dock.ClosingPolicy = ClosingPolicy(strings.ToLower(strings.TrimSpace(string(cfg.Dock.ClosingPolicy))))
	cfg.Appearance.ColorScheme = ColorScheme(strings.ToLower(strings.TrimSpace(string(cfg.Appearance.ColorScheme))))
	cfg.Demo.LayoutName = strings.TrimSpace(cfg.Demo.LayoutName)
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.file", d.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", d.Logging.MaxBackups)

	m.viper.SetDefault("dock.default_scope", d.Dock.DefaultScope)
	m.viper.SetDefault("dock.closing_policy", string(d.Dock.ClosingPolicy))
	m.viper.SetDefault("dock.floating_width", d.Dock.FloatingWidth)
	m.viper.SetDefault("dock.floating_height", d.Dock.FloatingHeight)
	m.viper.SetDefault("dock.header_retry_delay_ms", d.Dock.HeaderRetryDelayMs)
	m.viper.SetDefault("dock.zone_size", d.Dock.ZoneSize)
	m.viper.SetDefault("dock.zone_offset", d.Dock.ZoneOffset)

	m.viper.SetDefault("database.path", d.Database.Path)

	m.viper.SetDefault("appearance.color_scheme", string(d.Appearance.ColorScheme))

	m.viper.SetDefault("demo.tabs", d.Demo.Tabs)
	m.viper.SetDefault("demo.layout_name", d.Demo.LayoutName)
	m.viper.SetDefault("demo.restore_layout", d.Demo.RestoreLayout)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := *m.config
	cfg.Demo.Tabs = append([]string(nil), m.config.Demo.Tabs...)
	return &cfg
}

// Save writes cfg to the configuration file and makes it current.
func (m *Manager) Save(cfg *Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := WriteConfigOrdered(cfg, m.GetConfigFile()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	m.config = cfg
	return nil
}

// GetConfigFile returns the path of the configuration file.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configName)
}

// DatabasePath returns the configured database path, falling back to the
// XDG data directory.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return expandHome(c.Database.Path)
	}
	return GetDatabaseFile()
}

// LogFile returns the configured log file, falling back to the XDG state directory.
func (c *Config) LogFile() (string, error) {
	if c.Logging.File != "" {
		return expandHome(c.Logging.File)
	}
	return GetLogFile()
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
