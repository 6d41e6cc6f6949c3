package config

const (
	defaultFloatingSize       = 400
	defaultHeaderRetryDelayMs = 500
	defaultZoneSize           = 30
	defaultZoneOffset         = 40
	defaultLogMaxSizeMB       = 10
	defaultLogMaxBackups      = 3
	defaultLayoutName         = "default"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Dock: DockConfig{
			ClosingPolicy:      ClosingSelectedTab,
			FloatingWidth:      defaultFloatingSize,
			FloatingHeight:     defaultFloatingSize,
			HeaderRetryDelayMs: defaultHeaderRetryDelayMs,
			ZoneSize:           defaultZoneSize,
			ZoneOffset:         defaultZoneOffset,
		},
		Appearance: AppearanceConfig{
			ColorScheme: ColorSchemeDark,
		},
		Demo: DemoConfig{
			Tabs:          []string{"Editor", "Terminal", "Notes"},
			LayoutName:    defaultLayoutName,
			RestoreLayout: true,
		},
	}
}
