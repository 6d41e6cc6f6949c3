// Package config loads and watches the tabdock configuration file.
package config

// Config represents the complete configuration for tabdock.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Dock       DockConfig       `mapstructure:"dock" toml:"dock" json:"dock"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	// Demo configures the terminal demo started by `tabdock demo`.
	Demo DemoConfig `mapstructure:"demo" toml:"demo" json:"demo"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic, disabled.
	Level string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal,enum=panic,enum=disabled"`
	// Format is console or json.
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives logs while the demo owns the terminal. Empty uses the state directory.
	File       string `mapstructure:"file" toml:"file" json:"file,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// ClosingPolicy names which tabs show a close button.
type ClosingPolicy string

const (
	ClosingSelectedTab ClosingPolicy = "selected-tab"
	ClosingAllTabs     ClosingPolicy = "all-tabs"
	ClosingUnavailable ClosingPolicy = "unavailable"
)

// DockConfig holds the docking engine tunables.
type DockConfig struct {
	// DefaultScope is the drag compatibility scope of new panes.
	DefaultScope  string        `mapstructure:"default_scope" toml:"default_scope" json:"default_scope"`
	ClosingPolicy ClosingPolicy `mapstructure:"closing_policy" toml:"closing_policy" json:"closing_policy" jsonschema:"enum=selected-tab,enum=all-tabs,enum=unavailable"`
	// FloatingWidth and FloatingHeight size windows opened by detaching a tab.
	FloatingWidth  float64 `mapstructure:"floating_width" toml:"floating_width" json:"floating_width" jsonschema:"exclusiveMinimum=0"`
	FloatingHeight float64 `mapstructure:"floating_height" toml:"floating_height" json:"floating_height" jsonschema:"exclusiveMinimum=0"`
	// HeaderRetryDelayMs is the delay before retrying the tab header lookup.
	HeaderRetryDelayMs int `mapstructure:"header_retry_delay_ms" toml:"header_retry_delay_ms" json:"header_retry_delay_ms" jsonschema:"minimum=1"`
	// ZoneSize is the side of each quadrant drop zone.
	ZoneSize float64 `mapstructure:"zone_size" toml:"zone_size" json:"zone_size" jsonschema:"exclusiveMinimum=0"`
	// ZoneOffset is the distance from the pane center to each zone center.
	ZoneOffset float64 `mapstructure:"zone_offset" toml:"zone_offset" json:"zone_offset" jsonschema:"exclusiveMinimum=0"`
}

// DatabaseConfig locates the layout store.
type DatabaseConfig struct {
	// Path of the sqlite file. Empty uses the data directory.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// ColorScheme selects the palette.
type ColorScheme string

const (
	ColorSchemeDark  ColorScheme = "dark"
	ColorSchemeLight ColorScheme = "light"
)

// AppearanceConfig controls the terminal host colors.
type AppearanceConfig struct {
	ColorScheme  ColorScheme  `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=dark,enum=light"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	LightPalette ColorPalette `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
}

// ColorPalette overrides palette colors. Empty values keep the defaults.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background,omitempty"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface,omitempty"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant,omitempty"`
	Text           string `mapstructure:"text" toml:"text" json:"text,omitempty"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted,omitempty"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent,omitempty"`
	Border         string `mapstructure:"border" toml:"border" json:"border,omitempty"`
}

// DemoConfig seeds the terminal demo.
type DemoConfig struct {
	// Tabs are the titles of the tabs opened in the main pane.
	Tabs []string `mapstructure:"tabs" toml:"tabs" json:"tabs"`
	// LayoutName is the saved layout restored on start and written on quit.
	LayoutName string `mapstructure:"layout_name" toml:"layout_name" json:"layout_name"`
	// RestoreLayout restores LayoutName on start when it exists.
	RestoreLayout bool `mapstructure:"restore_layout" toml:"restore_layout" json:"restore_layout"`
}
