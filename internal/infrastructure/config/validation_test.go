package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"floating width", func(c *Config) { c.Dock.FloatingWidth = 0 }, "dock.floating_width"},
		{"floating height", func(c *Config) { c.Dock.FloatingHeight = -5 }, "dock.floating_height"},
		{"retry delay", func(c *Config) { c.Dock.HeaderRetryDelayMs = 0 }, "dock.header_retry_delay_ms"},
		{"zone offset", func(c *Config) { c.Dock.ZoneOffset = 0 }, "dock.zone_offset"},
		{"overlapping zones", func(c *Config) { c.Dock.ZoneSize = 100 }, "zones would overlap"},
		{"color scheme", func(c *Config) { c.Appearance.ColorScheme = "sepia" }, "appearance.color_scheme"},
		{"palette", func(c *Config) { c.Appearance.DarkPalette.Border = "#12" }, "appearance.dark_palette.border"},
		{"layout name", func(c *Config) { c.Demo.LayoutName = "" }, "demo.layout_name"},
		{"blank tab", func(c *Config) { c.Demo.Tabs = []string{"a", " "} }, "demo.tabs[1]"},
		{"log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidatePalette_AcceptsShortHex(t *testing.T) {
	p := ColorPalette{Accent: "#fa0", Text: "#FFFFFF"}
	assert.Empty(t, validatePalette("p", &p))
}
