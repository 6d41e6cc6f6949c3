package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	validLogFormats = []string{"console", "json"}
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(cfg *Config) error {
	var errs []string

	if !slices.Contains(validLogLevels, cfg.Logging.Level) {
		errs = append(errs, fmt.Sprintf("logging.level must be one of %s, got %q",
			strings.Join(validLogLevels, ", "), cfg.Logging.Level))
	}
	if !slices.Contains(validLogFormats, cfg.Logging.Format) {
		errs = append(errs, fmt.Sprintf("logging.format must be one of %s, got %q",
			strings.Join(validLogFormats, ", "), cfg.Logging.Format))
	}
	if cfg.Logging.MaxSizeMB < 1 {
		errs = append(errs, "logging.max_size_mb must be at least 1")
	}
	if cfg.Logging.MaxBackups < 0 {
		errs = append(errs, "logging.max_backups cannot be negative")
	}

	errs = append(errs, validateDock(&cfg.Dock)...)

	switch cfg.Appearance.ColorScheme {
	case ColorSchemeDark, ColorSchemeLight:
	default:
		errs = append(errs, fmt.Sprintf("appearance.color_scheme must be dark or light, got %q",
			cfg.Appearance.ColorScheme))
	}
	errs = append(errs, validatePalette("appearance.dark_palette", &cfg.Appearance.DarkPalette)...)
	errs = append(errs, validatePalette("appearance.light_palette", &cfg.Appearance.LightPalette)...)

	if cfg.Demo.LayoutName == "" {
		errs = append(errs, "demo.layout_name cannot be empty")
	}
	for i, title := range cfg.Demo.Tabs {
		if strings.TrimSpace(title) == "" {
			errs = append(errs, fmt.Sprintf("demo.tabs[%d] cannot be empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func validateDock(d *DockConfig) []string {
	var errs []string
	switch d.ClosingPolicy {
	case ClosingSelectedTab, ClosingAllTabs, ClosingUnavailable:
	default:
		errs = append(errs, fmt.Sprintf("dock.closing_policy must be selected-tab, all-tabs or unavailable, got %q",
			d.ClosingPolicy))
	}
	if d.FloatingWidth <= 0 {
		errs = append(errs, "dock.floating_width must be positive")
	}
	if d.FloatingHeight <= 0 {
		errs = append(errs, "dock.floating_height must be positive")
	}
	if d.HeaderRetryDelayMs < 1 {
		errs = append(errs, "dock.header_retry_delay_ms must be at least 1")
	}
	if d.ZoneSize <= 0 {
		errs = append(errs, "dock.zone_size must be positive")
	}
	if d.ZoneOffset <= 0 {
		errs = append(errs, "dock.zone_offset must be positive")
	}
	if d.ZoneOffset > 0 && d.ZoneSize > 2*d.ZoneOffset {
		errs = append(errs, "dock.zone_size cannot exceed twice dock.zone_offset (zones would overlap)")
	}
	return errs
}

func validatePalette(prefix string, p *ColorPalette) []string {
	fields := []struct{ name, value string }{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}
	var errs []string
	for _, f := range fields {
		if f.value != "" && !hexColorPattern.MatchString(f.value) {
			errs = append(errs, fmt.Sprintf("%s.%s must be a hex color, got %q", prefix, f.name, f.value))
		}
	}
	return errs
}
