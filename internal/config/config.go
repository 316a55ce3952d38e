// Package config handles user configuration loading, defaults, and
// keybinding resolution for splitkit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// AppearanceConfig controls pane chrome and cell geometry.
type AppearanceConfig struct {
	// Gap is the spacing in pixels between adjacent pane contents.
	Gap float64 `toml:"gap"`
	// Padding is the inner padding applied on every pane edge.
	Padding float64 `toml:"padding"`
	// TabBarHeight is the height of the per-pane tab bar. Zero hides it.
	TabBarHeight float64 `toml:"tab_bar_height"`
	// CellWidth and CellHeight describe the terminal cell grid used
	// when snapping split ratios.
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	// BorderStyle is one of "rounded", "normal", "thick", "double".
	BorderStyle string `toml:"border_style"`
	// Theme names a bubbletint theme for pane accents.
	Theme string `toml:"theme"`
}

// LayoutConfig tunes the split-tree behavior.
type LayoutConfig struct {
	// MinRatio is the smallest ratio a border drag may produce.
	MinRatio float64 `toml:"min_ratio"`
	// BorderHitThreshold is how close (in pixels) the cursor must be
	// to a border for a drag to grab it.
	BorderHitThreshold float64 `toml:"border_hit_threshold"`
	// SnapToCells aligns split ratios to the cell grid after a drag.
	SnapToCells bool `toml:"snap_to_cells"`
	// RestoreSession reloads the previous split arrangement on start.
	RestoreSession bool `toml:"restore_session"`
}

// KeybindingsConfig maps actions to the keys that trigger them.
type KeybindingsConfig struct {
	Panes map[string][]string `toml:"panes"`
}

// UserConfig is the root of the TOML configuration file.
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Layout      LayoutConfig      `toml:"layout"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Gap:          1,
			Padding:      0,
			TabBarHeight: 1,
			CellWidth:    1,
			CellHeight:   1,
			BorderStyle:  "rounded",
			Theme:        "tokyo_night",
		},
		Layout: LayoutConfig{
			MinRatio:           0.1,
			BorderHitThreshold: 8,
			SnapToCells:        true,
			RestoreSession:     true,
		},
		Keybindings: KeybindingsConfig{
			Panes: map[string][]string{
				"split_horizontal": {"s"},
				"split_vertical":   {"v"},
				"close_pane":       {"x"},
				"next_pane":        {"tab"},
				"prev_pane":        {"shift+tab"},
				"swap_pane":        {"w"},
				"move_left":        {"shift+h"},
				"move_right":       {"shift+l"},
				"move_up":          {"shift+k"},
				"move_down":        {"shift+j"},
				"equalize":         {"e"},
				"toggle_snap":      {"g"},
				"toggle_help":      {"?"},
				"quit":             {"q", "ctrl+c"},
			},
		},
	}
}

// ActionDescriptions maps action names to human-readable help text.
var ActionDescriptions = map[string]string{
	"split_horizontal": "Split focused pane left/right",
	"split_vertical":   "Split focused pane top/bottom",
	"close_pane":       "Close focused pane",
	"next_pane":        "Focus next pane",
	"prev_pane":        "Focus previous pane",
	"swap_pane":        "Swap focused pane with the next",
	"move_left":        "Move pane to the left edge",
	"move_right":       "Move pane to the right edge",
	"move_up":          "Move pane to the top edge",
	"move_down":        "Move pane to the bottom edge",
	"equalize":         "Re-equalize sibling ratios",
	"toggle_snap":      "Toggle cell-grid snapping",
	"toggle_help":      "Toggle help overlay",
	"quit":             "Quit",
}

// GetConfigPath returns the resolved configuration file location,
// creating parent directories as needed.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile("splitkit/config.toml")
}

// LoadUserConfig reads the configuration file, writing a commented
// default on first run. Missing keys fall back to defaults.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("could not determine config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if werr := WriteDefaultConfig(path); werr != nil {
			return nil, werr
		}
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefaultConfig writes the commented default configuration to path.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# splitkit configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# Edit keybindings by modifying the arrays of keys for each action\n")
	sb.WriteString("# Multiple keys can be bound to the same action\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects values the layout engine cannot work with.
func (c *UserConfig) Validate() error {
	if c.Layout.MinRatio <= 0 || c.Layout.MinRatio >= 0.5 {
		return fmt.Errorf("layout.min_ratio must be in (0, 0.5), got %g", c.Layout.MinRatio)
	}
	if c.Layout.BorderHitThreshold <= 0 {
		return fmt.Errorf("layout.border_hit_threshold must be positive, got %g", c.Layout.BorderHitThreshold)
	}
	if c.Appearance.CellWidth < 0 || c.Appearance.CellHeight < 0 {
		return fmt.Errorf("appearance cell size must not be negative")
	}
	if c.Appearance.Gap < 0 || c.Appearance.Padding < 0 || c.Appearance.TabBarHeight < 0 {
		return fmt.Errorf("appearance decorations must not be negative")
	}
	switch c.Appearance.BorderStyle {
	case "rounded", "normal", "thick", "double":
	default:
		return fmt.Errorf("unknown border style %q", c.Appearance.BorderStyle)
	}
	return nil
}
