package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/splitkit/splitkit/internal/config"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Appearance.BorderStyle == "" {
		t.Error("Expected default border style to be set")
	}
	if cfg.Appearance.Theme == "" {
		t.Error("Expected default theme to be set")
	}
	if cfg.Layout.MinRatio <= 0 || cfg.Layout.MinRatio >= 0.5 {
		t.Errorf("Expected min ratio in (0, 0.5), got %g", cfg.Layout.MinRatio)
	}
	if cfg.Layout.BorderHitThreshold <= 0 {
		t.Error("Expected positive border hit threshold")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config must validate: %v", err)
	}
}

func TestDefaultKeybindings(t *testing.T) {
	cfg := config.DefaultConfig()

	panes := cfg.Keybindings.Panes
	if panes == nil {
		t.Fatal("Pane keybindings are nil")
	}

	requiredActions := []string{
		"split_horizontal",
		"split_vertical",
		"close_pane",
		"quit",
	}

	for _, action := range requiredActions {
		keys, ok := panes[action]
		if !ok {
			t.Errorf("Expected %s keybinding to exist", action)
			continue
		}
		if len(keys) == 0 {
			t.Errorf("Expected %s to have at least one key bound", action)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.UserConfig)
	}{
		{"zero min ratio", func(c *config.UserConfig) { c.Layout.MinRatio = 0 }},
		{"half min ratio", func(c *config.UserConfig) { c.Layout.MinRatio = 0.5 }},
		{"zero hit threshold", func(c *config.UserConfig) { c.Layout.BorderHitThreshold = 0 }},
		{"negative gap", func(c *config.UserConfig) { c.Appearance.Gap = -1 }},
		{"unknown border style", func(c *config.UserConfig) { c.Appearance.BorderStyle = "wavy" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

// =============================================================================
// File Round-Trip Tests
// =============================================================================

func TestWriteDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := config.WriteDefaultConfig(path); err != nil {
		t.Fatalf("WriteDefaultConfig failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Config file not written: %v", err)
	}

	cfg := config.DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		t.Fatalf("Written default config must parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Written default config must validate: %v", err)
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	partial := []byte("[layout]\nmin_ratio = 0.2\n")

	cfg := config.DefaultConfig()
	if err := toml.Unmarshal(partial, cfg); err != nil {
		t.Fatalf("Partial config must parse: %v", err)
	}

	if cfg.Layout.MinRatio != 0.2 {
		t.Errorf("Expected min ratio override 0.2, got %g", cfg.Layout.MinRatio)
	}
	if cfg.Appearance.BorderStyle != "rounded" {
		t.Errorf("Unset keys must keep defaults, got border style %q", cfg.Appearance.BorderStyle)
	}
}

// =============================================================================
// KeybindRegistry Tests
// =============================================================================

func TestKeybindRegistry_GetKeys(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	keys := registry.GetKeys("split_horizontal")
	if len(keys) == 0 {
		t.Error("Expected split_horizontal to have keys")
	}
}

func TestKeybindRegistry_GetAction(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	keys := registry.GetKeys("split_horizontal")
	if len(keys) == 0 {
		t.Skip("No keys bound to split_horizontal")
	}

	action := registry.GetAction(keys[0])
	if action != "split_horizontal" {
		t.Errorf("Expected action 'split_horizontal', got %q", action)
	}
}

func TestKeybindRegistry_GetKeysForDisplay(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	display := registry.GetKeysForDisplay("quit")
	if display == "" {
		t.Error("Expected display string for quit")
	}
}

func TestKeybindRegistry_UnknownAction(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	keys := registry.GetKeys("nonexistent_action")
	if len(keys) != 0 {
		t.Errorf("Expected empty keys for nonexistent action, got %v", keys)
	}
}

func TestKeybindRegistry_UnknownKey(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	action := registry.GetAction("ctrl+shift+alt+super+hyper+x")
	if action != "" {
		t.Errorf("Expected empty action for unbound key, got %q", action)
	}
}

func TestKeybindRegistry_CaseInsensitiveLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings.Panes = map[string][]string{"quit": {"Ctrl+Q"}}
	registry := config.NewKeybindRegistry(cfg)

	if action := registry.GetAction("ctrl+q"); action != "quit" {
		t.Errorf("Expected 'quit' for lowercased key, got %q", action)
	}
}

// =============================================================================
// Key Normalizer Tests
// =============================================================================

func TestKeyNormalizer(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"ctrl+a", "ctrl+a"},
		{"Ctrl+A", "ctrl+a"},
		{"CTRL+A", "ctrl+a"},
		{"shift+ctrl+a", "ctrl+shift+a"},
		{"return", "return"},
		{"escape", "escape"},
		{"enter", "enter"},
		{"esc", "esc"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := normalizer.NormalizeKey(tc.input)
			if len(got) == 0 {
				t.Errorf("NormalizeKey(%q) returned empty slice", tc.input)
				return
			}
			found := false
			for _, k := range got {
				if k == tc.expected {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("NormalizeKey(%q) = %v, want to contain %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestKeyNormalizer_ValidateKey(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input   string
		isValid bool
	}{
		{"ctrl+a", true},
		{"n", true},
		{"enter", true},
		{"esc", true},
		{"tab", true},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			valid, _ := normalizer.ValidateKey(tc.input)
			if valid != tc.isValid {
				t.Errorf("ValidateKey(%q) = %v, want %v", tc.input, valid, tc.isValid)
			}
		})
	}
}

// =============================================================================
// Help Section Tests
// =============================================================================

func TestGetKeybindingsSections(t *testing.T) {
	sections := config.GetKeybindings(nil)
	if len(sections) == 0 {
		t.Fatal("Expected help sections from default bindings")
	}
	for _, s := range sections {
		if len(s.Bindings) == 0 {
			t.Errorf("Section %q has no bindings", s.Title)
		}
	}
}

func TestActionDescriptions(t *testing.T) {
	requiredDescriptions := []string{
		"split_horizontal",
		"split_vertical",
		"close_pane",
		"toggle_snap",
		"quit",
	}

	for _, action := range requiredDescriptions {
		desc, ok := config.ActionDescriptions[action]
		if !ok {
			t.Errorf("Expected description for action %q", action)
			continue
		}
		if desc == "" {
			t.Errorf("Description for %q should not be empty", action)
		}
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkKeybindRegistry_GetAction(b *testing.B) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.GetAction("s")
	}
}

func BenchmarkKeybindRegistry_GetKeys(b *testing.B) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.GetKeys("split_horizontal")
	}
}

func BenchmarkNormalizeKey(b *testing.B) {
	normalizer := config.NewKeyNormalizer()
	keys := []string{"ctrl+a", "Ctrl+Shift+B", "alt+1", "return"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = normalizer.NormalizeKey(keys[i%len(keys)])
	}
}
