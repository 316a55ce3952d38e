// Package theme provides color themes and styling for splitkit.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	ok := tint.SetTintID(themeName)
	if !ok {
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// PaneAccent returns a stable accent color for a pane, cycled by id so
// neighbors stay distinguishable as panes come and go.
func PaneAccent(id uint64) color.Color {
	t := Current()
	if t == nil {
		fallback := []color.Color{
			lipgloss.Color("#5c5cff"), lipgloss.Color("#00cd00"),
			lipgloss.Color("#cdcd00"), lipgloss.Color("#cd00cd"),
			lipgloss.Color("#00cdcd"), lipgloss.Color("#cd0000"),
		}
		return fallback[id%uint64(len(fallback))]
	}
	palette := []color.Color{t.Blue, t.Green, t.Yellow, t.Purple, t.Cyan, t.Red}
	return palette[id%uint64(len(palette))]
}

// Pane border colors
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#808090")
	}
	return t.BrightBlack
}

func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

func BorderDragging() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffff00")
	}
	return t.BrightYellow
}

// Drop preview overlay colors
func DropPreviewBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

func DropPreviewFill() color.Color {
	return lipgloss.Color("#1a2a1a")
}

// Tab bar colors
func TabBarFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

func TabBarBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// Status bar colors
func StatusBarBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

func StatusBarFg() color.Color {
	return lipgloss.Color("#a0a0b0")
}

func StatusBarAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// Help menu colors
func HelpKeyBadge() color.Color {
	return lipgloss.Color("5")
}

func HelpKeyBadgeBg() color.Color {
	return lipgloss.Color("0")
}

func HelpGray() color.Color {
	return lipgloss.Color("8")
}

func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// CLI table colors
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

func CLITableDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	return fmt.Sprintf("#%02x%02x%02x", r8, g8, b8)
}
