package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/splitkit/splitkit/internal/config"
	"github.com/splitkit/splitkit/internal/layout"
	"github.com/splitkit/splitkit/internal/theme"
)

// Z-order of the composited layers.
const (
	zPane = iota
	zDropPreview
	zStatusBar
	zHelp
)

func borderForStyle(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(m.canvas().Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

func (m *Model) canvas() *lipgloss.Canvas {
	if m.width <= 0 || m.height <= 0 {
		return lipgloss.NewCanvas(0, 0)
	}
	canvas := lipgloss.NewCanvas(m.width, m.height)

	layers := make([]*lipgloss.Layer, 0, 8)

	for _, pr := range m.layout.Compute(m.window()) {
		if layer := m.paneLayer(pr); layer != nil {
			layers = append(layers, layer)
		}
	}

	if m.paneDrag.active && m.paneDrag.valid {
		if layer := m.dropPreviewLayer(m.paneDrag.preview); layer != nil {
			layers = append(layers, layer)
		}
	}

	layers = append(layers, m.statusBarLayer())

	if m.showHelp {
		if layer := m.helpLayer(); layer != nil {
			layers = append(layers, layer)
		}
	}

	canvas.Compose(lipgloss.NewCompositor(layers...))
	return canvas
}

// cellBounds converts a tiling rect to whole-cell x, y, width, height.
// Edges are derived from the rect's corners so adjacent panes share
// borders without gaps from rounding.
func cellBounds(r layout.Rect) (x, y, w, h int) {
	x = int(r.X)
	y = int(r.Y)
	w = int(r.X+r.Width) - x
	h = int(r.Y+r.Height) - y
	return x, y, w, h
}

func (m *Model) paneLayer(pr layout.PaneRect) *lipgloss.Layer {
	x, y, w, h := cellBounds(pr.Rect)
	if w < 2 || h < 2 {
		return nil
	}

	borderColor := theme.BorderUnfocused()
	switch {
	case m.paneDrag.active && m.paneDrag.source == pr.ID:
		borderColor = theme.BorderDragging()
	case pr.ID == m.focused:
		borderColor = theme.BorderFocused()
	}

	title := fmt.Sprintf(" %d ", pr.ID)
	body := lipgloss.NewStyle().
		Foreground(theme.PaneAccent(uint64(pr.ID))).
		Render(title)

	box := lipgloss.NewStyle().
		Width(w - 2).
		Height(h - 2).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Border(borderForStyle(m.cfg.Appearance.BorderStyle)).
		BorderForeground(borderColor).
		Render(body)

	return lipgloss.NewLayer(box).X(x).Y(y).Z(zPane).ID(fmt.Sprintf("pane-%d", pr.ID))
}

func (m *Model) dropPreviewLayer(r layout.Rect) *lipgloss.Layer {
	x, y, w, h := cellBounds(r)
	if w < 2 || h < 2 {
		return nil
	}
	box := lipgloss.NewStyle().
		Width(w - 2).
		Height(h - 2).
		Background(theme.DropPreviewFill()).
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.DropPreviewBorder()).
		Render("")
	return lipgloss.NewLayer(box).X(x).Y(y).Z(zDropPreview).ID("drop-preview")
}

func (m *Model) statusBarLayer() *lipgloss.Layer {
	snap := "off"
	if m.snapEnabled {
		snap = "on"
	}
	left := fmt.Sprintf(" %d pane(s) | focus %d | snap %s", len(m.layout.PaneIDs()), m.focused, snap)
	right := "? help | q quit "

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	bar := lipgloss.NewStyle().
		Width(m.width).
		Foreground(theme.StatusBarFg()).
		Background(theme.StatusBarBg()).
		Render(left + strings.Repeat(" ", pad) + right)

	return lipgloss.NewLayer(bar).X(0).Y(m.height - statusBarHeight).Z(zStatusBar).ID("status")
}

func (m *Model) helpLayer() *lipgloss.Layer {
	keyStyle := lipgloss.NewStyle().
		Foreground(theme.HelpKeyBadge()).
		Background(theme.HelpKeyBadgeBg())
	titleStyle := lipgloss.NewStyle().Foreground(theme.CLITableHeader()).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.HelpGray())

	var b strings.Builder
	for _, section := range config.GetKeybindings(m.keys) {
		b.WriteString(titleStyle.Render(section.Title))
		b.WriteString("\n")
		for _, binding := range section.Bindings {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(binding.Key), descStyle.Render(binding.Description)))
		}
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.HelpBorder()).
		Render(strings.TrimRight(b.String(), "\n"))

	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x := (m.width - w) / 2
	y := (m.height - h) / 2
	if x < 0 || y < 0 {
		return nil
	}
	return lipgloss.NewLayer(box).X(x).Y(y).Z(zHelp).ID("help")
}
