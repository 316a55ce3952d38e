// Package app implements the interactive pane manager: a split-tree of
// panes driven by keyboard actions, border drags, and drag-and-drop.
package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/splitkit/splitkit/internal/config"
	"github.com/splitkit/splitkit/internal/layout"
	"github.com/splitkit/splitkit/internal/session"
)

// statusBarHeight is the number of rows reserved at the bottom.
const statusBarHeight = 1

// paneDrag tracks an in-progress drag of a pane onto a drop zone.
type paneDrag struct {
	active  bool
	source  layout.PaneID
	target  layout.PaneID // zero means a root-level (window edge) drop
	zone    layout.DropZone
	preview layout.Rect
	valid   bool
}

// Model is the bubbletea model for the pane manager.
type Model struct {
	cfg   *config.UserConfig
	keys  *config.KeybindRegistry
	store *session.Store

	layout  *layout.SplitLayout
	focused layout.PaneID

	width  int
	height int

	snapEnabled bool
	showHelp    bool

	borderDragging bool
	paneDrag       paneDrag
}

// ModelOptions configures a new Model.
type ModelOptions struct {
	Config   *config.UserConfig
	Registry *config.KeybindRegistry
	Store    *session.Store
	// Restore is the saved arrangement to resume, or nil to start with a
	// single pane.
	Restore *layout.Snapshot
}

// NewModel builds the initial model.
func NewModel(opts ModelOptions) *Model {
	m := &Model{
		cfg:         opts.Config,
		keys:        opts.Registry,
		store:       opts.Store,
		snapEnabled: opts.Config.Layout.SnapToCells,
	}

	if opts.Restore != nil {
		m.layout = layout.FromSnapshot(opts.Restore)
		if ids := m.layout.PaneIDs(); len(ids) > 0 {
			m.focused = ids[0]
		}
		log.Debug("restored session", "panes", len(m.layout.PaneIDs()))
	} else {
		m.layout, m.focused = layout.WithInitialPane()
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout.Compute(m.window())
		m.applySnap()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)

	case ConfigReloadedMsg:
		m.SetConfig(msg.Config)
		return m, nil
	}
	return m, nil
}

// window returns the region the split tree tiles, excluding the status
// bar.
func (m *Model) window() layout.Size {
	h := m.height - statusBarHeight
	if h < 0 {
		h = 0
	}
	return layout.Size{Width: float64(m.width), Height: float64(h)}
}

// Dragging reports whether any mouse gesture is in progress. The
// program's event filter drops motion events outside gestures.
func (m *Model) Dragging() bool {
	return m.borderDragging || m.paneDrag.active
}

func (m *Model) cell() layout.Size {
	return layout.Size{
		Width:  m.cfg.Appearance.CellWidth,
		Height: m.cfg.Appearance.CellHeight,
	}
}

func (m *Model) decorations() layout.Decorations {
	return layout.Decorations{
		Gap:          m.cfg.Appearance.Gap,
		Padding:      m.cfg.Appearance.Padding,
		TabBarHeight: m.cfg.Appearance.TabBarHeight,
	}
}

// applySnap aligns ratios to the cell grid when snapping is enabled.
func (m *Model) applySnap() {
	if !m.snapEnabled {
		return
	}
	m.layout.SnapRatiosToCells(m.window(), m.cell(), m.decorations())
}

// SetConfig swaps in a freshly reloaded configuration.
func (m *Model) SetConfig(cfg *config.UserConfig) {
	m.cfg = cfg
	m.keys = config.NewKeybindRegistry(cfg)
	m.snapEnabled = cfg.Layout.SnapToCells
	m.applySnap()
}

// ConfigReloadedMsg carries a live-reloaded configuration into Update.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
}

// SaveSession persists the current arrangement. Failures are logged,
// never fatal; losing a session is not worth blocking quit.
func (m *Model) SaveSession() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.layout.Snapshot()); err != nil {
		log.Warn("failed to save session", "err", err)
	}
}
