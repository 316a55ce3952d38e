package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/splitkit/splitkit/internal/layout"
)

func mousePoint(m tea.Mouse) layout.Point {
	return layout.Point{X: float64(m.X), Y: float64(m.Y)}
}

// handleMouseClick starts one of the two gestures: grabbing a border to
// resize, or grabbing a pane's tab bar to move it. A plain click inside
// a pane focuses it.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}
	pos := mousePoint(mouse)
	window := m.window()
	if pos.Y >= window.Height {
		return m, nil
	}

	rects := m.layout.Compute(window)

	// The tab bar is the pane's top row; dragging it moves the pane.
	if pr, ok := paneAt(rects, pos); ok && int(pos.Y) == int(pr.Rect.Y) {
		m.focused = pr.ID
		m.paneDrag = paneDrag{active: true, source: pr.ID}
		return m, nil
	}

	if m.layout.BeginDragWithin(pos, window, m.cfg.Layout.BorderHitThreshold) {
		m.borderDragging = true
		return m, nil
	}

	if pr, ok := paneAt(rects, pos); ok {
		m.focused = pr.ID
	}
	return m, nil
}

// handleMouseMotion advances whichever gesture is active.
func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	pos := mousePoint(msg.Mouse())

	if m.borderDragging {
		m.layout.DragBorderWithMin(pos, m.cfg.Layout.MinRatio)
		return m, nil
	}

	if m.paneDrag.active {
		m.updateDropTarget(pos)
		return m, nil
	}
	return m, nil
}

// updateDropTarget reclassifies the hovered drop zone and refreshes the
// preview rect via a simulated drop.
func (m *Model) updateDropTarget(pos layout.Point) {
	window := m.window()
	m.paneDrag.valid = false

	if zone, ok := rootZoneAt(window, pos); ok {
		m.paneDrag.target = 0
		m.paneDrag.zone = zone
	} else {
		pr, ok := paneAt(m.layout.Compute(window), pos)
		if !ok || pr.ID == m.paneDrag.source {
			return
		}
		m.paneDrag.target = pr.ID
		m.paneDrag.zone = classifyDropZone(pr.Rect, pos)
	}

	preview, ok := m.layout.SimulateDrop(
		m.paneDrag.source, m.paneDrag.target, m.paneDrag.zone, true, window)
	if !ok {
		return
	}
	m.paneDrag.preview = preview
	m.paneDrag.valid = true
}

// handleMouseRelease commits the active gesture.
func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	if m.borderDragging {
		m.layout.EndDrag()
		m.borderDragging = false
		m.applySnap()
		return m, nil
	}

	if m.paneDrag.active {
		m.commitPaneDrop()
		m.paneDrag = paneDrag{}
		return m, nil
	}
	return m, nil
}

// commitPaneDrop applies the previewed drop for real.
func (m *Model) commitPaneDrop() {
	if !m.paneDrag.valid {
		return
	}
	window := m.window()
	var moved bool
	if m.paneDrag.target == 0 {
		moved = m.layout.RestructureMoveToRoot(m.paneDrag.source, m.paneDrag.zone, window)
	} else {
		moved = m.layout.RestructureMovePane(m.paneDrag.source, m.paneDrag.target, m.paneDrag.zone, window)
	}
	if moved {
		m.focused = m.paneDrag.source
		m.applySnap()
	}
}
