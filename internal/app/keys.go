package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/splitkit/splitkit/internal/layout"
)

// handleKey dispatches a key press through the keybind registry.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showHelp {
		// Any bound help/quit key closes the overlay; esc always does.
		action := m.keys.GetAction(key)
		if key == "esc" || action == "toggle_help" || action == "quit" {
			m.showHelp = false
		}
		return m, nil
	}

	return m, m.applyAction(m.keys.GetAction(key))
}

// applyAction executes one named action and returns any follow-up command.
func (m *Model) applyAction(action string) tea.Cmd {
	switch action {
	case "split_horizontal":
		m.splitFocused(layout.Horizontal)
	case "split_vertical":
		m.splitFocused(layout.Vertical)
	case "close_pane":
		m.closeFocused()
	case "next_pane":
		m.cycleFocus(1)
	case "prev_pane":
		m.cycleFocus(-1)
	case "swap_pane":
		m.swapWithNext()
	case "move_left":
		m.moveFocusedToEdge(layout.DropLeft)
	case "move_right":
		m.moveFocusedToEdge(layout.DropRight)
	case "move_up":
		m.moveFocusedToEdge(layout.DropTop)
	case "move_down":
		m.moveFocusedToEdge(layout.DropBottom)
	case "equalize":
		m.layout.Equalize()
		m.applySnap()
	case "toggle_snap":
		m.snapEnabled = !m.snapEnabled
		m.applySnap()
	case "toggle_help":
		m.showHelp = true
	case "quit":
		// The session is saved once, after the program exits.
		return tea.Quit
	}
	return nil
}

// splitFocused divides the focused pane and moves focus to the new one.
// On an empty layout the allocated pane becomes the root.
func (m *Model) splitFocused(axis layout.Axis) {
	id := m.layout.Split(m.focused, axis)
	if !m.layout.Contains(id) {
		m.layout.InsertPane(0, id, axis, false)
	}
	m.focused = id
	m.applySnap()
}

func (m *Model) closeFocused() {
	if m.focused == 0 {
		return
	}
	ids := m.layout.PaneIDs()
	next := layout.PaneID(0)
	for i, id := range ids {
		if id == m.focused {
			if len(ids) > 1 {
				next = ids[(i+1)%len(ids)]
				if next == m.focused {
					next = ids[0]
				}
			}
			break
		}
	}
	m.layout.Remove(m.focused)
	m.focused = next
	m.applySnap()
}

// cycleFocus moves focus forward or backward in tree order.
func (m *Model) cycleFocus(delta int) {
	ids := m.layout.PaneIDs()
	if len(ids) == 0 {
		return
	}
	for i, id := range ids {
		if id == m.focused {
			m.focused = ids[(i+delta+len(ids))%len(ids)]
			return
		}
	}
	m.focused = ids[0]
}

// swapWithNext exchanges the focused pane with its successor in tree
// order. Positions swap; focus follows the pane, not the slot.
func (m *Model) swapWithNext() {
	ids := m.layout.PaneIDs()
	if len(ids) < 2 {
		return
	}
	for i, id := range ids {
		if id == m.focused {
			other := ids[(i+1)%len(ids)]
			m.layout.MovePane(m.focused, other, layout.DropCenter)
			return
		}
	}
}

// moveFocusedToEdge pulls the focused pane out and docks it at a window
// edge, rebuilding the remaining panes into a balanced arrangement.
func (m *Model) moveFocusedToEdge(zone layout.DropZone) {
	if m.focused == 0 {
		return
	}
	if m.layout.RestructureMoveToRoot(m.focused, zone, m.window()) {
		m.applySnap()
	}
}
