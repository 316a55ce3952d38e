package app

import "github.com/splitkit/splitkit/internal/layout"

// centerBand is the fraction of a pane, centered on each axis, that
// counts as the swap zone. Outside it the nearest edge wins.
const centerBand = 0.5

// edgeMargin is how close to a window edge, in cells, a drag must come
// to count as a root-level drop instead of a drop on the pane there.
const edgeMargin = 1.0

// classifyDropZone maps a position inside rect to the drop zone it
// lands in.
func classifyDropZone(rect layout.Rect, pos layout.Point) layout.DropZone {
	if rect.Width <= 0 || rect.Height <= 0 {
		return layout.DropCenter
	}
	rx := (pos.X - rect.X) / rect.Width
	ry := (pos.Y - rect.Y) / rect.Height

	lo := (1 - centerBand) / 2
	hi := 1 - lo
	if rx >= lo && rx <= hi && ry >= lo && ry <= hi {
		return layout.DropCenter
	}

	// Nearest edge, measured in relative units.
	zone := layout.DropLeft
	best := rx
	if 1-rx < best {
		zone, best = layout.DropRight, 1-rx
	}
	if ry < best {
		zone, best = layout.DropTop, ry
	}
	if 1-ry < best {
		zone = layout.DropBottom
	}
	return zone
}

// rootZoneAt reports the window-edge drop zone for a position, if the
// position lies within edgeMargin of an edge.
func rootZoneAt(window layout.Size, pos layout.Point) (layout.DropZone, bool) {
	switch {
	case pos.X < edgeMargin:
		return layout.DropLeft, true
	case pos.X > window.Width-edgeMargin:
		return layout.DropRight, true
	case pos.Y < edgeMargin:
		return layout.DropTop, true
	case pos.Y > window.Height-edgeMargin:
		return layout.DropBottom, true
	}
	return layout.DropCenter, false
}

// paneAt returns the pane whose rect contains the position.
func paneAt(rects []layout.PaneRect, pos layout.Point) (layout.PaneRect, bool) {
	for _, pr := range rects {
		if pr.Rect.Contains(pos) {
			return pr, true
		}
	}
	return layout.PaneRect{}, false
}
