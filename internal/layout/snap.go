package layout

import "math"

// Cell snapping. Renderers place a glyph grid inside each pane; snapping
// split ratios so every content area is a whole number of cells keeps
// glyphs from being clipped mid-character at pane edges.

// Minimum content size of a pane, in cells, enforced by the snapping pass.
const (
	minCellCols = 4.0
	minCellRows = 2.0
)

// minRatioForAxis computes the ratio floor for a split of rect so that
// neither side's content area drops below minCellCols/minCellRows once
// decoration overhead is subtracted. The result is kept inside
// [0.05, 0.45] so a degenerate rect can never pin the ratio past center.
func minRatioForAxis(rect Rect, cell Size, dec Decorations, axis Axis) float64 {
	halfGap := dec.Gap / 2
	if axis == Horizontal {
		if rect.Width < 1 {
			return 0.1
		}
		minTilingW := minCellCols*cell.Width + halfGap + 2*dec.Padding
		return clamp(minTilingW/rect.Width, 0.05, 0.45)
	}
	if rect.Height < 1 {
		return 0.1
	}
	minTilingH := minCellRows*cell.Height + halfGap + dec.TabBarHeight + dec.Padding
	return clamp(minTilingH/rect.Height, 0.05, 0.45)
}

// snapRatios walks every split, derives the left/top child's content extent
// from the current ratio and decoration metrics, rounds that extent to the
// nearest whole multiple of the cell size, and re-derives the ratio from
// the rounded extent, clamped to the minimum-cell floor. Both children are
// then snapped within their own sub-rects.
func (n *node) snapRatios(rect Rect, cell Size, dec Decorations) {
	if n.isLeaf() {
		return
	}

	halfGap := dec.Gap / 2

	if n.axis == Horizontal {
		if rect.Width < 1 || cell.Width < 1 {
			return
		}
		leftTilingW := rect.Width * n.ratio
		contentW := leftTilingW - halfGap - 2*dec.Padding
		if contentW > 0 {
			snappedW := math.Round(contentW/cell.Width) * cell.Width
			newTilingW := snappedW + halfGap + 2*dec.Padding
			minR := minRatioForAxis(rect, cell, dec, Horizontal)
			n.ratio = clamp(newTilingW/rect.Width, minR, 1-minR)
		}
	} else {
		if rect.Height < 1 || cell.Height < 1 {
			return
		}
		topTilingH := rect.Height * n.ratio
		contentH := topTilingH - halfGap - dec.TabBarHeight - dec.Padding
		if contentH > 0 {
			snappedH := math.Round(contentH/cell.Height) * cell.Height
			newTilingH := snappedH + halfGap + dec.TabBarHeight + dec.Padding
			minR := minRatioForAxis(rect, cell, dec, Vertical)
			n.ratio = clamp(newTilingH/rect.Height, minR, 1-minR)
		}
	}

	leftRect, rightRect := splitRect(rect, n.axis, n.ratio)
	n.left.snapRatios(leftRect, cell, dec)
	n.right.snapRatios(rightRect, cell, dec)
}
