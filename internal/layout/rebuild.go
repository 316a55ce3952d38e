package layout

// Tree reconstruction from an unordered rect set. Drag-and-drop moves pluck
// a pane out of an arbitrarily deep arrangement; rebuilding the remaining
// panes from their rects yields a balanced tree instead of inheriting the
// old nesting.

// rebuildEps is the coordinate tolerance when matching rect edges against
// candidate split lines.
const rebuildEps = 0.5

// trySplit looks for a straight cut through the bounding box of the rects
// along the given axis. Candidate cut coordinates are the trailing edges
// (right or bottom) of the rects, excluding the bounding box's own far
// edge. A candidate is valid only when every rect falls cleanly on one side
// and both sides are non-empty. On success it returns the two groups and
// the cut's ratio within the bounding box.
func trySplit(rects []PaneRect, axis Axis) (before, after []PaneRect, ratio float64, ok bool) {
	if len(rects) < 2 {
		return nil, nil, 0, false
	}

	minX, minY := rects[0].Rect.X, rects[0].Rect.Y
	maxX := rects[0].Rect.X + rects[0].Rect.Width
	maxY := rects[0].Rect.Y + rects[0].Rect.Height
	for _, pr := range rects[1:] {
		r := pr.Rect
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
		maxX = max(maxX, r.X+r.Width)
		maxY = max(maxY, r.Y+r.Height)
	}

	var candidates []float64
	for _, pr := range rects {
		var edge, far float64
		if axis == Horizontal {
			edge, far = pr.Rect.X+pr.Rect.Width, maxX
		} else {
			edge, far = pr.Rect.Y+pr.Rect.Height, maxY
		}
		if abs(edge-far) <= rebuildEps {
			continue // the bounding box edge is not an interior cut
		}
		dup := false
		for _, c := range candidates {
			if abs(c-edge) < rebuildEps {
				dup = true
				break
			}
		}
		if !dup {
			candidates = append(candidates, edge)
		}
	}

	for _, cut := range candidates {
		before = before[:0]
		after = after[:0]
		clean := true
		for _, pr := range rects {
			var lead, trail float64
			if axis == Horizontal {
				lead, trail = pr.Rect.X, pr.Rect.X+pr.Rect.Width
			} else {
				lead, trail = pr.Rect.Y, pr.Rect.Y+pr.Rect.Height
			}
			switch {
			case trail <= cut+rebuildEps:
				before = append(before, pr)
			case lead >= cut-rebuildEps:
				after = append(after, pr)
			default:
				clean = false
			}
			if !clean {
				break
			}
		}
		if clean && len(before) > 0 && len(after) > 0 {
			if axis == Horizontal {
				ratio = (cut - minX) / (maxX - minX)
			} else {
				ratio = (cut - minY) / (maxY - minY)
			}
			return before, after, ratio, true
		}
	}

	return nil, nil, 0, false
}

// buildTreeFromRects produces a tree whose tiling reproduces the given rect
// set, preferring cuts along the primary axis. The input is assumed to tile
// some rectangular region (it came from computeRects of a valid tree). If
// no straight cut exists on either axis (a pinwheel arrangement), it falls
// back to a left-deep chain of primary-axis splits so the function always
// succeeds, at the cost of the original geometry.
func buildTreeFromRects(rects []PaneRect, primary Axis) *node {
	switch len(rects) {
	case 0:
		return nil
	case 1:
		return leafNode(rects[0].ID)
	}

	axis := primary
	before, after, ratio, ok := trySplit(rects, primary)
	if !ok {
		axis = primary.Orthogonal()
		before, after, ratio, ok = trySplit(rects, axis)
	}
	if !ok {
		n := leafNode(rects[0].ID)
		for _, pr := range rects[1:] {
			n = splitNode(primary, 0.5, n, leafNode(pr.ID))
		}
		return n
	}

	return splitNode(axis, ratio,
		buildTreeFromRects(before, primary),
		buildTreeFromRects(after, primary))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
