// Package layout implements a binary split-tree layout engine for
// rectangular content panes. A tree of leaves (panes) and splits (axis +
// ratio) is tiled into a window rectangle; mutations keep the tiling exact
// and re-equalize runs of same-axis splits so repeated splitting in one
// direction yields an even N-way division.
package layout

import "math"

// PaneID identifies one leaf pane. IDs are positive and unique within a
// layout; zero is never allocated and is used as the "no pane" value.
type PaneID uint64

// node is either a leaf holding a pane id or a split with two owned
// children. Leaves have nil children. There are no parent pointers; parent
// navigation re-descends from the root along a recorded []bool path where
// false means left/top and true means right/bottom.
type node struct {
	pane  PaneID
	axis  Axis
	ratio float64
	left  *node
	right *node
}

func leafNode(id PaneID) *node {
	return &node{pane: id}
}

func splitNode(axis Axis, ratio float64, left, right *node) *node {
	return &node{axis: axis, ratio: ratio, left: left, right: right}
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

func (n *node) clone() *node {
	if n.isLeaf() {
		return leafNode(n.pane)
	}
	return splitNode(n.axis, n.ratio, n.left.clone(), n.right.clone())
}

func (n *node) contains(pane PaneID) bool {
	if n.isLeaf() {
		return n.pane == pane
	}
	return n.left.contains(pane) || n.right.contains(pane)
}

// appendPaneIDs collects leaf ids in tree order.
func (n *node) appendPaneIDs(ids []PaneID) []PaneID {
	if n.isLeaf() {
		return append(ids, n.pane)
	}
	ids = n.left.appendPaneIDs(ids)
	return n.right.appendPaneIDs(ids)
}

// computeRects partitions rect at every split and emits one PaneRect per
// leaf. The emitted rects tile rect exactly.
func (n *node) computeRects(rect Rect, out []PaneRect) []PaneRect {
	if n.isLeaf() {
		return append(out, PaneRect{ID: n.pane, Rect: rect})
	}
	leftRect, rightRect := splitRect(rect, n.axis, n.ratio)
	out = n.left.computeRects(leftRect, out)
	return n.right.computeRects(rightRect, out)
}

// countChainLeaves counts the leaves reachable through consecutive splits
// of the given axis. A leaf, or a split of the other axis, counts as one.
func (n *node) countChainLeaves(axis Axis) int {
	if n.isLeaf() || n.axis != axis {
		return 1
	}
	return n.left.countChainLeaves(axis) + n.right.countChainLeaves(axis)
}

// equalizeChain recomputes this split's ratio from the same-axis chain leaf
// counts of its children, so every leaf in the chain gets an equal share.
func (n *node) equalizeChain() {
	nl := n.left.countChainLeaves(n.axis)
	nr := n.right.countChainLeaves(n.axis)
	n.ratio = float64(nl) / float64(nl+nr)
}

// splitPane replaces the target leaf with a split holding the original pane
// on the left/top and the new pane on the right/bottom at ratio 0.5. Walking
// back up, every ancestor split of the same axis is re-equalized. Returns
// false without mutating if target is absent.
func (n *node) splitPane(target, newID PaneID, axis Axis) bool {
	return n.insertPaneAt(target, newID, axis, false)
}

// insertPaneAt is splitPane with the caller choosing which side the new
// pane occupies.
func (n *node) insertPaneAt(target, newPane PaneID, axis Axis, insertFirst bool) bool {
	if n.isLeaf() {
		if n.pane != target {
			return false
		}
		targetLeaf := leafNode(target)
		newLeaf := leafNode(newPane)
		if insertFirst {
			*n = *splitNode(axis, 0.5, newLeaf, targetLeaf)
		} else {
			*n = *splitNode(axis, 0.5, targetLeaf, newLeaf)
		}
		return true
	}
	if n.left.insertPaneAt(target, newPane, axis, insertFirst) ||
		n.right.insertPaneAt(target, newPane, axis, insertFirst) {
		if n.axis == axis {
			n.equalizeChain()
		}
		return true
	}
	return false
}

// removeOutcome is the three-way result of removePane.
type removeOutcome int

const (
	// removeNotFound: the target is absent from this subtree.
	removeNotFound removeOutcome = iota
	// removeSelf: this very node is the leaf to remove; the caller must
	// collapse by substituting the sibling.
	removeSelf
	// removeDone: the target was removed deeper down and this subtree has
	// already been updated in place.
	removeDone
)

// removePane removes the target leaf from the subtree. A split whose child
// reports removeSelf collapses into its surviving child. When a removal
// changes a child's same-axis chain leaf count, the split's ratio is
// re-equalized so remaining columns/rows stay balanced.
func (n *node) removePane(target PaneID) removeOutcome {
	if n.isLeaf() {
		if n.pane == target {
			return removeSelf
		}
		return removeNotFound
	}

	axis := n.axis

	leftOld := n.left.countChainLeaves(axis)
	switch n.left.removePane(target) {
	case removeSelf:
		*n = *n.right
		return removeDone
	case removeDone:
		if n.left.countChainLeaves(axis) != leftOld {
			n.equalizeChain()
		}
		return removeDone
	}

	rightOld := n.right.countChainLeaves(axis)
	switch n.right.removePane(target) {
	case removeSelf:
		*n = *n.left
		return removeDone
	case removeDone:
		if n.right.countChainLeaves(axis) != rightOld {
			n.equalizeChain()
		}
		return removeDone
	}

	return removeNotFound
}

// equalizeAll re-equalizes every split in the subtree, children first so
// chain leaf counts are settled before a parent recomputes its ratio.
func (n *node) equalizeAll() {
	if n.isLeaf() {
		return
	}
	n.left.equalizeAll()
	n.right.equalizeAll()
	n.equalizeChain()
}

// swapPanes exchanges the positions of two leaves in a single pass: any
// leaf holding one of the ids is renamed to the other.
func (n *node) swapPanes(a, b PaneID) {
	if n.isLeaf() {
		switch n.pane {
		case a:
			n.pane = b
		case b:
			n.pane = a
		}
		return
	}
	n.left.swapPanes(a, b)
	n.right.swapPanes(a, b)
}

// borderHit records the closest qualifying split border found so far.
type borderHit struct {
	ok   bool
	dist float64
	path []bool
}

// findBorderAt visits every split in the subtree and tracks the globally
// closest border whose orthogonal span contains the position. path holds
// the left/right choices from the root to n.
func (n *node) findBorderAt(rect Rect, pos Point, path []bool, best *borderHit) {
	if n.isLeaf() {
		return
	}

	var borderPos, dist float64
	var inRange bool
	if n.axis == Horizontal {
		borderPos = rect.X + rect.Width*n.ratio
		dist = math.Abs(pos.X - borderPos)
		inRange = pos.Y >= rect.Y && pos.Y <= rect.Y+rect.Height
	} else {
		borderPos = rect.Y + rect.Height*n.ratio
		dist = math.Abs(pos.Y - borderPos)
		inRange = pos.X >= rect.X && pos.X <= rect.X+rect.Width
	}

	if inRange && (!best.ok || dist < best.dist) {
		best.ok = true
		best.dist = dist
		best.path = append(best.path[:0], path...)
	}

	leftRect, rightRect := splitRect(rect, n.axis, n.ratio)
	n.left.findBorderAt(leftRect, pos, append(path, false), best)
	n.right.findBorderAt(rightRect, pos, append(path, true), best)
}

// applyDrag follows path to the addressed split and recomputes its ratio
// from the position within that split's current rect, clamped to
// [minRatio, 1-minRatio].
func (n *node) applyDrag(rect Rect, path []bool, pos Point, minRatio float64) {
	if n.isLeaf() {
		return
	}
	if len(path) == 0 {
		var ratio float64
		if n.axis == Horizontal {
			ratio = (pos.X - rect.X) / rect.Width
		} else {
			ratio = (pos.Y - rect.Y) / rect.Height
		}
		n.ratio = clamp(ratio, minRatio, 1-minRatio)
		return
	}
	leftRect, rightRect := splitRect(rect, n.axis, n.ratio)
	if !path[0] {
		n.left.applyDrag(leftRect, path[1:], pos, minRatio)
	} else {
		n.right.applyDrag(rightRect, path[1:], pos, minRatio)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
