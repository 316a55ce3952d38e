package layout

const (
	// MinRatio is the drag-time floor on split ratios, preventing a pane
	// from being dragged to nothing.
	MinRatio = 0.1

	// BorderHitThreshold is the maximum pointer distance, in logical
	// pixels, at which BeginDrag latches onto a border.
	BorderHitThreshold = 8.0
)

// SplitLayout owns a split tree, allocates pane ids, and runs the
// border-drag state machine. It is not safe for concurrent use; one
// instance belongs to one host loop.
type SplitLayout struct {
	root   *node
	nextID PaneID

	// dragActive distinguishes "no drag" from a drag of the root split,
	// whose path is empty.
	dragActive bool
	dragPath   []bool

	lastWindow Size
	hasWindow  bool
}

// New returns an empty layout. Compute on an empty layout yields no rects.
func New() *SplitLayout {
	return &SplitLayout{nextID: 1}
}

// WithInitialPane returns a layout holding a single pane that fills the
// window, along with that pane's id.
func WithInitialPane() (*SplitLayout, PaneID) {
	const id PaneID = 1
	return &SplitLayout{root: leafNode(id), nextID: id + 1}, id
}

func (l *SplitLayout) allocID() PaneID {
	id := l.nextID
	l.nextID++
	return id
}

// Compute returns the tiling rectangle of every pane for the given window
// size. The result is an owned snapshot, never a live view of the tree.
// The window size is remembered so a DragBorder without a prior BeginDrag
// can locate borders.
func (l *SplitLayout) Compute(window Size) []PaneRect {
	l.lastWindow = window
	l.hasWindow = true
	if l.root == nil {
		return nil
	}
	return l.root.computeRects(NewRect(0, 0, window.Width, window.Height), nil)
}

// PaneIDs returns every pane id in the layout, in tree order.
func (l *SplitLayout) PaneIDs() []PaneID {
	if l.root == nil {
		return nil
	}
	return l.root.appendPaneIDs(nil)
}

// Contains reports whether the layout holds the given pane.
func (l *SplitLayout) Contains(pane PaneID) bool {
	return l.root != nil && l.root.contains(pane)
}

// Empty reports whether the layout holds no panes.
func (l *SplitLayout) Empty() bool {
	return l.root == nil
}

// Split divides the target pane along the given axis and returns the id of
// the new pane, which takes the right/bottom half. Ancestor splits of the
// same axis are re-equalized so an N-long chain tiles into N equal shares.
//
// The id is allocated and returned even when the target pane does not
// exist; in that case the tree is left untouched and the returned id has no
// rect. Callers that need to detect this check Contains or PaneIDs.
func (l *SplitLayout) Split(pane PaneID, axis Axis) PaneID {
	newID := l.allocID()
	if l.root != nil {
		l.root.splitPane(pane, newID, axis)
	}
	return newID
}

// Remove deletes the pane and collapses its parent split. Removing the last
// pane empties the layout. Removing an unknown pane is a no-op.
func (l *SplitLayout) Remove(pane PaneID) {
	if l.root == nil {
		return
	}
	if l.root.removePane(pane) == removeSelf {
		l.root = nil
	}
}

// InsertPane places newPane next to target in a new split along axis, on
// the left/top side when insertFirst is set. On an empty layout the new
// pane becomes the root regardless of target. Returns false when target is
// missing from a non-empty tree.
func (l *SplitLayout) InsertPane(target, newPane PaneID, axis Axis, insertFirst bool) bool {
	if l.root == nil {
		l.root = leafNode(newPane)
		return true
	}
	return l.root.insertPaneAt(target, newPane, axis, insertFirst)
}

// InsertAtRoot wraps the whole tree and the new pane in one new top-level
// split on the side the zone names. DropCenter is rejected: it has no
// directional meaning at the root.
func (l *SplitLayout) InsertAtRoot(newPane PaneID, zone DropZone) bool {
	if zone == DropCenter {
		return false
	}
	newLeaf := leafNode(newPane)
	if l.root == nil {
		l.root = newLeaf
		return true
	}

	axis, insertFirst := zoneSplit(zone)
	if insertFirst {
		l.root = splitNode(axis, 0.5, newLeaf, l.root)
	} else {
		l.root = splitNode(axis, 0.5, l.root, newLeaf)
	}
	l.root.equalizeChain()
	return true
}

// MovePane relocates source relative to target. DropCenter swaps the two
// panes in place. A directional zone removes source and re-inserts it next
// to target in a fresh 50/50 split (chain-equalized). Fails without
// mutation when source equals target, the tree is empty, or source is
// absent; if source was the only pane it is restored as the sole root and
// the move fails.
func (l *SplitLayout) MovePane(source, target PaneID, zone DropZone) bool {
	if source == target || l.root == nil {
		return false
	}
	if zone == DropCenter {
		l.root.swapPanes(source, target)
		return true
	}

	switch l.root.removePane(source) {
	case removeNotFound:
		return false
	case removeSelf:
		// Source was the only pane; there is nothing to move next to.
		l.root = leafNode(source)
		return false
	}

	axis, insertFirst := zoneSplit(zone)
	return l.root.insertPaneAt(target, source, axis, insertFirst)
}

// MovePaneToRoot removes source and re-wraps the remaining tree so source
// sits at the window edge the zone names. DropCenter is rejected.
func (l *SplitLayout) MovePaneToRoot(source PaneID, zone DropZone) bool {
	if zone == DropCenter || l.root == nil {
		return false
	}

	switch l.root.removePane(source) {
	case removeNotFound:
		return false
	case removeSelf:
		l.root = leafNode(source)
		return false
	}

	return l.InsertAtRoot(source, zone)
}

// RestructureMovePane is MovePane for drag-and-drop across deep
// arrangements: the rects of every pane except source are captured from the
// current tiling, a fresh balanced tree is rebuilt from them (cuts biased
// toward the zone's axis), and source is then inserted next to target. The
// remaining panes keep their geometry but shed whatever lopsided nesting
// the old tree had. DropCenter degenerates to a plain swap.
func (l *SplitLayout) RestructureMovePane(source, target PaneID, zone DropZone, window Size) bool {
	if source == target || l.root == nil {
		return false
	}
	if zone == DropCenter {
		l.root.swapPanes(source, target)
		return true
	}

	axis, insertFirst := zoneSplit(zone)
	if !l.rebuildWithout(source, axis, window) {
		return false
	}
	return l.root.insertPaneAt(target, source, axis, insertFirst)
}

// RestructureMoveToRoot is MovePaneToRoot with the same rebuild of the
// remaining panes.
func (l *SplitLayout) RestructureMoveToRoot(source PaneID, zone DropZone, window Size) bool {
	if zone == DropCenter || l.root == nil {
		return false
	}
	axis, _ := zoneSplit(zone)
	if !l.rebuildWithout(source, axis, window) {
		return false
	}
	return l.InsertAtRoot(source, zone)
}

// rebuildWithout replaces the tree with one rebuilt from the current rects
// of every pane except source. Fails when no other panes remain.
func (l *SplitLayout) rebuildWithout(source PaneID, primary Axis, window Size) bool {
	rects := l.Compute(window)
	remaining := rects[:0]
	for _, pr := range rects {
		if pr.ID != source {
			remaining = append(remaining, pr)
		}
	}
	if len(remaining) == 0 {
		return false
	}
	rebuilt := buildTreeFromRects(remaining, primary)
	if rebuilt == nil {
		return false
	}
	l.root = rebuilt
	return true
}

// SimulateDrop applies the drop that MovePane/InsertPane/Restructure* would
// perform to a clone of the layout and returns the rect source would end up
// with, so hosts can preview a drop without touching live state. A zero
// target means a root-level drop; sourceInTree selects between moving an
// existing pane and inserting a foreign one.
func (l *SplitLayout) SimulateDrop(source, target PaneID, zone DropZone, sourceInTree bool, window Size) (Rect, bool) {
	sim := l.Clone()

	if target == 0 {
		if sourceInTree {
			if !sim.RestructureMoveToRoot(source, zone, window) {
				return Rect{}, false
			}
		} else if !sim.InsertAtRoot(source, zone) {
			return Rect{}, false
		}
	} else if sourceInTree {
		if !sim.RestructureMovePane(source, target, zone, window) {
			return Rect{}, false
		}
	} else {
		axis, insertFirst := Horizontal, false
		if zone != DropCenter {
			axis, insertFirst = zoneSplit(zone)
		}
		sim.InsertPane(target, source, axis, insertFirst)
	}

	for _, pr := range sim.Compute(window) {
		if pr.ID == source {
			return pr.Rect, true
		}
	}
	return Rect{}, false
}

// Clone returns a deep copy of the layout with no active drag.
func (l *SplitLayout) Clone() *SplitLayout {
	c := &SplitLayout{nextID: l.nextID, lastWindow: l.lastWindow, hasWindow: l.hasWindow}
	if l.root != nil {
		c.root = l.root.clone()
	}
	return c
}

// Equalize resets every split to an even per-leaf share along its
// same-axis chain, discarding dragged ratios.
func (l *SplitLayout) Equalize() {
	if l.root != nil {
		l.root.equalizeAll()
	}
}

// SnapRatiosToCells aligns every split so pane content areas land on whole
// cell boundaries, subject to decoration-aware minimum sizes. Call after
// mutations, then Compute again for the snapped rects.
func (l *SplitLayout) SnapRatiosToCells(window, cell Size, dec Decorations) {
	if l.root == nil {
		return
	}
	l.root.snapRatios(NewRect(0, 0, window.Width, window.Height), cell, dec)
}

// BeginDrag latches onto the border closest to the position, if any lies
// within BorderHitThreshold, and reports whether a drag began. The window
// size is recorded for the rest of the gesture.
func (l *SplitLayout) BeginDrag(pos Point, window Size) bool {
	return l.BeginDragWithin(pos, window, BorderHitThreshold)
}

// BeginDragWithin is BeginDrag with a caller-supplied hit threshold, for
// hosts whose pointing units differ from the default.
func (l *SplitLayout) BeginDragWithin(pos Point, window Size, threshold float64) bool {
	if l.root == nil {
		return false
	}
	var best borderHit
	l.root.findBorderAt(NewRect(0, 0, window.Width, window.Height), pos, nil, &best)
	if !best.ok || best.dist > threshold {
		return false
	}
	l.dragActive = true
	l.dragPath = best.path
	l.lastWindow = window
	l.hasWindow = true
	return true
}

// Dragging reports whether a border drag is in progress.
func (l *SplitLayout) Dragging() bool {
	return l.dragActive
}

// DragBorder moves the tracked border to the position, committing the new
// ratio to the live tree immediately (there is no deferred apply; ending a
// gesture never rolls back). Without an active drag it auto-detects the
// nearest border from the last known window size and begins tracking it, so
// a stream of pointer-move events can drive resizing on its own.
func (l *SplitLayout) DragBorder(pos Point) {
	l.DragBorderWithMin(pos, MinRatio)
}

// DragBorderWithMin is DragBorder with a caller-supplied ratio floor, for
// hosts that make the floor configurable.
func (l *SplitLayout) DragBorderWithMin(pos Point, minRatio float64) {
	if l.root == nil || !l.hasWindow {
		return
	}
	windowRect := NewRect(0, 0, l.lastWindow.Width, l.lastWindow.Height)

	if !l.dragActive {
		var best borderHit
		l.root.findBorderAt(windowRect, pos, nil, &best)
		if !best.ok {
			return
		}
		l.dragActive = true
		l.dragPath = best.path
	}

	l.root.applyDrag(windowRect, l.dragPath, pos, minRatio)
}

// EndDrag stops tracking the current border. Ratio changes already applied
// stay in effect.
func (l *SplitLayout) EndDrag() {
	l.dragActive = false
	l.dragPath = nil
}
