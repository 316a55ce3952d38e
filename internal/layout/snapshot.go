package layout

// Snapshot is a plain recursive copy of the layout tree, suitable for
// serializing to a session file and restoring exactly, ratios included. A
// leaf carries only Pane; a split carries Axis, Ratio and both children.
type Snapshot struct {
	Pane  PaneID    `toml:"pane,omitempty" json:"pane,omitempty"`
	Axis  Axis      `toml:"axis,omitempty" json:"axis,omitempty"`
	Ratio float64   `toml:"ratio,omitempty" json:"ratio,omitempty"`
	Left  *Snapshot `toml:"left,omitempty" json:"left,omitempty"`
	Right *Snapshot `toml:"right,omitempty" json:"right,omitempty"`
}

// IsLeaf reports whether the snapshot node is a leaf pane.
func (s *Snapshot) IsLeaf() bool {
	return s.Left == nil || s.Right == nil
}

// Snapshot captures the current tree, or nil for an empty layout.
func (l *SplitLayout) Snapshot() *Snapshot {
	if l.root == nil {
		return nil
	}
	return nodeToSnapshot(l.root)
}

func nodeToSnapshot(n *node) *Snapshot {
	if n.isLeaf() {
		return &Snapshot{Pane: n.pane}
	}
	return &Snapshot{
		Axis:  n.axis,
		Ratio: n.ratio,
		Left:  nodeToSnapshot(n.left),
		Right: nodeToSnapshot(n.right),
	}
}

// FromSnapshot reconstructs a layout from a snapshot. The id allocator is
// reset to one past the largest pane id found, so panes created later can
// never collide with restored ones. A nil snapshot yields an empty layout.
func FromSnapshot(s *Snapshot) *SplitLayout {
	if s == nil {
		return New()
	}
	return &SplitLayout{
		root:   snapshotToNode(s),
		nextID: s.maxID() + 1,
	}
}

func snapshotToNode(s *Snapshot) *node {
	if s.IsLeaf() {
		return leafNode(s.Pane)
	}
	return splitNode(s.Axis, s.Ratio, snapshotToNode(s.Left), snapshotToNode(s.Right))
}

func (s *Snapshot) maxID() PaneID {
	if s.IsLeaf() {
		return s.Pane
	}
	l, r := s.Left.maxID(), s.Right.maxID()
	if l > r {
		return l
	}
	return r
}
