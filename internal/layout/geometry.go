package layout

import "fmt"

// Axis determines which way a split divides its rectangle.
type Axis int

const (
	// Horizontal splits a rectangle into a left and a right half.
	Horizontal Axis = iota
	// Vertical splits a rectangle into a top and a bottom half.
	Vertical
)

// Orthogonal returns the other axis.
func (a Axis) Orthogonal() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns the axis name in lowercase.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalText implements encoding.TextMarshaler so snapshots and config
// files serialize the axis as a readable name.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal":
		*a = Horizontal
	case "vertical":
		*a = Vertical
	default:
		return fmt.Errorf("layout: unknown axis %q", text)
	}
	return nil
}

// DropZone describes where, relative to a target pane, a dragged pane
// should land. DropCenter means swap rather than a new split.
type DropZone int

const (
	// DropCenter swaps the dragged pane with the target.
	DropCenter DropZone = iota
	// DropTop places the dragged pane above the target.
	DropTop
	// DropBottom places the dragged pane below the target.
	DropBottom
	// DropLeft places the dragged pane left of the target.
	DropLeft
	// DropRight places the dragged pane right of the target.
	DropRight
)

// String returns the zone name in lowercase.
func (z DropZone) String() string {
	switch z {
	case DropTop:
		return "top"
	case DropBottom:
		return "bottom"
	case DropLeft:
		return "left"
	case DropRight:
		return "right"
	default:
		return "center"
	}
}

// zoneSplit maps a directional drop zone to the axis of the new split and
// whether the dragged pane takes the first (left/top) side. DropCenter has
// no directional meaning; callers must handle it before calling this.
func zoneSplit(zone DropZone) (axis Axis, insertFirst bool) {
	switch zone {
	case DropTop:
		return Vertical, true
	case DropBottom:
		return Vertical, false
	case DropLeft:
		return Horizontal, true
	default:
		return Horizontal, false
	}
}

// Point is a position in logical pixels.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect returns a rectangle with the given origin and extent.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains reports whether the point lies inside the rectangle. The right
// and bottom edges are exclusive so adjacent panes never both claim a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// splitRect divides a rectangle into two along the given axis, giving the
// left/top piece ratio of the extent.
func splitRect(r Rect, axis Axis, ratio float64) (Rect, Rect) {
	if axis == Horizontal {
		leftWidth := r.Width * ratio
		return NewRect(r.X, r.Y, leftWidth, r.Height),
			NewRect(r.X+leftWidth, r.Y, r.Width-leftWidth, r.Height)
	}
	topHeight := r.Height * ratio
	return NewRect(r.X, r.Y, r.Width, topHeight),
		NewRect(r.X, r.Y+topHeight, r.Width, r.Height-topHeight)
}

// Decorations holds the per-pane chrome metrics the renderer reserves
// around pane content. They feed the cell-snapping pass so content areas
// land on whole-cell boundaries.
type Decorations struct {
	Gap          float64
	Padding      float64
	TabBarHeight float64
}

// PaneRect pairs a pane with its computed tiling rectangle.
type PaneRect struct {
	ID   PaneID
	Rect Rect
}
