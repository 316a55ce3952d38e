package app

import (
	"testing"

	"github.com/splitkit/splitkit/internal/layout"
)

// =============================================================================
// Drop zone classification
// =============================================================================

func TestClassifyDropZone(t *testing.T) {
	rect := layout.NewRect(0, 0, 100, 100)

	tests := []struct {
		name string
		pos  layout.Point
		want layout.DropZone
	}{
		{"dead center", layout.Point{X: 50, Y: 50}, layout.DropCenter},
		{"center band corner", layout.Point{X: 30, Y: 30}, layout.DropCenter},
		{"far left", layout.Point{X: 5, Y: 50}, layout.DropLeft},
		{"far right", layout.Point{X: 95, Y: 50}, layout.DropRight},
		{"top edge", layout.Point{X: 50, Y: 5}, layout.DropTop},
		{"bottom edge", layout.Point{X: 50, Y: 95}, layout.DropBottom},
		{"left beats top when closer", layout.Point{X: 5, Y: 20}, layout.DropLeft},
		{"top beats left when closer", layout.Point{X: 20, Y: 5}, layout.DropTop},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyDropZone(rect, tc.pos); got != tc.want {
				t.Errorf("classifyDropZone(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestClassifyDropZoneOffsetRect(t *testing.T) {
	rect := layout.NewRect(400, 300, 400, 300)
	if got := classifyDropZone(rect, layout.Point{X: 600, Y: 450}); got != layout.DropCenter {
		t.Errorf("center of offset rect = %v, want DropCenter", got)
	}
	if got := classifyDropZone(rect, layout.Point{X: 790, Y: 450}); got != layout.DropRight {
		t.Errorf("right edge of offset rect = %v, want DropRight", got)
	}
}

func TestClassifyDropZoneDegenerateRect(t *testing.T) {
	if got := classifyDropZone(layout.Rect{}, layout.Point{}); got != layout.DropCenter {
		t.Errorf("degenerate rect = %v, want DropCenter", got)
	}
}

func TestRootZoneAt(t *testing.T) {
	window := layout.Size{Width: 80, Height: 24}

	tests := []struct {
		name   string
		pos    layout.Point
		want   layout.DropZone
		wantOK bool
	}{
		{"left edge", layout.Point{X: 0.5, Y: 12}, layout.DropLeft, true},
		{"right edge", layout.Point{X: 79.5, Y: 12}, layout.DropRight, true},
		{"top edge", layout.Point{X: 40, Y: 0.5}, layout.DropTop, true},
		{"bottom edge", layout.Point{X: 40, Y: 23.5}, layout.DropBottom, true},
		{"interior", layout.Point{X: 40, Y: 12}, layout.DropCenter, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := rootZoneAt(window, tc.pos)
			if ok != tc.wantOK {
				t.Fatalf("rootZoneAt(%v) ok = %v, want %v", tc.pos, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("rootZoneAt(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestPaneAt(t *testing.T) {
	rects := []layout.PaneRect{
		{ID: 1, Rect: layout.NewRect(0, 0, 40, 24)},
		{ID: 2, Rect: layout.NewRect(40, 0, 40, 24)},
	}

	if pr, ok := paneAt(rects, layout.Point{X: 10, Y: 5}); !ok || pr.ID != 1 {
		t.Errorf("expected pane 1, got %v ok=%v", pr, ok)
	}
	if pr, ok := paneAt(rects, layout.Point{X: 60, Y: 5}); !ok || pr.ID != 2 {
		t.Errorf("expected pane 2, got %v ok=%v", pr, ok)
	}
	if _, ok := paneAt(rects, layout.Point{X: 100, Y: 5}); ok {
		t.Error("expected no pane outside the tiling")
	}
}
