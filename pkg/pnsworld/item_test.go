package pnsworld

import (
	"testing"

	"github.com/OpenTraceLab/pcbworld/pkg/pnsgeom"
)

func TestZeroLengthSegmentRejected(t *testing.T) {
	w := NewWorld(Config{})
	seg := NewSegment(pnsgeom.Vec{X: 10, Y: 10}, pnsgeom.Vec{X: 10, Y: 10}, 1, 0, 100, nil)
	w.Add(seg)

	if len(w.AllItemsInNet(1)) != 0 {
		t.Fatalf("zero-length segment was indexed, want silently ignored")
	}
	if seg.Owner() != nil {
		t.Fatalf("zero-length segment acquired an owner, want nil")
	}
}

func TestCollideDifferentNetsOnly(t *testing.T) {
	a := NewVia(pnsgeom.Vec{X: 0, Y: 0}, 1, LayerRange{Start: 0, End: 1}, 100, nil)
	b := NewVia(pnsgeom.Vec{X: 50, Y: 0}, 1, LayerRange{Start: 0, End: 1}, 100, nil)

	if !a.Collide(b, 50, false) {
		t.Fatalf("Collide() = false for overlapping vias, want true")
	}
	if a.Collide(b, 50, true) {
		t.Fatalf("Collide() = true with differentNetsOnly for same-net vias, want false")
	}

	c := NewVia(pnsgeom.Vec{X: 50, Y: 0}, 2, LayerRange{Start: 0, End: 1}, 100, nil)
	if !a.Collide(c, 50, true) {
		t.Fatalf("Collide() = false with differentNetsOnly for different-net vias, want true")
	}
}

func TestItemImmutableFieldsSurviveReplace(t *testing.T) {
	w := NewWorld(Config{})
	seg := NewSegment(pnsgeom.Vec{X: 0, Y: 0}, pnsgeom.Vec{X: 100, Y: 0}, 1, 0, 100, nil)
	w.Add(seg)

	replacement := NewSegment(pnsgeom.Vec{X: 0, Y: 0}, pnsgeom.Vec{X: 100, Y: 0}, 1, 0, 200, nil)
	w.Replace(seg, replacement)

	items := w.AllItemsInNet(1)
	if len(items) != 1 {
		t.Fatalf("AllItemsInNet() = %d items after Replace, want 1", len(items))
	}
	if items[0].Width != 200 {
		t.Fatalf("Replace() left width %d, want 200", items[0].Width)
	}
}
