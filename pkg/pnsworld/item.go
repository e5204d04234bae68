package pnsworld

import "github.com/OpenTraceLab/pcbworld/pkg/pnsgeom"

// Kind tags an Item's variant and doubles as a bitmask for filtering
// collision queries to a subset of kinds (KindSolid|KindVia, for
// example).
type Kind uint8

const (
	KindSolid Kind = 1 << iota
	KindVia
	KindSegment
	KindLine
)

// KindAll matches every kind. A zero query mask matches no kind.
const KindAll = KindSolid | KindVia | KindSegment | KindLine

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindVia:
		return "via"
	case KindSegment:
		return "segment"
	case KindLine:
		return "line"
	default:
		return "mixed"
	}
}

// UnassignedNet is the sentinel net id for an item with no assigned net.
const UnassignedNet = -1

// Item is the tagged variant behind every board object the world tracks:
// a solid pad, a via, a wire segment, or (transiently) an assembled line
// view. Its shape, net, layer range, and width are immutable once
// inserted; a "mutation" is always modeled as Remove followed by Add.
type Item struct {
	Kind   Kind
	Net    int
	Layers LayerRange
	Shape  pnsgeom.Shape
	Width  int64
	Marker uint64
	Rank   int

	// Pos is the single anchor point for Solid and Via items.
	Pos pnsgeom.Vec
	// A, B are the two endpoints for Segment items.
	A, B pnsgeom.Vec

	// Chain and Segments are populated only for Kind == KindLine: the
	// assembled polyline's vertices and the constituent segment items it
	// was built from, in walk order.
	Chain    pnsgeom.LineChain
	Segments []*Item
	// Via is the item the line terminates at, when a caller knows one and
	// sets it (e.g. a routing head ending on an existing via). Consulted
	// by QueryColliding/CheckColliding's Line dispatch the same way
	// NearestObstacle's endVia parameter is; nil otherwise. Meaningful
	// only for Kind == KindLine.
	Via *Item

	// Parent is an opaque back-pointer into the host board model (e.g. a
	// *pcb.Pad, *pcb.Track, or *pcb.Via); the core never dereferences it.
	Parent any

	owner *Revision
}

// Owner returns the revision this item is currently owned by, or nil for
// an unowned (destroyed, or never-owned Line) item.
func (it *Item) Owner() *Revision {
	return it.owner
}

// Endpoints returns the positions this item links joints at: one for a
// Solid or Via, two for a Segment. Lines have none (they are never
// indexed).
func (it *Item) Endpoints() []pnsgeom.Vec {
	switch it.Kind {
	case KindSolid, KindVia:
		return []pnsgeom.Vec{it.Pos}
	case KindSegment:
		return []pnsgeom.Vec{it.A, it.B}
	default:
		return nil
	}
}

// Collide reports whether it and other violate clearance, honoring
// differentNetsOnly (when set, items sharing a net never collide).
func (it *Item) Collide(other *Item, clearance int64, differentNetsOnly bool) bool {
	if differentNetsOnly && it.Net == other.Net && it.Net != UnassignedNet {
		return false
	}
	return it.Shape.Collide(other.Shape, clearance)
}

// NewSolid constructs an unowned Solid item at pos.
func NewSolid(pos pnsgeom.Vec, net int, layers LayerRange, shape pnsgeom.Shape, parent any) *Item {
	return &Item{Kind: KindSolid, Net: net, Layers: layers, Shape: shape, Pos: pos, Parent: parent}
}

// NewVia constructs an unowned Via item at pos.
func NewVia(pos pnsgeom.Vec, net int, layers LayerRange, radius int64, parent any) *Item {
	return &Item{
		Kind: KindVia, Net: net, Layers: layers, Pos: pos, Width: radius * 2, Parent: parent,
		Shape: pnsgeom.CircleShape{Center: pos, Radius: radius},
	}
}

// NewSegment constructs an unowned Segment item from a to b. The caller
// must not pass a == b; World.Add rejects zero-length segments at
// insertion time rather than here, so that a constructed-but-not-yet-
// inserted segment can still be inspected.
func NewSegment(a, b pnsgeom.Vec, net int, layer int, width int64, parent any) *Item {
	return &Item{
		Kind: KindSegment, Net: net, Layers: LayerRange{Start: layer, End: layer},
		Width: width, A: a, B: b, Parent: parent,
		Shape: pnsgeom.SegmentShape{A: a, B: b, Width: width},
	}
}
