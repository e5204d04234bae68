package pnsgeom

import "math"

// Shape is the common geometric contract every item's footprint
// satisfies: a bounding box, and a clearance-aware collision test against
// another shape. Kinds know their own "thickness" (a trace's half-width,
// a via's radius); a bare polygon's boundary already is its true edge.
type Shape interface {
	BBox() Rect
	Collide(other Shape, clearance int64) bool

	// halfThickness is the distance by which the shape's true outline sits
	// inside (or the centerline sits inside) whatever BBox/boundary the
	// distance functions below measure against.
	halfThickness() int64
	centerline() (Vec, Vec, bool) // (A, B, isSegment)
	center() (Vec, bool)          // (center, isPoint-like)
	polygon() ([]Vec, bool)
}

// CircleShape is a via or a round pad: a point with a radius.
type CircleShape struct {
	Center Vec
	Radius int64
}

func (c CircleShape) BBox() Rect {
	return Rect{Min: Vec{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Vec{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius}}
}

func (c CircleShape) halfThickness() int64            { return c.Radius }
func (c CircleShape) centerline() (Vec, Vec, bool)     { return Vec{}, Vec{}, false }
func (c CircleShape) center() (Vec, bool)              { return c.Center, true }
func (c CircleShape) polygon() ([]Vec, bool)           { return nil, false }
func (c CircleShape) Collide(o Shape, clearance int64) bool {
	return collide(c, o, clearance)
}

// SegmentShape is a wire segment's centerline plus its copper width.
type SegmentShape struct {
	A, B  Vec
	Width int64
}

func (s SegmentShape) BBox() Rect {
	r := NewRect(s.A, s.B)
	return r.Inflate(s.Width / 2)
}

func (s SegmentShape) halfThickness() int64        { return s.Width / 2 }
func (s SegmentShape) centerline() (Vec, Vec, bool) { return s.A, s.B, true }
func (s SegmentShape) center() (Vec, bool)          { return Vec{}, false }
func (s SegmentShape) polygon() ([]Vec, bool)       { return nil, false }
func (s SegmentShape) Collide(o Shape, clearance int64) bool {
	return collide(s, o, clearance)
}

// PolygonShape is a solid pad or board-outline-like filled outline; its
// vertex loop already *is* the true boundary (no separate thickness).
type PolygonShape struct {
	Points []Vec
}

func (p PolygonShape) BBox() Rect {
	r := NewEmptyRect()
	for _, pt := range p.Points {
		r.Expand(pt)
	}
	return r
}

func (p PolygonShape) halfThickness() int64      { return 0 }
func (p PolygonShape) centerline() (Vec, Vec, bool) { return Vec{}, Vec{}, false }
func (p PolygonShape) center() (Vec, bool)       { return Vec{}, false }
func (p PolygonShape) polygon() ([]Vec, bool)    { return p.Points, true }
func (p PolygonShape) Collide(o Shape, clearance int64) bool {
	return collide(p, o, clearance)
}

// PointInPolygon reports whether pos lies on or inside the (closed,
// possibly open-ended) polygon using the standard ray-casting test.
func PointInPolygon(pos Vec, poly []Vec) bool {
	inside := false
	n := len(poly)
	if n < 3 {
		return false
	}
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := poly[i], poly[j]
		if ((pi.Y > pos.Y) != (pj.Y > pos.Y)) &&
			(float64(pos.X) < float64(pj.X-pi.X)*float64(pos.Y-pi.Y)/float64(pj.Y-pi.Y)+float64(pi.X)) {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PointToSegmentDistance returns the distance from pos to segment a-b.
func PointToSegmentDistance(pos, a, b Vec) int64 {
	ab := b.Sub(a)
	abLenSq := ab.SquaredNorm()
	if abLenSq == 0 {
		return pos.Sub(a).EuclideanNorm()
	}
	t := float64(pos.Sub(a).Dot(ab)) / float64(abLenSq)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := Vec{X: a.X + int64(t*float64(ab.X)), Y: a.Y + int64(t*float64(ab.Y))}
	return pos.Sub(proj).EuclideanNorm()
}

// SegmentsIntersect reports whether segments a1-a2 and b1-b2 cross or touch.
func SegmentsIntersect(a1, a2, b1, b2 Vec) bool {
	d1 := sign(b2.Sub(b1).Cross(a1.Sub(b1)))
	d2 := sign(b2.Sub(b1).Cross(a2.Sub(b1)))
	d3 := sign(a2.Sub(a1).Cross(b1.Sub(a1)))
	d4 := sign(a2.Sub(a1).Cross(b2.Sub(a1)))

	if d1 != d2 && d3 != d4 {
		return true
	}
	// Collinear/touching cases: any endpoint lying on the other segment.
	if d1 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d2 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	if d3 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d4 == 0 && onSegment(a1, a2, b2) {
		return true
	}
	return false
}

func sign(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func onSegment(a, b, p Vec) bool {
	return p.X >= minI(a.X, b.X) && p.X <= maxI(a.X, b.X) &&
		p.Y >= minI(a.Y, b.Y) && p.Y <= maxI(a.Y, b.Y)
}

func minI(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// SegmentToSegmentDistance returns the minimum distance between two
// segments, 0 if they intersect.
func SegmentToSegmentDistance(a1, a2, b1, b2 Vec) int64 {
	if SegmentsIntersect(a1, a2, b1, b2) {
		return 0
	}
	d := PointToSegmentDistance(a1, b1, b2)
	if v := PointToSegmentDistance(a2, b1, b2); v < d {
		d = v
	}
	if v := PointToSegmentDistance(b1, a1, a2); v < d {
		d = v
	}
	if v := PointToSegmentDistance(b2, a1, a2); v < d {
		d = v
	}
	return d
}

// PointToPolygonDistance returns the distance from pos to the polygon's
// boundary, or 0 if pos lies inside it.
func PointToPolygonDistance(pos Vec, poly []Vec) int64 {
	if PointInPolygon(pos, poly) {
		return 0
	}
	best := int64(math.MaxInt64)
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if d := PointToSegmentDistance(pos, a, b); d < best {
			best = d
		}
	}
	return best
}

// SegmentToPolygonDistance returns the distance between a segment and a
// polygon's boundary, or 0 if either overlaps the other.
func SegmentToPolygonDistance(a, b Vec, poly []Vec) int64 {
	if PointInPolygon(a, poly) || PointInPolygon(b, poly) {
		return 0
	}
	best := int64(math.MaxInt64)
	n := len(poly)
	for i := 0; i < n; i++ {
		pa := poly[i]
		pb := poly[(i+1)%n]
		if d := SegmentToSegmentDistance(a, b, pa, pb); d < best {
			best = d
		}
	}
	return best
}

// PolygonToPolygonDistance returns the distance between two polygon
// boundaries, or 0 if they overlap.
func PolygonToPolygonDistance(p, q []Vec) int64 {
	if len(p) > 0 && PointInPolygon(p[0], q) {
		return 0
	}
	if len(q) > 0 && PointInPolygon(q[0], p) {
		return 0
	}
	best := int64(math.MaxInt64)
	n, m := len(p), len(q)
	for i := 0; i < n; i++ {
		a1 := p[i]
		a2 := p[(i+1)%n]
		for j := 0; j < m; j++ {
			b1 := q[j]
			b2 := q[(j+1)%m]
			if d := SegmentToSegmentDistance(a1, a2, b1, b2); d < best {
				best = d
			}
		}
	}
	return best
}

// collide computes the clearance-aware collision predicate between any two
// shapes by dispatching to the raw-distance helpers above and subtracting
// each shape's own half-thickness from the measured centerline/boundary
// distance.
func collide(a, b Shape, clearance int64) bool {
	raw := rawDistance(a, b)
	return raw-a.halfThickness()-b.halfThickness() < clearance
}

func rawDistance(a, b Shape) int64 {
	if ac, ok := a.center(); ok {
		if bc, ok := b.center(); ok {
			return ac.Sub(bc).EuclideanNorm()
		}
		if p1, p2, ok := b.centerline(); ok {
			return PointToSegmentDistance(ac, p1, p2)
		}
		if poly, ok := b.polygon(); ok {
			return PointToPolygonDistance(ac, poly)
		}
	}
	if p1, p2, ok := a.centerline(); ok {
		if bc, ok := b.center(); ok {
			return PointToSegmentDistance(bc, p1, p2)
		}
		if q1, q2, ok := b.centerline(); ok {
			return SegmentToSegmentDistance(p1, p2, q1, q2)
		}
		if poly, ok := b.polygon(); ok {
			return SegmentToPolygonDistance(p1, p2, poly)
		}
	}
	if poly, ok := a.polygon(); ok {
		if bc, ok := b.center(); ok {
			return PointToPolygonDistance(bc, poly)
		}
		if q1, q2, ok := b.centerline(); ok {
			return SegmentToPolygonDistance(q1, q2, poly)
		}
		if qpoly, ok := b.polygon(); ok {
			return PolygonToPolygonDistance(poly, qpoly)
		}
	}
	return math.MaxInt64
}
