package pnsgeom

// LineChain is an ordered sequence of points describing a polyline: the
// shape behind every Line view the world hands back from AssembleLine and
// FindLinesBetweenJoints. Unlike SegmentShape it is never itself an owned
// item's shape — it is always a read-only, derived view.
type LineChain struct {
	Points []Vec
}

// NewLineChain builds a chain from the given points, in order.
func NewLineChain(points ...Vec) LineChain {
	return LineChain{Points: append([]Vec(nil), points...)}
}

// SegmentCount returns the number of segments in the chain (one less than
// the point count, zero for a chain of fewer than two points).
func (l LineChain) SegmentCount() int {
	if len(l.Points) < 2 {
		return 0
	}
	return len(l.Points) - 1
}

// CSegment returns the i'th segment's endpoints.
func (l LineChain) CSegment(i int) (Vec, Vec) {
	return l.Points[i], l.Points[i+1]
}

// Append adds pt to the end of the chain.
func (l *LineChain) Append(pt Vec) {
	l.Points = append(l.Points, pt)
}

// Length returns the total Euclidean length of the chain.
func (l LineChain) Length() int64 {
	var total int64
	for i := 0; i < l.SegmentCount(); i++ {
		a, b := l.CSegment(i)
		total += b.Sub(a).EuclideanNorm()
	}
	return total
}

// PathLength returns the distance travelled along the chain from its first
// point to pos, assuming pos lies on (or very near) the chain; it walks
// segments and accumulates length up to the closest point on the nearest
// segment. Used to order joints found on the same assembled line.
func (l LineChain) PathLength(pos Vec) int64 {
	if len(l.Points) == 0 {
		return 0
	}
	var best int64 = -1
	var bestDist int64 = -1
	var accumulated int64
	for i := 0; i < l.SegmentCount(); i++ {
		a, b := l.CSegment(i)
		segLen := b.Sub(a).EuclideanNorm()
		d := PointToSegmentDistance(pos, a, b)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			// Distance travelled from a to the point on this segment
			// nearest pos, projected along the segment.
			best = accumulated + projectedLength(pos, a, b)
		}
		accumulated += segLen
	}
	if best < 0 {
		return 0
	}
	return best
}

func projectedLength(pos, a, b Vec) int64 {
	ab := b.Sub(a)
	abLenSq := ab.SquaredNorm()
	if abLenSq == 0 {
		return 0
	}
	segLen := ab.EuclideanNorm()
	t := float64(pos.Sub(a).Dot(ab)) / float64(abLenSq)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return int64(t * float64(segLen))
}

// Find returns the index of pos within the chain's points, or -1 if the
// chain does not pass through pos exactly.
func (l LineChain) Find(pos Vec) int {
	for i, p := range l.Points {
		if p.Equals(pos) {
			return i
		}
	}
	return -1
}

// Intersect reports whether the chain crosses other, and the first
// intersection point found while walking segments in order.
func (l LineChain) Intersect(other LineChain) (Vec, bool) {
	for i := 0; i < l.SegmentCount(); i++ {
		a1, a2 := l.CSegment(i)
		for j := 0; j < other.SegmentCount(); j++ {
			b1, b2 := other.CSegment(j)
			if SegmentsIntersect(a1, a2, b1, b2) {
				return intersectionPoint(a1, a2, b1, b2), true
			}
		}
	}
	return Vec{}, false
}

// intersectionPoint computes the crossing point of two intersecting
// segments; callers must have already established that they intersect.
func intersectionPoint(a1, a2, b1, b2 Vec) Vec {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := d1.Cross(d2)
	if denom == 0 {
		return a1
	}
	t := float64(b1.Sub(a1).Cross(d2)) / float64(denom)
	return Vec{
		X: a1.X + int64(t*float64(d1.X)),
		Y: a1.Y + int64(t*float64(d1.Y)),
	}
}

// IntersectAll returns every crossing point between the chain and other,
// walking segments of both in order. Unlike Intersect it does not stop at
// the first hit.
func (l LineChain) IntersectAll(other LineChain) []Vec {
	var out []Vec
	for i := 0; i < l.SegmentCount(); i++ {
		a1, a2 := l.CSegment(i)
		for j := 0; j < other.SegmentCount(); j++ {
			b1, b2 := other.CSegment(j)
			if SegmentsIntersect(a1, a2, b1, b2) {
				out = append(out, intersectionPoint(a1, a2, b1, b2))
			}
		}
	}
	return out
}

// BBox returns the chain's bounding box.
func (l LineChain) BBox() Rect {
	r := NewEmptyRect()
	for _, p := range l.Points {
		r.Expand(p)
	}
	return r
}

// Reversed returns a copy of the chain with its points in reverse order.
func (l LineChain) Reversed() LineChain {
	out := make([]Vec, len(l.Points))
	for i, p := range l.Points {
		out[len(out)-1-i] = p
	}
	return LineChain{Points: out}
}
