package pnsgeom

// Rect is an axis-aligned bounding box, grounded on
// pkg/kicad/sexp.BoundingBox but reworked to integer units and an
// explicit "empty" sentinel rather than huge float bounds.
type Rect struct {
	Min, Max Vec
	empty    bool
}

// NewEmptyRect returns a bounding box with no extent, ready for Expand.
func NewEmptyRect() Rect {
	return Rect{empty: true}
}

// NewRect returns the bounding box spanning the two corners.
func NewRect(a, b Vec) Rect {
	r := NewEmptyRect()
	r.Expand(a)
	r.Expand(b)
	return r
}

// IsEmpty reports whether the box has never been expanded.
func (r Rect) IsEmpty() bool {
	return r.empty
}

// Expand grows the box, if needed, to include pos.
func (r *Rect) Expand(pos Vec) {
	if r.empty {
		r.Min, r.Max = pos, pos
		r.empty = false
		return
	}
	if pos.X < r.Min.X {
		r.Min.X = pos.X
	}
	if pos.Y < r.Min.Y {
		r.Min.Y = pos.Y
	}
	if pos.X > r.Max.X {
		r.Max.X = pos.X
	}
	if pos.Y > r.Max.Y {
		r.Max.Y = pos.Y
	}
}

// ExpandBox grows the box to include another box.
func (r *Rect) ExpandBox(other Rect) {
	if other.empty {
		return
	}
	r.Expand(other.Min)
	r.Expand(other.Max)
}

// Inflate returns a copy of the box grown by amount on every side.
func (r Rect) Inflate(amount int64) Rect {
	if r.empty {
		return r
	}
	return Rect{
		Min: Vec{X: r.Min.X - amount, Y: r.Min.Y - amount},
		Max: Vec{X: r.Max.X + amount, Y: r.Max.Y + amount},
	}
}

// Intersects reports whether the two boxes overlap (touching counts).
func (r Rect) Intersects(other Rect) bool {
	if r.empty || other.empty {
		return false
	}
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// Contains reports whether pos lies within the box, inclusive of edges.
func (r Rect) Contains(pos Vec) bool {
	if r.empty {
		return false
	}
	return pos.X >= r.Min.X && pos.X <= r.Max.X &&
		pos.Y >= r.Min.Y && pos.Y <= r.Max.Y
}

// Center returns the midpoint of the box.
func (r Rect) Center() Vec {
	return Vec{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}
