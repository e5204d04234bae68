package pnsworld

// LayerRange is a closed, inclusive integer interval of copper layers.
// Start must be ≤ End; a single-layer item has Start == End.
type LayerRange struct {
	Start, End int
}

// Overlaps reports whether the two ranges share at least one layer.
func (l LayerRange) Overlaps(other LayerRange) bool {
	return l.Start <= other.End && other.Start <= l.End
}

// Contains reports whether layer falls within the range.
func (l LayerRange) Contains(layer int) bool {
	return layer >= l.Start && layer <= l.End
}

// Union returns the smallest range containing both l and other.
func (l LayerRange) Union(other LayerRange) LayerRange {
	return LayerRange{Start: min(l.Start, other.Start), End: max(l.End, other.End)}
}
