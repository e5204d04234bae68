// Package spatial implements the world's bounding-box index: the
// structure QueryColliding, NearestObstacle, HitTest and friends walk to
// avoid a linear scan over every item on the board. The vocabulary (BBox,
// Entry, Query/Add) follows the bounding-box-tree shape of a
// reference R-tree, but the implementation here is a flat bucketed
// multimap rather than a balanced tree: board item counts are small
// enough (thousands, not millions) that a tree's rebalancing cost buys
// little, and a flat structure keeps Remove and per-net iteration exact
// and simple.
package spatial

import "github.com/OpenTraceLab/pcbworld/pkg/pnsgeom"

// Entry is one indexed occupant: its bounding box, the net it belongs to,
// and an opaque key the caller uses to identify it (typically a pointer
// to the owning item).
type Entry struct {
	BBox pnsgeom.Rect
	Net  int
	Key  any
}

// bucketSize is the edge length of each grid cell, chosen as a round
// number in the nanometer unit space corresponding to roughly 1mm — small
// enough to keep buckets sparse on a typical board, large enough that
// most items span only one or two cells.
const bucketSize int64 = 1_000_000

type cellID struct {
	x, y int64
}

// Index is a bucketed bounding-box multimap over the world's items. It
// supports insertion, removal, envelope queries and per-net iteration.
type Index struct {
	cells   map[cellID][]*Entry
	entries map[any]*Entry
	netIdx  map[int]map[any]*Entry
}

// NewIndex returns an empty spatial index.
func NewIndex() *Index {
	return &Index{
		cells:   make(map[cellID][]*Entry),
		entries: make(map[any]*Entry),
		netIdx:  make(map[int]map[any]*Entry),
	}
}

func cellsFor(box pnsgeom.Rect) (cellID, cellID) {
	lo := cellID{x: floorDiv(box.Min.X, bucketSize), y: floorDiv(box.Min.Y, bucketSize)}
	hi := cellID{x: floorDiv(box.Max.X, bucketSize), y: floorDiv(box.Max.Y, bucketSize)}
	return lo, hi
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Add inserts an entry under key, indexed by its bounding box and net.
func (idx *Index) Add(key any, box pnsgeom.Rect, net int) {
	e := &Entry{BBox: box, Net: net, Key: key}
	idx.entries[key] = e

	lo, hi := cellsFor(box)
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			c := cellID{x: x, y: y}
			idx.cells[c] = append(idx.cells[c], e)
		}
	}

	if idx.netIdx[net] == nil {
		idx.netIdx[net] = make(map[any]*Entry)
	}
	idx.netIdx[net][key] = e
}

// Remove deletes the entry previously added under key. It is a no-op if
// key is not present.
func (idx *Index) Remove(key any) {
	e, ok := idx.entries[key]
	if !ok {
		return
	}
	delete(idx.entries, key)
	delete(idx.netIdx[e.Net], key)

	lo, hi := cellsFor(e.BBox)
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			c := cellID{x: x, y: y}
			bucket := idx.cells[c]
			for i, cand := range bucket {
				if cand.Key == key {
					bucket[i] = bucket[len(bucket)-1]
					bucket = bucket[:len(bucket)-1]
					break
				}
			}
			if len(bucket) == 0 {
				delete(idx.cells, c)
			} else {
				idx.cells[c] = bucket
			}
		}
	}
}

// Get returns the entry stored under key, if any.
func (idx *Index) Get(key any) (Entry, bool) {
	e, ok := idx.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Query invokes visit once for every entry whose bounding box intersects
// envelope, each key visited at most once even if its box spans several
// buckets. Stops early if visit returns false.
func (idx *Index) Query(envelope pnsgeom.Rect, visit func(Entry) bool) {
	seen := make(map[any]bool)
	lo, hi := cellsFor(envelope)
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for _, e := range idx.cells[cellID{x: x, y: y}] {
				if seen[e.Key] {
					continue
				}
				seen[e.Key] = true
				if !e.BBox.Intersects(envelope) {
					continue
				}
				if !visit(*e) {
					return
				}
			}
		}
	}
}

// ItemsForNet invokes visit once for every entry on the given net,
// irrespective of position. Stops early if visit returns false.
func (idx *Index) ItemsForNet(net int, visit func(Entry) bool) {
	for _, e := range idx.netIdx[net] {
		if !visit(*e) {
			return
		}
	}
}

// All invokes visit once for every entry in the index. Stops early if
// visit returns false.
func (idx *Index) All(visit func(Entry) bool) {
	for _, e := range idx.entries {
		if !visit(*e) {
			return
		}
	}
}

// Len returns the number of entries currently indexed.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Clear empties the index.
func (idx *Index) Clear() {
	idx.cells = make(map[cellID][]*Entry)
	idx.entries = make(map[any]*Entry)
	idx.netIdx = make(map[int]map[any]*Entry)
}
