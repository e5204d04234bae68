package pnsworld

import (
	"fmt"

	"github.com/OpenTraceLab/pcbworld/pkg/pnsgeom"
)

// Joint is the local connectivity hub at a shared vertex of items on
// overlapping layers within one net. Two joints may share a (position,
// net) key only while their layer ranges are disjoint; touchJoint merges
// them as soon as that stops being true.
type Joint struct {
	Pos    pnsgeom.Vec
	Net    int
	Layers LayerRange
	links  []*Item
	locked bool
}

// Links returns a copy of the items currently linked through this joint.
func (j *Joint) Links() []*Item {
	out := make([]*Item, len(j.links))
	copy(out, j.links)
	return out
}

// LinkCount reports how many items are linked through this joint.
func (j *Joint) LinkCount() int {
	return len(j.links)
}

// Locked reports whether the joint has been locked via LockJoint.
func (j *Joint) Locked() bool {
	return j.locked
}

// NextSegment returns the other segment linked through this joint when
// exactly two segments meet here (a "line corner"), or nil otherwise.
// Used by AssembleLine to walk from segment to segment.
func (j *Joint) NextSegment(current *Item) *Item {
	var segs []*Item
	for _, l := range j.links {
		if l.Kind == KindSegment {
			segs = append(segs, l)
		}
	}
	if len(segs) != 2 {
		return nil
	}
	if segs[0] == current {
		return segs[1]
	}
	if segs[1] == current {
		return segs[0]
	}
	return nil
}

// String renders a short diagnostic summary of the joint.
func (j *Joint) String() string {
	return fmt.Sprintf("joint@%v net=%d layers=[%d,%d] links=%d locked=%v",
		j.Pos, j.Net, j.Layers.Start, j.Layers.End, len(j.links), j.locked)
}

func (j *Joint) addLink(item *Item) {
	for _, l := range j.links {
		if l == item {
			return
		}
	}
	j.links = append(j.links, item)
}

func (j *Joint) removeLink(item *Item) {
	for i, l := range j.links {
		if l == item {
			j.links = append(j.links[:i], j.links[i+1:]...)
			return
		}
	}
}

// jointKey identifies the hash bucket a joint lives in before
// disambiguation by layer range.
type jointKey struct {
	pos pnsgeom.Vec
	net int
}

// jointMap is the keyed multimap from (position, net) to joints,
// disambiguated further by layer-range overlap.
type jointMap struct {
	byKey map[jointKey][]*Joint
}

func newJointMap() *jointMap {
	return &jointMap{byKey: make(map[jointKey][]*Joint)}
}

// touchJoint returns a joint at (pos, net) whose layer range includes
// layers, merging any existing joints at the key whose range overlaps
// layers (repeating until no candidate overlaps the growing union).
func (m *jointMap) touchJoint(pos pnsgeom.Vec, layers LayerRange, net int) *Joint {
	key := jointKey{pos: pos, net: net}
	candidates := m.byKey[key]

	merged := layers
	var mergedLinks []*Item
	remaining := candidates
	for {
		var next []*Joint
		changed := false
		for _, j := range remaining {
			if j.Layers.Overlaps(merged) {
				merged = merged.Union(j.Layers)
				mergedLinks = append(mergedLinks, j.links...)
				changed = true
			} else {
				next = append(next, j)
			}
		}
		remaining = next
		if !changed {
			break
		}
	}

	joint := &Joint{Pos: pos, Net: net, Layers: merged, links: dedupeItems(mergedLinks)}
	remaining = append(remaining, joint)
	m.byKey[key] = remaining
	return joint
}

// link touches the joint at (pos, layers, net) and adds item to its link
// set.
func (m *jointMap) link(pos pnsgeom.Vec, layers LayerRange, net int, item *Item) *Joint {
	j := m.touchJoint(pos, layers, net)
	j.addLink(item)
	return j
}

// unlink removes item's link from whichever joint at (pos, net) currently
// carries it. A joint left with no links is dropped from the map; queries
// never see it either way.
func (m *jointMap) unlink(pos pnsgeom.Vec, layers LayerRange, net int, item *Item) {
	key := jointKey{pos: pos, net: net}
	list := m.byKey[key]
	for i, j := range list {
		if !j.Layers.Overlaps(layers) {
			continue
		}
		j.removeLink(item)
		if len(j.links) == 0 {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(m.byKey, key)
			} else {
				m.byKey[key] = list
			}
		}
		return
	}
}

// findJoint returns the joint at (pos, net) whose layer range contains
// layer, if any.
func (m *jointMap) findJoint(pos pnsgeom.Vec, layer int, net int) (*Joint, bool) {
	key := jointKey{pos: pos, net: net}
	for _, j := range m.byKey[key] {
		if j.Layers.Contains(layer) {
			return j, true
		}
	}
	return nil, false
}

// removeJointsAt deletes every joint at (pos, net) whose layer range
// overlaps layers (used by via removal) and returns the union of their
// links, excluding except.
func (m *jointMap) removeJointsAt(pos pnsgeom.Vec, net int, layers LayerRange, except *Item) []*Item {
	key := jointKey{pos: pos, net: net}
	list := m.byKey[key]

	var kept []*Joint
	var links []*Item
	for _, j := range list {
		if !j.Layers.Overlaps(layers) {
			kept = append(kept, j)
			continue
		}
		for _, l := range j.links {
			if l != except {
				links = append(links, l)
			}
		}
	}
	if len(kept) == 0 {
		delete(m.byKey, key)
	} else {
		m.byKey[key] = kept
	}
	return dedupeItems(links)
}

// lock sets the lock bit of the joint at (pos, layers, net).
func (m *jointMap) lock(pos pnsgeom.Vec, layers LayerRange, net int, locked bool) *Joint {
	j := m.touchJoint(pos, layers, net)
	j.locked = locked
	return j
}

// clear empties the map.
func (m *jointMap) clear() {
	m.byKey = make(map[jointKey][]*Joint)
}

// count returns the total number of distinct joints currently tracked,
// used by World.DebugString.
func (m *jointMap) count() int {
	n := 0
	for _, list := range m.byKey {
		n += len(list)
	}
	return n
}

func dedupeItems(items []*Item) []*Item {
	if len(items) < 2 {
		return items
	}
	seen := make(map[*Item]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
