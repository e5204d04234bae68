// Package pnsworld is the router's spatial world model: a mutable,
// branchable, revisionable graph of pads, vias, and wire segments, with
// clearance-aware collision queries and on-demand reconstruction of
// connected wire chains ("lines"). It is the core a push-and-shove router
// builds on; the router's own heuristics, file I/O, and rule
// configuration live outside this package.
package pnsworld

import (
	"fmt"
	"log"

	"github.com/OpenTraceLab/pcbworld/internal/spatial"
	"github.com/OpenTraceLab/pcbworld/pkg/pnsgeom"
	"github.com/OpenTraceLab/pcbworld/pkg/pnsrules"
)

// DefaultClearanceEnvelope is the world's default upper bound on any
// pairwise clearance a query may request, in nanometers (0.8mm).
const DefaultClearanceEnvelope int64 = 800_000

// Config configures a new World. Zero-value fields fall back to the
// package defaults.
type Config struct {
	// ClearanceEnvelope bounds how far a collision query may reach past
	// an item's own bounding box. Defaults to DefaultClearanceEnvelope.
	ClearanceEnvelope int64
	// Resolver supplies pairwise clearances. Defaults to a
	// pnsrules.FixedResolver using pnsrules.DefaultClearance.
	Resolver pnsrules.Resolver
}

// World is the facade binding a spatial index, a joint map, and a
// pointer into a revision tree. It is not safe for concurrent use: no
// operation is reentrant, and no operation blocks, matching the router's
// single-threaded edit model.
type World struct {
	spatial           *spatial.Index
	joints            *jointMap
	root              *Revision
	current           *Revision
	clearanceEnvelope int64
	resolver          pnsrules.Resolver
}

// NewWorld returns an empty world with a fresh root revision as its
// current revision.
func NewWorld(cfg Config) *World {
	if cfg.ClearanceEnvelope <= 0 {
		cfg.ClearanceEnvelope = DefaultClearanceEnvelope
	}
	if cfg.Resolver == nil {
		cfg.Resolver = pnsrules.NewFixedResolver()
	}
	root := NewRootRevision()
	return &World{
		spatial:           spatial.NewIndex(),
		joints:            newJointMap(),
		root:              root,
		current:           root,
		clearanceEnvelope: cfg.ClearanceEnvelope,
		resolver:          cfg.Resolver,
	}
}

// Root returns the world's root revision.
func (w *World) Root() *Revision {
	return w.root
}

// Current returns the world's current revision.
func (w *World) Current() *Revision {
	return w.current
}

// --- indexing helpers (no revision bookkeeping) ---

func (w *World) indexAdd(item *Item) {
	switch item.Kind {
	case KindSolid:
		w.joints.link(item.Pos, item.Layers, item.Net, item)
		w.spatial.Add(item, item.Shape.BBox(), item.Net)
	case KindVia:
		w.joints.link(item.Pos, item.Layers, item.Net, item)
		w.spatial.Add(item, item.Shape.BBox(), item.Net)
	case KindSegment:
		w.joints.link(item.A, item.Layers, item.Net, item)
		w.joints.link(item.B, item.Layers, item.Net, item)
		w.spatial.Add(item, item.Shape.BBox(), item.Net)
	default:
		panic("pnsworld: a Line cannot be indexed")
	}
}

func (w *World) indexRemove(item *Item) {
	switch item.Kind {
	case KindSolid:
		w.joints.unlink(item.Pos, item.Layers, item.Net, item)
		w.spatial.Remove(item)
	case KindVia:
		w.removeViaIndex(item)
	case KindSegment:
		w.joints.unlink(item.A, item.Layers, item.Net, item)
		w.joints.unlink(item.B, item.Layers, item.Net, item)
		w.spatial.Remove(item)
	default:
		panic("pnsworld: a Line cannot be unindexed")
	}
}

// removeViaIndex deletes every joint the via unified at its position and
// net, then re-links each formerly-joined item individually — the via may
// have merged several per-layer joints into one, and removing it must
// re-fragment them according to each remaining item's own layer range.
func (w *World) removeViaIndex(via *Item) {
	links := w.joints.removeJointsAt(via.Pos, via.Net, via.Layers, via)
	w.spatial.Remove(via)
	for _, it := range links {
		w.joints.link(via.Pos, it.Layers, it.Net, it)
	}
}

func (w *World) findRedundantSegment(a, b pnsgeom.Vec, layer, net int) *Item {
	j, ok := w.joints.findJoint(a, layer, net)
	if !ok {
		return nil
	}
	for _, l := range j.links {
		if l.Kind != KindSegment || l.Net != net || l.Layers.Start != layer {
			continue
		}
		if (l.A.Equals(a) && l.B.Equals(b)) || (l.A.Equals(b) && l.B.Equals(a)) {
			return l
		}
	}
	return nil
}

// --- public mutation operations ---

// Add inserts item into the world: linking its joints, indexing its
// shape, and recording it in the current revision. Redundant segments
// (same endpoints, starting layer, and net as an existing one) are
// silently skipped. Add panics if item is a Line — decompose it with
// AssembleLine's inverse, AddLine, instead.
func (w *World) Add(item *Item) {
	w.addItem(item, false)
}

// AddAllowRedundant behaves like Add but inserts a segment even if an
// identical one already exists.
func (w *World) AddAllowRedundant(item *Item) {
	w.addItem(item, true)
}

func (w *World) addItem(item *Item, allowRedundant bool) {
	switch item.Kind {
	case KindSolid, KindVia:
		w.indexAdd(item)
		w.current.AddItem(item)
	case KindSegment:
		if item.A.Equals(item.B) {
			log.Printf("pnsworld: zero-length segment at %v ignored", item.A)
			return
		}
		if !allowRedundant {
			if existing := w.findRedundantSegment(item.A, item.B, item.Layers.Start, item.Net); existing != nil {
				return
			}
		}
		w.indexAdd(item)
		w.current.AddItem(item)
	default:
		panic("pnsworld: Add called with a Line; use AddLine")
	}
}

// AddLine decomposes line into its constituent segments, inserting each
// one that does not already exist (binding the Line to whichever
// redundant segment is already present instead). The Line itself is never
// added to the current revision's owned items — only its segments are —
// but its owner back-pointer is set for bookkeeping.
func (w *World) AddLine(line *Item) {
	if line.Kind != KindLine {
		panic("pnsworld: AddLine called with a non-Line item")
	}
	for i := 0; i < line.Chain.SegmentCount(); i++ {
		a, b := line.Chain.CSegment(i)
		if a.Equals(b) {
			continue
		}
		if existing := w.findRedundantSegment(a, b, line.Layers.Start, line.Net); existing != nil {
			line.Segments = append(line.Segments, existing)
			continue
		}
		seg := NewSegment(a, b, line.Net, line.Layers.Start, line.Width, nil)
		w.indexAdd(seg)
		w.current.AddItem(seg)
		line.Segments = append(line.Segments, seg)
	}
	line.owner = w.current
}

// Remove unlinks item's joints, removes it from the spatial index, and
// records the removal in the current revision. Removing a Line instead
// removes every segment it links, then detaches the line.
func (w *World) Remove(item *Item) {
	if item.Kind == KindLine {
		for _, seg := range item.Segments {
			w.Remove(seg)
		}
		item.owner = nil
		return
	}
	w.indexRemove(item)
	w.current.RemoveItem(item)
}

// Replace removes old and adds newItem; behavior is exactly that
// composition.
func (w *World) Replace(old, newItem *Item) {
	w.Remove(old)
	w.addItem(newItem, false)
}

// --- collision queries ---

// Obstacle pairs a colliding candidate with the query item ("head") that
// found it.
type Obstacle struct {
	Item *Item
	Head *Item
}

// QueryColliding returns obstacles within the current clearance envelope
// of query, filtered to kindsMask, up to limit hits (limit < 0 means
// unlimited). forcedClearance overrides the resolver-derived clearance
// when ≥ 0.
func (w *World) QueryColliding(query *Item, kindsMask Kind, limit int, differentNetsOnly bool, forcedClearance int64) []Obstacle {
	if query.Kind == KindLine {
		return w.queryCollidingLine(query, kindsMask, limit, differentNetsOnly, forcedClearance)
	}

	var out []Obstacle
	envelope := query.Shape.BBox().Inflate(w.clearanceEnvelope)

	w.spatial.Query(envelope, func(e spatial.Entry) bool {
		cand := e.Key.(*Item)
		if cand == query {
			return true
		}
		if cand.Kind&kindsMask == 0 {
			return true
		}
		if cand.Kind == KindLine {
			panic("pnsworld: a Line must never appear in the spatial index")
		}

		clearance := forcedClearance
		if clearance < 0 {
			clearance = w.resolver.Clearance(cand.Net, query.Net, cand.Layers.Start)
		}

		if cand.Collide(query, clearance, differentNetsOnly) {
			out = append(out, Obstacle{Item: cand, Head: query})
			if limit >= 0 && len(out) >= limit {
				return false
			}
		}
		return true
	})
	return out
}

// queryCollidingLine implements QueryColliding for a Line query. A Line
// carries no Shape of its own (it is never indexed), so it is queried by
// probing each of its constituent segments — and its terminating via, if
// line.Via is set — individually, merging hits and honoring limit across
// the whole walk rather than per segment.
func (w *World) queryCollidingLine(line *Item, kindsMask Kind, limit int, differentNetsOnly bool, forcedClearance int64) []Obstacle {
	var out []Obstacle
	seen := make(map[*Item]bool)
	for _, probe := range lineProbes(line) {
		remaining := -1
		if limit >= 0 {
			remaining = limit - len(out)
			if remaining <= 0 {
				break
			}
		}
		for _, ob := range w.QueryColliding(probe, kindsMask, remaining, differentNetsOnly, forcedClearance) {
			if seen[ob.Item] {
				continue
			}
			seen[ob.Item] = true
			out = append(out, Obstacle{Item: ob.Item, Head: line})
			if limit >= 0 && len(out) >= limit {
				return out
			}
		}
	}
	return out
}

// lineProbes returns the real, shaped items that stand in for a Line
// during a collision query: its segments, plus its terminating via when
// known.
func lineProbes(line *Item) []*Item {
	probes := append([]*Item(nil), line.Segments...)
	if line.Via != nil {
		probes = append(probes, line.Via)
	}
	return probes
}

// CheckColliding is the fast single-hit variant of QueryColliding: it
// returns the first obstacle found, or false if query is clear. On a
// Line query it stops at the first segment (or terminating via) that
// hits, rather than walking the whole line.
func (w *World) CheckColliding(query *Item, kindsMask Kind) (Obstacle, bool) {
	hits := w.QueryColliding(query, kindsMask, 1, false, -1)
	if len(hits) == 0 {
		return Obstacle{}, false
	}
	return hits[0], true
}

// CheckCollidingPair directly tests itemA against itemB, without
// consulting the spatial index. A Line operand (on either side) is
// expanded to its segments and terminating via; the pair collides if any
// such expansion does.
func (w *World) CheckCollidingPair(itemA, itemB *Item, forcedClearance int64) bool {
	if itemA.Kind == KindLine {
		for _, probe := range lineProbes(itemA) {
			if w.CheckCollidingPair(probe, itemB, forcedClearance) {
				return true
			}
		}
		return false
	}
	if itemB.Kind == KindLine {
		for _, probe := range lineProbes(itemB) {
			if w.CheckCollidingPair(itemA, probe, forcedClearance) {
				return true
			}
		}
		return false
	}
	clearance := forcedClearance
	if clearance < 0 {
		clearance = w.resolver.Clearance(itemA.Net, itemB.Net, itemA.Layers.Start)
	}
	return itemA.Collide(itemB, clearance, false)
}

// HitTest returns every item whose shape touches point exactly (zero
// clearance, zero-radius probe).
func (w *World) HitTest(point pnsgeom.Vec) []*Item {
	probe := &Item{Kind: KindSolid, Net: UnassignedNet, Shape: pnsgeom.CircleShape{Center: point, Radius: 0}}
	var out []*Item
	w.spatial.Query(probe.Shape.BBox().Inflate(w.clearanceEnvelope), func(e spatial.Entry) bool {
		cand := e.Key.(*Item)
		if cand.Shape.Collide(probe.Shape, 0) {
			out = append(out, cand)
		}
		return true
	})
	return out
}

// NearestObstacleResult reports the obstacle nearest to a query line's
// start, plus the farthest intersection found among any obstacle along
// the line's length.
type NearestObstacleResult struct {
	Nearest      *Item
	NearestDist  int64
	Farthest     *Item
	FarthestDist int64
}

// NearestObstacle walks line's constituent segments (and its terminating
// via, if any) looking for obstacles within kindsMask, optionally
// restricted to the given set. It returns the obstacle whose nearest
// intersection with line's hull lies closest to line's start, along with
// the single farthest intersection point found among every candidate.
func (w *World) NearestObstacle(line *Item, kindsMask Kind, restricted map[*Item]bool, endVia *Item) (NearestObstacleResult, bool) {
	if line.Kind != KindLine {
		panic("pnsworld: NearestObstacle requires a Line")
	}

	seen := make(map[*Item]bool)
	var candidates []*Item
	collect := func(q *Item) {
		for _, ob := range w.QueryColliding(q, kindsMask, -1, false, -1) {
			if seen[ob.Item] {
				continue
			}
			if restricted != nil && !restricted[ob.Item] {
				continue
			}
			seen[ob.Item] = true
			candidates = append(candidates, ob.Item)
		}
	}
	for _, seg := range line.Segments {
		collect(seg)
	}
	if endVia != nil {
		collect(endVia)
	}

	if len(candidates) == 0 {
		return NearestObstacleResult{}, false
	}

	result := NearestObstacleResult{NearestDist: -1, FarthestDist: -1}
	lineLength := line.Chain.Length()

	for _, cand := range candidates {
		clearance := w.resolver.Clearance(cand.Net, line.Net, cand.Layers.Start) + line.Width/2
		hull := pnsgeom.LineChain{Points: closeLoop(pnsgeom.Hull(cand.Shape, clearance))}

		var dists []int64
		for _, p := range line.Chain.IntersectAll(hull) {
			dists = append(dists, line.Chain.PathLength(p))
		}
		if endVia != nil {
			viaClearance := w.resolver.Clearance(cand.Net, endVia.Net, cand.Layers.Start)
			viaHull := pnsgeom.LineChain{Points: closeLoop(pnsgeom.Hull(endVia.Shape, viaClearance))}
			for _, isect := range hull.IntersectAll(viaHull) {
				dists = append(dists, lineLength+isect.Sub(endVia.Pos).EuclideanNorm())
			}
		}
		if len(dists) == 0 {
			if result.Nearest == nil {
				result.Nearest = cand
			}
			continue
		}

		minDist := int64(-1)
		for _, d := range dists {
			if minDist < 0 || d < minDist {
				minDist = d
			}
			if d > result.FarthestDist {
				result.FarthestDist = d
				result.Farthest = cand
			}
		}
		if result.NearestDist < 0 || minDist < result.NearestDist {
			result.NearestDist = minDist
			result.Nearest = cand
		}
	}
	return result, true
}

func closeLoop(points []pnsgeom.Vec) []pnsgeom.Vec {
	if len(points) == 0 {
		return points
	}
	return append(points, points[0])
}

// --- line assembly ---

type assembleStep struct {
	pos pnsgeom.Vec
	seg *Item
}

// AssembleLine reconstructs the maximal polyline containing seed,
// walking outward from each of its endpoints across "line corner" joints
// (those linking exactly two segments). The walk stops at a branch point,
// a locked joint (if stopAtLockedJoints), or a previously visited
// position (a cycle, terminated with a guard hit). It returns the
// assembled Line and the index of seed within the returned line's
// Segments.
func (w *World) AssembleLine(seed *Item, stopAtLockedJoints bool) (*Item, int) {
	if seed.Kind != KindSegment {
		panic("pnsworld: AssembleLine requires a Segment seed")
	}

	// seen is shared between both walk directions: on a closed loop of
	// segments, whichever direction reaches the literal opposite seed
	// endpoint first closes the loop, and the other direction must not
	// re-walk the territory the first one already covered.
	seen := map[pnsgeom.Vec]bool{seed.A: true, seed.B: true}

	walk := func(start, other pnsgeom.Vec) ([]assembleStep, bool) {
		var out []assembleStep
		current := seed
		pos := start
		for {
			j, ok := w.joints.findJoint(pos, current.Layers.Start, current.Net)
			if !ok {
				panic("pnsworld: missing joint during AssembleLine walk")
			}
			if j.LinkCount() != 2 || (j.locked && stopAtLockedJoints) {
				return out, false
			}
			next := j.NextSegment(current)
			if next == nil {
				return out, false
			}
			var nextPos pnsgeom.Vec
			if next.A.Equals(pos) {
				nextPos = next.B
			} else {
				nextPos = next.A
			}
			out = append(out, assembleStep{pos: nextPos, seg: next})
			if nextPos.Equals(other) {
				return out, true
			}
			if seen[nextPos] {
				return out, false
			}
			seen[nextPos] = true
			current = next
			pos = nextPos
		}
	}

	back, backClosed := walk(seed.A, seed.B)
	var fwd []assembleStep
	if !backClosed {
		fwd, _ = walk(seed.B, seed.A)
	}

	var points []pnsgeom.Vec
	var segs []*Item
	for i := len(back) - 1; i >= 0; i-- {
		points = append(points, back[i].pos)
	}
	points = append(points, seed.A, seed.B)
	for _, s := range fwd {
		points = append(points, s.pos)
	}

	for i := len(back) - 1; i >= 0; i-- {
		segs = append(segs, back[i].seg)
	}
	segs = append(segs, seed)
	for _, s := range fwd {
		segs = append(segs, s.seg)
	}
	segs = dedupeConsecutive(segs)

	line := &Item{
		Kind:     KindLine,
		Net:      seed.Net,
		Layers:   seed.Layers,
		Width:    seed.Width,
		Chain:    pnsgeom.LineChain{Points: points},
		Segments: segs,
		owner:    w.current,
	}
	return line, len(back)
}

func dedupeConsecutive(items []*Item) []*Item {
	if len(items) < 2 {
		return items
	}
	out := items[:1]
	for _, it := range items[1:] {
		if it != out[len(out)-1] {
			out = append(out, it)
		}
	}
	return out
}

// FindLinesBetweenJoints assembles the line through every segment linked
// at joint a, keeps those whose layer range overlaps b, and — when both
// a's and b's positions lie on the assembled chain — clips the result to
// the span between them.
func (w *World) FindLinesBetweenJoints(a, b *Joint) []*Item {
	var lines []*Item
	for _, seg := range a.links {
		if seg.Kind != KindSegment {
			continue
		}
		line, _ := w.AssembleLine(seg, false)
		if !line.Layers.Overlaps(b.Layers) {
			continue
		}
		ia := line.Chain.Find(a.Pos)
		ib := line.Chain.Find(b.Pos)
		if ia < 0 || ib < 0 {
			continue
		}
		lo, hi := ia, ib
		if lo > hi {
			lo, hi = hi, lo
		}
		lines = append(lines, clipLine(line, lo, hi))
	}
	return lines
}

func clipLine(line *Item, lo, hi int) *Item {
	clipped := &Item{
		Kind:   KindLine,
		Net:    line.Net,
		Layers: line.Layers,
		Width:  line.Width,
		Chain:  pnsgeom.LineChain{Points: append([]pnsgeom.Vec(nil), line.Chain.Points[lo:hi+1]...)},
		owner:  line.owner,
	}
	if hi <= len(line.Segments) {
		clipped.Segments = append([]*Item(nil), line.Segments[lo:hi]...)
	}
	return clipped
}

// --- joints, nets, ranks, markers ---

// FindJoint returns the joint at (pos, net) whose layer range contains
// layer, if any.
func (w *World) FindJoint(pos pnsgeom.Vec, layer, net int) (*Joint, bool) {
	return w.joints.findJoint(pos, layer, net)
}

// LockJoint sets the lock bit of the joint at item's position, layers,
// and net.
func (w *World) LockJoint(pos pnsgeom.Vec, item *Item, locked bool) *Joint {
	return w.joints.lock(pos, item.Layers, item.Net, locked)
}

// AllItemsInNet returns every indexed item on net.
func (w *World) AllItemsInNet(net int) []*Item {
	var out []*Item
	w.spatial.ItemsForNet(net, func(e spatial.Entry) bool {
		out = append(out, e.Key.(*Item))
		return true
	})
	return out
}

// ClearRanks resets every indexed item's rank to -1 and clears the given
// marker bits.
func (w *World) ClearRanks(mask uint64) {
	w.spatial.All(func(e spatial.Entry) bool {
		it := e.Key.(*Item)
		it.Rank = -1
		it.Marker &^= mask
		return true
	})
}

// FindByMarker returns every indexed item with at least one bit of mask
// set in its marker.
func (w *World) FindByMarker(mask uint64) []*Item {
	var out []*Item
	w.spatial.All(func(e spatial.Entry) bool {
		if it := e.Key.(*Item); it.Marker&mask != 0 {
			out = append(out, it)
		}
		return true
	})
	return out
}

// RemoveByMarker removes every indexed item with at least one bit of mask
// set in its marker. Candidates are buffered before removal since removal
// mutates the index being iterated.
func (w *World) RemoveByMarker(mask uint64) {
	for _, it := range w.FindByMarker(mask) {
		w.Remove(it)
	}
}

// FindItemByParent scans net's items for one whose Parent back-pointer
// equals parent.
func (w *World) FindItemByParent(net int, parent any) (*Item, bool) {
	for _, it := range w.AllItemsInNet(net) {
		if it.Parent == parent {
			return it, true
		}
	}
	return nil, false
}

// --- revision delegation ---

// BranchMove branches the current revision and makes the new child
// current, returning the old current revision.
func (w *World) BranchMove() *Revision {
	old := w.current
	w.current = old.Branch()
	return old
}

// Squash absorbs the current revision into its parent and makes the
// parent current.
func (w *World) Squash() {
	w.current = w.current.Squash()
}

// SquashToRevision repeatedly squashes the current revision until it
// equals ancestor.
func (w *World) SquashToRevision(ancestor *Revision) {
	for w.current != ancestor {
		w.current = w.current.Squash()
	}
}

// SquashToParentRevision repeatedly squashes the current revision until
// its parent equals ancestor.
func (w *World) SquashToParentRevision(ancestor *Revision) {
	for w.current.parent != ancestor {
		w.current = w.current.Squash()
	}
}

func (w *World) revertCurrent() {
	r := w.current
	if r.parent == nil {
		panic("pnsworld: cannot revert the root revision")
	}
	for _, it := range r.added {
		w.indexRemove(it)
	}
	for _, it := range r.removed {
		w.indexAdd(it)
	}
	w.current = r.Revert()
}

// Revert discards the current revision and its items, moving current to
// its parent.
func (w *World) Revert() {
	w.revertCurrent()
}

// RevertToRevision repeatedly reverts the current revision until it
// equals ancestor.
func (w *World) RevertToRevision(ancestor *Revision) {
	for w.current != ancestor {
		w.revertCurrent()
	}
}

// RevertToParentRevision repeatedly reverts the current revision until
// its parent equals ancestor.
func (w *World) RevertToParentRevision(ancestor *Revision) {
	for w.current.parent != ancestor {
		w.revertCurrent()
	}
}

// WalkPath replays a RevisionPath: unhooking each revert-leg revision's
// items from the indices (re-inserting its shadows), then hooking up
// each apply-leg revision's items, without detaching any revision from
// the tree. This is the only code path where an item already owned
// elsewhere in the tree may be re-indexed.
func (w *World) WalkPath(revert, apply []*Revision) {
	for _, r := range revert {
		if r != w.current {
			panic("pnsworld: WalkPath revert leg out of sync with current revision")
		}
		for _, it := range r.added {
			w.indexRemove(it)
		}
		for _, it := range r.removed {
			w.indexAdd(it)
		}
		w.current = r.parent
	}
	for _, r := range apply {
		if r.parent != w.current {
			panic("pnsworld: WalkPath apply leg out of sync with current revision")
		}
		for _, it := range r.added {
			w.indexAdd(it)
		}
		for _, it := range r.removed {
			w.indexRemove(it)
		}
		w.current = r
	}
}

// CheckoutRevision navigates the world from its current revision to
// target via WalkPath(PathBetween(current, target)).
func (w *World) CheckoutRevision(target *Revision) {
	revert, apply := PathBetween(w.current, target)
	w.WalkPath(revert, apply)
}

// Clear empties the spatial index, the joint map, and the current
// revision's own added/removed lists — not the revision tree itself.
func (w *World) Clear() {
	w.spatial.Clear()
	w.joints.clear()
	w.current.added = nil
	w.current.removed = nil
}

// DebugString returns a short human-readable summary of the world's
// size, printed by the CLI's inspect command.
func (w *World) DebugString() string {
	return fmt.Sprintf("world: %d items, %d joints, current depth %d, %d pending changes",
		w.spatial.Len(), w.joints.count(), w.current.Depth(), w.current.NumChanges())
}
