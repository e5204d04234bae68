package pnsworld

// Revision is a node in the undo tree. It owns every item first added
// within it (added) and records shadow references for ancestor-owned
// items removed within it (removed). No cycles exist: revisions own
// items and child revisions; items and joints only ever point "up."
type Revision struct {
	parent   *Revision
	branches []*Revision
	added    []*Item
	removed  []*Item
}

// NewRootRevision returns a fresh, parentless revision suitable as the
// root of a world's undo tree.
func NewRootRevision() *Revision {
	return &Revision{}
}

// Parent returns the revision's parent, or nil at the root.
func (r *Revision) Parent() *Revision {
	return r.parent
}

// Depth returns the revision's distance from the root, recomputed by
// walking to root on every call rather than cached.
func (r *Revision) Depth() int {
	d := 0
	for p := r.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// NumChanges reports how many added and removed entries this revision
// currently holds, used by callers reporting how much speculative work is
// pending on the current branch.
func (r *Revision) NumChanges() int {
	return len(r.added) + len(r.removed)
}

// AddedItems returns a copy of this revision's owned items.
func (r *Revision) AddedItems() []*Item {
	out := make([]*Item, len(r.added))
	copy(out, r.added)
	return out
}

// RemovedItems returns a copy of this revision's shadow references.
func (r *Revision) RemovedItems() []*Item {
	out := make([]*Item, len(r.removed))
	copy(out, r.removed)
	return out
}

// Owns reports whether item is currently owned by this revision (present
// in its added list).
func (r *Revision) Owns(item *Item) bool {
	return item.owner == r
}

// IsShadowed reports whether item has been recorded as removed within
// this revision.
func (r *Revision) IsShadowed(item *Item) bool {
	for _, it := range r.removed {
		if it == item {
			return true
		}
	}
	return false
}

// AddItem takes ownership of item, pushing it onto this revision's added
// list. Precondition: r must be a leaf (have no branches) — the world
// only ever calls this on its current revision, which is always a leaf.
func (r *Revision) AddItem(item *Item) {
	if len(r.branches) != 0 {
		panic("pnsworld: AddItem on a non-leaf revision")
	}
	item.owner = r
	r.added = append(r.added, item)
}

// RemoveItem erases item if this revision owns it (destroying it),
// otherwise records a shadow hiding the ancestor-owned item. Precondition:
// r must be a leaf.
func (r *Revision) RemoveItem(item *Item) {
	if len(r.branches) != 0 {
		panic("pnsworld: RemoveItem on a non-leaf revision")
	}
	for i, it := range r.added {
		if it == item {
			r.added = append(r.added[:i], r.added[i+1:]...)
			item.owner = nil
			return
		}
	}
	r.removed = append(r.removed, item)
}

// Branch creates an empty child revision and returns it.
func (r *Revision) Branch() *Revision {
	child := &Revision{parent: r}
	r.branches = append(r.branches, child)
	return child
}

// ReleaseBranch detaches child b from r, transferring ownership of it to
// the caller. Panics if b is not one of r's branches.
func (r *Revision) ReleaseBranch(b *Revision) *Revision {
	for i, c := range r.branches {
		if c == b {
			r.branches = append(r.branches[:i], r.branches[i+1:]...)
			b.parent = nil
			return b
		}
	}
	panic("pnsworld: ReleaseBranch called with a revision that is not a child")
}

// Squash absorbs r into its parent — transferring r's added items and
// replaying r's removed shadows against the parent — then re-parents r's
// own branches onto the parent in place of the parent's other branches
// (which are dropped: once r is squashed away, its siblings diverged from
// a state that no longer exists). Returns the parent, which becomes the
// caller's new current revision.
func (r *Revision) Squash() *Revision {
	p := r.parent
	if p == nil {
		panic("pnsworld: Squash on the root revision")
	}

	// The parent drops all of its branches (r included) before absorbing,
	// so that it is a leaf when RemoveItem replays r's removals.
	p.branches = nil
	for _, it := range r.removed {
		p.RemoveItem(it)
	}
	for _, it := range r.added {
		it.owner = p
		p.added = append(p.added, it)
	}

	for _, b := range r.branches {
		b.parent = p
	}
	p.branches = r.branches

	r.parent = nil
	r.added = nil
	r.removed = nil
	r.branches = nil
	return p
}

// Revert discards r (and, with it, every item it owns) and returns its
// parent. The caller must unhook r's items from any indices before
// calling Revert; World.Revert does this.
func (r *Revision) Revert() *Revision {
	p := r.parent
	if p == nil {
		panic("pnsworld: Revert on the root revision")
	}
	for i, c := range p.branches {
		if c == r {
			p.branches = append(p.branches[:i], p.branches[i+1:]...)
			break
		}
	}
	r.parent = nil
	return p
}

// Path returns the upward chain [r, r.parent, ..., ancestor) — exclusive
// of ancestor. Panics if ancestor is not r itself or reachable by walking
// parent pointers.
func (r *Revision) Path(ancestor *Revision) []*Revision {
	var out []*Revision
	cur := r
	for cur != ancestor {
		if cur == nil {
			panic("pnsworld: ancestor is not reachable from this revision")
		}
		out = append(out, cur)
		cur = cur.parent
	}
	return out
}

// PathBetween computes the revision path connecting from to to: the
// revert chain (from up to, but excluding, their nearest common
// ancestor) and the apply chain (from the NCA's child down to to,
// nearest-to-NCA first). WalkPath replays revert in the given order, then
// apply in the given order.
func PathBetween(from, to *Revision) (revert, apply []*Revision) {
	fDepth, tDepth := from.Depth(), to.Depth()
	f, t := from, to

	var fChain, tChain []*Revision
	for fDepth > tDepth {
		fChain = append(fChain, f)
		f = f.parent
		fDepth--
	}
	for tDepth > fDepth {
		tChain = append(tChain, t)
		t = t.parent
		tDepth--
	}
	for f != t {
		if f == nil || t == nil {
			panic("pnsworld: revisions share no common ancestor")
		}
		fChain = append(fChain, f)
		tChain = append(tChain, t)
		f = f.parent
		t = t.parent
	}

	apply = make([]*Revision, len(tChain))
	for i, r := range tChain {
		apply[len(tChain)-1-i] = r
	}
	return fChain, apply
}
