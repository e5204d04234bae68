package pnsworld

// ChangeSet is an aggregated, self-cancelling add/remove delta: the net
// effect of replaying a RevisionPath. Adding an item already present in
// removed cancels both entries, and vice versa, so a ChangeSet never
// contains an item in both sequences.
type ChangeSet struct {
	added   []*Item
	removed []*Item
}

// NewChangeSet returns an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{}
}

// Add records item as newly visible, cancelling a prior Remove of the
// same item if present.
func (c *ChangeSet) Add(item *Item) {
	for i, it := range c.removed {
		if it == item {
			c.removed = append(c.removed[:i], c.removed[i+1:]...)
			return
		}
	}
	c.added = append(c.added, item)
}

// Remove records item as no longer visible, cancelling a prior Add of the
// same item if present.
func (c *ChangeSet) Remove(item *Item) {
	for i, it := range c.added {
		if it == item {
			c.added = append(c.added[:i], c.added[i+1:]...)
			return
		}
	}
	c.removed = append(c.removed, item)
}

// AddedItems returns a copy of the items this change set surfaces as
// newly visible.
func (c *ChangeSet) AddedItems() []*Item {
	out := make([]*Item, len(c.added))
	copy(out, c.added)
	return out
}

// RemovedItems returns a copy of the items this change set surfaces as
// no longer visible.
func (c *ChangeSet) RemovedItems() []*Item {
	out := make([]*Item, len(c.removed))
	copy(out, c.removed)
	return out
}

// NewChangeSetFromPath composes the net delta of reverting every revision
// in revert (in order) and then applying every revision in apply (in
// order): a revision's added items disappear on revert and appear on
// apply; its removed (shadowed) items reappear on revert and disappear on
// apply.
func NewChangeSetFromPath(revert, apply []*Revision) *ChangeSet {
	cs := NewChangeSet()
	for _, r := range revert {
		for _, it := range r.added {
			cs.Remove(it)
		}
		for _, it := range r.removed {
			cs.Add(it)
		}
	}
	for _, r := range apply {
		for _, it := range r.added {
			cs.Add(it)
		}
		for _, it := range r.removed {
			cs.Remove(it)
		}
	}
	return cs
}
