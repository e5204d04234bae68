package pnsworld

import (
	"testing"

	"github.com/OpenTraceLab/pcbworld/pkg/pnsgeom"
)

func item(net int) *Item {
	return NewVia(pnsgeom.Vec{X: 0, Y: 0}, net, LayerRange{Start: 0, End: 1}, 100, nil)
}

func TestRevisionDepth(t *testing.T) {
	root := NewRootRevision()
	if root.Depth() != 0 {
		t.Fatalf("Depth() = %d at root, want 0", root.Depth())
	}
	child := root.Branch()
	if child.Depth() != 1 {
		t.Fatalf("Depth() = %d for a child, want 1", child.Depth())
	}
	grandchild := child.Branch()
	if grandchild.Depth() != 2 {
		t.Fatalf("Depth() = %d for a grandchild, want 2", grandchild.Depth())
	}
}

func TestRevisionOwnershipUniqueness(t *testing.T) {
	root := NewRootRevision()
	it := item(1)
	root.AddItem(it)

	if !root.Owns(it) {
		t.Fatalf("Owns() = false right after AddItem, want true")
	}
	if it.Owner() != root {
		t.Fatalf("Owner() = %v, want root", it.Owner())
	}
}

func TestRevisionSquashAbsorbsAddedAndRemoved(t *testing.T) {
	root := NewRootRevision()
	ancestor := item(1)
	root.AddItem(ancestor)

	child := root.Branch()
	childOwned := item(2)
	child.AddItem(childOwned)
	child.RemoveItem(ancestor) // shadow, since root owns it

	parent := child.Squash()
	if parent != root {
		t.Fatalf("Squash() returned %v, want root", parent)
	}
	if !root.Owns(childOwned) {
		t.Fatalf("root does not own the absorbed item after Squash")
	}
	if root.Owns(ancestor) || ancestor.Owner() != nil {
		t.Fatalf("root still owns the removed ancestor item after Squash, want its add cancelled")
	}
}

func TestRevisionSquashDropsSiblingBranches(t *testing.T) {
	root := NewRootRevision()
	sibling := root.Branch()
	toSquash := root.Branch()
	grandchild := toSquash.Branch()

	toSquash.Squash()

	found := false
	for _, b := range root.branches {
		if b == grandchild {
			found = true
		}
		if b == sibling {
			t.Fatalf("sibling branch survived Squash, want dropped")
		}
	}
	if !found {
		t.Fatalf("squashed revision's child was not re-parented onto root")
	}
}

func TestRevisionRevertDetachesBranch(t *testing.T) {
	root := NewRootRevision()
	child := root.Branch()

	parent := child.Revert()
	if parent != root {
		t.Fatalf("Revert() returned %v, want root", parent)
	}
	for _, b := range root.branches {
		if b == child {
			t.Fatalf("reverted child is still attached to root.branches")
		}
	}
}

func TestRevisionPath(t *testing.T) {
	root := NewRootRevision()
	a := root.Branch()
	b := a.Branch()

	path := b.Path(root)
	if len(path) != 2 || path[0] != b || path[1] != a {
		t.Fatalf("Path() = %v, want [b, a]", path)
	}
}

func TestPathBetweenSiblingBranches(t *testing.T) {
	root := NewRootRevision()
	b1 := root.Branch()
	b2 := root.Branch()

	revert, apply := PathBetween(b1, b2)
	if len(revert) != 1 || revert[0] != b1 {
		t.Fatalf("revert = %v, want [b1]", revert)
	}
	if len(apply) != 1 || apply[0] != b2 {
		t.Fatalf("apply = %v, want [b2]", apply)
	}
}

func TestPathBetweenUnevenDepths(t *testing.T) {
	root := NewRootRevision()
	a := root.Branch()
	aa := a.Branch()
	aaa := aa.Branch()
	b := root.Branch()

	revert, apply := PathBetween(aaa, b)
	if len(revert) != 3 {
		t.Fatalf("revert = %v, want 3 entries back to root", revert)
	}
	if revert[0] != aaa || revert[len(revert)-1] != a {
		t.Fatalf("revert = %v, want starting at aaa and ending at a", revert)
	}
	if len(apply) != 1 || apply[0] != b {
		t.Fatalf("apply = %v, want [b]", apply)
	}
}

func TestChangeSetCancellation(t *testing.T) {
	cs := NewChangeSet()
	it := item(1)

	cs.Add(it)
	cs.Remove(it)

	if len(cs.AddedItems()) != 0 || len(cs.RemovedItems()) != 0 {
		t.Fatalf("ChangeSet still references item after Add then Remove cancel out")
	}
}

func TestChangeSetFromPath(t *testing.T) {
	root := NewRootRevision()
	a := root.Branch()
	added := item(1)
	a.AddItem(added)

	b := root.Branch()

	revert, apply := PathBetween(a, b)
	cs := NewChangeSetFromPath(revert, apply)

	removedItems := cs.RemovedItems()
	if len(removedItems) != 1 || removedItems[0] != added {
		t.Fatalf("RemovedItems() = %v, want [added] after moving away from a", removedItems)
	}
	if len(cs.AddedItems()) != 0 {
		t.Fatalf("AddedItems() = %v, want empty", cs.AddedItems())
	}
}
