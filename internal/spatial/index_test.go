package spatial

import (
	"testing"

	"github.com/OpenTraceLab/pcbworld/pkg/pnsgeom"
)

func box(x1, y1, x2, y2 int64) pnsgeom.Rect {
	return pnsgeom.NewRect(pnsgeom.Vec{X: x1, Y: y1}, pnsgeom.Vec{X: x2, Y: y2})
}

func TestIndexAddQuery(t *testing.T) {
	idx := NewIndex()
	idx.Add("a", box(0, 0, 100, 100), 1)
	idx.Add("b", box(5_000_000, 5_000_000, 5_100_000, 5_100_000), 1)

	var found []any
	idx.Query(box(-10, -10, 10, 10), func(e Entry) bool {
		found = append(found, e.Key)
		return true
	})
	if len(found) != 1 || found[0] != "a" {
		t.Fatalf("Query() = %v, want [a]", found)
	}
}

func TestIndexSpanningMultipleBuckets(t *testing.T) {
	idx := NewIndex()
	idx.Add("big", box(0, 0, 3_000_000, 0), 1)

	count := 0
	idx.Query(box(2_500_000, -10, 2_600_000, 10), func(e Entry) bool {
		count++
		return true
	})
	if count != 1 {
		t.Fatalf("Query() visited %d times, want exactly 1 even though the box spans buckets", count)
	}
}

func TestIndexRemove(t *testing.T) {
	idx := NewIndex()
	idx.Add("a", box(0, 0, 10, 10), 1)
	idx.Remove("a")

	if _, ok := idx.Get("a"); ok {
		t.Fatalf("Get() found removed entry")
	}
	if idx.Len() != 0 {
		t.Fatalf("Len() = %d after Remove, want 0", idx.Len())
	}

	count := 0
	idx.ItemsForNet(1, func(e Entry) bool { count++; return true })
	if count != 0 {
		t.Fatalf("ItemsForNet() = %d after Remove, want 0", count)
	}
}

func TestIndexItemsForNet(t *testing.T) {
	idx := NewIndex()
	idx.Add("a", box(0, 0, 10, 10), 1)
	idx.Add("b", box(0, 0, 10, 10), 2)
	idx.Add("c", box(100, 100, 110, 110), 1)

	var keys []any
	idx.ItemsForNet(1, func(e Entry) bool {
		keys = append(keys, e.Key)
		return true
	})
	if len(keys) != 2 {
		t.Fatalf("ItemsForNet(1) returned %d entries, want 2", len(keys))
	}
}

func TestIndexClear(t *testing.T) {
	idx := NewIndex()
	idx.Add("a", box(0, 0, 10, 10), 1)
	idx.Clear()
	if idx.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", idx.Len())
	}
}

func TestIndexEarlyStop(t *testing.T) {
	idx := NewIndex()
	idx.Add("a", box(0, 0, 10, 10), 1)
	idx.Add("b", box(0, 0, 10, 10), 1)

	count := 0
	idx.Query(box(0, 0, 10, 10), func(e Entry) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Query() visited %d entries after early stop, want 1", count)
	}
}
