package rtree

import (
	"math"
	"testing"

	"github.com/npillmayer/spatial"
)

func pointTree(t *testing.T) *Tree[string] {
	t.Helper()
	tree := newTestTree(t, 4)
	for _, p := range []struct {
		name string
		x, y float64
	}{
		{"p00", 0, 0}, {"p10", 1, 0}, {"p20", 2, 0}, {"p100", 10, 0}, {"p101", 10, 1},
	} {
		mustInsert(t, tree, spatial.Pt(p.x, p.y).Envelope(), p.name)
	}
	return tree
}

func TestFindKNearestOrdersByCentroidDistance(t *testing.T) {
	tree := pointTree(t)
	got := tree.FindKNearest(spatial.Pt(0, 0), 2, AnyDistance)
	if len(got) != 2 || got[0] != "p00" || got[1] != "p10" {
		t.Fatalf("expected [p00 p10], got %v", got)
	}
	all := tree.FindKNearest(spatial.Pt(0, 0), 10, AnyDistance)
	want := []string{"p00", "p10", "p20", "p100", "p101"}
	if len(all) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), all)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v want %v", i, all, want)
		}
	}
}

func TestFindKNearestUsesEnvelopeCentroid(t *testing.T) {
	tree := newTestTree(t, 4)
	// a wide box touching the query point, but with a distant centroid
	mustInsert(t, tree, spatial.Rect(0, 0, 100, 2), "wide")
	mustInsert(t, tree, spatial.Rect(5, 0, 6, 1), "small")
	got := tree.FindKNearest(spatial.Pt(0, 0), 1, AnyDistance)
	if len(got) != 1 || got[0] != "small" {
		t.Fatalf("expected [small], got %v", got)
	}
}

func TestFindKNearestRespectsMaxDistance(t *testing.T) {
	tree := pointTree(t)
	got := tree.FindKNearest(spatial.Pt(0, 0), 5, 1.5)
	if len(got) != 2 {
		t.Fatalf("expected 2 items within 1.5, got %v", got)
	}
	if got := tree.FindKNearest(spatial.Pt(0, 0), 5, -1); len(got) != 0 {
		t.Fatalf("expected negative max distance to exclude all items, got %v", got)
	}
	if got := tree.FindKNearest(spatial.Pt(0, 0), 5, math.NaN()); len(got) != 5 {
		t.Fatalf("expected NaN max distance to mean no limit, got %v", got)
	}
	if got := tree.FindKNearest(spatial.Pt(0, 0), 5, 0); len(got) != 1 || got[0] != "p00" {
		t.Fatalf("expected max distance 0 to match the item at the query point, got %v", got)
	}
	if _, found := tree.FindNearest(spatial.Pt(50, 50), 10); found {
		t.Fatalf("expected nothing within distance 10 of (50,50)")
	}
}

func TestFindKNearestNonPositiveK(t *testing.T) {
	tree := pointTree(t)
	if got := tree.FindKNearest(spatial.Pt(0, 0), 0, AnyDistance); len(got) != 0 {
		t.Fatalf("expected empty result for k=0, got %v", got)
	}
	if got := tree.FindKNearest(spatial.Pt(0, 0), -3, AnyDistance); len(got) != 0 {
		t.Fatalf("expected empty result for k<0, got %v", got)
	}
}

func TestFindNearest(t *testing.T) {
	tree := pointTree(t)
	item, found := tree.FindNearest(spatial.Pt(9, 2), AnyDistance)
	if !found || item != "p101" {
		t.Fatalf("expected p101, got %q (found=%v)", item, found)
	}
	empty := newTestTree(t, 4)
	if _, found := empty.FindNearest(spatial.Pt(0, 0), AnyDistance); found {
		t.Fatalf("expected nothing in empty tree")
	}
}
