package rtree

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckDetectsStaleEnvelope(t *testing.T) {
	tree := gridTree(t, 4, 6)
	inner, ok := tree.root.(*innerNode[string])
	if !ok {
		t.Fatalf("expected internal root for 36 items")
	}
	switch child := inner.children[0].(type) {
	case *innerNode[string]:
		child.bbox = child.bbox.Expand(1, 1)
	case *leafNode[string]:
		child.bbox = child.bbox.Expand(1, 1)
	}
	err := tree.Check()
	if !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}
	if !strings.Contains(err.Error(), "union of") {
		t.Errorf("unexpected error message %q", err)
	}
}

func TestCheckDetectsUnderfullNode(t *testing.T) {
	tree, err := New[string](Config{MaxEntries: 4, MinEntries: 2})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		mustInsert(t, tree, unitBox(float64(i), 0), string(rune('a'+i)))
	}
	inner := tree.root.(*innerNode[string])
	leaf := inner.children[0].(*leafNode[string])
	for len(leaf.entries) > 1 {
		leaf.entries = leaf.entries[:len(leaf.entries)-1]
		tree.count--
	}
	tree.recomputeLeafBounds(leaf)
	tree.recomputeInnerBounds(inner)
	err = tree.Check()
	if !errors.Is(err, ErrCorrupted) || !strings.Contains(err.Error(), "below min entries") {
		t.Fatalf("expected underfull node to be detected, got %v", err)
	}
}

func TestCheckDetectsCountMismatch(t *testing.T) {
	tree := gridTree(t, 4, 3)
	tree.count++
	if err := tree.Check(); !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected count mismatch to be detected, got %v", err)
	}
	tree.count--
	tree.height++
	if err := tree.Check(); !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected height mismatch to be detected, got %v", err)
	}
}

func TestCheckDetectsSingleChildRoot(t *testing.T) {
	tree := newTestTree(t, 4)
	mustInsert(t, tree, unitBox(0, 0), "a")
	tree.root = tree.makeInner(tree.root)
	tree.height = 1
	if err := tree.Check(); !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected single-child root to be detected, got %v", err)
	}
}
