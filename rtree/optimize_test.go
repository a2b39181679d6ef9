package rtree

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/spatial"
)

func TestOptimizeKeepsItems(t *testing.T) {
	teardown := traceTo(t, tracing.LevelInfo)
	defer teardown()
	//
	tree := newTestTree(t, 4)
	rnd := rand.New(rand.NewSource(17))
	for i := 0; i < 300; i++ {
		x, y := rnd.Float64()*100, rnd.Float64()*100
		mustInsert(t, tree, spatial.Rect(x, y, x+rnd.Float64()*3, y+rnd.Float64()*3), fmt.Sprintf("r%d", i))
	}
	for i := 0; i < 300; i += 3 {
		// removing needs the exact box, so look it up first
		for box, item := range tree.Entries() {
			if item == fmt.Sprintf("r%d", i) {
				if !tree.Remove(box, item) {
					t.Fatalf("could not remove %s", item)
				}
				break
			}
		}
	}
	before := make(map[string]spatial.Envelope)
	for box, item := range tree.Entries() {
		before[item] = box
	}
	tree.Optimize()
	if err := tree.Check(); err != nil {
		t.Fatalf("optimized tree is invalid: %v", err)
	}
	if tree.Count() != len(before) {
		t.Fatalf("expected %d items after optimize, got %d", len(before), tree.Count())
	}
	for box, item := range tree.Entries() {
		if before[item] != box {
			t.Fatalf("item %s changed envelope from %v to %v", item, before[item], box)
		}
	}
}

func TestOptimizeEmptyTree(t *testing.T) {
	tree := newTestTree(t, 4)
	tree.Optimize()
	if !tree.IsEmpty() || tree.Check() != nil {
		t.Fatalf("expected empty tree to stay empty and valid")
	}
}

func TestLoad(t *testing.T) {
	entries := make([]Entry[int], 0, 50)
	for i := 50; i > 0; i-- {
		entries = append(entries, Entry[int]{Box: unitBox(float64(i), 0), Item: i})
	}
	tree, err := Load(Config{MaxEntries: 6}, entries)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tree.Count() != 50 {
		t.Fatalf("expected 50 items, got %d", tree.Count())
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if entries[0].Item != 50 {
		t.Errorf("Load must not reorder the caller's slice")
	}
	found := collect(tree, spatial.Rect(10.5, 0.5, 12.5, 0.5))
	if len(found) != 3 || found[10] != 1 || found[11] != 1 || found[12] != 1 {
		t.Errorf("expected {10,11,12}, got %v", found)
	}
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	_, err := Load(Config{}, []Entry[int]{
		{Box: unitBox(0, 0), Item: 1},
		{Box: spatial.NullEnvelope(), Item: 2},
	})
	if !errors.Is(err, ErrInvalidArgument) || !errors.Is(err, spatial.ErrNullEnvelope) {
		t.Errorf("expected null envelope error, got %v", err)
	}
	_, err = Load(Config{}, []Entry[int]{{Box: unitBox(0, 0), Item: 0}})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected error for null item, got %v", err)
	}
	_, err = Load[int](Config{MaxEntries: 2}, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}
