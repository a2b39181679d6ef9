package rtree

import (
	"cmp"
	"fmt"
	"slices"
)

// Optimize rebuilds the tree from scratch.
//
// All entries are collected, sorted by the left border of their envelopes and
// inserted again, one by one. Neighbouring entries then tend to end up in the
// same leaves, which gives a denser and often shallower tree after a burst
// of insertions and removals. Optimize is never called automatically.
func (t *Tree[T]) Optimize() {
	if t.IsEmpty() {
		return
	}
	before := t.height
	entries := collectEntries(t.root, make([]Entry[T], 0, t.count))
	t.rebuild(entries)
	tracer().Infof("rtree: optimized %d entries, height %d -> %d", t.count, before, t.height)
	t.verify("optimize")
}

// Load creates a tree from a batch of entries, the same way Optimize
// rebuilds an existing tree. The slice is not modified.
func Load[T comparable](cfg Config, entries []Entry[T]) (*Tree[T], error) {
	t, err := New[T](cfg)
	if err != nil {
		return nil, err
	}
	var null T
	for i, e := range entries {
		if err := e.Box.Check(); err != nil {
			return nil, fmt.Errorf("%w: entry #%d: %w", ErrInvalidArgument, i, err)
		}
		if e.Item == null {
			return nil, fmt.Errorf("%w: entry #%d: item is null", ErrInvalidArgument, i)
		}
	}
	t.rebuild(slices.Clone(entries))
	t.verify("load")
	return t, nil
}

// rebuild replaces the tree contents by entries, which are sorted in place.
func (t *Tree[T]) rebuild(entries []Entry[T]) {
	slices.SortStableFunc(entries, func(a, b Entry[T]) int {
		return cmp.Compare(a.Box.MinX, b.Box.MinX)
	})
	t.Clear()
	for _, e := range entries {
		t.insertEntry(e)
	}
	t.count = len(entries)
}
