package rtree

import (
	"iter"
	"time"

	"github.com/npillmayer/spatial"
)

// Query returns the items whose envelopes intersect window, in no particular
// order.
//
// The sequence is lazy: the tree is traversed while the caller iterates, and
// every iteration starts a fresh traversal. The tree must not be mutated
// during an iteration.
func (t *Tree[T]) Query(window spatial.Envelope) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range t.QueryEntries(window) {
			if !yield(item) {
				return
			}
		}
	}
}

// QueryEntries is like Query, but yields the envelope of every item as well.
//
// The latency recorded for the statistics covers the tree traversal only,
// not the time the caller spends in the loop body.
func (t *Tree[T]) QueryEntries(window spatial.Envelope) iter.Seq2[spatial.Envelope, T] {
	return func(yield func(spatial.Envelope, T) bool) {
		// the clock is paused while the caller handles an item
		var spent time.Duration
		start := time.Now()
		defer func() { t.latency.record(spent + time.Since(start)) }()
		if !window.Intersects(t.root.bounds()) {
			return
		}
		t.search(t.root, window, func(e Entry[T]) bool {
			spent += time.Since(start)
			more := yield(e.Box, e.Item)
			start = time.Now()
			return more
		})
	}
}

// QueryPoint returns the items whose envelopes contain p (borders included).
func (t *Tree[T]) QueryPoint(p spatial.Point) iter.Seq[T] {
	return t.Query(p.Envelope())
}

// QueryGeometry returns the items whose envelopes intersect the envelope of g.
//
// No exact geometric test is performed: an item is reported if the bounding
// boxes overlap, even if the geometries themselves do not. Clients needing
// exact overlap have to filter the result.
func (t *Tree[T]) QueryGeometry(g spatial.Bounded) iter.Seq[T] {
	if g == nil {
		return t.Query(spatial.NullEnvelope())
	}
	return t.Query(g.Envelope())
}

// Entries returns all entries of the tree, in no particular order.
func (t *Tree[T]) Entries() iter.Seq2[spatial.Envelope, T] {
	return func(yield func(spatial.Envelope, T) bool) {
		t.forEachEntry(t.root, func(e Entry[T]) bool {
			return yield(e.Box, e.Item)
		})
	}
}

// search calls yield for every entry below n intersecting window. It returns
// false as soon as yield does.
func (t *Tree[T]) search(n treeNode[T], window spatial.Envelope, yield func(Entry[T]) bool) bool {
	switch n := n.(type) {
	case *leafNode[T]:
		for _, e := range n.entries {
			if e.Box.Intersects(window) && !yield(e) {
				return false
			}
		}
		return true
	case *innerNode[T]:
		for _, child := range n.children {
			if child.bounds().Intersects(window) && !t.search(child, window, yield) {
				return false
			}
		}
		return true
	default:
		panic("unknown tree node type")
	}
}

func (t *Tree[T]) forEachEntry(n treeNode[T], fn func(Entry[T]) bool) bool {
	switch n := n.(type) {
	case *leafNode[T]:
		for _, e := range n.entries {
			if !fn(e) {
				return false
			}
		}
		return true
	case *innerNode[T]:
		for _, child := range n.children {
			if !t.forEachEntry(child, fn) {
				return false
			}
		}
		return true
	default:
		panic("unknown tree node type")
	}
}
