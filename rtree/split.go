package rtree

import (
	"math"

	"github.com/npillmayer/spatial"
)

// splitLeaf splits an overflowing leaf into two leaves.
//
// leaf keeps the first group of entries, the returned sibling holds the
// second. Both end up with at least MinEntries entries.
func (t *Tree[T]) splitLeaf(leaf *leafNode[T]) *leafNode[T] {
	assert(len(leaf.entries) > t.cfg.MaxEntries, "splitLeaf called for non-overflowing leaf")
	first, second := quadraticSplit(leaf.entries, entryBox[T], t.cfg.MinEntries, t.cfg.MaxEntries+1)
	leaf.entries = first
	t.recomputeLeafBounds(leaf)
	return t.makeLeaf(second)
}

// splitInner splits an overflowing internal node into two siblings.
func (t *Tree[T]) splitInner(inner *innerNode[T]) *innerNode[T] {
	assert(len(inner.children) > t.cfg.MaxEntries, "splitInner called for non-overflowing node")
	first, second := quadraticSplit(inner.children, nodeBox[T], t.cfg.MinEntries, t.cfg.MaxEntries+1)
	inner.children = first
	t.recomputeInnerBounds(inner)
	return t.makeInner(second...)
}

// quadraticSplit partitions items into two groups of at least minFill items.
//
// The seeds of the groups are the pair of items wasting the most area when
// put together. Remaining items go, in order, to the group needing less
// enlargement to include them; ties go to the smaller group. Finally, items
// are moved from the tail of the larger group to the smaller one until both
// satisfy minFill.
//
// The groups are freshly allocated with the given capacity, items is not modified.
func quadraticSplit[E any](items []E, box func(E) spatial.Envelope, minFill, capacity int) ([]E, []E) {
	assert(len(items) >= 2 && len(items) >= 2*minFill, "quadraticSplit: too few items for a valid split")
	s1, s2 := pickSeeds(items, box)
	g1 := make([]E, 0, capacity)
	g2 := make([]E, 0, capacity)
	g1 = append(g1, items[s1])
	g2 = append(g2, items[s2])
	b1, b2 := box(items[s1]), box(items[s2])
	for i, item := range items {
		if i == s1 || i == s2 {
			continue
		}
		ib := box(item)
		d1, d2 := b1.Enlargement(ib), b2.Enlargement(ib)
		if d1 < d2 || (d1 == d2 && len(g1) <= len(g2)) {
			g1 = append(g1, item)
			b1 = b1.Union(ib)
		} else {
			g2 = append(g2, item)
			b2 = b2.Union(ib)
		}
	}
	for len(g1) < minFill {
		g1 = append(g1, g2[len(g2)-1])
		g2 = g2[:len(g2)-1]
	}
	for len(g2) < minFill {
		g2 = append(g2, g1[len(g1)-1])
		g1 = g1[:len(g1)-1]
	}
	return g1, g2
}

// pickSeeds returns the indices of the pair (a, b) maximizing
//
//	Area(a ∪ b) − Area(a) − Area(b)
//
// The first pair found wins on ties, so seeds are always distinct.
func pickSeeds[E any](items []E, box func(E) spatial.Envelope) (int, int) {
	s1, s2 := 0, 1
	worst := math.Inf(-1)
	for i := 0; i < len(items)-1; i++ {
		bi := box(items[i])
		for j := i + 1; j < len(items); j++ {
			bj := box(items[j])
			waste := bi.Union(bj).Area() - bi.Area() - bj.Area()
			if waste > worst {
				s1, s2, worst = i, j, waste
			}
		}
	}
	return s1, s2
}
