package rtree

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/npillmayer/spatial"
)

// AnyDistance may be passed as maxDistance to nearest-neighbour queries to
// disable the distance limit.
const AnyDistance = math.MaxFloat64

type candidate[T comparable] struct {
	item T
	dist float64
}

// FindKNearest returns up to k items ordered by ascending distance from p.
//
// The distance of an item is measured from p to the centroid of the item's
// envelope, not to the item's geometry. Items farther away than maxDistance
// are excluded, so a negative maxDistance gives an empty result. AnyDistance
// or NaN means no limit. For k ≤ 0 the result is empty.
//
// Every call scans all entries of the tree and sorts them by distance, so the
// cost is O(N log N). Items at equal distance keep their traversal order.
func (t *Tree[T]) FindKNearest(p spatial.Point, k int, maxDistance float64) []T {
	if k <= 0 || maxDistance < 0 {
		return nil
	}
	start := time.Now()
	defer func() { t.latency.record(time.Since(start)) }()
	if math.IsNaN(maxDistance) {
		maxDistance = AnyDistance
	}
	var candidates []candidate[T]
	t.forEachEntry(t.root, func(e Entry[T]) bool {
		if d := e.Box.Centroid().Dist(p); d <= maxDistance {
			candidates = append(candidates, candidate[T]{item: e.Item, dist: d})
		}
		return true
	})
	slices.SortStableFunc(candidates, func(a, b candidate[T]) int {
		return cmp.Compare(a.dist, b.dist)
	})
	n := min(k, len(candidates))
	result := make([]T, n)
	for i := range n {
		result[i] = candidates[i].item
	}
	return result
}

// FindNearest returns the item closest to p, measured like FindKNearest.
// If no item lies within maxDistance, found is false.
func (t *Tree[T]) FindNearest(p spatial.Point, maxDistance float64) (item T, found bool) {
	nearest := t.FindKNearest(p, 1, maxDistance)
	if len(nearest) == 0 {
		return item, false
	}
	return nearest[0], true
}
