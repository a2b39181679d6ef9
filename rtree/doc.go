/*
Package rtree provides a dynamic, in-memory R-tree for 2-D envelopes.

The tree maps bounding boxes (spatial.Envelope) to opaque items of a type
parameter T and answers window, point and nearest-neighbour queries. It is
intended as the spatial index of an interactive map viewer: features are
inserted while they are loaded, the renderer asks for the features inside the
viewport on every redraw, and editing tools remove and re-insert features
around geometry edits.

Structure:
  - distinct `leafNode` and `innerNode` representations (a sum type behind the
    `treeNode` interface),
  - every node caches the union of the envelopes of its contents,
  - all leaves live at the same depth; the root alone may hold fewer than
    `MinEntries` entries or children,
  - Guttman-style insertion: least-enlargement subtree choice with area as tie
    breaker, quadratic seed picking for splits,
  - deletion with condensation by re-insertion: underflowing nodes are
    detached and their entries inserted again from the root. Merging siblings
    in place (as an R*-tree would do) is not implemented; re-insertion is
    simpler and keeps the tree valid at some cost in query performance.

Queries work on envelopes only. A geometry query uses the bounding box of the
geometry, and nearest-neighbour search measures the distance to the centroid
of an entry's envelope, not to the feature itself. Clients needing exact
answers have to post-filter results.

Nearest-neighbour search is a linear scan over all entries followed by a
sort. A best-first traversal over node envelopes would be the natural
optimization, changing results only in the order of equidistant items.

Concurrency: a Tree is not synchronized. Mutations (Insert, Remove, Clear,
Optimize) must not overlap with any other call. Queries may run concurrently
with each other, provided no mutation is running (e.g. under a
sync.RWMutex held by the client; see package watch).

Building with tag `rtree_debug` verifies all tree invariants after every
mutation and panics on violation.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rtree

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/spatial"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return spatial.T()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
