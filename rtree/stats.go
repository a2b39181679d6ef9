package rtree

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Rough per-object sizes for memory estimation. They do not account for the
// items themselves, which are owned by the client.
const (
	estimatedNodeBytes  = 64
	estimatedEntryBytes = 48
)

// latencySmoothing is the inverse weight of a new sample in the rolling
// average of query latencies.
const latencySmoothing = 8

// Stats is a snapshot of tree statistics.
type Stats struct {
	Items           int           // number of entries
	Nodes           int           // number of nodes, leaves included
	Leaves          int           // number of leaf nodes
	Depth           int           // number of edges on a root-to-leaf path
	EstimatedBytes  int64         // rough estimate of the memory held by the tree
	Queries         uint64        // number of queries since the tree was created
	AvgQueryLatency time.Duration // rolling average over recent queries
}

func (s Stats) String() string {
	return fmt.Sprintf("items=%d nodes=%d leaves=%d depth=%d mem≈%dB queries=%d avg=%s",
		s.Items, s.Nodes, s.Leaves, s.Depth, s.EstimatedBytes, s.Queries, s.AvgQueryLatency)
}

// Statistics returns a snapshot of the tree's statistics. Node counting walks
// the whole tree.
func (t *Tree[T]) Statistics() Stats {
	s := Stats{
		Items:           t.count,
		Depth:           t.depth(),
		Queries:         t.latency.queries.Load(),
		AvgQueryLatency: time.Duration(t.latency.avg.Load()),
	}
	s.Nodes, s.Leaves = t.countNodes(t.root)
	s.EstimatedBytes = int64(s.Nodes)*estimatedNodeBytes + int64(s.Items)*estimatedEntryBytes
	return s
}

// depth follows the first child of every internal node down to a leaf. All
// leaves are on the same level, so every path has the same length.
func (t *Tree[T]) depth() int {
	d := 0
	n := t.root
	for !n.isLeaf() {
		inner := n.(*innerNode[T])
		assert(len(inner.children) > 0, "depth: internal node without children")
		n = inner.children[0]
		d++
	}
	return d
}

func (t *Tree[T]) countNodes(n treeNode[T]) (nodes, leaves int) {
	if n.isLeaf() {
		return 1, 1
	}
	nodes = 1
	for _, child := range n.(*innerNode[T]).children {
		cn, cl := t.countNodes(child)
		nodes += cn
		leaves += cl
	}
	return nodes, leaves
}

// latencyStats keeps a rolling (exponentially weighted) average of query
// latencies. Queries may run concurrently, so it is updated atomically.
type latencyStats struct {
	queries atomic.Uint64
	avg     atomic.Int64 // nanoseconds
}

func (l *latencyStats) record(d time.Duration) {
	n := l.queries.Add(1)
	for {
		old := l.avg.Load()
		next := int64(d)
		if n > 1 {
			next = old + (int64(d)-old)/latencySmoothing
		}
		if l.avg.CompareAndSwap(old, next) {
			return
		}
	}
}
