package rtree

import "github.com/npillmayer/spatial"

// Entry pairs an envelope with a client item. Entries are never modified
// after insertion; two entries are equal if both envelope and item are equal.
type Entry[T comparable] struct {
	Box  spatial.Envelope
	Item T
}

type treeNode[T comparable] interface {
	isLeaf() bool
	bounds() spatial.Envelope
	size() int
}

type leafNode[T comparable] struct {
	bbox    spatial.Envelope
	entries []Entry[T]
}

func (l *leafNode[T]) isLeaf() bool             { return true }
func (l *leafNode[T]) bounds() spatial.Envelope { return l.bbox }
func (l *leafNode[T]) size() int                { return len(l.entries) }

type innerNode[T comparable] struct {
	bbox     spatial.Envelope
	children []treeNode[T]
}

func (n *innerNode[T]) isLeaf() bool             { return false }
func (n *innerNode[T]) bounds() spatial.Envelope { return n.bbox }
func (n *innerNode[T]) size() int                { return len(n.children) }

func entryBox[T comparable](e Entry[T]) spatial.Envelope   { return e.Box }
func nodeBox[T comparable](n treeNode[T]) spatial.Envelope { return n.bounds() }

// makeLeaf creates a new leaf for entries and computes its envelope.
// The leaf takes ownership of the slice.
func (t *Tree[T]) makeLeaf(entries []Entry[T]) *leafNode[T] {
	leaf := &leafNode[T]{entries: entries}
	t.recomputeLeafBounds(leaf)
	return leaf
}

// makeInner creates a new internal node and computes its envelope from the
// child envelopes.
func (t *Tree[T]) makeInner(children ...treeNode[T]) *innerNode[T] {
	inner := &innerNode[T]{children: children}
	t.recomputeInnerBounds(inner)
	return inner
}

func (t *Tree[T]) emptyLeaf() *leafNode[T] {
	return &leafNode[T]{
		bbox:    spatial.NullEnvelope(),
		entries: make([]Entry[T], 0, t.cfg.MaxEntries+1),
	}
}

func (t *Tree[T]) recomputeLeafBounds(leaf *leafNode[T]) {
	assert(leaf != nil, "recomputeLeafBounds called with nil leaf")
	leaf.bbox = unionOf(leaf.entries, entryBox[T])
}

func (t *Tree[T]) recomputeInnerBounds(inner *innerNode[T]) {
	assert(inner != nil, "recomputeInnerBounds called with nil inner node")
	inner.bbox = unionOf(inner.children, nodeBox[T])
}

// unionOf returns the union of the envelopes of all elements of a slice.
func unionOf[E any](elems []E, box func(E) spatial.Envelope) spatial.Envelope {
	u := spatial.NullEnvelope()
	for _, e := range elems {
		u = u.Union(box(e))
	}
	return u
}

// removeAt removes the element at idx, preserving order. The backing array
// is reused.
func removeAt[E any](src []E, idx int) []E {
	assert(idx >= 0 && idx < len(src), "removeAt index out of range")
	copy(src[idx:], src[idx+1:])
	var zero E
	src[len(src)-1] = zero
	return src[:len(src)-1]
}

// collectEntries appends all leaf entries below n to out.
func collectEntries[T comparable](n treeNode[T], out []Entry[T]) []Entry[T] {
	switch n := n.(type) {
	case *leafNode[T]:
		return append(out, n.entries...)
	case *innerNode[T]:
		for _, child := range n.children {
			out = collectEntries(child, out)
		}
		return out
	default:
		panic("unknown tree node type")
	}
}
