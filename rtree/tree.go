package rtree

import (
	"fmt"

	"github.com/npillmayer/spatial"
)

// Tree is a dynamic R-tree mapping envelopes to items of type T.
//
// Items are compared with == when removing entries; for pointer types this is
// identity. The zero value of T is reserved and cannot be inserted.
//
// A Tree must be created with New or NewDefault. It is not safe for
// concurrent mutation, see the package documentation.
type Tree[T comparable] struct {
	cfg     Config
	root    treeNode[T]
	height  int // 0 means the root is a leaf
	count   int
	latency latencyStats
}

// New creates an empty tree with validated configuration.
func New[T comparable](cfg Config) (*Tree[T], error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[T]{cfg: cfg}
	t.root = t.emptyLeaf()
	return t, nil
}

// NewDefault creates an empty tree with the default configuration.
func NewDefault[T comparable]() *Tree[T] {
	t, err := New[T](Config{})
	assert(err == nil, "default configuration is invalid")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config {
	return t.cfg
}

// Count returns the number of entries in the tree.
func (t *Tree[T]) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Len is an alias for Count.
func (t *Tree[T]) Len() int {
	return t.Count()
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[T]) IsEmpty() bool {
	return t.Count() == 0
}

// Height returns the tree height, where 0 means the root is a leaf.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Bounds returns the envelope of all entries in the tree. For an empty tree,
// ok is false.
func (t *Tree[T]) Bounds() (box spatial.Envelope, ok bool) {
	if t.IsEmpty() {
		return spatial.NullEnvelope(), false
	}
	return t.root.bounds(), true
}

// Clear removes all entries from the tree.
func (t *Tree[T]) Clear() {
	t.root = t.emptyLeaf()
	t.height = 0
	t.count = 0
}

// Insert adds an entry for item with envelope box.
//
// box must be a non-null envelope without NaN coordinates and item must not
// be the zero value of T, otherwise an error wrapping ErrInvalidArgument is
// returned. The tree stores box verbatim; if the item's geometry changes
// later, clients have to remove and re-insert it.
//
// Inserting the same (box, item) pair twice results in two entries.
func (t *Tree[T]) Insert(box spatial.Envelope, item T) error {
	if err := box.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	var null T
	if item == null {
		return fmt.Errorf("%w: item is null", ErrInvalidArgument)
	}
	t.insertEntry(Entry[T]{Box: box, Item: item})
	t.count++
	t.verify("insert")
	return nil
}

// insertEntry places e into a leaf and grows the tree if the root splits.
// It does not touch the entry count.
func (t *Tree[T]) insertEntry(e Entry[T]) {
	sibling := t.insertRecursive(t.root, e)
	if sibling != nil {
		t.root = t.makeInner(t.root, sibling)
		t.height++
		tracer().Debugf("rtree: root split, height is now %d", t.height)
	}
}

// insertRecursive inserts e into subtree n and propagates split results.
//
// The returned sibling is non-nil only when n overflowed and had to be split;
// n keeps the other half of its contents.
func (t *Tree[T]) insertRecursive(n treeNode[T], e Entry[T]) treeNode[T] {
	switch n := n.(type) {
	case *leafNode[T]:
		n.entries = append(n.entries, e)
		n.bbox = n.bbox.Union(e.Box)
		if len(n.entries) > t.cfg.MaxEntries {
			return t.splitLeaf(n)
		}
		return nil
	case *innerNode[T]:
		slot := t.chooseSubtree(n, e.Box)
		sibling := t.insertRecursive(n.children[slot], e)
		// splitting a child does not change the union of all children
		n.bbox = n.bbox.Union(e.Box)
		if sibling == nil {
			return nil
		}
		n.children = append(n.children, sibling)
		if len(n.children) > t.cfg.MaxEntries {
			return t.splitInner(n)
		}
		return nil
	default:
		panic("unknown tree node type")
	}
}

// chooseSubtree selects the child of inner needing the least enlargement to
// include box. Ties are broken by the smaller area.
func (t *Tree[T]) chooseSubtree(inner *innerNode[T], box spatial.Envelope) int {
	assert(len(inner.children) > 0, "chooseSubtree called with empty children")
	best := 0
	bestBox := inner.children[0].bounds()
	bestDelta := bestBox.Enlargement(box)
	for i := 1; i < len(inner.children); i++ {
		childBox := inner.children[i].bounds()
		delta := childBox.Enlargement(box)
		if delta < bestDelta || (delta == bestDelta && childBox.Area() < bestBox.Area()) {
			best, bestBox, bestDelta = i, childBox, delta
		}
	}
	return best
}
