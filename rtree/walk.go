package rtree

import (
	"slices"

	"github.com/npillmayer/spatial"
)

// NodeView describes a tree node for debugging and visualization purposes.
type NodeView[T comparable] struct {
	ID       int              // pre-order number of the node, starting at 1
	ParentID int              // ID of the parent node, 0 for the root
	Depth    int              // 0 for the root
	Envelope spatial.Envelope // cached envelope of the node
	Leaf     bool             // true for leaf nodes
	Size     int              // number of entries or children
	Entries  []Entry[T]       // copy of the entries of a leaf, nil for internal nodes
}

// Walk visits all nodes of the tree in pre-order. If fn returns an error,
// the walk stops and the error is returned.
func (t *Tree[T]) Walk(fn func(NodeView[T]) error) error {
	if t == nil || t.root == nil || fn == nil {
		return nil
	}
	id := 0
	var walk func(n treeNode[T], parent, depth int) error
	walk = func(n treeNode[T], parent, depth int) error {
		id++
		view := NodeView[T]{
			ID:       id,
			ParentID: parent,
			Depth:    depth,
			Envelope: n.bounds(),
			Leaf:     n.isLeaf(),
			Size:     n.size(),
		}
		if leaf, ok := n.(*leafNode[T]); ok {
			view.Entries = slices.Clone(leaf.entries)
		}
		if err := fn(view); err != nil {
			return err
		}
		if inner, ok := n.(*innerNode[T]); ok {
			self := view.ID
			for _, child := range inner.children {
				if err := walk(child, self, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(t.root, 0, 0)
}
