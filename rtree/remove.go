package rtree

import "github.com/npillmayer/spatial"

// Remove deletes the entry with envelope box and item from the tree.
//
// It returns true if such an entry existed. Removing an absent entry is not
// an error and leaves the tree unchanged. If there are duplicates of the
// entry, only one of them is removed.
//
// Nodes falling below MinEntries are detached from the tree and all entries
// below them are inserted again from the root.
func (t *Tree[T]) Remove(box spatial.Envelope, item T) bool {
	if box.Check() != nil {
		return false
	}
	var orphans []Entry[T]
	if !t.removeRecursive(t.root, box, item, &orphans) {
		return false
	}
	t.count--
	t.collapseRoot()
	if len(orphans) > 0 {
		tracer().Debugf("rtree: condensing tree, re-inserting %d entries", len(orphans))
		for _, e := range orphans {
			t.insertEntry(e)
		}
	}
	t.verify("remove")
	return true
}

// Contains reports whether the tree holds an entry with envelope box and item.
func (t *Tree[T]) Contains(box spatial.Envelope, item T) bool {
	if box.Check() != nil {
		return false
	}
	return t.findRecursive(t.root, box, item)
}

// removeRecursive removes one matching entry from subtree n.
//
// Only children whose envelope contains box can hold the entry. If the entry
// is not found below the first candidate, the other candidates are tried.
// Children left underfull by the removal are detached, and their remaining
// entries are appended to orphans.
func (t *Tree[T]) removeRecursive(n treeNode[T], box spatial.Envelope, item T, orphans *[]Entry[T]) bool {
	switch n := n.(type) {
	case *leafNode[T]:
		for i, e := range n.entries {
			if e.Box == box && e.Item == item {
				n.entries = removeAt(n.entries, i)
				t.recomputeLeafBounds(n)
				return true
			}
		}
		return false
	case *innerNode[T]:
		for i, child := range n.children {
			if !child.bounds().Contains(box) {
				continue
			}
			if !t.removeRecursive(child, box, item, orphans) {
				continue
			}
			if child.size() < t.cfg.MinEntries {
				n.children = removeAt(n.children, i)
				*orphans = collectEntries(child, *orphans)
			}
			t.recomputeInnerBounds(n)
			return true
		}
		return false
	default:
		panic("unknown tree node type")
	}
}

func (t *Tree[T]) findRecursive(n treeNode[T], box spatial.Envelope, item T) bool {
	switch n := n.(type) {
	case *leafNode[T]:
		for _, e := range n.entries {
			if e.Box == box && e.Item == item {
				return true
			}
		}
		return false
	case *innerNode[T]:
		for _, child := range n.children {
			if child.bounds().Contains(box) && t.findRecursive(child, box, item) {
				return true
			}
		}
		return false
	default:
		panic("unknown tree node type")
	}
}

// collapseRoot applies the root rules after a removal:
//   - an internal root with a single child is replaced by the child,
//   - an internal root without children is replaced by an empty leaf.
//
// An empty leaf root stays in place.
func (t *Tree[T]) collapseRoot() {
	for {
		inner, ok := t.root.(*innerNode[T])
		if !ok {
			return
		}
		switch len(inner.children) {
		case 0:
			t.root = t.emptyLeaf()
			t.height = 0
			return
		case 1:
			t.root = inner.children[0]
			t.height--
			tracer().Debugf("rtree: root collapsed, height is now %d", t.height)
		default:
			return
		}
	}
}
