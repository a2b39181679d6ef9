package rtree

import "fmt"

// Check validates structural tree invariants:
//   - every node but the root holds MinEntries…MaxEntries entries or children,
//   - an internal root has at least two children,
//   - every node's cached envelope equals the union of its contents,
//   - all leaves are at depth Height(),
//   - the number of entries equals Count().
//
// Violations are reported as errors wrapping ErrCorrupted. They always point
// to a bug in the tree algorithms, never to invalid client input.
func (t *Tree[T]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: uninitialized tree", ErrCorrupted)
	}
	if inner, ok := t.root.(*innerNode[T]); ok && len(inner.children) < 2 {
		return fmt.Errorf("%w: internal root has %d children", ErrCorrupted, len(inner.children))
	}
	items, height, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrCorrupted, height, t.height)
	}
	if items != t.count {
		return fmt.Errorf("%w: count mismatch (%d entries, count=%d)", ErrCorrupted, items, t.count)
	}
	return nil
}

func (t *Tree[T]) checkNode(n treeNode[T], isRoot bool) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrCorrupted)
	}
	if n.size() > t.cfg.MaxEntries {
		return 0, 0, fmt.Errorf("%w: node size %d exceeds max entries %d",
			ErrCorrupted, n.size(), t.cfg.MaxEntries)
	}
	if !isRoot && n.size() < t.cfg.MinEntries {
		return 0, 0, fmt.Errorf("%w: node size %d below min entries %d",
			ErrCorrupted, n.size(), t.cfg.MinEntries)
	}
	switch n := n.(type) {
	case *leafNode[T]:
		if want := unionOf(n.entries, entryBox[T]); n.bbox != want {
			return 0, 0, fmt.Errorf("%w: leaf envelope %v, union of entries is %v",
				ErrCorrupted, n.bbox, want)
		}
		return len(n.entries), 0, nil
	case *innerNode[T]:
		if len(n.children) == 0 {
			return 0, 0, fmt.Errorf("%w: internal node has no children", ErrCorrupted)
		}
		var childHeight int
		for i, child := range n.children {
			cItems, cHeight, cErr := t.checkNode(child, false)
			if cErr != nil {
				return 0, 0, cErr
			}
			items += cItems
			if i == 0 {
				childHeight = cHeight
			} else if cHeight != childHeight {
				return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrCorrupted)
			}
		}
		if want := unionOf(n.children, nodeBox[T]); n.bbox != want {
			return 0, 0, fmt.Errorf("%w: node envelope %v, union of children is %v",
				ErrCorrupted, n.bbox, want)
		}
		return items, childHeight + 1, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown node type %T", ErrCorrupted, n)
	}
}

// verify panics if the tree is corrupted after operation op. It is a no-op
// unless built with tag rtree_debug.
func (t *Tree[T]) verify(op string) {
	if !debugInvariants {
		return
	}
	if err := t.Check(); err != nil {
		panic(fmt.Sprintf("rtree: %s corrupted the tree: %v", op, err))
	}
}
