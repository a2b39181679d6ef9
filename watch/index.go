package watch

import (
	"context"
	"fmt"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/spatial"
	"github.com/npillmayer/spatial/rtree"
)

// Index is an R-tree guarded by a readers-writer lock, broadcasting changes
// to subscribers. All methods are safe for concurrent use.
type Index[T comparable] struct {
	mutex  sync.RWMutex
	tree   *rtree.Tree[T]
	cast   *caster.Caster // broadcaster for change events
	closed bool
}

// New creates an empty index with a tree configured by cfg.
func New[T comparable](cfg rtree.Config) (*Index[T], error) {
	tree, err := rtree.New[T](cfg)
	if err != nil {
		return nil, err
	}
	return Wrap(tree), nil
}

// Wrap creates an index for an existing tree. Clients must not access the tree
// directly afterwards.
func Wrap[T comparable](tree *rtree.Tree[T]) *Index[T] {
	if tree == nil {
		tree = rtree.NewDefault[T]()
	}
	return &Index[T]{
		tree: tree,
		cast: caster.New(nil),
	}
}

// Insert adds an item with envelope box to the index.
func (x *Index[T]) Insert(box spatial.Envelope, item T) error {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	if x.closed {
		return ErrClosed
	}
	if err := x.tree.Insert(box, item); err != nil {
		return err
	}
	x.publish(Change[T]{Kind: Inserted, Item: item, Box: box})
	return nil
}

// Remove deletes one entry (box, item) from the index. It returns false if
// there is no such entry.
func (x *Index[T]) Remove(box spatial.Envelope, item T) (bool, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	if x.closed {
		return false, ErrClosed
	}
	if !x.tree.Remove(box, item) {
		return false, nil
	}
	x.publish(Change[T]{Kind: Removed, Item: item, Box: box})
	return true, nil
}

// Update moves item from envelope oldBox to envelope newBox. Readers see
// either the old or the new entry, never both or none of them. If newBox is
// invalid or there is no entry (oldBox, item), the index is left unchanged.
func (x *Index[T]) Update(oldBox, newBox spatial.Envelope, item T) error {
	if err := newBox.Check(); err != nil {
		return fmt.Errorf("%w: %w", rtree.ErrInvalidArgument, err)
	}
	x.mutex.Lock()
	defer x.mutex.Unlock()
	if x.closed {
		return ErrClosed
	}
	if !x.tree.Remove(oldBox, item) {
		return fmt.Errorf("%w: %v at %v", ErrNotIndexed, item, oldBox)
	}
	if err := x.tree.Insert(newBox, item); err != nil {
		// newBox has been checked and item has been indexed before
		panic(fmt.Sprintf("watch: re-inserting %v failed: %v", item, err))
	}
	x.publish(Change[T]{Kind: Updated, Item: item, Box: newBox, OldBox: oldBox})
	return nil
}

// Clear removes all entries.
func (x *Index[T]) Clear() error {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	if x.closed {
		return ErrClosed
	}
	bounds, _ := x.tree.Bounds()
	x.tree.Clear()
	x.publish(Change[T]{Kind: Cleared, Box: bounds})
	return nil
}

// Optimize rebuilds the underlying tree (see rtree.Tree.Optimize).
func (x *Index[T]) Optimize() error {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	if x.closed {
		return ErrClosed
	}
	x.tree.Optimize()
	x.publish(Change[T]{Kind: Optimized, Box: spatial.NullEnvelope(), OldBox: spatial.NullEnvelope()})
	return nil
}

// Query returns the items whose envelopes intersect window. Other than
// rtree.Tree.Query the result is collected eagerly, as the read lock cannot
// be held across a lazy iteration controlled by the caller.
func (x *Index[T]) Query(window spatial.Envelope) []T {
	var items []T
	x.QueryFunc(window, func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// QueryFunc calls fn for every item whose envelope intersects window, until
// fn returns false. fn runs under the read lock and must not call mutating
// methods of x.
func (x *Index[T]) QueryFunc(window spatial.Envelope, fn func(T) bool) {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	for item := range x.tree.Query(window) {
		if !fn(item) {
			return
		}
	}
}

// QueryPoint returns the items whose envelopes contain p.
func (x *Index[T]) QueryPoint(p spatial.Point) []T {
	return x.Query(p.Envelope())
}

// FindNearest returns the item closest to p (see rtree.Tree.FindNearest).
func (x *Index[T]) FindNearest(p spatial.Point, maxDistance float64) (T, bool) {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return x.tree.FindNearest(p, maxDistance)
}

// FindKNearest returns up to k items closest to p (see rtree.Tree.FindKNearest).
func (x *Index[T]) FindKNearest(p spatial.Point, k int, maxDistance float64) []T {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return x.tree.FindKNearest(p, k, maxDistance)
}

// Count returns the number of entries in the index.
func (x *Index[T]) Count() int {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return x.tree.Count()
}

// Bounds returns the envelope of all entries, if the index is not empty.
func (x *Index[T]) Bounds() (spatial.Envelope, bool) {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return x.tree.Bounds()
}

// Statistics returns a statistics snapshot of the underlying tree.
// Index therefore satisfies promstats.StatsSource.
func (x *Index[T]) Statistics() rtree.Stats {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return x.tree.Statistics()
}

// Check validates the invariants of the underlying tree.
func (x *Index[T]) Check() error {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return x.tree.Check()
}

// Subscribe returns a channel of change events, buffered with capacity.
// The channel is closed when ctx is done or the index is closed. Subscribers
// have to keep draining the channel or cancel ctx: a full channel holds up
// mutations of the index.
func (x *Index[T]) Subscribe(ctx context.Context, capacity uint) (<-chan Change[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	if x.closed {
		return nil, ErrClosed
	}
	sub, ok := x.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	changes := make(chan Change[T], capacity)
	go func() {
		// caster closes sub itself, on the first publication after ctx is
		// done or on Close. Until then sub has to be drained, or the caster
		// blocks on it.
		defer func() {
			for range sub {
			}
		}()
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub:
				if !ok {
					return
				}
				c, ok := msg.(Change[T])
				if !ok {
					tracer().Errorf("watch: unexpected message type %T", msg)
					continue
				}
				select {
				case changes <- c:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return changes, nil
}

// Close shuts down the index. All subscriber channels are closed, and every
// further operation except queries returns ErrClosed. Closing twice is a no-op.
func (x *Index[T]) Close() error {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	if x.closed {
		return nil
	}
	x.closed = true
	x.cast.Close()
	tracer().Debugf("watch: index closed with %d entries", x.tree.Count())
	return nil
}

// publish has to be called with the write lock held, which keeps events in
// the order of mutations.
func (x *Index[T]) publish(c Change[T]) {
	if !x.cast.Pub(c) {
		tracer().Errorf("watch: could not publish %s", c)
	}
}
