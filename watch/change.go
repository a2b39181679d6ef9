package watch

import (
	"fmt"

	"github.com/npillmayer/spatial"
)

// ChangeKind tells what happened to an index.
type ChangeKind int8

// Kinds of changes.
const (
	Inserted ChangeKind = iota + 1
	Removed
	Updated
	Cleared
	Optimized
)

func (k ChangeKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Updated:
		return "updated"
	case Cleared:
		return "cleared"
	case Optimized:
		return "optimized"
	}
	return fmt.Sprintf("ChangeKind(%d)", int(k))
}

// Change is an event sent to subscribers of an index.
//
// For Inserted and Removed, Box is the envelope of Item. For Updated, OldBox
// is the envelope Item has been moved away from. Cleared carries the bounds
// the index had before in Box. Optimized carries neither item nor envelopes.
type Change[T comparable] struct {
	Kind   ChangeKind
	Item   T
	Box    spatial.Envelope
	OldBox spatial.Envelope
}

// Dirty returns the region a viewer has to repaint after the change.
// Optimizing does not change the contents, so its region is null.
func (c Change[T]) Dirty() spatial.Envelope {
	switch c.Kind {
	case Inserted, Removed, Cleared:
		return c.Box
	case Updated:
		return c.Box.Union(c.OldBox)
	}
	return spatial.NullEnvelope()
}

func (c Change[T]) String() string {
	switch c.Kind {
	case Inserted, Removed:
		return fmt.Sprintf("%s %v %v", c.Kind, c.Item, c.Box)
	case Updated:
		return fmt.Sprintf("%s %v %v -> %v", c.Kind, c.Item, c.OldBox, c.Box)
	}
	return c.Kind.String()
}
