/*
Package watch wraps an R-tree for shared use by several goroutines.

An rtree.Tree is not synchronized. A watch.Index guards a tree with a
readers-writer lock: queries run concurrently, mutations are exclusive.
Editing a feature's geometry changes its envelope, which means removing the
stale entry and inserting a new one. Index.Update does both under a single
write lock, so readers never observe a feature missing or duplicated.

Clients interested in changes (e.g., a map view which has to repaint) may
subscribe to a stream of Change events. Events are broadcast in the order the
mutations took place.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package watch

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/spatial"
)

func tracer() tracing.Trace {
	return spatial.T()
}

// ErrClosed is returned for operations on an index after Close.
var ErrClosed = errors.New("watch: index is closed")

// ErrNotIndexed is returned by Update if the entry to replace is not in the index.
var ErrNotIndexed = errors.New("watch: entry not indexed")
