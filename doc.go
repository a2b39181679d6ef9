/*
Package spatial offers the building blocks for indexing 2-D map features in memory.

Spatial Index

A map viewer has to answer the same question over and over again: which of my
features are visible in this viewport, or which feature is under the mouse
pointer? With tens of thousands of features loaded, testing each of them for
every redraw is not an option. Package rtree (a sub-package of this module)
organizes the bounding boxes of features in an R-tree, a height-balanced tree
of nested rectangles, which narrows such questions down to a few tree paths.

This package holds what is shared between the tree and its clients: the
axis-aligned bounding box type Envelope, a Point type and the Bounded interface
for things which are able to report their own envelope.

_________________________________________________________________________

From the paper by Antonin Guttman, 1984:

R-Trees: A Dynamic Index Structure for Spatial Searching

University of California, Berkeley

An R-tree is a height-balanced tree similar to a B-tree with index records in
its leaf nodes containing pointers to data objects. Nodes correspond to disk
pages if the index is disk-resident, and the structure is designed so that a
spatial search requires visiting only a small number of nodes. The index is
completely dynamic; inserts and deletes can be intermixed with searches and no
periodic reorganization is required. […]

_________________________________________________________________________

The index does not try to be exact: it works on envelopes only. Clients who
need exact geometric overlap have to post-filter query results against their
own geometry model.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package spatial

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SpatialError is an error type for the spatial module
type SpatialError string

func (e SpatialError) Error() string {
	return string(e)
}

// ErrNullEnvelope is flagged whenever an operation requires a non-null envelope.
const ErrNullEnvelope = SpatialError("envelope is null")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SpatialError("illegal arguments")
