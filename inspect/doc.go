/*
Package inspect renders the internal structure of an R-tree for debugging.

Three views are offered, all of them driven by rtree.Tree.Walk:

  - ToDot writes the tree in Graphviz DOT format,
  - PrintOutline writes an indented, colored outline to a console,
  - WriteHTML writes the outline as nested HTML lists.

None of them is meant for large trees. Leaf entries are abbreviated after a
configurable number of entries.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/spatial"
)

func tracer() tracing.Trace {
	return spatial.T()
}
