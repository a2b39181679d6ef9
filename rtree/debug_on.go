//go:build rtree_debug

package rtree

const debugInvariants = true
