package rtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals invalid parameters for a tree operation.
	ErrInvalidArgument = errors.New("rtree: invalid argument")
	// ErrInvalidConfig signals an invalid tree configuration. It wraps
	// ErrInvalidArgument.
	ErrInvalidConfig = fmt.Errorf("%w: invalid configuration", ErrInvalidArgument)
	// ErrCorrupted signals a violated structural invariant, as reported by Check.
	ErrCorrupted = errors.New("rtree: invariant violated")
)
