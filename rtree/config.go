package rtree

import "fmt"

const (
	// DefaultMaxEntries is the node fanout used when Config.MaxEntries is unset.
	DefaultMaxEntries = 16
	// MinMaxEntries is the smallest fanout allowing a meaningful split.
	MinMaxEntries = 4
	// defaultFillPercent determines MinEntries from MaxEntries if unset.
	defaultFillPercent = 40
)

// Config configures an R-tree.
type Config struct {
	// MaxEntries is the maximum number of entries (leaves) or children (inner
	// nodes) per node. Zero selects DefaultMaxEntries.
	MaxEntries int
	// MinEntries is the lower occupancy bound for every node but the root.
	// Zero selects 40% of MaxEntries.
	MinEntries int
}

// DefaultConfig returns the configuration used by NewDefault.
func DefaultConfig() Config {
	return Config{}.normalized()
}

func (cfg Config) normalized() Config {
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.MinEntries == 0 {
		cfg.MinEntries = max(1, cfg.MaxEntries*defaultFillPercent/100)
	}
	return cfg
}

// validate expects a normalized configuration.
//
// MinEntries must not exceed MaxEntries/2, otherwise an overflowing node
// with MaxEntries+1 items could not be split into two valid halves.
func (cfg Config) validate() error {
	if cfg.MaxEntries < MinMaxEntries {
		return fmt.Errorf("%w: max entries %d < %d", ErrInvalidConfig, cfg.MaxEntries, MinMaxEntries)
	}
	if cfg.MinEntries < 1 || cfg.MinEntries > cfg.MaxEntries/2 {
		return fmt.Errorf("%w: min entries %d not in [1,%d]", ErrInvalidConfig,
			cfg.MinEntries, cfg.MaxEntries/2)
	}
	return nil
}
