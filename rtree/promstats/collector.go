/*
Package promstats exports statistics of an R-tree to Prometheus.

A Collector reads a fresh Stats snapshot on every scrape, so there is nothing
to update on the hot path of the index:

	tree := rtree.NewDefault[FeatureID]()
	prometheus.MustRegister(promstats.NewCollector(tree, promstats.Opts{
		Namespace:   "viewer",
		ConstLabels: prometheus.Labels{"layer": "roads"},
	}))

Taking a snapshot walks the whole tree. Clients who guard the tree with a lock
(see package watch) should hand the locked wrapper to NewCollector, not the
bare tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package promstats

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/spatial"
	"github.com/npillmayer/spatial/rtree"
	"github.com/prometheus/client_golang/prometheus"
)

func tracer() tracing.Trace {
	return spatial.T()
}

// StatsSource is anything able to report a statistics snapshot of an R-tree,
// e.g. *rtree.Tree[T] or *watch.Index[T].
type StatsSource interface {
	Statistics() rtree.Stats
}

// Opts configures the metric names. Subsystem defaults to "rtree".
type Opts struct {
	Namespace   string
	Subsystem   string
	ConstLabels prometheus.Labels
}

// Collector is a prometheus.Collector for R-tree statistics.
type Collector struct {
	src     StatsSource
	items   *prometheus.Desc
	nodes   *prometheus.Desc
	leaves  *prometheus.Desc
	depth   *prometheus.Desc
	memory  *prometheus.Desc
	queries *prometheus.Desc
	latency *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for src. src must not be nil.
func NewCollector(src StatsSource, opts Opts) *Collector {
	if src == nil {
		panic("promstats: statistics source is nil")
	}
	if opts.Subsystem == "" {
		opts.Subsystem = "rtree"
	}
	desc := func(name, help string) *prometheus.Desc {
		fq := prometheus.BuildFQName(opts.Namespace, opts.Subsystem, name)
		return prometheus.NewDesc(fq, help, nil, opts.ConstLabels)
	}
	return &Collector{
		src:     src,
		items:   desc("items", "Number of entries in the index."),
		nodes:   desc("nodes", "Number of tree nodes, leaves included."),
		leaves:  desc("leaves", "Number of leaf nodes."),
		depth:   desc("depth", "Number of edges on a root-to-leaf path."),
		memory:  desc("estimated_bytes", "Rough estimate of the memory held by the tree."),
		queries: desc("queries_total", "Number of queries run against the index."),
		latency: desc("query_latency_seconds", "Rolling average of query latencies."),
	}
}

// Describe is part of interface prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.items
	ch <- c.nodes
	ch <- c.leaves
	ch <- c.depth
	ch <- c.memory
	ch <- c.queries
	ch <- c.latency
}

// Collect is part of interface prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Statistics()
	tracer().Debugf("promstats: collecting %s", s)
	gauge := func(d *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v)
	}
	gauge(c.items, float64(s.Items))
	gauge(c.nodes, float64(s.Nodes))
	gauge(c.leaves, float64(s.Leaves))
	gauge(c.depth, float64(s.Depth))
	gauge(c.memory, float64(s.EstimatedBytes))
	gauge(c.latency, s.AvgQueryLatency.Seconds())
	ch <- prometheus.MustNewConstMetric(c.queries, prometheus.CounterValue, float64(s.Queries))
}

// Register creates a collector for src and registers it with reg. If reg is
// nil, prometheus.DefaultRegisterer is used.
func Register(reg prometheus.Registerer, src StatsSource, opts Opts) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := NewCollector(src, opts)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}
