package promstats

import (
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spatial"
	"github.com/npillmayer/spatial/rtree"
	"github.com/npillmayer/spatial/watch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fixedStats rtree.Stats

func (f fixedStats) Statistics() rtree.Stats {
	return rtree.Stats(f)
}

// traceTo redirects the core tracer to t. The returned teardown restores the
// previous tracer.
func traceTo(t *testing.T, level tracing.TraceLevel) func() {
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(level)
	return func() { gtrace.CoreTracer = saved }
}

func TestCollectorExportsSnapshot(t *testing.T) {
	teardown := traceTo(t, tracing.LevelDebug)
	defer teardown()
	//
	src := fixedStats{
		Items:           120,
		Nodes:           40,
		Leaves:          31,
		Depth:           3,
		EstimatedBytes:  8320,
		Queries:         17,
		AvgQueryLatency: 250 * time.Millisecond,
	}
	c := NewCollector(src, Opts{Namespace: "viewer", ConstLabels: prometheus.Labels{"layer": "roads"}})
	expected := `
# HELP viewer_rtree_depth Number of edges on a root-to-leaf path.
# TYPE viewer_rtree_depth gauge
viewer_rtree_depth{layer="roads"} 3
# HELP viewer_rtree_items Number of entries in the index.
# TYPE viewer_rtree_items gauge
viewer_rtree_items{layer="roads"} 120
# HELP viewer_rtree_queries_total Number of queries run against the index.
# TYPE viewer_rtree_queries_total counter
viewer_rtree_queries_total{layer="roads"} 17
# HELP viewer_rtree_query_latency_seconds Rolling average of query latencies.
# TYPE viewer_rtree_query_latency_seconds gauge
viewer_rtree_query_latency_seconds{layer="roads"} 0.25
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"viewer_rtree_depth", "viewer_rtree_items",
		"viewer_rtree_queries_total", "viewer_rtree_query_latency_seconds")
	if err != nil {
		t.Fatal(err)
	}
	if n := testutil.CollectAndCount(c); n != 7 {
		t.Errorf("expected 7 metrics, got %d", n)
	}
}

func TestCollectorFollowsTree(t *testing.T) {
	tree := rtree.NewDefault[int]()
	reg := prometheus.NewPedanticRegistry()
	c, err := Register(reg, tree, Opts{})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	for i := 1; i <= 40; i++ {
		if err := tree.Insert(spatial.Pt(float64(i), 0).Envelope(), i); err != nil {
			t.Fatal(err)
		}
	}
	expected := `
# HELP rtree_items Number of entries in the index.
# TYPE rtree_items gauge
rtree_items 40
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected), "rtree_items"); err != nil {
		t.Fatal(err)
	}
	if _, err := Register(reg, tree, Opts{}); err == nil {
		t.Errorf("expected duplicate registration to fail")
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) != 7 {
		t.Errorf("expected 7 metric families, got %d", len(families))
	}
}

func TestCollectorOnWatchedIndex(t *testing.T) {
	x, err := watch.New[string](rtree.Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer x.Close()
	c := NewCollector(x, Opts{Namespace: "viewer", Subsystem: "layer"})
	_ = x.Insert(spatial.Rect(0, 0, 1, 1), "a")
	_ = x.Insert(spatial.Rect(2, 2, 3, 3), "b")
	x.Query(spatial.Rect(0, 0, 5, 5))
	expected := `
# HELP viewer_layer_items Number of entries in the index.
# TYPE viewer_layer_items gauge
viewer_layer_items 2
# HELP viewer_layer_queries_total Number of queries run against the index.
# TYPE viewer_layer_queries_total counter
viewer_layer_queries_total 1
`
	err = testutil.CollectAndCompare(c, strings.NewReader(expected),
		"viewer_layer_items", "viewer_layer_queries_total")
	if err != nil {
		t.Fatal(err)
	}
}
