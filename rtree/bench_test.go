package rtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/spatial"
)

func benchTree(b *testing.B, n int) *Tree[int] {
	b.Helper()
	tree := NewDefault[int]()
	rnd := rand.New(rand.NewSource(1))
	for i := 1; i <= n; i++ {
		x, y := rnd.Float64()*1000, rnd.Float64()*1000
		if err := tree.Insert(spatial.Rect(x, y, x+rnd.Float64()*5, y+rnd.Float64()*5), i); err != nil {
			b.Fatal(err)
		}
	}
	return tree
}

func BenchmarkInsert(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	tree := NewDefault[int]()
	b.ResetTimer()
	for i := 1; i <= b.N; i++ {
		x, y := rnd.Float64()*1000, rnd.Float64()*1000
		_ = tree.Insert(spatial.Rect(x, y, x+1, y+1), i)
	}
}

func BenchmarkQuery(b *testing.B) {
	tree := benchTree(b, 100000)
	rnd := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, y := rnd.Float64()*1000, rnd.Float64()*1000
		for range tree.Query(spatial.Rect(x, y, x+20, y+20)) {
		}
	}
}

func BenchmarkFindKNearest(b *testing.B) {
	tree := benchTree(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.FindKNearest(spatial.Pt(500, 500), 10, AnyDistance)
	}
}
