package rtree_test

import (
	"fmt"
	"slices"

	"github.com/npillmayer/spatial"
	"github.com/npillmayer/spatial/rtree"
)

func Example() {
	tree := rtree.NewDefault[string]()
	tree.Insert(spatial.Rect(0, 0, 10, 10), "park")
	tree.Insert(spatial.Rect(8, 8, 12, 12), "pond")
	tree.Insert(spatial.Pt(30, 5).Envelope(), "bus stop")

	var visible []string
	for name := range tree.Query(spatial.Rect(9, 9, 20, 20)) {
		visible = append(visible, name)
	}
	slices.Sort(visible)
	fmt.Println(visible)

	nearest, _ := tree.FindNearest(spatial.Pt(28, 4), rtree.AnyDistance)
	fmt.Println(nearest)

	tree.Remove(spatial.Rect(8, 8, 12, 12), "pond")
	fmt.Println(tree.Len())
	// Output:
	// [park pond]
	// bus stop
	// 2
}

func ExampleTree_FindKNearest() {
	tree := rtree.NewDefault[int]()
	for i := 1; i <= 5; i++ {
		tree.Insert(spatial.Pt(float64(i), 0).Envelope(), i)
	}
	fmt.Println(tree.FindKNearest(spatial.Pt(0, 0), 3, 2.5))
	// Output: [1 2]
}
