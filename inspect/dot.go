package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/spatial/rtree"
)

// maxDotEntries is the number of leaf entries listed in a DOT node label.
const maxDotEntries = 6

// ToDot outputs the internal structure of a tree in Graphviz DOT format.
// Internal nodes are drawn as ellipses labeled with their envelope, leaves as
// boxes listing their entries.
func ToDot[T comparable](tree *rtree.Tree[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	err := tree.Walk(func(v rtree.NodeView[T]) error {
		label := v.Envelope.String()
		if v.Leaf {
			label = leafLabel(v, maxDotEntries, "\\n")
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", v.ID, escapeDot(label), nodeDotStyles(v))
		if v.ParentID > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", v.ParentID, v.ID)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("rtree DOT: %s", err.Error())
		return err
	}
	if _, err = io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n"); err != nil {
		tracer().Errorf("rtree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles[T comparable](v rtree.NodeView[T]) string {
	s := ",style=filled"
	if v.Leaf {
		s += ",shape=box,fillcolor=white"
	} else {
		s += fmt.Sprintf(",color=black,fillcolor=\"%s\"", hexcolors[v.Depth%len(hexcolors)])
		s += ",shape=ellipse"
	}
	return s
}

var hexcolors = [...]string{"#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}

// escapeDot escapes double quotes, leaving line breaks ("\n") intact.
func escapeDot(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// leafLabel lists up to limit entries of a leaf, separated by sep.
func leafLabel[T comparable](v rtree.NodeView[T], limit int, sep string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", v.Envelope)
	for i, e := range v.Entries {
		if i == limit {
			fmt.Fprintf(&b, "%s… %d more", sep, len(v.Entries)-limit)
			break
		}
		fmt.Fprintf(&b, "%s%v %v", sep, e.Item, e.Box)
	}
	return b.String()
}
