package inspect

import (
	"fmt"
	"io"

	"github.com/npillmayer/spatial/rtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLOutline creates an HTML fragment for the structure of a tree: a <ul>
// element with one <li> per node, nested like the tree. Nodes carry CSS
// classes "inner" or "leaf", leaf entries class "entry". At most leafEntries
// entries are listed per leaf; a value ≤ 0 lists all of them.
func HTMLOutline[T comparable](tree *rtree.Tree[T], leafEntries int) (*html.Node, error) {
	top := element(atom.Ul, "rtree")
	lists := map[int]*html.Node{0: top} // node ID → <ul> holding its children
	err := tree.Walk(func(v rtree.NodeView[T]) error {
		parent, ok := lists[v.ParentID]
		if !ok {
			return fmt.Errorf("inspect: node %d visited before its parent %d", v.ID, v.ParentID)
		}
		li := element(atom.Li, "inner")
		label := fmt.Sprintf("%v (%d children)", v.Envelope, v.Size)
		if v.Leaf {
			li = element(atom.Li, "leaf")
			label = fmt.Sprintf("%v (%d entries)", v.Envelope, v.Size)
		}
		parent.AppendChild(li)
		li.AppendChild(&html.Node{Type: html.TextNode, Data: label})
		sub := element(atom.Ul, "")
		li.AppendChild(sub)
		if !v.Leaf {
			lists[v.ID] = sub
			return nil
		}
		for i, e := range v.Entries {
			entry := element(atom.Li, "entry")
			if leafEntries > 0 && i == leafEntries {
				entry.AppendChild(&html.Node{Type: html.TextNode,
					Data: fmt.Sprintf("… %d more", len(v.Entries)-i)})
				sub.AppendChild(entry)
				break
			}
			entry.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprintf("%v %v", e.Item, e.Box)})
			sub.AppendChild(entry)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("rtree HTML: %s", err.Error())
		return nil, err
	}
	return top, nil
}

// WriteHTML renders the outline of a tree (see HTMLOutline) to w.
func WriteHTML[T comparable](tree *rtree.Tree[T], w io.Writer, leafEntries int) error {
	n, err := HTMLOutline(tree, leafEntries)
	if err != nil {
		return err
	}
	if err = html.Render(w, n); err != nil {
		tracer().Errorf("rtree HTML: %s", err.Error())
	}
	return err
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
