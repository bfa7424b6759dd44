package sgf

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// Dot renders the variation tree as a Graphviz digraph: one node per
// SGF node labelled with its move, edges following the tree. The main
// line is the leftmost path.
func (t *Tree) Dot(name string) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	nextID := 0
	var walk func(node *Node, parentID string) error
	walk = func(node *Node, parentID string) error {
		id := fmt.Sprintf("n%d", nextID)
		nextID++

		attrs := map[string]string{
			"label":    strconv.Quote(node.MoveLabel()),
			"fontname": "Monaco",
			"shape":    "box",
		}
		if err := g.AddNode(name, id, attrs); err != nil {
			return err
		}
		if parentID != "" {
			if err := g.AddEdge(parentID, id, true, nil); err != nil {
				return err
			}
		}
		for _, child := range node.Children {
			if err := walk(child, id); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.Root, ""); err != nil {
		return "", err
	}
	return g.String(), nil
}
