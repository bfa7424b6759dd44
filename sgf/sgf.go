// Package sgf reads and writes SGF FF[4] game records and models the
// kifu tree of moves and variations. Replay bridges a record to the
// game core, validating every move under a chosen ruleset.
package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kifulab/kifu/game"
	"github.com/pkg/errors"
)

// Node is a single SGF node: a property bag plus child variations.
// The first child is the main line.
type Node struct {
	Props    map[string][]string
	Parent   *Node
	Children []*Node
}

// NewNode creates an empty node.
func NewNode() *Node { return &Node{Props: make(map[string][]string)} }

// Set replaces the values of a property.
func (n *Node) Set(key string, values ...string) { n.Props[key] = values }

// Add appends a value to a property.
func (n *Node) Add(key, value string) { n.Props[key] = append(n.Props[key], value) }

// Value returns the first value of a property.
func (n *Node) Value(key string) (string, bool) {
	vs, ok := n.Props[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Has reports whether the node carries a property.
func (n *Node) Has(key string) bool { return len(n.Props[key]) > 0 }

// AddChild appends a child variation and returns it.
func (n *Node) AddChild(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// MoveLabel is a short human-readable description of the node's move.
func (n *Node) MoveLabel() string {
	for _, key := range []string{"B", "W"} {
		if v, ok := n.Value(key); ok {
			if v == "" {
				return key + " pass"
			}
			return key + " " + v
		}
	}
	if n.Parent == nil {
		return "root"
	}
	return "setup"
}

// Tree is a game record: a root node plus a cursor used for navigating
// variations, in the manner of a kifu editor.
type Tree struct {
	Root    *Node
	Current *Node
}

// NewTree creates a tree holding only an empty root.
func NewTree() *Tree {
	root := NewNode()
	return &Tree{Root: root, Current: root}
}

// AddNode appends node as a child of the cursor and advances to it.
// If an identical move already hangs off the cursor, the cursor moves
// there instead of growing a duplicate variation.
func (t *Tree) AddNode(node *Node) *Node {
	for _, child := range t.Current.Children {
		if sameMove(child, node) {
			t.Current = child
			return child
		}
	}
	t.Current.AddChild(node)
	t.Current = node
	return node
}

func sameMove(a, b *Node) bool {
	for _, key := range []string{"B", "W"} {
		av, aok := a.Value(key)
		bv, bok := b.Value(key)
		if aok != bok || av != bv {
			return false
		}
		if aok {
			return true
		}
	}
	return false
}

// Back moves the cursor to its parent. Returns false at the root.
func (t *Tree) Back() bool {
	if t.Current == t.Root {
		return false
	}
	t.Current = t.Current.Parent
	return true
}

// Forward moves the cursor to child idx. Returns false if absent.
func (t *Tree) Forward(idx int) bool {
	if idx < 0 || idx >= len(t.Current.Children) {
		return false
	}
	t.Current = t.Current.Children[idx]
	return true
}

// NextVariation switches the cursor to the next sibling, wrapping.
func (t *Tree) NextVariation() bool { return t.siblingStep(1) }

// PrevVariation switches the cursor to the previous sibling, wrapping.
func (t *Tree) PrevVariation() bool { return t.siblingStep(-1) }

func (t *Tree) siblingStep(step int) bool {
	if t.Current.Parent == nil {
		return false
	}
	siblings := t.Current.Parent.Children
	if len(siblings) < 2 {
		return false
	}
	idx := t.variationIndex()
	t.Current = siblings[(idx+step+len(siblings))%len(siblings)]
	return true
}

func (t *Tree) variationIndex() int {
	for i, sibling := range t.Current.Parent.Children {
		if sibling == t.Current {
			return i
		}
	}
	return -1
}

// PathFromRoot returns the nodes from the root down to the cursor,
// excluding the root itself.
func (t *Tree) PathFromRoot() []*Node {
	var path []*Node
	for node := t.Current; node != t.Root; node = node.Parent {
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// MainLine returns the principal variation: root first, then first
// children all the way down.
func (t *Tree) MainLine() []*Node {
	var line []*Node
	for node := t.Root; node != nil; {
		line = append(line, node)
		if len(node.Children) == 0 {
			break
		}
		node = node.Children[0]
	}
	return line
}

// GameInfo holds the metadata of a record's root node.
type GameInfo struct {
	Rows, Cols  int
	Komi        float64
	Ruleset     string
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
}

// Info extracts the record metadata. Missing SZ defaults to 19×19; a
// rectangular SZ[cols:rows] is honoured.
func (t *Tree) Info() GameInfo {
	info := GameInfo{Rows: 19, Cols: 19}
	root := t.Root
	if v, ok := root.Value("SZ"); ok {
		if c, r, err := parseSize(v); err == nil {
			info.Cols, info.Rows = c, r
		}
	}
	if v, ok := root.Value("KM"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			info.Komi = f
		}
	}
	info.Ruleset, _ = root.Value("RU")
	info.PlayerBlack, _ = root.Value("PB")
	info.PlayerWhite, _ = root.Value("PW")
	info.Date, _ = root.Value("DT")
	info.Result, _ = root.Value("RE")
	return info
}

func parseSize(v string) (cols, rows int, err error) {
	if i := strings.IndexByte(v, ':'); i >= 0 {
		if cols, err = strconv.Atoi(v[:i]); err != nil {
			return 0, 0, errors.WithMessagef(err, "bad SZ %q", v)
		}
		if rows, err = strconv.Atoi(v[i+1:]); err != nil {
			return 0, 0, errors.WithMessagef(err, "bad SZ %q", v)
		}
		return cols, rows, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, 0, errors.WithMessagef(err, "bad SZ %q", v)
	}
	return n, n, nil
}

// NewRecord creates a tree with a standard FF[4] header.
func NewRecord(info GameInfo) *Tree {
	t := NewTree()
	root := t.Root
	root.Set("GM", "1")
	root.Set("FF", "4")
	root.Set("CA", "UTF-8")
	root.Set("AP", "kifu:1.0")
	if info.Cols == info.Rows {
		root.Set("SZ", strconv.Itoa(info.Cols))
	} else {
		root.Set("SZ", fmt.Sprintf("%d:%d", info.Cols, info.Rows))
	}
	if info.Komi != 0 {
		root.Set("KM", strconv.FormatFloat(info.Komi, 'f', 1, 64))
	}
	if info.Ruleset != "" {
		root.Set("RU", info.Ruleset)
	}
	if info.PlayerBlack != "" {
		root.Set("PB", info.PlayerBlack)
	}
	if info.PlayerWhite != "" {
		root.Set("PW", info.PlayerWhite)
	}
	if info.Date != "" {
		root.Set("DT", info.Date)
	}
	if info.Result != "" {
		root.Set("RE", info.Result)
	}
	return t
}

// AddPlay appends a move node at the cursor and advances to it.
func (t *Tree) AddPlay(p game.Play) *Node {
	node := NewNode()
	key := "B"
	if p.Colour == game.White {
		key = "W"
	}
	if p.IsPass() {
		node.Set(key, "")
	} else {
		node.Set(key, Coord(p.X, p.Y))
	}
	return t.AddNode(node)
}

// Coord converts zero-based coordinates to an SGF letter pair:
// (0, 0) is "aa", (3, 4) is "de".
func Coord(x, y int) string {
	return string(rune('a'+x)) + string(rune('a'+y))
}

// ParseCoord converts an SGF point value to coordinates. An empty value
// is a pass; so is "tt" on boards of 19 or smaller, per the FF[3]
// compatibility rule.
func ParseCoord(v string, cols, rows int) (pt game.Point, pass bool, err error) {
	if v == "" {
		return game.Point{}, true, nil
	}
	if v == "tt" && cols <= 19 && rows <= 19 {
		return game.Point{}, true, nil
	}
	if len(v) != 2 {
		return game.Point{}, false, errors.Errorf("bad point %q", v)
	}
	x, err := letterIndex(v[0])
	if err != nil {
		return game.Point{}, false, errors.WithMessagef(err, "bad point %q", v)
	}
	y, err := letterIndex(v[1])
	if err != nil {
		return game.Point{}, false, errors.WithMessagef(err, "bad point %q", v)
	}
	return game.Point{X: x, Y: y}, false, nil
}

func letterIndex(b byte) (int, error) {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a'), nil
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 26, nil
	}
	return 0, errors.Errorf("bad coordinate letter %q", b)
}
