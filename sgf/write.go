package sgf

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// preferredOrder fixes the serialization order of well-known
// properties; anything else follows alphabetically. Keeping the order
// stable makes records diffable and tests deterministic.
var preferredOrder = []string{
	"GM", "FF", "CA", "AP", "SZ", "KM", "RU", "HA",
	"PB", "PW", "DT", "RE",
	"AB", "AW", "AE", "PL",
	"B", "W", "C",
}

// Encode serializes the whole tree as SGF FF[4] text.
func (t *Tree) Encode() []byte {
	var b strings.Builder
	writeTree(&b, t.Root)
	b.WriteByte('\n')
	return []byte(b.String())
}

// WriteTo writes the serialized tree to w.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Encode())
	return int64(n), err
}

// WriteFile writes the serialized tree to path.
func (t *Tree) WriteFile(path string) error {
	if err := os.WriteFile(path, t.Encode(), 0644); err != nil {
		return errors.WithMessage(err, "writing sgf")
	}
	return nil
}

func writeTree(b *strings.Builder, node *Node) {
	b.WriteByte('(')
	for {
		writeNode(b, node)
		if len(node.Children) != 1 {
			break
		}
		node = node.Children[0]
	}
	for _, child := range node.Children {
		b.WriteByte('\n')
		writeTree(b, child)
	}
	b.WriteByte(')')
}

func writeNode(b *strings.Builder, node *Node) {
	b.WriteByte(';')
	for _, key := range propKeys(node) {
		b.WriteString(key)
		for _, v := range node.Props[key] {
			b.WriteByte('[')
			b.WriteString(escape(v))
			b.WriteByte(']')
		}
	}
}

func propKeys(node *Node) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, key := range preferredOrder {
		if node.Has(key) {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	var rest []string
	for key := range node.Props {
		if !seen[key] && len(node.Props[key]) > 0 {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func escape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `]`, `\]`)
}
