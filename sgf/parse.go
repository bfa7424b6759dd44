package sgf

import (
	"os"

	"github.com/pkg/errors"
)

// Parse reads the first game tree from SGF text, including nested
// variations and escaped property values.
func Parse(data []byte) (*Tree, error) {
	p := &parser{data: data}
	p.skipSpace()
	if !p.accept('(') {
		return nil, p.errorf("expected '('")
	}
	root, err := p.sequence()
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, p.errorf("game tree has no nodes")
	}
	return &Tree{Root: root, Current: root}, nil
}

// ParseFile reads a record from disk.
func ParseFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "reading sgf")
	}
	t, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "parsing %s", path)
	}
	return t, nil
}

type parser struct {
	data []byte
	pos  int
}

// sequence parses the nodes and trailing subtrees of one game tree,
// consuming the closing ')'. It returns the first node of the chain.
func (p *parser) sequence() (first *Node, err error) {
	var last *Node
	for {
		p.skipSpace()
		switch {
		case p.accept(';'):
			node, err := p.node()
			if err != nil {
				return nil, err
			}
			if last == nil {
				first = node
			} else {
				last.AddChild(node)
			}
			last = node

		case p.accept('('):
			if last == nil {
				return nil, p.errorf("variation before any node")
			}
			sub, err := p.sequence()
			if err != nil {
				return nil, err
			}
			if sub != nil {
				last.AddChild(sub)
			}

		case p.accept(')'):
			return first, nil

		case p.pos >= len(p.data):
			return nil, p.errorf("unexpected end of input")

		default:
			return nil, p.errorf("unexpected %q", p.data[p.pos])
		}
	}
}

// node parses the properties following a ';'.
func (p *parser) node() (*Node, error) {
	node := NewNode()
	for {
		p.skipSpace()
		start := p.pos
		for p.pos < len(p.data) && isUpper(p.data[p.pos]) {
			p.pos++
		}
		if p.pos == start {
			return node, nil
		}
		key := string(p.data[start:p.pos])

		p.skipSpace()
		if p.pos >= len(p.data) || p.data[p.pos] != '[' {
			return nil, p.errorf("property %s has no value", key)
		}
		for p.accept('[') {
			value, err := p.value()
			if err != nil {
				return nil, err
			}
			node.Add(key, value)
			p.skipSpace()
		}
	}
}

// value reads up to the closing ']', resolving backslash escapes.
func (p *parser) value() (string, error) {
	var out []byte
	for p.pos < len(p.data) {
		b := p.data[p.pos]
		switch b {
		case ']':
			p.pos++
			return string(out), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.data) {
				return "", p.errorf("dangling escape")
			}
			out = append(out, p.data[p.pos])
			p.pos++
		default:
			out = append(out, b)
			p.pos++
		}
	}
	return "", p.errorf("unterminated property value")
}

func (p *parser) accept(b byte) bool {
	if p.pos < len(p.data) && p.data[p.pos] == b {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	msg := errors.Errorf(format, args...)
	return errors.WithMessagef(msg, "sgf: offset %d", p.pos)
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
