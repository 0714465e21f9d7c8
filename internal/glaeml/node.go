package glaeml

// NodeType classifies a Node the way the directive grammar distinguishes
// plain text, a single-line directive, and a "\beg ... \end" block.
type NodeType uint8

const (
	TextNode NodeType = iota
	ElementInline
	ElementBlock
)

// Node is one element of a parsed directive tree: either a text line
// (Args holds its single trimmed line) or a directive, inline or block,
// whose Name is its command word and whose Args are the words that
// followed it. A block's Children are whatever the reader collected
// before the matching "\end".
type Node struct {
	Line     int
	Type     NodeType
	Name     string
	Args     []string
	Children []*Node
}

// IsText reports whether n is a plain text line rather than a directive.
func (n *Node) IsText() bool { return n.Type == TextNode }

// IsElement reports whether n is a directive, inline or block.
func (n *Node) IsElement() bool { return n.Type != TextNode }

// Gpath returns every descendant of n named name, searched depth-first
// regardless of nesting depth — mode and charset files address their
// directives by name alone, never by path, so a flat descendant search
// is all either dispatcher needs.
func (n *Node) Gpath(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.IsElement() && c.Name == name {
			out = append(out, c)
		}
		out = append(out, c.Gpath(name)...)
	}
	return out
}

// Error is one problem noticed while reading a directive file.
type Error struct {
	Line    int
	Message string
}

func (e Error) Error() string { return e.Message }

// Document is the result of reading one directive file: a root block
// node named "root" holding every top-level line, plus any errors
// noticed along the way (a malformed argument list does not abort the
// read; it is recorded and reading continues).
type Document struct {
	Errors []Error
	Root   *Node
}

// HasErrors reports whether reading produced any errors.
func (d *Document) HasErrors() bool { return len(d.Errors) > 0 }
