package ptree

// Node is a single element of the token tree. Nodes are immutable once the
// Builder that created them is finalized; all methods are read-only and safe
// for concurrent use. A nil *Node means "no such node" and is the uniform
// "not present" result of every navigation method.
type Node struct {
	kind     Kind
	content  string
	loc      Location
	parent   *Node
	children []*Node
	index    int // position within parent.children
}

// Kind returns the syntactic category of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Content returns the raw source text of a token node. Container nodes
// (document, statement, list, block) have empty content.
func (n *Node) Content() string {
	return n.content
}

// Location returns the source position of the node.
func (n *Node) Location() Location {
	return n.loc
}

// Parent returns the parent node, or nil for the document root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the ordered child nodes, cosmetic nodes included.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// HasChildren reports whether the node is an interior node.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// SignificantChildren returns the ordered children, skipping whitespace
// and comments.
func (n *Node) SignificantChildren() []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.kind.Significant() {
			out = append(out, c)
		}
	}
	return out
}

// FirstSignificantChild returns the leftmost non-cosmetic child, or nil.
func (n *Node) FirstSignificantChild() *Node {
	for _, c := range n.children {
		if c.kind.Significant() {
			return c
		}
	}
	return nil
}

// LastSignificantChild returns the rightmost non-cosmetic child, or nil.
func (n *Node) LastSignificantChild() *Node {
	for i := len(n.children) - 1; i >= 0; i-- {
		if n.children[i].kind.Significant() {
			return n.children[i]
		}
	}
	return nil
}

// NextSignificantSibling returns the nearest following sibling that is not
// whitespace or a comment, or nil if none exists.
func (n *Node) NextSignificantSibling() *Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.children
	for i := n.index + 1; i < len(siblings); i++ {
		if siblings[i].kind.Significant() {
			return siblings[i]
		}
	}
	return nil
}

// PrevSignificantSibling returns the nearest preceding sibling that is not
// whitespace or a comment, or nil if none exists.
func (n *Node) PrevSignificantSibling() *Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.children
	for i := n.index - 1; i >= 0; i-- {
		if siblings[i].kind.Significant() {
			return siblings[i]
		}
	}
	return nil
}

// IsTerminator reports whether the node is a ";" statement terminator.
func (n *Node) IsTerminator() bool {
	return n.kind == KindStructure && n.content == ";"
}

// IsOperator reports whether the node is an operator token with the given text.
func (n *Node) IsOperator(text string) bool {
	return n.kind == KindOperator && n.content == text
}

// IsWord reports whether the node is a bare word with the given text.
// The comparison is case-sensitive.
func (n *Node) IsWord(text string) bool {
	return n.kind == KindWord && n.content == text
}
