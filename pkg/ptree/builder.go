package ptree

// Builder assembles a token tree. It is the only write surface of the
// package: once Document is called and the builder discarded, the tree is
// effectively immutable and safe to share across goroutines.
type Builder struct {
	doc *Node
}

// NewBuilder creates a builder with an empty document root for the given file.
func NewBuilder(file string) *Builder {
	return &Builder{
		doc: &Node{
			kind: KindDocument,
			loc:  Location{File: file, Line: 1, Column: 1},
		},
	}
}

// Append creates a node and attaches it as the rightmost child of parent.
// If parent is nil the node is attached to the document root.
func (b *Builder) Append(parent *Node, kind Kind, content string, loc Location) *Node {
	if parent == nil {
		parent = b.doc
	}
	n := &Node{
		kind:    kind,
		content: content,
		loc:     loc,
		parent:  parent,
		index:   len(parent.children),
	}
	parent.children = append(parent.children, n)
	return n
}

// Document returns the document root of the assembled tree.
func (b *Builder) Document() *Node {
	return b.doc
}
