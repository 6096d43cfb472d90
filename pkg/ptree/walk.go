package ptree

// Statements collects every statement node reachable from n in source order,
// including statements nested inside blocks. Compound statements are included
// themselves and their block bodies are descended into, so a host enumerating
// a document hands every statement to its policies exactly once.
func Statements(n *Node) []*Node {
	var out []*Node
	collectStatements(n, &out)
	return out
}

func collectStatements(n *Node, out *[]*Node) {
	if n == nil {
		return
	}
	if n.kind == KindStatement || n.kind == KindCompoundStatement {
		*out = append(*out, n)
	}
	for _, c := range n.children {
		collectStatements(c, out)
	}
}

// Walk calls fn for n and every node below it in depth-first, left-to-right
// order. Traversal stops early if fn returns false.
func Walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}
