// Package ptree provides the read-only token tree that critic policies inspect.
//
// The tree is a simplified Perl document model: a Document node containing
// statements, which in turn contain tokens (words, symbols, operators,
// structures, readline literals) and nested containers (lists, blocks).
// Whitespace and comments are preserved as cosmetic nodes so that source
// locations stay accurate, but they are invisible to the significant-sibling
// navigation that policies use.
//
// Trees are assembled once by a Builder (normally driven by the lexer package)
// and are immutable afterwards. Policies hold borrowed *Node references for
// the duration of a check and never mutate the tree.
//
// # Core Types
//
// Node: a tree element with a Kind tag, raw content, source location, ordered
// children, and sibling/parent navigation
//
// Kind: closed enumeration of node categories
//
// Location: source location (file, line, column)
//
// Builder: write-side assembly of a tree; the only mutation surface
//
// # Basic Usage
//
//	doc, err := lexer.ParseString("loop.pl", src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, stmt := range ptree.Statements(doc) {
//	    kw := stmt.FirstSignificantChild()
//	    if kw != nil && kw.Kind() == ptree.KindWord {
//	        fmt.Println("statement starts with", kw.Content())
//	    }
//	}
package ptree
