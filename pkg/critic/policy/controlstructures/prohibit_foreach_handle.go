package controlstructures

import (
	"fmt"
	"regexp"

	"perlhq/critic/pkg/critic"
	"perlhq/critic/pkg/ptree"
)

const (
	foreachHandleName        = "ControlStructures::ProhibitForeachHandle"
	foreachHandleExplanation = "A for or foreach loop evaluates its list before the first iteration, " +
		"reading every line of the file into memory at once. Use a while loop to read one line at a time."
)

// handleShape matches the readline forms: a bareword handle (<FH>), a scalar
// holding a handle (<$fh>), or the bare diamond (<>). Glob expressions such
// as <*.txt> contain wildcard characters and do not match, which is what
// disambiguates line reading from file-glob expansion.
var handleShape = regexp.MustCompile(`^<\$?\w*>$`)

func init() {
	critic.Register(&ProhibitForeachHandle{})
}

// ProhibitForeachHandle flags for/foreach loops whose iteration source reads
// from a file handle. It is stateless; the zero value is ready to use.
type ProhibitForeachHandle struct{}

// Name returns the fully qualified policy name.
func (p *ProhibitForeachHandle) Name() string {
	return foreachHandleName
}

// DefaultSeverity grades the policy harsh: the slurp is silent and its cost
// grows with the input file.
func (p *ProhibitForeachHandle) DefaultSeverity() critic.Severity {
	return critic.SeverityHarsh
}

// Check inspects one statement. It locates the candidate loop keyword,
// verifies it really is "for" or "foreach", resolves the iteration source
// past any loop-variable binding, and scans that source for readline
// offenders. Every dead end along the way means "not this pattern" and
// yields no violations.
func (p *ProhibitForeachHandle) Check(stmt *ptree.Node) []critic.Violation {
	keyword := locateLoopKeyword(stmt)
	if keyword == nil || keyword.Kind() != ptree.KindWord {
		return nil
	}
	word := keyword.Content()
	if word != "for" && word != "foreach" {
		return nil
	}

	source := iterationSource(keyword)
	if source == nil {
		return nil
	}

	var violations []critic.Violation
	for _, offender := range scanForReadline(source) {
		violations = append(violations, critic.Violation{
			Policy:      foreachHandleName,
			Severity:    p.DefaultSeverity(),
			Message:     fmt.Sprintf("Readline inside %q loop", word),
			Explanation: foreachHandleExplanation,
			Node:        offender,
			Location:    offender.Location(),
		})
	}
	return violations
}

// locateLoopKeyword finds the node that should be the keyword introducing a
// loop, or nil if the statement cannot possibly be a for/foreach loop.
//
// A compound loop carries its keyword as the first significant child. A
// plain statement is matched from its tail: a statement whose last
// significant element (past any terminator) is a parenthesized list or a
// readline is treated as an unbraced loop header, and the node before that
// element is the candidate keyword. The caller verifies the keyword text;
// this function only finds the position.
func locateLoopKeyword(stmt *ptree.Node) *ptree.Node {
	switch stmt.Kind() {
	case ptree.KindCompoundStatement:
		return stmt.FirstSignificantChild()
	case ptree.KindStatement:
		// Fall through to the tail-shape walk below.
	default:
		return nil
	}

	node := stmt.LastSignificantChild()
	if node == nil {
		return nil
	}
	if node.IsTerminator() {
		node = node.PrevSignificantSibling()
		if node == nil {
			return nil
		}
	}

	switch {
	case node.Kind() == ptree.KindList || node.Kind() == ptree.KindReadline:
		return node.PrevSignificantSibling()

	case node.IsOperator(">"):
		// Possible mis-parsed readline: walk back over the inner
		// word/symbol to the matching "<".
		prev := node.PrevSignificantSibling()
		if prev == nil {
			return nil
		}
		if prev.Kind() == ptree.KindWord || prev.Kind() == ptree.KindSymbol {
			prev = prev.PrevSignificantSibling()
			if prev == nil {
				return nil
			}
		}
		if !prev.IsOperator("<") {
			return nil
		}
		return prev.PrevSignificantSibling()
	}

	return nil
}

// iterationSource resolves the node holding the loop's iteration source,
// starting from the confirmed keyword. A "my $var" binding between keyword
// and source is skipped; if the binding is malformed there is no violation.
func iterationSource(keyword *ptree.Node) *ptree.Node {
	next := keyword.NextSignificantSibling()
	if next == nil {
		return nil
	}
	if !next.IsWord("my") {
		return next
	}

	symbol := next.NextSignificantSibling()
	if symbol == nil || symbol.Kind() != ptree.KindSymbol {
		return nil
	}
	return symbol.NextSignificantSibling()
}

// scanForReadline returns every node under n (including n itself) that
// denotes reading lines from a handle, in source order. Interior nodes are
// descended depth-first; leaf tokens offend if they are a readline literal
// of handle shape, or the "<" of a mis-parsed readline. Everything else is
// benign.
func scanForReadline(n *ptree.Node) []*ptree.Node {
	if n.HasChildren() {
		var out []*ptree.Node
		for _, child := range n.SignificantChildren() {
			out = append(out, scanForReadline(child)...)
		}
		return out
	}

	switch n.Kind() {
	case ptree.KindReadline:
		if handleShape.MatchString(n.Content()) {
			return []*ptree.Node{n}
		}

	case ptree.KindOperator:
		if n.Content() == "<" && misparsedReadlineFollows(n) {
			// The "<" itself is the offender; the consumed siblings
			// are not descended into.
			return []*ptree.Node{n}
		}
	}

	return nil
}

// misparsedReadlineFollows confirms that n, a "<" operator, starts the
// token sequence "<", optional word or symbol, ">".
func misparsedReadlineFollows(n *ptree.Node) bool {
	next := n.NextSignificantSibling()
	if next == nil {
		return false
	}
	if next.Kind() == ptree.KindWord || next.Kind() == ptree.KindSymbol {
		next = next.NextSignificantSibling()
		if next == nil {
			return false
		}
	}
	return next.IsOperator(">")
}
