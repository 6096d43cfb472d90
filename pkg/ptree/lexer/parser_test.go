package lexer

import (
	"errors"
	"strings"
	"testing"

	"perlhq/critic/pkg/ptree"
)

func mustParse(t *testing.T, src string) *ptree.Node {
	t.Helper()
	doc, err := ParseString("test.pl", src)
	if err != nil {
		t.Fatalf("ParseString(%q) failed: %v", src, err)
	}
	return doc
}

func TestParseString_CompoundShape(t *testing.T) {
	doc := mustParse(t, "foreach my $line (<$fh>) { print $line; }")

	stmts := ptree.Statements(doc)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2 (loop plus body)", len(stmts))
	}
	loop := stmts[0]
	if loop.Kind() != ptree.KindCompoundStatement {
		t.Fatalf("loop kind = %v, want compound statement", loop.Kind())
	}
	keyword := loop.FirstSignificantChild()
	if keyword == nil || !keyword.IsWord("foreach") {
		t.Fatalf("first significant child = %v, want the loop keyword", keyword)
	}

	var haveList, haveBlock bool
	for _, child := range loop.SignificantChildren() {
		switch child.Kind() {
		case ptree.KindList:
			haveList = true
		case ptree.KindBlock:
			haveBlock = true
		}
	}
	if !haveList || !haveBlock {
		t.Errorf("compound statement missing list (%v) or block (%v)", haveList, haveBlock)
	}
}

func TestParseString_PlainShape(t *testing.T) {
	doc := mustParse(t, "my @lines = <$fh>;")

	stmts := ptree.Statements(doc)
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	stmt := stmts[0]
	if stmt.Kind() != ptree.KindStatement {
		t.Fatalf("kind = %v, want plain statement", stmt.Kind())
	}
	last := stmt.LastSignificantChild()
	if last == nil || !last.IsTerminator() {
		t.Errorf("last significant child = %v, want the ';' terminator", last)
	}
}

func TestParseString_ConditionalWithoutBlockIsPlain(t *testing.T) {
	doc := mustParse(t, "return unless $ok;")

	stmts := ptree.Statements(doc)
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	if stmts[0].Kind() != ptree.KindStatement {
		t.Errorf("kind = %v, want plain statement (no block follows)", stmts[0].Kind())
	}
}

func TestParseString_NestedBlocks(t *testing.T) {
	doc := mustParse(t, "while ($x) { if ($y) { print; } done(); }")

	stmts := ptree.Statements(doc)
	// while, if, print, done()
	if len(stmts) != 4 {
		t.Fatalf("got %d statements, want 4", len(stmts))
	}
	if stmts[0].Kind() != ptree.KindCompoundStatement || stmts[1].Kind() != ptree.KindCompoundStatement {
		t.Error("while and nested if must both be compound statements")
	}
	if stmts[2].Kind() != ptree.KindStatement || stmts[3].Kind() != ptree.KindStatement {
		t.Error("block bodies must be plain statements")
	}
}

func TestParseString_ListKeepsParens(t *testing.T) {
	doc := mustParse(t, "process($a, ($b, $c));")

	stmts := ptree.Statements(doc)
	outer := stmts[0].FirstSignificantChild().NextSignificantSibling()
	if outer == nil || outer.Kind() != ptree.KindList {
		t.Fatalf("call arguments = %v, want list node", outer)
	}
	first := outer.FirstSignificantChild()
	if first == nil || first.Kind() != ptree.KindStructure || first.Content() != "(" {
		t.Errorf("list must keep its opening paren, got %v", first)
	}
	var inner *ptree.Node
	for _, child := range outer.SignificantChildren() {
		if child.Kind() == ptree.KindList {
			inner = child
		}
	}
	if inner == nil {
		t.Error("nested parens must form a nested list node")
	}
}

func TestParseString_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"unclosed list", "process(<$fh>;", "unclosed parenthesized list"},
		{"unclosed block", "foreach (<$fh>) { print;", "unclosed block"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString("test.pl", tt.src)
			if err == nil {
				t.Fatalf("ParseString(%q) succeeded, want error", tt.src)
			}
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantMsg)
			}
			if !strings.HasPrefix(err.Error(), "test.pl:") {
				t.Errorf("error = %q, want a file-prefixed location", err)
			}
		})
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	if _, err := ParseFile("testdata/does-not-exist.pl"); err == nil {
		t.Error("ParseFile on a missing path must fail")
	}
}
