package ptree

import "testing"

func loc(line, col int) Location {
	return Location{File: "test.pl", Line: line, Column: col}
}

func TestNode_SignificantNavigation(t *testing.T) {
	b := NewBuilder("test.pl")
	stmt := b.Append(nil, KindStatement, "", loc(1, 1))

	word := b.Append(stmt, KindWord, "foreach", loc(1, 1))
	b.Append(stmt, KindWhitespace, " ", loc(1, 8))
	b.Append(stmt, KindComment, "# note", loc(1, 9))
	list := b.Append(stmt, KindList, "", loc(1, 16))
	b.Append(stmt, KindWhitespace, " ", loc(1, 20))
	term := b.Append(stmt, KindStructure, ";", loc(1, 21))

	if got := word.NextSignificantSibling(); got != list {
		t.Errorf("NextSignificantSibling skipped to %v, want list", got)
	}
	if got := list.PrevSignificantSibling(); got != word {
		t.Errorf("PrevSignificantSibling skipped to %v, want word", got)
	}
	if got := stmt.FirstSignificantChild(); got != word {
		t.Errorf("FirstSignificantChild = %v, want word", got)
	}
	if got := stmt.LastSignificantChild(); got != term {
		t.Errorf("LastSignificantChild = %v, want terminator", got)
	}
	if got := word.PrevSignificantSibling(); got != nil {
		t.Errorf("PrevSignificantSibling at left edge = %v, want nil", got)
	}
	if got := term.NextSignificantSibling(); got != nil {
		t.Errorf("NextSignificantSibling at right edge = %v, want nil", got)
	}
}

func TestNode_Predicates(t *testing.T) {
	b := NewBuilder("test.pl")
	stmt := b.Append(nil, KindStatement, "", loc(1, 1))

	term := b.Append(stmt, KindStructure, ";", loc(1, 1))
	brace := b.Append(stmt, KindStructure, "{", loc(1, 2))
	lt := b.Append(stmt, KindOperator, "<", loc(1, 3))
	word := b.Append(stmt, KindWord, "for", loc(1, 4))

	if !term.IsTerminator() {
		t.Error("';' structure token must be a terminator")
	}
	if brace.IsTerminator() {
		t.Error("'{' structure token must not be a terminator")
	}
	if !lt.IsOperator("<") {
		t.Error("IsOperator(\"<\") must match")
	}
	if lt.IsOperator(">") {
		t.Error("IsOperator(\">\") must not match '<'")
	}
	if !word.IsWord("for") {
		t.Error("IsWord(\"for\") must match")
	}
	if word.IsWord("For") {
		t.Error("IsWord must be case-sensitive")
	}
}

func TestKind_Significant(t *testing.T) {
	for _, k := range []Kind{KindWhitespace, KindComment} {
		if k.Significant() {
			t.Errorf("%v must be cosmetic", k)
		}
	}
	for _, k := range []Kind{KindWord, KindSymbol, KindOperator, KindStructure, KindReadline, KindList, KindBlock} {
		if !k.Significant() {
			t.Errorf("%v must be significant", k)
		}
	}
}

func TestStatements_IncludesNested(t *testing.T) {
	b := NewBuilder("test.pl")
	compound := b.Append(nil, KindCompoundStatement, "", loc(1, 1))
	b.Append(compound, KindWord, "while", loc(1, 1))
	block := b.Append(compound, KindBlock, "", loc(1, 11))
	inner := b.Append(block, KindStatement, "", loc(1, 13))
	b.Append(inner, KindWord, "print", loc(1, 13))

	stmts := Statements(b.Document())
	if len(stmts) != 2 {
		t.Fatalf("Statements returned %d nodes, want 2", len(stmts))
	}
	if stmts[0] != compound || stmts[1] != inner {
		t.Error("Statements must return outer then inner, in source order")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{Location{File: "a.pl", Line: 3, Column: 7}, "a.pl:3:7"},
		{Location{}, "<unknown>"},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if (Location{}).IsValid() {
		t.Error("zero location must not be valid")
	}
	if !(Location{File: "a.pl", Line: 1}).IsValid() {
		t.Error("file+line location must be valid")
	}
}
