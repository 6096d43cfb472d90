package ptree

// Kind categorizes a tree node. The set is closed: policies switch over it
// exhaustively, and anything they do not recognize is treated as benign.
type Kind int

const (
	// KindDocument is the root node of a parsed file.
	KindDocument Kind = iota

	// KindStatement is a plain statement: a flat run of tokens, usually
	// ending in a ";" terminator.
	KindStatement

	// KindCompoundStatement is a structurally recognized statement with an
	// attached block, such as "for (...) { ... }" or "while (...) { ... }".
	KindCompoundStatement

	// KindBlock is a "{ ... }" body containing nested statements.
	KindBlock

	// KindList is a parenthesized expression list "( ... )".
	KindList

	// KindWord is a bare word: keywords, function names, bareword handles.
	KindWord

	// KindSymbol is a sigiled variable such as $line, @lines, or %opts.
	KindSymbol

	// KindOperator is an operator token; its content carries the operator
	// text ("<", ">", "=", "=>", ...).
	KindOperator

	// KindStructure is structural punctuation: ";", "{", "}", "(", ")".
	// A ";" structure token is the statement terminator.
	KindStructure

	// KindReadline is a single-token angle-bracket literal: <$fh>, <FH>,
	// <>, or a file glob such as <*.txt>. The lexer only produces this
	// when the brackets close without intervening whitespace; otherwise
	// the brackets surface as bare "<" and ">" operators.
	KindReadline

	// KindNumber is a numeric literal.
	KindNumber

	// KindQuote is a quoted string literal, content including the quotes.
	KindQuote

	// KindWhitespace is a cosmetic run of spaces, tabs, or newlines.
	KindWhitespace

	// KindComment is a cosmetic "#" comment running to end of line.
	KindComment
)

var kindNames = map[Kind]string{
	KindDocument:          "document",
	KindStatement:         "statement",
	KindCompoundStatement: "compound-statement",
	KindBlock:             "block",
	KindList:              "list",
	KindWord:              "word",
	KindSymbol:            "symbol",
	KindOperator:          "operator",
	KindStructure:         "structure",
	KindReadline:          "readline",
	KindNumber:            "number",
	KindQuote:             "quote",
	KindWhitespace:        "whitespace",
	KindComment:           "comment",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Significant reports whether nodes of this kind participate in
// significant-sibling navigation. Whitespace and comments do not.
func (k Kind) Significant() bool {
	return k != KindWhitespace && k != KindComment
}
