// Package lexer turns Perl source text into the token tree consumed by
// critic policies.
//
// This is deliberately not a full Perl parser. It recognizes just enough
// structure for statement-level policies: statement boundaries, compound
// statements with attached blocks, parenthesized lists, sigiled symbols,
// and the angle-bracket readline/glob literal.
//
// The angle-bracket ambiguity is reproduced faithfully: "<$fh>", "<FH>",
// "<>", and "<*.txt>" lex as a single readline token, while a spaced form
// such as "< $fh >" falls apart into a "<" operator, a symbol, and a ">"
// operator. Policies that care about readline iteration must handle both
// shapes, exactly as they must against Perl's own tokenizer.
package lexer
