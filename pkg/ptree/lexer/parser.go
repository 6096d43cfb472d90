package lexer

import (
	"os"

	"perlhq/critic/pkg/ptree"
)

// compoundKeywords introduce statements that may carry an attached block.
var compoundKeywords = map[string]bool{
	"for":     true,
	"foreach": true,
	"while":   true,
	"until":   true,
	"if":      true,
	"unless":  true,
	"sub":     true,
}

// ParseFile reads a Perl source file and returns its token tree document.
func ParseFile(path string) (*ptree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseString(path, string(data))
}

// ParseString parses Perl source text into a token tree document. The file
// name is used only for node locations.
func ParseString(file, src string) (*ptree.Node, error) {
	p := &parser{
		toks: newScanner(file, src).scan(),
		b:    ptree.NewBuilder(file),
	}
	if err := p.parseStatements(p.b.Document(), false); err != nil {
		return nil, err
	}
	return p.b.Document(), nil
}

// parser assembles the token stream into statements, lists, and blocks.
type parser struct {
	toks []token
	pos  int
	b    *ptree.Builder
}

func (p *parser) done() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

// appendToken attaches the next token to parent as a leaf node.
func (p *parser) appendToken(parent *ptree.Node) *ptree.Node {
	t := p.next()
	return p.b.Append(parent, t.kind, t.text, t.loc)
}

// parseStatements consumes statements until end of input, or until a "}" when
// inBlock is set. Cosmetic tokens between statements attach to the parent.
func (p *parser) parseStatements(parent *ptree.Node, inBlock bool) error {
	for !p.done() {
		t := p.peek()
		if !t.kind.Significant() {
			p.appendToken(parent)
			continue
		}
		if inBlock && t.kind == ptree.KindStructure && t.text == "}" {
			return nil
		}
		if err := p.parseStatement(parent); err != nil {
			return err
		}
	}
	return nil
}

// parseStatement consumes one statement. A statement led by a compound
// keyword with a block in sight becomes a compound statement; everything
// else becomes a plain statement running to its ";" terminator or to the
// enclosing block boundary.
func (p *parser) parseStatement(parent *ptree.Node) error {
	t := p.peek()

	if t.kind == ptree.KindWord && compoundKeywords[t.text] && p.blockFollows() {
		return p.parseCompound(parent)
	}
	return p.parsePlain(parent)
}

// blockFollows looks ahead from the current position for a "{" before the
// statement ends, at paren depth zero. This decides compound vs plain shape
// without consuming anything.
func (p *parser) blockFollows() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		t := p.toks[i]
		if t.kind != ptree.KindStructure {
			continue
		}
		switch t.text {
		case "(":
			depth++
		case ")":
			depth--
		case "{":
			if depth == 0 {
				return true
			}
		case ";", "}":
			if depth == 0 {
				return false
			}
		}
	}
	return false
}

func (p *parser) parseCompound(parent *ptree.Node) error {
	node := p.b.Append(parent, ptree.KindCompoundStatement, "", p.peek().loc)
	for !p.done() {
		t := p.peek()
		if t.kind == ptree.KindStructure {
			switch t.text {
			case "(":
				if err := p.parseList(node); err != nil {
					return err
				}
				continue
			case "{":
				return p.parseBlock(node)
			}
		}
		p.appendToken(node)
	}
	return &Error{Loc: node.Location(), Msg: "compound statement has no block"}
}

func (p *parser) parsePlain(parent *ptree.Node) error {
	node := p.b.Append(parent, ptree.KindStatement, "", p.peek().loc)
	for !p.done() {
		t := p.peek()
		if t.kind == ptree.KindStructure {
			switch t.text {
			case ";":
				p.appendToken(node)
				return nil
			case "}":
				// Statement ends at the enclosing block close.
				return nil
			case "(":
				if err := p.parseList(node); err != nil {
					return err
				}
				continue
			case "{":
				if err := p.parseBlock(node); err != nil {
					return err
				}
				continue
			}
		}
		p.appendToken(node)
	}
	return nil
}

// parseList consumes a "( ... )" group into a list node. The parens stay as
// structure children so locations remain complete.
func (p *parser) parseList(parent *ptree.Node) error {
	node := p.b.Append(parent, ptree.KindList, "", p.peek().loc)
	p.appendToken(node) // "("
	for !p.done() {
		t := p.peek()
		if t.kind == ptree.KindStructure {
			switch t.text {
			case ")":
				p.appendToken(node)
				return nil
			case "(":
				if err := p.parseList(node); err != nil {
					return err
				}
				continue
			}
		}
		p.appendToken(node)
	}
	return &Error{Loc: node.Location(), Msg: "unclosed parenthesized list"}
}

// parseBlock consumes a "{ ... }" group into a block node containing nested
// statements.
func (p *parser) parseBlock(parent *ptree.Node) error {
	node := p.b.Append(parent, ptree.KindBlock, "", p.peek().loc)
	p.appendToken(node) // "{"
	if err := p.parseStatements(node, true); err != nil {
		return err
	}
	if p.done() {
		return &Error{Loc: node.Location(), Msg: "unclosed block"}
	}
	p.appendToken(node) // "}"
	return nil
}
