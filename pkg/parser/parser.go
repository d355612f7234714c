package parser

import (
	"fmt"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

// ParseError describes a syntax error at a byte offset. The parser is
// error-tolerant: offending tokens are wrapped in NodeError elements so the
// tree stays lossless even for malformed input.
type ParseError struct {
	Offset  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
}

// Parse builds a lossless syntax tree for the given source. The returned
// tree is always non-nil and renders back to the exact input; parse errors
// are returned alongside it.
func Parse(path string, content []byte) (*syntax.Tree, []ParseError) {
	p := &parser{toks: lex(content)}

	root := syntax.NewNode(syntax.NodeRoot)
	p.bumpTrivia(root)
	if !p.eof() {
		root.AddNode(p.parseExpr())
	}
	// Anything after the top-level expression is unexpected; keep the bytes.
	for !p.eof() {
		p.bumpTrivia(root)
		if p.eof() {
			break
		}
		p.errorf("unexpected %s after expression", p.cur().Kind)
		root.AddNode(p.errNode())
	}

	if len(root.Children) == 0 {
		root.Range = syntax.TextRange{}
	}
	return syntax.NewTree(path, content, root), p.errs
}

type parser struct {
	toks []*syntax.Token
	pos  int
	errs []ParseError
}

func (p *parser) eof() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) cur() *syntax.Token {
	return p.toks[p.pos]
}

// peekKind returns the kind of the next non-trivia token without consuming
// anything, or false at end of input.
func (p *parser) peekKind() (syntax.SyntaxKind, bool) {
	for i := p.pos; i < len(p.toks); i++ {
		if !p.toks[i].Kind.IsTrivia() {
			return p.toks[i].Kind, true
		}
	}
	return 0, false
}

func (p *parser) peekIs(kind syntax.SyntaxKind) bool {
	k, ok := p.peekKind()
	return ok && k == kind
}

// bumpTrivia moves pending whitespace and comment tokens into n.
func (p *parser) bumpTrivia(n *syntax.Node) {
	for !p.eof() && p.cur().Kind.IsTrivia() {
		n.AddToken(p.cur())
		p.pos++
	}
}

// bump moves the current token into n unconditionally.
func (p *parser) bump(n *syntax.Node) {
	n.AddToken(p.cur())
	p.pos++
}

// expect consumes trivia then the given token kind into n. A missing token
// is recorded as a parse error and not consumed.
func (p *parser) expect(kind syntax.SyntaxKind, n *syntax.Node) {
	p.bumpTrivia(n)
	if !p.eof() && p.cur().Kind == kind {
		p.bump(n)
		return
	}
	p.errorf("expected %s", kind)
}

func (p *parser) errorf(format string, args ...any) {
	at := 0
	if !p.eof() {
		at = p.cur().Range.Start
	} else if len(p.toks) > 0 {
		at = p.toks[len(p.toks)-1].Range.End
	}
	p.errs = append(p.errs, ParseError{Offset: at, Message: fmt.Sprintf(format, args...)})
}

// errNode wraps the current token in a NodeError and consumes it. At end of
// input the node is empty but positioned, so parent ranges stay consistent.
func (p *parser) errNode() *syntax.Node {
	n := syntax.NewNode(syntax.NodeError)
	if !p.eof() {
		p.bump(n)
		return n
	}
	at := 0
	if len(p.toks) > 0 {
		at = p.toks[len(p.toks)-1].Range.End
	}
	n.Range = syntax.TextRange{Start: at, End: at}
	return n
}

// parseExpr parses a selection or atom. Selection is flat: `a.b.c` is one
// NodeSelect holding the base `a`, the first dot, and an attrpath `b.c`.
func (p *parser) parseExpr() *syntax.Node {
	base := p.parseAtom()
	if !p.peekIs(syntax.TokenDot) {
		return base
	}

	sel := syntax.NewNode(syntax.NodeSelect)
	sel.AddNode(base)
	p.expect(syntax.TokenDot, sel)

	path := syntax.NewNode(syntax.NodeAttrpath)
	p.bumpTrivia(sel)
	path.AddNode(p.parseAttr())
	for p.peekIs(syntax.TokenDot) {
		p.expect(syntax.TokenDot, path)
		p.bumpTrivia(path)
		path.AddNode(p.parseAttr())
	}
	sel.AddNode(path)
	return sel
}

func (p *parser) parseAtom() *syntax.Node {
	if p.eof() {
		p.errorf("expected expression")
		return p.errNode()
	}
	switch p.cur().Kind {
	case syntax.TokenIdent:
		return p.wrapToken(syntax.NodeIdent)
	case syntax.TokenString:
		return p.wrapToken(syntax.NodeString)
	case syntax.TokenNumber:
		return p.wrapToken(syntax.NodeNumber)
	case syntax.TokenLBrace:
		return p.parseAttrSet()
	case syntax.TokenLParen:
		return p.parseParen()
	case syntax.TokenLet:
		return p.parseLetIn()
	default:
		p.errorf("unexpected %s, expected expression", p.cur().Kind)
		return p.errNode()
	}
}

// parseAttr parses one attrpath segment: an identifier, string, or number.
func (p *parser) parseAttr() *syntax.Node {
	if p.eof() {
		p.errorf("expected attribute name")
		return p.errNode()
	}
	switch p.cur().Kind {
	case syntax.TokenIdent:
		return p.wrapToken(syntax.NodeIdent)
	case syntax.TokenString:
		return p.wrapToken(syntax.NodeString)
	case syntax.TokenNumber:
		return p.wrapToken(syntax.NodeNumber)
	default:
		p.errorf("unexpected %s, expected attribute name", p.cur().Kind)
		return p.errNode()
	}
}

func (p *parser) wrapToken(kind syntax.SyntaxKind) *syntax.Node {
	n := syntax.NewNode(kind)
	p.bump(n)
	return n
}

func (p *parser) parseAttrSet() *syntax.Node {
	n := syntax.NewNode(syntax.NodeAttrSet)
	p.bump(n) // '{'
	for {
		p.bumpTrivia(n)
		if p.eof() {
			p.errorf("unterminated attribute set")
			return n
		}
		switch p.cur().Kind {
		case syntax.TokenRBrace:
			p.bump(n)
			return n
		case syntax.TokenInherit:
			n.AddNode(p.parseInherit())
		case syntax.TokenIdent, syntax.TokenString, syntax.TokenNumber:
			n.AddNode(p.parseBinding())
		default:
			p.errorf("unexpected %s in attribute set", p.cur().Kind)
			n.AddNode(p.errNode())
		}
	}
}

// parseBinding parses `attrpath = expr;`. The key attrpath holds every
// segment, dots included.
func (p *parser) parseBinding() *syntax.Node {
	n := syntax.NewNode(syntax.NodeAttrpathValue)

	path := syntax.NewNode(syntax.NodeAttrpath)
	path.AddNode(p.parseAttr())
	for p.peekIs(syntax.TokenDot) {
		p.expect(syntax.TokenDot, path)
		p.bumpTrivia(path)
		path.AddNode(p.parseAttr())
	}
	n.AddNode(path)

	p.expect(syntax.TokenAssign, n)
	p.bumpTrivia(n)
	if !p.eof() {
		n.AddNode(p.parseExpr())
	} else {
		p.errorf("expected expression after =")
	}
	p.expect(syntax.TokenSemicolon, n)
	return n
}

func (p *parser) parseParen() *syntax.Node {
	n := syntax.NewNode(syntax.NodeParen)
	p.bump(n) // '('
	p.bumpTrivia(n)
	if !p.eof() && p.cur().Kind != syntax.TokenRParen {
		n.AddNode(p.parseExpr())
	} else {
		p.errorf("expected expression inside parentheses")
	}
	p.expect(syntax.TokenRParen, n)
	return n
}

func (p *parser) parseInherit() *syntax.Node {
	n := syntax.NewNode(syntax.NodeInherit)
	p.bump(n) // 'inherit'
	p.bumpTrivia(n)

	if !p.eof() && p.cur().Kind == syntax.TokenLParen {
		from := syntax.NewNode(syntax.NodeInheritFrom)
		p.bump(from) // '('
		p.bumpTrivia(from)
		if !p.eof() {
			from.AddNode(p.parseExpr())
		}
		p.expect(syntax.TokenRParen, from)
		n.AddNode(from)
	}

	for {
		p.bumpTrivia(n)
		if p.eof() || p.cur().Kind != syntax.TokenIdent {
			break
		}
		n.AddNode(p.wrapToken(syntax.NodeIdent))
	}
	p.expect(syntax.TokenSemicolon, n)
	return n
}

func (p *parser) parseLetIn() *syntax.Node {
	n := syntax.NewNode(syntax.NodeLetIn)
	p.bump(n) // 'let'
	for {
		p.bumpTrivia(n)
		if p.eof() {
			p.errorf("unterminated let expression")
			return n
		}
		if p.cur().Kind == syntax.TokenIn {
			p.bump(n)
			break
		}
		switch p.cur().Kind {
		case syntax.TokenInherit:
			n.AddNode(p.parseInherit())
		case syntax.TokenIdent, syntax.TokenString, syntax.TokenNumber:
			n.AddNode(p.parseBinding())
		default:
			p.errorf("unexpected %s in let bindings", p.cur().Kind)
			n.AddNode(p.errNode())
		}
	}
	p.bumpTrivia(n)
	if !p.eof() {
		n.AddNode(p.parseExpr())
	} else {
		p.errorf("expected expression after in")
	}
	return n
}
