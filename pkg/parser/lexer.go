// Package parser turns Nix source into the lossless syntax tree consumed by
// the lint engine. Every byte of the input lands in exactly one token, so the
// resulting tree renders back to the original text.
package parser

import "github.com/yaklabco/nixlint/pkg/syntax"

type lexer struct {
	src []byte
	pos int
}

// lex tokenizes the whole input. The concatenated token texts always equal
// the input, including whitespace and comments.
func lex(src []byte) []*syntax.Token {
	lx := &lexer{src: src}
	var toks []*syntax.Token
	for lx.pos < len(lx.src) {
		toks = append(toks, lx.next())
	}
	return toks
}

func (lx *lexer) next() *syntax.Token {
	start := lx.pos
	ch := lx.src[lx.pos]

	switch {
	case isSpace(ch):
		for lx.pos < len(lx.src) && isSpace(lx.src[lx.pos]) {
			lx.pos++
		}
		return lx.token(syntax.TokenWhitespace, start)

	case ch == '#':
		for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
			lx.pos++
		}
		return lx.token(syntax.TokenComment, start)

	case ch == '/' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '*':
		lx.pos += 2
		for lx.pos < len(lx.src) {
			if lx.src[lx.pos] == '*' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '/' {
				lx.pos += 2
				break
			}
			lx.pos++
		}
		return lx.token(syntax.TokenComment, start)

	case isIdentStart(ch):
		for lx.pos < len(lx.src) && isIdentContinue(lx.src[lx.pos]) {
			lx.pos++
		}
		return lx.keywordOrIdent(start)

	case isDigit(ch):
		for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
			lx.pos++
		}
		return lx.token(syntax.TokenNumber, start)

	case ch == '"':
		lx.pos++
		for lx.pos < len(lx.src) {
			if lx.src[lx.pos] == '\\' && lx.pos+1 < len(lx.src) {
				lx.pos += 2
				continue
			}
			if lx.src[lx.pos] == '"' {
				lx.pos++
				break
			}
			lx.pos++
		}
		return lx.token(syntax.TokenString, start)

	default:
		lx.pos++
		kind := syntax.TokenUnknown
		switch ch {
		case '.':
			kind = syntax.TokenDot
		case '=':
			kind = syntax.TokenAssign
		case ';':
			kind = syntax.TokenSemicolon
		case '{':
			kind = syntax.TokenLBrace
		case '}':
			kind = syntax.TokenRBrace
		case '(':
			kind = syntax.TokenLParen
		case ')':
			kind = syntax.TokenRParen
		}
		return lx.token(kind, start)
	}
}

func (lx *lexer) token(kind syntax.SyntaxKind, start int) *syntax.Token {
	return &syntax.Token{
		Kind:  kind,
		Range: syntax.TextRange{Start: start, End: lx.pos},
		Text:  string(lx.src[start:lx.pos]),
	}
}

func (lx *lexer) keywordOrIdent(start int) *syntax.Token {
	text := string(lx.src[start:lx.pos])
	kind := syntax.TokenIdent
	switch text {
	case "let":
		kind = syntax.TokenLet
	case "in":
		kind = syntax.TokenIn
	case "inherit":
		kind = syntax.TokenInherit
	}
	return &syntax.Token{
		Kind:  kind,
		Range: syntax.TextRange{Start: start, End: lx.pos},
		Text:  text,
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '\'' || ch == '-'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
