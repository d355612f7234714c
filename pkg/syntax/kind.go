// Package syntax provides the lossless concrete syntax tree for Nix source.
// Every byte of the original source is retained in the token stream, so any
// subtree maps back to an exact byte range and range-based editing is safe.
package syntax

// SyntaxKind classifies both tokens and nodes in the syntax tree.
// Token kinds and node kinds share one enumeration so that rule dispatch
// can key on a single kind tag regardless of element type.
type SyntaxKind uint16

const (
	// Token kinds. Tokens are the leaves; together they cover every byte.
	TokenWhitespace SyntaxKind = iota
	TokenComment
	TokenIdent
	TokenString
	TokenNumber
	TokenDot
	TokenAssign
	TokenSemicolon
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen
	TokenLet
	TokenIn
	TokenInherit
	TokenUnknown

	// Node kinds. Nodes carry structure; their range spans their children.
	NodeRoot
	NodeIdent
	NodeString
	NodeNumber
	NodeAttrpath
	NodeAttrpathValue
	NodeAttrSet
	NodeSelect
	NodeLetIn
	NodeParen
	NodeInherit
	NodeInheritFrom
	NodeError
)

var kindNames = map[SyntaxKind]string{
	TokenWhitespace: "TokenWhitespace",
	TokenComment:    "TokenComment",
	TokenIdent:      "TokenIdent",
	TokenString:     "TokenString",
	TokenNumber:     "TokenNumber",
	TokenDot:        "TokenDot",
	TokenAssign:     "TokenAssign",
	TokenSemicolon:  "TokenSemicolon",
	TokenLBrace:     "TokenLBrace",
	TokenRBrace:     "TokenRBrace",
	TokenLParen:     "TokenLParen",
	TokenRParen:     "TokenRParen",
	TokenLet:        "TokenLet",
	TokenIn:         "TokenIn",
	TokenInherit:    "TokenInherit",
	TokenUnknown:    "TokenUnknown",

	NodeRoot:          "NodeRoot",
	NodeIdent:         "NodeIdent",
	NodeString:        "NodeString",
	NodeNumber:        "NodeNumber",
	NodeAttrpath:      "NodeAttrpath",
	NodeAttrpathValue: "NodeAttrpathValue",
	NodeAttrSet:       "NodeAttrSet",
	NodeSelect:        "NodeSelect",
	NodeLetIn:         "NodeLetIn",
	NodeParen:         "NodeParen",
	NodeInherit:       "NodeInherit",
	NodeInheritFrom:   "NodeInheritFrom",
	NodeError:         "NodeError",
}

// String returns the name of the kind, or "SyntaxKind(n)" for unknown values.
func (k SyntaxKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "SyntaxKind(" + itoa(int(k)) + ")"
}

// IsToken returns true if this kind classifies a token.
func (k SyntaxKind) IsToken() bool {
	return k <= TokenUnknown
}

// IsNode returns true if this kind classifies a node.
func (k SyntaxKind) IsNode() bool {
	return k >= NodeRoot
}

// IsTrivia returns true for whitespace and comment tokens.
// Trivia carries no structure but is retained for lossless editing.
func (k SyntaxKind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenComment
}

// itoa avoids importing strconv just for the String fallback.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
