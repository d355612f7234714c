package syntax

// Node synthesis for autofix replacements. Built subtrees are detached from
// any tree, carry self-consistent local ranges starting at zero, and render
// to exact replacement text, so a suggestion's replacement can itself be
// walked and re-linted after substitution.

func newToken(kind SyntaxKind, text string) *Token {
	return &Token{Kind: kind, Text: text}
}

// BuildIdent synthesizes a bare identifier expression node.
func BuildIdent(name string) *Node {
	n := NewNode(NodeIdent)
	n.Children = append(n.Children, TokenElement(newToken(TokenIdent, name)))
	return Rebase(n, 0)
}

// InheritStmt synthesizes an `inherit a b;` statement binding the given names.
func InheritStmt(names ...string) *Node {
	n := NewNode(NodeInherit)
	n.Children = append(n.Children, TokenElement(newToken(TokenInherit, "inherit")))
	for _, name := range names {
		n.Children = append(n.Children,
			TokenElement(newToken(TokenWhitespace, " ")))
		ident := NewNode(NodeIdent)
		ident.Parent = n
		ident.Children = append(ident.Children, TokenElement(newToken(TokenIdent, name)))
		n.Children = append(n.Children, NodeElement(ident))
	}
	n.Children = append(n.Children, TokenElement(newToken(TokenSemicolon, ";")))
	return Rebase(n, 0)
}

// InheritFromStmt synthesizes an `inherit (base) a b;` statement. The base
// expression is deep-copied so the synthesized subtree shares no structure
// with the originating tree.
func InheritFromStmt(base *Node, names ...string) *Node {
	n := NewNode(NodeInherit)
	n.Children = append(n.Children, TokenElement(newToken(TokenInherit, "inherit")))
	n.Children = append(n.Children, TokenElement(newToken(TokenWhitespace, " ")))

	from := NewNode(NodeInheritFrom)
	from.Parent = n
	from.Children = append(from.Children, TokenElement(newToken(TokenLParen, "(")))
	cloned := CloneDetached(base)
	cloned.Parent = from
	from.Children = append(from.Children, NodeElement(cloned))
	from.Children = append(from.Children, TokenElement(newToken(TokenRParen, ")")))
	n.Children = append(n.Children, NodeElement(from))

	for _, name := range names {
		n.Children = append(n.Children,
			TokenElement(newToken(TokenWhitespace, " ")))
		ident := NewNode(NodeIdent)
		ident.Parent = n
		ident.Children = append(ident.Children, TokenElement(newToken(TokenIdent, name)))
		n.Children = append(n.Children, NodeElement(ident))
	}
	n.Children = append(n.Children, TokenElement(newToken(TokenSemicolon, ";")))
	return Rebase(n, 0)
}

// Rebase renumbers every token range in the subtree sequentially from start
// and recomputes node ranges bottom-up. Returns n for chaining.
func Rebase(n *Node, start int) *Node {
	rebaseNode(n, start)
	return n
}

func rebaseNode(n *Node, start int) int {
	offset := start
	for _, c := range n.Children {
		if c.IsToken() {
			c.Token.Range = TextRange{Start: offset, End: offset + len(c.Token.Text)}
			offset = c.Token.Range.End
		} else {
			offset = rebaseNode(c.Node, offset)
		}
	}
	n.Range = TextRange{Start: start, End: offset}
	return offset
}
