package syntax

// Typed wrappers over raw nodes. Each Cast* is a tagged-variant check: it
// succeeds only when the node's kind matches, and the wrapper's accessors are
// only meaningful after a successful cast. Accessors return (value, false)
// when a child the grammar normally guarantees is missing, so rule matching
// chains degrade to "no match" instead of crashing on partial trees.

// AttrpathValue is a binding of the form `attrpath = expr;`.
type AttrpathValue struct {
	node *Node
}

// CastAttrpathValue narrows a node to an AttrpathValue binding.
func CastAttrpathValue(n *Node) (AttrpathValue, bool) {
	if n == nil || n.Kind != NodeAttrpathValue {
		return AttrpathValue{}, false
	}
	return AttrpathValue{node: n}, true
}

// Syntax returns the underlying node.
func (a AttrpathValue) Syntax() *Node {
	return a.node
}

// Attrpath returns the key path of the binding.
func (a AttrpathValue) Attrpath() (Attrpath, bool) {
	for _, c := range a.node.Children {
		if c.IsNode() && c.Node.Kind == NodeAttrpath {
			return Attrpath{node: c.Node}, true
		}
	}
	return Attrpath{}, false
}

// Value returns the expression on the right-hand side of `=`.
func (a AttrpathValue) Value() (*Node, bool) {
	seenAssign := false
	for _, c := range a.node.Children {
		if c.IsToken() && c.Token.Kind == TokenAssign {
			seenAssign = true
			continue
		}
		if seenAssign && c.IsNode() {
			return c.Node, true
		}
	}
	return nil, false
}

// Attrpath is a dotted key path such as `a.b.c`.
type Attrpath struct {
	node *Node
}

// CastAttrpath narrows a node to an Attrpath.
func CastAttrpath(n *Node) (Attrpath, bool) {
	if n == nil || n.Kind != NodeAttrpath {
		return Attrpath{}, false
	}
	return Attrpath{node: n}, true
}

// Syntax returns the underlying node.
func (p Attrpath) Syntax() *Node {
	return p.node
}

// Attrs returns the path segments in order.
func (p Attrpath) Attrs() []*Node {
	return p.node.ChildNodes()
}

// Ident is a bare identifier expression.
type Ident struct {
	node *Node
}

// CastIdent narrows a node to an identifier.
func CastIdent(n *Node) (Ident, bool) {
	if n == nil || n.Kind != NodeIdent {
		return Ident{}, false
	}
	return Ident{node: n}, true
}

// Syntax returns the underlying node.
func (i Ident) Syntax() *Node {
	return i.node
}

// Name returns the identifier text.
func (i Ident) Name() string {
	return i.node.Text()
}

// Select is an attribute selection `expr.attrpath`. The expression before
// the first dot is the base; everything after it is one attrpath.
type Select struct {
	node *Node
}

// CastSelect narrows a node to a selection expression.
func CastSelect(n *Node) (Select, bool) {
	if n == nil || n.Kind != NodeSelect {
		return Select{}, false
	}
	return Select{node: n}, true
}

// Syntax returns the underlying node.
func (s Select) Syntax() *Node {
	return s.node
}

// Expr returns the base expression preceding the first dot.
func (s Select) Expr() (*Node, bool) {
	for _, c := range s.node.Children {
		if c.IsToken() && c.Token.Kind == TokenDot {
			break
		}
		if c.IsNode() {
			return c.Node, true
		}
	}
	return nil, false
}

// Attrpath returns the selected path after the first dot.
func (s Select) Attrpath() (Attrpath, bool) {
	for _, c := range s.node.Children {
		if c.IsNode() && c.Node.Kind == NodeAttrpath {
			return Attrpath{node: c.Node}, true
		}
	}
	return Attrpath{}, false
}

// Paren is a parenthesized expression `( expr )`.
type Paren struct {
	node *Node
}

// CastParen narrows a node to a parenthesized expression.
func CastParen(n *Node) (Paren, bool) {
	if n == nil || n.Kind != NodeParen {
		return Paren{}, false
	}
	return Paren{node: n}, true
}

// Syntax returns the underlying node.
func (p Paren) Syntax() *Node {
	return p.node
}

// Expr returns the inner expression.
func (p Paren) Expr() (*Node, bool) {
	nodes := p.node.ChildNodes()
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// LetIn is a `let bindings in body` expression.
type LetIn struct {
	node *Node
}

// CastLetIn narrows a node to a let-in expression.
func CastLetIn(n *Node) (LetIn, bool) {
	if n == nil || n.Kind != NodeLetIn {
		return LetIn{}, false
	}
	return LetIn{node: n}, true
}

// Syntax returns the underlying node.
func (l LetIn) Syntax() *Node {
	return l.node
}

// Bindings returns the binding nodes between `let` and `in`.
func (l LetIn) Bindings() []*Node {
	var bindings []*Node
	for _, c := range l.node.Children {
		if c.IsToken() && c.Token.Kind == TokenIn {
			break
		}
		if c.IsNode() && (c.Node.Kind == NodeAttrpathValue || c.Node.Kind == NodeInherit) {
			bindings = append(bindings, c.Node)
		}
	}
	return bindings
}

// Body returns the expression after `in`.
func (l LetIn) Body() (*Node, bool) {
	seenIn := false
	for _, c := range l.node.Children {
		if c.IsToken() && c.Token.Kind == TokenIn {
			seenIn = true
			continue
		}
		if seenIn && c.IsNode() {
			return c.Node, true
		}
	}
	return nil, false
}

// AttrSet is an attribute set literal `{ bindings }`.
type AttrSet struct {
	node *Node
}

// CastAttrSet narrows a node to an attribute set.
func CastAttrSet(n *Node) (AttrSet, bool) {
	if n == nil || n.Kind != NodeAttrSet {
		return AttrSet{}, false
	}
	return AttrSet{node: n}, true
}

// Syntax returns the underlying node.
func (s AttrSet) Syntax() *Node {
	return s.node
}

// Bindings returns the binding nodes inside the braces.
func (s AttrSet) Bindings() []*Node {
	var bindings []*Node
	for _, c := range s.node.Children {
		if c.IsNode() && (c.Node.Kind == NodeAttrpathValue || c.Node.Kind == NodeInherit) {
			bindings = append(bindings, c.Node)
		}
	}
	return bindings
}

// Inherit is an `inherit a b;` or `inherit (expr) a b;` statement.
type Inherit struct {
	node *Node
}

// CastInherit narrows a node to an inherit statement.
func CastInherit(n *Node) (Inherit, bool) {
	if n == nil || n.Kind != NodeInherit {
		return Inherit{}, false
	}
	return Inherit{node: n}, true
}

// Syntax returns the underlying node.
func (i Inherit) Syntax() *Node {
	return i.node
}

// From returns the parenthesized base expression, if present.
func (i Inherit) From() (*Node, bool) {
	for _, c := range i.node.Children {
		if c.IsNode() && c.Node.Kind == NodeInheritFrom {
			inner := c.Node.ChildNodes()
			if len(inner) == 0 {
				return nil, false
			}
			return inner[0], true
		}
	}
	return nil, false
}

// Names returns the inherited identifier nodes.
func (i Inherit) Names() []*Node {
	var names []*Node
	for _, c := range i.node.Children {
		if c.IsNode() && c.Node.Kind == NodeIdent {
			names = append(names, c.Node)
		}
	}
	return names
}
