package syntax

import (
	"fmt"
	"strings"
)

// TextRange is a half-open byte range [Start, End) into the original source.
type TextRange struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r TextRange) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no bytes.
func (r TextRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains returns true if other lies entirely within r.
func (r TextRange) Contains(other TextRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// String renders the range as "start..end" for error messages.
func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Token is a leaf of the syntax tree: a classified span of source bytes.
// Tokens own their text so that synthesized subtrees render without a
// backing source buffer.
type Token struct {
	Kind  SyntaxKind
	Range TextRange
	Text  string
}

// Node is an interior element of the syntax tree. Its children are ordered
// and each child slot holds either a node or a token. Nodes are shared views
// into the tree owned by the pass; they are never mutated after parsing.
type Node struct {
	Kind     SyntaxKind
	Range    TextRange
	Parent   *Node
	Children []Element
}

// Element is a child slot: exactly one of Node or Token is non-nil.
type Element struct {
	Node  *Node
	Token *Token
}

// NodeElement wraps a node as an element.
func NodeElement(n *Node) Element {
	return Element{Node: n}
}

// TokenElement wraps a token as an element.
func TokenElement(t *Token) Element {
	return Element{Token: t}
}

// IsNode returns true if the element holds a node.
func (e Element) IsNode() bool {
	return e.Node != nil
}

// IsToken returns true if the element holds a token.
func (e Element) IsToken() bool {
	return e.Token != nil
}

// Kind returns the kind of whichever side is populated.
func (e Element) Kind() SyntaxKind {
	if e.Node != nil {
		return e.Node.Kind
	}
	if e.Token != nil {
		return e.Token.Kind
	}
	return TokenUnknown
}

// TextRange returns the range of whichever side is populated.
func (e Element) TextRange() TextRange {
	if e.Node != nil {
		return e.Node.Range
	}
	if e.Token != nil {
		return e.Token.Range
	}
	return TextRange{}
}

// NewNode creates a detached node of the given kind with no children.
func NewNode(kind SyntaxKind) *Node {
	return &Node{Kind: kind}
}

// AddToken appends a token child and extends the node's range to cover it.
func (n *Node) AddToken(t *Token) {
	if len(n.Children) == 0 {
		n.Range = t.Range
	} else if t.Range.End > n.Range.End {
		n.Range.End = t.Range.End
	}
	n.Children = append(n.Children, TokenElement(t))
}

// AddNode appends a node child, sets its parent, and extends the range.
// An empty child (an error node synthesized at end of input) never shrinks
// the parent's range.
func (n *Node) AddNode(child *Node) {
	child.Parent = n
	if len(n.Children) == 0 {
		n.Range = child.Range
	} else if child.Range.End > n.Range.End {
		n.Range.End = child.Range.End
	}
	n.Children = append(n.Children, NodeElement(child))
}

// ChildNodes returns the node children in order, skipping tokens.
func (n *Node) ChildNodes() []*Node {
	var nodes []*Node
	for _, c := range n.Children {
		if c.IsNode() {
			nodes = append(nodes, c.Node)
		}
	}
	return nodes
}

// FirstToken returns the first token in the subtree, or nil for an empty node.
func (n *Node) FirstToken() *Token {
	for _, c := range n.Children {
		if c.IsToken() {
			return c.Token
		}
		if t := c.Node.FirstToken(); t != nil {
			return t
		}
	}
	return nil
}

// Text renders the exact source text of the subtree by concatenating its
// tokens. For parsed nodes this equals the source slice of the node's range.
func (n *Node) Text() string {
	var sb strings.Builder
	sb.Grow(n.Range.Len())
	renderInto(&sb, n)
	return sb.String()
}

func renderInto(sb *strings.Builder, n *Node) {
	for _, c := range n.Children {
		if c.IsToken() {
			sb.WriteString(c.Token.Text)
		} else {
			renderInto(sb, c.Node)
		}
	}
}

// Render produces the exact text of any subtree, synthesized or parsed.
func Render(n *Node) string {
	return n.Text()
}

// CloneDetached deep-copies a subtree with no parent. Ranges are preserved;
// callers that splice the clone into a synthesized statement rebase them.
func CloneDetached(n *Node) *Node {
	clone := &Node{Kind: n.Kind, Range: n.Range}
	clone.Children = make([]Element, 0, len(n.Children))
	for _, c := range n.Children {
		if c.IsToken() {
			t := *c.Token
			clone.Children = append(clone.Children, TokenElement(&t))
		} else {
			child := CloneDetached(c.Node)
			child.Parent = clone
			clone.Children = append(clone.Children, NodeElement(child))
		}
	}
	return clone
}

// Tree is an immutable, lossless view of one parsed source file.
type Tree struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full source bytes.
	Content []byte

	// Lines is the line index over Content.
	Lines []LineInfo

	// Root is the root node; its range covers the whole file.
	Root *Node
}

// NewTree builds a Tree around a parsed root.
func NewTree(path string, content []byte, root *Node) *Tree {
	return &Tree{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		Root:    root,
	}
}

// TextAt returns the source text of a range, or "" if out of bounds.
func (t *Tree) TextAt(r TextRange) string {
	if r.Start < 0 || r.End > len(t.Content) || r.Start > r.End {
		return ""
	}
	return string(t.Content[r.Start:r.End])
}
