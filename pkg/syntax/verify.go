package syntax

import "fmt"

// CorruptTreeError reports a structural precondition violation: a child whose
// range escapes its parent, or children out of source order. It indicates an
// upstream parser defect and is fatal for a linting pass.
type CorruptTreeError struct {
	Kind   SyntaxKind
	Range  TextRange
	Parent TextRange
	Reason string
}

func (e *CorruptTreeError) Error() string {
	return fmt.Sprintf("corrupt syntax tree: %s %s inside parent %s: %s",
		e.Kind, e.Range, e.Parent, e.Reason)
}

// Verify checks the structural invariants of the tree: every child range is
// contained in its parent's range, and sibling ranges ascend without overlap.
// A nil error means the tree is safe to dispatch over.
func Verify(t *Tree) error {
	if t == nil || t.Root == nil {
		return nil
	}
	if t.Root.Range.Start != 0 || t.Root.Range.End > len(t.Content) {
		return &CorruptTreeError{
			Kind:   t.Root.Kind,
			Range:  t.Root.Range,
			Parent: TextRange{Start: 0, End: len(t.Content)},
			Reason: "root range does not cover the file",
		}
	}
	return verifyNode(t.Root)
}

func verifyNode(n *Node) error {
	prevEnd := n.Range.Start
	for _, c := range n.Children {
		r := c.TextRange()
		if !n.Range.Contains(r) {
			return &CorruptTreeError{
				Kind:   c.Kind(),
				Range:  r,
				Parent: n.Range,
				Reason: "child range escapes parent",
			}
		}
		if r.Start < prevEnd {
			return &CorruptTreeError{
				Kind:   c.Kind(),
				Range:  r,
				Parent: n.Range,
				Reason: "children overlap or are out of order",
			}
		}
		prevEnd = r.End
		if c.IsNode() {
			if err := verifyNode(c.Node); err != nil {
				return err
			}
		}
	}
	return nil
}
