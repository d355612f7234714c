package syntax

// WalkFunc is the callback signature for Walk. Returning a non-nil error
// stops the walk immediately and propagates that error.
type WalkFunc func(el Element) error

// Walk performs a pre-order depth-first traversal over every node and token
// reachable from root. Each element is visited exactly once, parents before
// children, children in source order.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	if err := fn(NodeElement(root)); err != nil {
		return err
	}
	return walkChildren(root, fn)
}

func walkChildren(n *Node, fn WalkFunc) error {
	for _, c := range n.Children {
		if c.IsToken() {
			if err := fn(c); err != nil {
				return err
			}
			continue
		}
		if err := fn(c); err != nil {
			return err
		}
		if err := walkChildren(c.Node, fn); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns all elements matching the predicate, in traversal order.
func FindAll(root *Node, predicate func(el Element) bool) []Element {
	var result []Element

	//nolint:errcheck // the callback never returns an error
	Walk(root, func(el Element) error {
		if predicate(el) {
			result = append(result, el)
		}
		return nil
	})

	return result
}

// FindByKind returns all elements of the given kind, in traversal order.
func FindByKind(root *Node, kind SyntaxKind) []Element {
	return FindAll(root, func(el Element) bool {
		return el.Kind() == kind
	})
}
