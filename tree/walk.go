package tree

import "errors"

// ErrEmptyTree is returned if a walk is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(*Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool { return true }
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(n *Node[T]) bool { return n.ChildCount() == 0 }
}

// TopDown visits node and all of its descendents in document order
// (depth first, pre-order). Walking stops at the first error returned by f.
func TopDown[T comparable](node *Node[T], f func(*Node[T]) error) error {
	if node == nil {
		return ErrEmptyTree
	}
	return topDown(node, f)
}

func topDown[T comparable](node *Node[T], f func(*Node[T]) error) error {
	if err := f(node); err != nil {
		return err
	}
	for _, ch := range node.Children() {
		if err := topDown(ch, f); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns all nodes of a (sub-)tree matching a predicate, in
// document order. The start node is included.
func FindAll[T comparable](node *Node[T], predicate Predicate[T]) []*Node[T] {
	var found []*Node[T]
	_ = TopDown(node, func(n *Node[T]) error {
		if predicate(n) {
			found = append(found, n)
		}
		return nil
	})
	return found
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for it := node.Parent(); it != nil; it = it.Parent() {
		if predicate(it) {
			return it
		}
	}
	return nil
}
