package tree

import (
	"errors"
	"testing"
)

func buildTree() *Node[int] {
	//        1
	//      2   3
	//     4 5
	n := NewNode(1)
	two := NewNode(2)
	two.AddChild(NewNode(4)).AddChild(NewNode(5))
	n.AddChild(two).AddChild(NewNode(3))
	return n
}

func TestTreeAddChild(t *testing.T) {
	root := buildTree()
	if root.ChildCount() != 2 {
		t.Errorf("expected root to have 2 children, has %d", root.ChildCount())
	}
	ch, ok := root.Child(0)
	if !ok || ch.Payload != 2 {
		t.Errorf("expected first child to be 2, is %v", ch)
	}
	if ch.Parent() != root {
		t.Error("expected parent of 2 to be root")
	}
	if root.IndexOfChild(ch) != 0 {
		t.Errorf("expected index of 2 to be 0, is %d", root.IndexOfChild(ch))
	}
	if _, ok := root.Child(5); ok {
		t.Error("did not expect a child at position 5")
	}
}

func TestTreeTopDown(t *testing.T) {
	var order []int
	err := TopDown(buildTree(), func(n *Node[int]) error {
		order = append(order, n.Payload)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 4, 5, 3}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected pre-order %v, got %v", want, order)
		}
	}
	if err := TopDown[int](nil, nil); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
}

func TestTreeFindAll(t *testing.T) {
	leafs := FindAll(buildTree(), NodeIsLeaf[int]())
	if len(leafs) != 3 {
		t.Errorf("expected 3 leafs, found %d", len(leafs))
	}
	all := FindAll(buildTree(), Whatever[int]())
	if len(all) != 5 {
		t.Errorf("expected 5 nodes, found %d", len(all))
	}
}

func TestTreeAncestorWith(t *testing.T) {
	root := buildTree()
	two, _ := root.Child(0)
	four, _ := two.Child(0)
	anc := AncestorWith(four, func(n *Node[int]) bool { return n.Payload == 1 })
	if anc != root {
		t.Errorf("expected root as ancestor of 4, got %v", anc)
	}
	if AncestorWith(root, Whatever[int]()) != nil {
		t.Error("expected root to have no ancestor")
	}
}
