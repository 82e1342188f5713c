package styledtree

import (
	"github.com/npillmayer/styledom/dom"
	"github.com/npillmayer/styledom/dom/style"
	"github.com/npillmayer/styledom/dom/style/cssom"
	"github.com/npillmayer/styledom/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	domNode             *dom.Node
	computedStyles      *style.PropertyMap
}

// NewNodeForDOMNode creates a new styled node linked to a DOM node.
func NewNodeForDOMNode(n *dom.Node) *StyNode {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.domNode = n
	sn.computedStyles = style.NewPropertyMap()
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the generic tree node of a styled node.
func (sn *StyNode) TreeNode() *tree.Node[*StyNode] {
	return &sn.Node
}

// DOMNode gets the DOM node corresponding to this styled node.
func (sn *StyNode) DOMNode() *dom.Node {
	return sn.domNode
}

// Styles returns the resolved properties of this node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// Value returns the resolved value of a property. No inheritance is
// performed, see package css for that.
func (sn *StyNode) Value(key string) (cssom.Value, bool) {
	return sn.computedStyles.Get(key)
}

// ParentNode returns the styled parent node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// ChildNodes returns the styled children in document order.
func (sn *StyNode) ChildNodes() []*StyNode {
	children := sn.Children()
	r := make([]*StyNode, len(children))
	for i, ch := range children {
		r[i] = Node(ch)
	}
	return r
}

// Equal checks if two styled trees have the same shape, reference the same
// DOM nodes and carry the same property values.
func (sn *StyNode) Equal(other *StyNode) bool {
	if sn == nil || other == nil {
		return sn == other
	}
	if sn.domNode != other.domNode || !sn.computedStyles.Equal(other.computedStyles) {
		return false
	}
	a, b := sn.ChildNodes(), other.ChildNodes()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// --- Predicates ------------------------------------------------------------

// NodeIsText is a predicate to match styled nodes for text-nodes of a DOM.
// It is intended to be used with tree.FindAll and friends.
var NodeIsText tree.Predicate[*StyNode] = func(n *tree.Node[*StyNode]) bool {
	return Node(n).DOMNode().IsText()
}

// NodeIsElement is a predicate to match styled nodes for elements.
var NodeIsElement tree.Predicate[*StyNode] = func(n *tree.Node[*StyNode]) bool {
	_, ok := Node(n).DOMNode().Element()
	return ok
}
