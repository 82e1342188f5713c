package dom

import (
	"fmt"
	"strings"
)

// Node is the building block of a DOM tree.
type Node struct {
	Children []*Node // child nodes in document order
	Type     NodeType
}

// NodeType is either *TextData or *ElementData.
type NodeType interface {
	isNodeType()
}

// TextData is the payload of a text node.
type TextData struct {
	Text string
}

// ElementData is the payload of an element node.
type ElementData struct {
	TagName    string
	Attributes AttrMap
}

func (*TextData) isNodeType()    {}
func (*ElementData) isNodeType() {}

// AttrMap maps attribute names to attribute values.
type AttrMap map[string]string

// Text creates a new text node.
func Text(data string) *Node {
	return &Node{Type: &TextData{Text: data}}
}

// Element creates a new element node. attrs may be nil.
func Element(name string, attrs AttrMap, children []*Node) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Node{
		Children: children,
		Type:     &ElementData{TagName: name, Attributes: attrs},
	}
}

// Element returns the element data of n, if n is an element node.
func (n *Node) Element() (*ElementData, bool) {
	if n == nil {
		return nil, false
	}
	e, ok := n.Type.(*ElementData)
	return e, ok
}

// IsText is a predicate for text nodes.
func (n *Node) IsText() bool {
	if n == nil {
		return false
	}
	_, ok := n.Type.(*TextData)
	return ok
}

// NodeName returns the tag name for elements and "#text" for text nodes,
// following W3C conventions.
func (n *Node) NodeName() string {
	switch data := n.Type.(type) {
	case *TextData:
		return "#text"
	case *ElementData:
		return data.TagName
	}
	panic(fmt.Sprintf("dom: unknown node type %T", n.Type))
}

func (n *Node) String() string {
	switch data := n.Type.(type) {
	case *TextData:
		return fmt.Sprintf("%q", data.Text)
	case *ElementData:
		return data.String()
	}
	panic(fmt.Sprintf("dom: unknown node type %T", n.Type))
}

// ID returns the value of attribute "id", if present.
func (e *ElementData) ID() (string, bool) {
	id, ok := e.Attributes["id"]
	return id, ok
}

// Classes returns the set of whitespace-separated class names of attribute
// "class". The set is empty if the attribute is absent.
func (e *ElementData) Classes() map[string]struct{} {
	set := make(map[string]struct{})
	if cl, ok := e.Attributes["class"]; ok {
		for _, c := range strings.Fields(cl) {
			set[c] = struct{}{}
		}
	}
	return set
}

// HasClass checks for a single class name.
func (e *ElementData) HasClass(class string) bool {
	_, ok := e.Classes()[class]
	return ok
}

func (e *ElementData) String() string {
	var b strings.Builder
	b.WriteString("<" + e.TagName)
	for _, k := range sortedKeys(e.Attributes) {
		fmt.Fprintf(&b, " %s=%q", k, e.Attributes[k])
	}
	b.WriteString(">")
	return b.String()
}

// ElementCount returns the number of element nodes in the tree rooted at n.
func ElementCount(n *Node) int {
	if n == nil {
		return 0
	}
	count := 0
	if _, ok := n.Type.(*ElementData); ok {
		count = 1
	}
	for _, ch := range n.Children {
		count += ElementCount(ch)
	}
	return count
}
