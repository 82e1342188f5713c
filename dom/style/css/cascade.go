package css

import (
	"github.com/npillmayer/styledom/dom/style"
	"github.com/npillmayer/styledom/dom/style/cssom"
	"github.com/npillmayer/styledom/dom/styledtree"
)

// GetCascadedProperty gets the value of a property. The search walks
// upwards through the styled tree until a node with the property set is
// found. The keyword "inherit" on a node continues the search at its parent.
//
// Clients will usually call GetProperty(…) instead as this will respect
// CSS semantics for inherited properties.
func GetCascadedProperty(node *styledtree.StyNode, key string) (cssom.Value, bool) {
	for node != nil {
		if v, ok := GetLocalProperty(node.Styles(), key); ok && !isInherit(v) {
			return v, true
		}
		node = node.ParentNode()
	}
	tracer().Debugf("css: no value found for inherited property %s", key)
	return nil, false
}

// GetProperty gets the value of a property. If the property is not set
// locally on the style node and the property is inheritable, the search
// cascades to parent nodes.
//
// If no value is found, GetProperty returns false. Clients will then use
// the initial value of the property.
func GetProperty(node *styledtree.StyNode, key string) (cssom.Value, bool) {
	if node == nil {
		return nil, false
	}
	v, ok := GetLocalProperty(node.Styles(), key)
	if ok && !isInherit(v) {
		return v, true
	}
	if style.IsCascading(key) || ok { // explicit "inherit" cascades for all keys
		return GetCascadedProperty(node.ParentNode(), key)
	}
	return nil, false
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) (cssom.Value, bool) {
	return pmap.Get(key)
}

func isInherit(v cssom.Value) bool {
	kw, ok := v.(cssom.Keyword)
	return ok && kw == "inherit"
}
