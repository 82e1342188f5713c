/*
Package dom provides the document object model for styledom.

Overview

A DOM is a tree of nodes. Every node is either a text node carrying a string,
or an element node carrying a tag name, an attribute map and an ordered list
of children. Children are exclusively owned by their parent, the tree is
finite and acyclic.

DOMs are created by a markup parser (see package markup, or package
htmladapter for HTML5 input) and are never modified afterwards. Styling
(package styledtree) reads a DOM but does not change it.

Node types form a closed set. Clients dispatch with a type switch:

    switch data := n.Type.(type) {
    case *dom.TextData:
        ...
    case *dom.ElementData:
        ...
    }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'styledom.dom'
func tracer() tracing.Trace {
	return tracing.Select("styledom.dom")
}
