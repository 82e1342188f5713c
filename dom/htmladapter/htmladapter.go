/*
Package htmladapter converts HTML5 parse trees into DOMs.

Package markup is strict about its small input language. Real-world HTML is
better served by the HTML5 parser of golang.org/x/net/html; this package
converts its parse trees into the DOM used for styling.

Converting drops comments, doctypes and text consisting of white space
only. Attribute namespaces are discarded.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmladapter

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styledom/dom"
	"golang.org/x/net/html"
)

// tracer traces with key 'styledom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("styledom.dom")
}

// Parse reads an HTML document and converts it into a DOM.
func Parse(r io.Reader) (*dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmladapter: %w", err)
	}
	return FromHTML(doc)
}

// FromHTML converts an HTML parse tree into a DOM. h may be a document node
// or any element node. A document node is replaced by its single element
// child; if it has more than one, they are wrapped into an element "html".
func FromHTML(h *html.Node) (*dom.Node, error) {
	if h == nil {
		return nil, fmt.Errorf("htmladapter: cannot convert nil node")
	}
	switch h.Type {
	case html.DocumentNode:
		children := convertChildren(h)
		if len(children) == 1 {
			return children[0], nil
		}
		return dom.Element("html", nil, children), nil
	case html.ElementNode, html.TextNode:
		if n := convert(h); n != nil {
			return n, nil
		}
	}
	return nil, fmt.Errorf("htmladapter: cannot convert node of type %d", h.Type)
}

func convert(h *html.Node) *dom.Node {
	switch h.Type {
	case html.TextNode:
		if strings.TrimSpace(h.Data) == "" {
			return nil
		}
		return dom.Text(h.Data)
	case html.ElementNode:
		attrs := make(dom.AttrMap, len(h.Attr))
		for _, a := range h.Attr {
			attrs[a.Key] = a.Val // last one wins
		}
		return dom.Element(h.Data, attrs, convertChildren(h))
	}
	tracer().Debugf("htmladapter: skipping node of type %d", h.Type)
	return nil
}

func convertChildren(h *html.Node) []*dom.Node {
	var children []*dom.Node
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if n := convert(ch); n != nil {
			children = append(children, n)
		}
	}
	return children
}
