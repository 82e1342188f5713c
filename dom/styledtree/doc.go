/*
Package styledtree builds and represents a styled document tree.

Overview

A styled tree mirrors a DOM: there is one styled node for every DOM node, with
the same parent/child structure. Every styled node carries the CSS properties
resolved for its DOM node. BuildStyleTree creates a styled tree from a DOM and
a stylesheet:

    root := styledtree.BuildStyleTree(domRoot, sheet)
    v, ok := root.Value("color")

Styling matches every rule of the stylesheet against every element. Matching
rules are applied from least to most specific, later rules winning over
earlier rules of equal specificity. Text nodes are never styled.

Styled nodes reference their DOM nodes, which therefore have to stay
unmodified as long as the styled tree is in use. Neither the DOM nor the
stylesheet are changed by styling.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styledom.style'.
func tracer() tracing.Trace {
	return tracing.Select("styledom.style")
}
