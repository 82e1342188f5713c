/*
Package markup implements a strict parser for a small subset of HTML.

The grammar knows elements with quoted attributes and text. There are no
comments, entities, void elements or implied end tags. Every closing tag has
to repeat the name of its opening tag. Any violation aborts the parse with an
error wrapping scan.ErrMalformedInput or scan.ErrOutOfInput; no partial tree
is returned.

For real-world HTML please refer to package htmladapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styledom.markup'.
func tracer() tracing.Trace {
	return tracing.Select("styledom.markup")
}
