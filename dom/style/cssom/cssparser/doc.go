/*
Package cssparser implements a strict parser for a small subset of CSS.

Supported are rules with comma-separated lists of simple selectors (tag, #id,
.class, *) and declarations with values of type length (px only), hex color
(#rrggbb) or keyword. There are no comments, at-rules, combinators or
pseudo-classes. Any violation aborts the parse with an error wrapping
scan.ErrMalformedInput or scan.ErrOutOfInput.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssparser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styledom.css'.
func tracer() tracing.Trace {
	return tracing.Select("styledom.css")
}
