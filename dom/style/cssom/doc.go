/*
Package cssom provides the CSS object model for styledom.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. A stylesheet
is an ordered list of rules; their order is significant for resolving the
cascade. Every rule carries a non-empty list of selectors and a list of
declarations. A declaration binds a property name to a CSS value.

Selectors, values and units are closed sets of variants. Clients dispatch with
a type switch, e.g.

    switch v := decl.Value.(type) {
    case cssom.Length:
        ...
    case cssom.ColorValue:
        ...
    case cssom.Keyword:
        ...
    }

This package contains no parser; see sub-packages cssparser and
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'styledom.css'.
func tracer() tracing.Trace {
	return tracing.Select("styledom.css")
}
