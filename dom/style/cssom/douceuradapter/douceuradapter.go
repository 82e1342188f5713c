/*
Package douceuradapter converts stylesheets parsed by douceur into
the stylesheet object model of package cssom.

Douceur is a tolerant CSS parser. It understands the full CSS syntax,
including at-rules and !important markers. Converting keeps qualified rules
only: at-rules are skipped, as are rules with a selector prelude outside of
the simple selector subset of cssom. Declaration values have to be valid
cssom values, otherwise converting fails.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styledom/dom/style/cssom"
	"github.com/npillmayer/styledom/dom/style/cssom/cssparser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'styledom.css'.
func tracer() tracing.Trace {
	return tracing.Select("styledom.css")
}

// Parse parses CSS text with douceur and converts the result.
func Parse(text string) (*cssom.Stylesheet, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceur: %w", err)
	}
	return Convert(c)
}

// Convert creates a cssom stylesheet from a douceur stylesheet.
func Convert(c *css.Stylesheet) (*cssom.Stylesheet, error) {
	sheet := &cssom.Stylesheet{}
	if c == nil {
		return sheet, nil
	}
	for _, r := range c.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping at-rule %s", r.Name)
			continue
		}
		rule, err := convertRule(r)
		if err != nil {
			return nil, err
		}
		if rule != nil {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
	return sheet, nil
}

func convertRule(r *css.Rule) (*cssom.Rule, error) {
	prelude := strings.TrimSpace(r.Prelude)
	selectors, err := cssparser.ParseSelectors(prelude)
	if err != nil {
		tracer().Infof("skipping rule with unsupported selector %q: %v", prelude, err)
		return nil, nil
	}
	rule := &cssom.Rule{Selectors: selectors}
	for _, d := range r.Declarations {
		v, err := cssparser.ParseValue(strings.TrimSpace(d.Value))
		if err != nil {
			return nil, fmt.Errorf("rule %q, property %s: %w", prelude, d.Property, err)
		}
		if d.Important {
			tracer().Debugf("!important of property %s ignored", d.Property)
		}
		rule.Declarations = append(rule.Declarations, cssom.Declaration{
			Name:  d.Property,
			Value: v,
		})
	}
	return rule, nil
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) ([]*cssom.Stylesheet, error) {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets, err := extractStyles(head)
	if err != nil {
		return nil, err
	}
	more, err := extractStyles(body)
	if err != nil {
		return nil, err
	}
	return append(sheets, more...), nil
}

func extractStyles(h *html.Node) ([]*cssom.Stylesheet, error) {
	if h == nil {
		return nil, nil
	}
	var sheets []*cssom.Stylesheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := Parse(ch.FirstChild.Data)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
