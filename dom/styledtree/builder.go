package styledtree

import (
	"fmt"
	"sort"

	"github.com/npillmayer/styledom/dom"
	"github.com/npillmayer/styledom/dom/style"
	"github.com/npillmayer/styledom/dom/style/cssom"
)

// BuildStyleTree creates a styled tree for a DOM and a stylesheet.
// sheet may be nil, resulting in a tree without any properties.
func BuildStyleTree(root *dom.Node, sheet *cssom.Stylesheet) *StyNode {
	if root == nil {
		return nil
	}
	sn := NewNodeForDOMNode(root)
	switch data := root.Type.(type) {
	case *dom.ElementData:
		sn.SetStyles(getProperties(data, sheet))
	case *dom.TextData:
		// text nodes stay unstyled
	default:
		panic(fmt.Sprintf("styledtree: unknown node type %T", root.Type))
	}
	for _, ch := range root.Children {
		sn.AddChild(BuildStyleTree(ch, sheet).TreeNode())
	}
	return sn
}

// MatchingRule is a rule matching an element, together with the
// specificity of the selector which matched.
type MatchingRule struct {
	Specificity cssom.Specificity
	Rule        *cssom.Rule
}

// MatchingRules returns all rules of a stylesheet matching an element,
// ordered from least to most specific. Rules of equal specificity stay in
// source order. This is the order in which rules are applied.
func MatchingRules(e *dom.ElementData, sheet *cssom.Stylesheet) []MatchingRule {
	if sheet == nil {
		return nil
	}
	var matches []MatchingRule
	for _, rule := range sheet.Rules {
		if m, ok := matchRule(e, rule); ok {
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Specificity.Less(matches[j].Specificity)
	})
	return matches
}

func getProperties(e *dom.ElementData, sheet *cssom.Stylesheet) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	matches := MatchingRules(e, sheet)
	tracer().Debugf("styling: %d rule(s) match %s", len(matches), e)
	for _, m := range matches {
		for _, decl := range m.Rule.Declarations {
			pmap.Set(decl.Name, decl.Value)
		}
	}
	return pmap
}

// matchRule checks the selectors of a rule, most specific first, and
// reports the first one matching.
func matchRule(e *dom.ElementData, rule *cssom.Rule) (MatchingRule, bool) {
	for _, sel := range rule.Selectors {
		if Matches(e, sel) {
			return MatchingRule{Specificity: sel.Specificity(), Rule: rule}, true
		}
	}
	return MatchingRule{}, false
}

// Matches checks if a selector matches an element.
func Matches(e *dom.ElementData, sel cssom.Selector) bool {
	switch s := sel.(type) {
	case *cssom.SimpleSelector:
		return matchesSimpleSelector(e, s)
	}
	panic(fmt.Sprintf("styledtree: unknown selector type %T", sel))
}

func matchesSimpleSelector(e *dom.ElementData, s *cssom.SimpleSelector) bool {
	if s.Tag != "" && s.Tag != e.TagName {
		return false
	}
	if s.ID != "" {
		if id, ok := e.ID(); !ok || id != s.ID {
			return false
		}
	}
	if len(s.Classes) > 0 {
		classes := e.Classes()
		for _, c := range s.Classes {
			if _, ok := classes[c]; !ok {
				return false
			}
		}
	}
	return true
}
