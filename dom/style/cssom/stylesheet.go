package cssom

import (
	"fmt"
	"strings"
)

// Stylesheet is an ordered sequence of rules, in source order.
type Stylesheet struct {
	Rules []*Rule
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// AppendRules appends all rules from another stylesheet. Rules of other
// will take precedence over rules of equal specificity in sheet.
func (sheet *Stylesheet) AppendRules(other *Stylesheet) {
	if other == nil {
		return
	}
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

// Rule is a list of selectors sharing a list of declarations.
// Selectors are kept ordered from most to least specific.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

func (r *Rule) String() string {
	sels := make([]string, len(r.Selectors))
	for i, s := range r.Selectors {
		sels[i] = s.String()
	}
	return strings.Join(sels, ", ")
}

// Declaration is a property name bound to a value, e.g.
//
//     margin-top: 15px
//
type Declaration struct {
	Name  string
	Value Value
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s: %s", d.Name, d.Value)
}
