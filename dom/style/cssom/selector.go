package cssom

import (
	"fmt"
	"strings"
)

// Selector is a CSS selector. Currently there is just one variant,
// SimpleSelector.
type Selector interface {
	Specificity() Specificity
	String() string
	isSelector()
}

// SimpleSelector matches an element by tag name, id and classes, all of
// which must hold. Empty fields do not constrain the match.
//
// A universal selector `*` results in a simple selector without constraints.
type SimpleSelector struct {
	Tag     string   // tag name or ""
	ID      string   // id or ""
	Classes []string // all classes required
}

func (*SimpleSelector) isSelector() {}

// Specificity returns (ids, classes, tags) for a simple selector.
func (s *SimpleSelector) Specificity() Specificity {
	var sp Specificity
	if s.ID != "" {
		sp[0] = 1
	}
	sp[1] = len(s.Classes)
	if s.Tag != "" {
		sp[2] = 1
	}
	return sp
}

func (s *SimpleSelector) String() string {
	var b strings.Builder
	b.WriteString(s.Tag)
	if s.ID != "" {
		b.WriteString("#" + s.ID)
	}
	for _, c := range s.Classes {
		b.WriteString("." + c)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// Specificity is the CSS specificity (A, B, C) = (ids, classes, tags) as
// defined in https://www.w3.org/TR/selectors/#specificity-rules.
// Specificities compare lexicographically.
type Specificity [3]int

// Less returns true if s < other (strictly).
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

// Compare returns -1, 0 or +1 for s < other, s == other and s > other.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}
