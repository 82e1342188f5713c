package cssom

import (
	tp "github.com/xlab/treeprint"
)

// PrettyPrint returns an indented, human readable listing of all rules
// of a stylesheet. The format is meant for debugging and may change.
func (sheet *Stylesheet) PrettyPrint() string {
	p := tp.New()
	if sheet != nil {
		for _, r := range sheet.Rules {
			branch := p.AddBranch(r.String())
			for _, d := range r.Declarations {
				branch.AddNode(d.String())
			}
		}
	}
	return p.String()
}
