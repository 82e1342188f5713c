package styledtree

import (
	tp "github.com/xlab/treeprint"
)

// PrettyPrint returns an indented, human readable rendering of a styled
// (sub-)tree, listing the resolved properties with every element.
// The format is meant for debugging and may change.
func (sn *StyNode) PrettyPrint() string {
	p := tp.New()
	pps(p, sn)
	return p.String()
}

func pps(p tp.Tree, sn *StyNode) {
	label := sn.DOMNode().String()
	if sn.Styles().Len() > 0 {
		label += " " + sn.Styles().String()
	}
	children := sn.ChildNodes()
	if len(children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range children {
		pps(branch, ch)
	}
}
