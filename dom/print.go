package dom

import (
	"sort"

	tp "github.com/xlab/treeprint"
)

// PrettyPrint returns an indented, human readable rendering of the tree
// rooted at n. The format is meant for debugging and may change.
func (n *Node) PrettyPrint() string {
	p := tp.New()
	ppn(p, n)
	return p.String()
}

func ppn(p tp.Tree, n *Node) {
	if n == nil {
		return
	}
	if len(n.Children) == 0 {
		p.AddNode(n.String())
		return
	}
	branch := p.AddBranch(n.String())
	for _, ch := range n.Children {
		ppn(branch, ch)
	}
}

func sortedKeys(m AttrMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
