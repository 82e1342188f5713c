package styledtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledom/dom"
	"github.com/npillmayer/styledom/dom/markup"
	"github.com/npillmayer/styledom/dom/style/cssom"
	"github.com/npillmayer/styledom/dom/style/cssom/cssparser"
	"github.com/npillmayer/styledom/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, html, css string) (*dom.Node, *cssom.Stylesheet, *StyNode) {
	t.Helper()
	root, err := markup.Parse(html)
	require.NoError(t, err)
	sheet, err := cssparser.Parse(css)
	require.NoError(t, err)
	return root, sheet, BuildStyleTree(root, sheet)
}

func TestStyleTreeShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom.style")
	defer teardown()
	//
	root, _, sn := build(t, `<div><p>Hello</p><p class="x">World</p></div>`, `p { color: red; }`)
	assert.Equal(t, root, sn.DOMNode())
	require.Len(t, sn.ChildNodes(), 2)
	for i, ch := range sn.ChildNodes() {
		assert.Equal(t, root.Children[i], ch.DOMNode())
		assert.Equal(t, sn, ch.ParentNode())
		require.Len(t, ch.ChildNodes(), 1)
		text := ch.ChildNodes()[0]
		assert.True(t, text.DOMNode().IsText())
		assert.Equal(t, 0, text.Styles().Len(), "expected text nodes to be unstyled")
	}
	t.Logf("styled tree =\n%s", sn.PrettyPrint())
	assert.Len(t, tree.FindAll(sn.TreeNode(), NodeIsText), 2)
	assert.Len(t, tree.FindAll(sn.TreeNode(), NodeIsElement), 3)
}

func TestCascadeSpecificityWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom.style")
	defer teardown()
	//
	for _, css := range []string{
		"p { color: red; } .c { color: blue; }",
		".c { color: blue; } p { color: red; }",
	} {
		_, _, sn := build(t, `<p class="c"></p>`, css)
		v, ok := sn.Value("color")
		require.True(t, ok, css)
		assert.Equal(t, cssom.Keyword("blue"), v, css)
	}
}

func TestCascadeSourceOrderBreaksTie(t *testing.T) {
	_, _, sn := build(t, `<p class="a b"></p>`, ".a { color: red; } .b { color: green; }")
	v, _ := sn.Value("color")
	assert.Equal(t, cssom.Keyword("green"), v)
	_, _, sn = build(t, `<p class="a b"></p>`, ".b { color: green; } .a { color: red; }")
	v, _ = sn.Value("color")
	assert.Equal(t, cssom.Keyword("red"), v)
}

func TestCascadeMergesProperties(t *testing.T) {
	_, _, sn := build(t, `<div id="main" class="box"></div>`, `
		div { width: 100px; color: black; }
		#main { color: #00ff00; }
		.box { width: 50px; margin-top: 2px; }
		span { display: none; }
	`)
	assert.Equal(t, 3, sn.Styles().Len())
	v, _ := sn.Value("color")
	assert.Equal(t, cssom.ColorValue{Color: cssom.Color{R: 0, G: 255, B: 0, A: 255}}, v)
	v, _ = sn.Value("width")
	assert.Equal(t, cssom.Length{Value: 50, Unit: cssom.Px}, v)
	_, ok := sn.Value("display")
	assert.False(t, ok)
}

func TestSelectorMatching(t *testing.T) {
	e := &dom.ElementData{TagName: "p", Attributes: dom.AttrMap{"id": "x", "class": "a b"}}
	cases := []struct {
		sel   *cssom.SimpleSelector
		match bool
	}{
		{&cssom.SimpleSelector{}, true},
		{&cssom.SimpleSelector{Tag: "p"}, true},
		{&cssom.SimpleSelector{Tag: "div"}, false},
		{&cssom.SimpleSelector{ID: "x"}, true},
		{&cssom.SimpleSelector{ID: "y"}, false},
		{&cssom.SimpleSelector{Classes: []string{"a", "b"}}, true},
		{&cssom.SimpleSelector{Classes: []string{"a", "c"}}, false},
		{&cssom.SimpleSelector{Tag: "p", ID: "x", Classes: []string{"b"}}, true},
	}
	for _, c := range cases {
		if Matches(e, c.sel) != c.match {
			t.Errorf("expected match(%s) = %v", c.sel, c.match)
		}
	}
	noID := &dom.ElementData{TagName: "p", Attributes: dom.AttrMap{}}
	assert.False(t, Matches(noID, &cssom.SimpleSelector{ID: "x"}))
}

func TestMatchingRulesRecordFirstMatchingSelector(t *testing.T) {
	sheet, err := cssparser.Parse("p, #x { color: red; } div { color: blue; }")
	require.NoError(t, err)
	e := &dom.ElementData{TagName: "p", Attributes: dom.AttrMap{"id": "x"}}
	matches := MatchingRules(e, sheet)
	require.Len(t, matches, 1)
	// #x is tried before p, as selectors are sorted by specificity
	assert.Equal(t, cssom.Specificity{1, 0, 0}, matches[0].Specificity)
	assert.Empty(t, MatchingRules(e, nil))
}

func TestBuildStyleTreeIdempotent(t *testing.T) {
	root, sheet, first := build(t,
		`<html><body class="main"><p id="p1">a</p><p>b</p></body></html>`,
		"p { color: red; } #p1 { color: blue; } .main { margin-top: 1px; }")
	second := BuildStyleTree(root, sheet)
	assert.True(t, first.Equal(second), "expected styling to be a pure function")
	assert.NotSame(t, first, second)
	other := BuildStyleTree(root, &cssom.Stylesheet{})
	assert.False(t, first.Equal(other))
}

func TestBuildStyleTreeNilInputs(t *testing.T) {
	assert.Nil(t, BuildStyleTree(nil, nil))
	sn := BuildStyleTree(dom.Element("a", nil, nil), nil)
	require.NotNil(t, sn)
	assert.Equal(t, 0, sn.Styles().Len())
}
