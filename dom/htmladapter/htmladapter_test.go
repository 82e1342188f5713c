package htmladapter

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledom/dom"
	"github.com/npillmayer/styledom/dom/style/cssom/cssparser"
	"github.com/npillmayer/styledom/dom/styledtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var myhtml = `
<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
  <!-- a comment -->
  <h1 id="top" class="title big">Hello</h1>
  <p class="note">Some <b>bold</b> text.</p>
  <p class="note big" id="last">More text.</p>
</body>
</html>
`

func TestFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom.dom")
	defer teardown()
	//
	root, err := Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	t.Logf("DOM =\n%s", root.PrettyPrint())
	assert.Equal(t, "html", root.NodeName())
	require.Len(t, root.Children, 2)
	assert.Equal(t, "head", root.Children[0].NodeName())
	body := root.Children[1]
	assert.Equal(t, "body", body.NodeName())
	require.Len(t, body.Children, 3, "expected comment and white space to be dropped")
	h1, ok := body.Children[0].Element()
	require.True(t, ok)
	id, _ := h1.ID()
	assert.Equal(t, "top", id)
	assert.True(t, h1.HasClass("big"))
	assert.Equal(t, 8, dom.ElementCount(root))
}

func TestFromHTMLNil(t *testing.T) {
	_, err := FromHTML(nil)
	assert.Error(t, err)
	_, err = FromHTML(&html.Node{Type: html.CommentNode, Data: "x"})
	assert.Error(t, err)
}

// Our simple-selector matching and specificity has to agree with cascadia
// for every selector of the subset we support.
func TestMatchingAgreesWithCascadia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom.dom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	selectors := []string{"p", ".note", "#top", "p.note.big", "h1#top.title", "*", ".big", "#last.note", "div"}
	for _, s := range selectors {
		csel, err := cascadia.Parse(s)
		require.NoError(t, err, s)
		sels, err := cssparser.ParseSelectors(s)
		require.NoError(t, err, s)
		require.Len(t, sels, 1)
		sel := sels[0]
		cs := csel.Specificity()
		sp := sel.Specificity()
		assert.Equal(t, [3]int{int(cs[0]), int(cs[1]), int(cs[2])}, [3]int(sp), s)
		var walk func(h *html.Node)
		walk = func(h *html.Node) {
			if h.Type == html.ElementNode {
				n, err := FromHTML(h)
				require.NoError(t, err)
				e, _ := n.Element()
				assert.Equal(t, csel.Match(h), styledtree.Matches(e, sel), "selector %s on <%s>", s, h.Data)
			}
			for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
				walk(ch)
			}
		}
		walk(doc)
	}
}
