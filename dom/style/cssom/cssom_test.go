package cssom

import (
	"image/color"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificityOrder(t *testing.T) {
	id := (&SimpleSelector{ID: "x"}).Specificity()
	class := (&SimpleSelector{Classes: []string{"y"}}).Specificity()
	tag := (&SimpleSelector{Tag: "z"}).Specificity()
	universal := (&SimpleSelector{}).Specificity()
	assert.True(t, class.Less(id), "expected .class < #id")
	assert.True(t, tag.Less(class), "expected tag < .class")
	assert.True(t, universal.Less(tag), "expected * < tag")
	assert.Equal(t, 0, id.Compare(Specificity{1, 0, 0}))
	// many classes never outweigh an id
	many := (&SimpleSelector{Tag: "p", Classes: []string{"a", "b", "c"}}).Specificity()
	assert.True(t, many.Less(id))
}

func TestSpecificitySortDescending(t *testing.T) {
	sels := []Selector{
		&SimpleSelector{Tag: "z"},
		&SimpleSelector{Classes: []string{"y"}},
		&SimpleSelector{ID: "x"},
	}
	sort.SliceStable(sels, func(i, j int) bool {
		return sels[j].Specificity().Less(sels[i].Specificity())
	})
	got := []string{sels[0].String(), sels[1].String(), sels[2].String()}
	assert.Equal(t, []string{"#x", ".y", "z"}, got)
}

func TestSelectorString(t *testing.T) {
	s := &SimpleSelector{Tag: "div", ID: "main", Classes: []string{"a", "b"}}
	assert.Equal(t, "div#main.a.b", s.String())
	assert.Equal(t, "*", (&SimpleSelector{}).String())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "12.5px", Length{12.5, Px}.String())
	assert.Equal(t, "#ff0000", ColorValue{Color{255, 0, 0, 255}}.String())
	assert.Equal(t, "auto", Keyword("auto").String())
	assert.Equal(t, float32(3), PxValue(Length{3, Px}))
	assert.Equal(t, float32(0), PxValue(Keyword("auto")))
}

func TestColorInterface(t *testing.T) {
	var c color.Color = Color{R: 0xff, G: 0x80, B: 0, A: 0xff}
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestToColor(t *testing.T) {
	c, err := ToColor(Keyword("red"))
	require.NoError(t, err)
	assert.Equal(t, Color{255, 0, 0, 255}, c)
	c, err = ToColor(ColorValue{Color{1, 2, 3, 255}})
	require.NoError(t, err)
	assert.Equal(t, Color{1, 2, 3, 255}, c)
	_, err = ToColor(Keyword("no-such-color"))
	assert.Error(t, err)
	_, err = ToColor(Length{1, Px})
	assert.Error(t, err)
}

func TestStylesheetPrettyPrint(t *testing.T) {
	sheet := &Stylesheet{Rules: []*Rule{
		{
			Selectors:    []Selector{&SimpleSelector{Tag: "p"}, &SimpleSelector{ID: "x"}},
			Declarations: []Declaration{{Name: "color", Value: Keyword("blue")}},
		},
	}}
	out := sheet.PrettyPrint()
	t.Logf("stylesheet =\n%s", out)
	assert.True(t, strings.Contains(out, "p, #x"))
	assert.True(t, strings.Contains(out, "color: blue"))
	assert.False(t, sheet.Empty())
	var none *Stylesheet
	assert.True(t, none.Empty())
}

func TestAppendRules(t *testing.T) {
	a := &Stylesheet{Rules: []*Rule{{Selectors: []Selector{&SimpleSelector{Tag: "a"}}}}}
	b := &Stylesheet{Rules: []*Rule{{Selectors: []Selector{&SimpleSelector{Tag: "b"}}}}}
	a.AppendRules(b)
	require.Len(t, a.Rules, 2)
	assert.Equal(t, "b", a.Rules[1].String())
}
