package cssparser

import (
	"sort"
	"strconv"

	"github.com/npillmayer/styledom/dom/style/cssom"
	"github.com/npillmayer/styledom/scan"
)

// Parse parses a stylesheet text.
func Parse(text string) (*cssom.Stylesheet, error) {
	p := parser{scan.NewCursor(text)}
	rules, err := p.parseRules()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("css: parsed %d rule(s)", len(rules))
	return &cssom.Stylesheet{Rules: rules}, nil
}

// ParseSelectors parses a selector list without a declaration block, e.g.
// "h1, p.note". The whole text has to be consumed.
func ParseSelectors(text string) ([]cssom.Selector, error) {
	p := parser{scan.NewCursor(text)}
	p.ConsumeWhitespace()
	var sels []cssom.Selector
	for {
		sel, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		p.ConsumeWhitespace()
		if p.EOF() {
			break
		}
		if err = p.Expect(','); err != nil {
			return nil, err
		}
		p.ConsumeWhitespace()
	}
	sortBySpecificity(sels)
	return sels, nil
}

// ParseValue parses a single property value, e.g. "12px". Surrounding white
// space is ignored, anything else has to be consumed.
func ParseValue(text string) (cssom.Value, error) {
	p := parser{scan.NewCursor(text)}
	p.ConsumeWhitespace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.ConsumeWhitespace()
	if !p.EOF() {
		return nil, scan.Malformed(p.Pos(), "unexpected %q after value", p.Peek())
	}
	return v, nil
}

type parser struct {
	*scan.Cursor
}

func (p *parser) parseRules() ([]*cssom.Rule, error) {
	var rules []*cssom.Rule
	for {
		p.ConsumeWhitespace()
		if p.EOF() {
			return rules, nil
		}
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
}

func (p *parser) parseRule() (*cssom.Rule, error) {
	sels, err := p.parseSelectors()
	if err != nil {
		return nil, err
	}
	decls, err := p.parseDeclarations()
	if err != nil {
		return nil, err
	}
	return &cssom.Rule{Selectors: sels, Declarations: decls}, nil
}

func (p *parser) parseSelectors() ([]cssom.Selector, error) {
	var sels []cssom.Selector
	for {
		sel, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		p.ConsumeWhitespace()
		at := p.Pos()
		r, err := p.Next()
		if err != nil {
			return nil, err
		}
		switch r {
		case ',':
			p.Consume()
			p.ConsumeWhitespace()
		case '{':
			sortBySpecificity(sels)
			return sels, nil
		default:
			return nil, scan.Malformed(at, "unexpected character %q in selector list", r)
		}
	}
}

// sortBySpecificity orders selectors from most to least specific.
func sortBySpecificity(sels []cssom.Selector) {
	sort.SliceStable(sels, func(i, j int) bool {
		return sels[j].Specificity().Less(sels[i].Specificity())
	})
}

func (p *parser) parseSimpleSelector() (*cssom.SimpleSelector, error) {
	sel := &cssom.SimpleSelector{}
	for !p.EOF() {
		switch r := p.Peek(); {
		case r == '#':
			p.Consume()
			id, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			sel.ID = id
		case r == '.':
			p.Consume()
			class, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			sel.Classes = append(sel.Classes, class)
		case r == '*':
			p.Consume()
		case isIdentChar(r):
			sel.Tag, _ = p.parseIdentifier()
		default:
			return sel, nil
		}
	}
	return sel, nil
}

// parseIdentifier reads a non-empty identifier.
func (p *parser) parseIdentifier() (string, error) {
	at := p.Pos()
	ident := p.ConsumeWhile(isIdentChar)
	if ident != "" {
		return ident, nil
	}
	r, err := p.Next()
	if err != nil {
		return "", scan.OutOfInput(at, "expected identifier, input exhausted")
	}
	return "", scan.Malformed(at, "expected identifier, found %q", r)
}

func (p *parser) parseDeclarations() ([]cssom.Declaration, error) {
	if err := p.Expect('{'); err != nil {
		return nil, err
	}
	var decls []cssom.Declaration
	for {
		p.ConsumeWhitespace()
		r, err := p.Next()
		if err != nil {
			return nil, err
		}
		if r == '}' {
			p.Consume()
			return decls, nil
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
}

func (p *parser) parseDeclaration() (cssom.Declaration, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return cssom.Declaration{}, err
	}
	p.ConsumeWhitespace()
	if err = p.Expect(':'); err != nil {
		return cssom.Declaration{}, err
	}
	p.ConsumeWhitespace()
	value, err := p.parseValue()
	if err != nil {
		return cssom.Declaration{}, err
	}
	p.ConsumeWhitespace()
	if err = p.Expect(';'); err != nil {
		return cssom.Declaration{}, err
	}
	return cssom.Declaration{Name: name, Value: value}, nil
}

func (p *parser) parseValue() (cssom.Value, error) {
	r, err := p.Next()
	if err != nil {
		return nil, err
	}
	switch {
	case r >= '0' && r <= '9':
		return p.parseLength()
	case r == '#':
		return p.parseColor()
	}
	kw, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return cssom.Keyword(kw), nil
}

func (p *parser) parseLength() (cssom.Value, error) {
	at := p.Pos()
	dot := false
	num := p.ConsumeWhile(func(r rune) bool {
		if r == '.' && !dot {
			dot = true
			return true
		}
		return r >= '0' && r <= '9'
	})
	x, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return nil, scan.Malformed(at, "malformed number %q", num)
	}
	if err = p.ExpectString("px"); err != nil {
		return nil, err
	}
	return cssom.Length{Value: float32(x), Unit: cssom.Px}, nil
}

func (p *parser) parseColor() (cssom.Value, error) {
	if err := p.Expect('#'); err != nil {
		return nil, err
	}
	var rgb [3]uint8
	for i := range rgb {
		b, err := p.parseHexPair()
		if err != nil {
			return nil, err
		}
		rgb[i] = b
	}
	return cssom.ColorValue{Color: cssom.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}}, nil
}

func (p *parser) parseHexPair() (uint8, error) {
	at := p.Pos()
	var pair [2]rune
	for i := range pair {
		r, err := p.Consume()
		if err != nil {
			return 0, scan.OutOfInput(at, "incomplete hex color")
		}
		pair[i] = r
	}
	b, err := strconv.ParseUint(string(pair[:]), 16, 8)
	if err != nil {
		return 0, scan.Malformed(at, "invalid hex digits %q", string(pair[:]))
	}
	return uint8(b), nil
}

func isIdentChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
		r == '-' || r == '_'
}
