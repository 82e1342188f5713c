package markup

import (
	"github.com/npillmayer/styledom/dom"
	"github.com/npillmayer/styledom/scan"
)

// Parse parses a markup text into a DOM. If the text contains exactly one
// top-level node, this node is returned. Otherwise the top-level nodes are
// wrapped into a synthetic element "html".
func Parse(text string) (*dom.Node, error) {
	p := parser{scan.NewCursor(text)}
	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if !p.EOF() { // a stray closing tag at top level
		return nil, scan.Malformed(p.Pos(), "unexpected closing tag at top level")
	}
	tracer().Debugf("markup: parsed %d top-level node(s)", len(nodes))
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return dom.Element("html", nil, nodes), nil
}

type parser struct {
	*scan.Cursor
}

// parseNodes parses a sequence of sibling nodes, up to the end of input or
// the next closing tag.
func (p *parser) parseNodes() ([]*dom.Node, error) {
	var nodes []*dom.Node
	for {
		p.ConsumeWhitespace()
		if p.EOF() || p.StartsWith("</") {
			return nodes, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

func (p *parser) parseNode() (*dom.Node, error) {
	if p.Peek() == '<' {
		return p.parseElement()
	}
	return p.parseText(), nil
}

func (p *parser) parseText() *dom.Node {
	return dom.Text(p.ConsumeWhile(func(r rune) bool { return r != '<' }))
}

func (p *parser) parseElement() (*dom.Node, error) {
	if err := p.Expect('<'); err != nil {
		return nil, err
	}
	tag, err := p.parseName()
	if err != nil {
		return nil, err
	}
	attrs, err := p.parseAttrs()
	if err != nil {
		return nil, err
	}
	if err = p.Expect('>'); err != nil {
		return nil, err
	}
	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if err = p.ExpectString("</"); err != nil {
		return nil, err
	}
	at := p.Pos()
	closing, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if closing != tag {
		return nil, scan.Malformed(at, "closing tag </%s> does not match <%s>", closing, tag)
	}
	if err = p.Expect('>'); err != nil {
		return nil, err
	}
	return dom.Element(tag, attrs, children), nil
}

// parseName reads a tag or attribute name, which must not be empty.
func (p *parser) parseName() (string, error) {
	at := p.Pos()
	name := p.ConsumeWhile(isNameChar)
	if name != "" {
		return name, nil
	}
	r, err := p.Next()
	if err != nil {
		return "", scan.OutOfInput(at, "expected name, input exhausted")
	}
	return "", scan.Malformed(at, "expected name, found %q", r)
}

func (p *parser) parseAttrs() (dom.AttrMap, error) {
	attrs := dom.AttrMap{}
	for {
		p.ConsumeWhitespace()
		r, err := p.Next()
		if err != nil {
			return nil, err
		}
		if r == '>' {
			return attrs, nil
		}
		name, value, err := p.parseAttr()
		if err != nil {
			return nil, err
		}
		attrs[name] = value // last one wins
	}
}

func (p *parser) parseAttr() (string, string, error) {
	name, err := p.parseName()
	if err != nil {
		return "", "", err
	}
	if err = p.Expect('='); err != nil {
		return "", "", err
	}
	at := p.Pos()
	quote, err := p.Consume()
	if err != nil {
		return "", "", err
	}
	if quote != '"' && quote != '\'' {
		return "", "", scan.Malformed(at, "expected quote, found %q", quote)
	}
	value := p.ConsumeWhile(func(r rune) bool { return r != quote })
	if err = p.Expect(quote); err != nil {
		return "", "", err
	}
	return name, value, nil
}

func isNameChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
