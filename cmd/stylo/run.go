package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/styledom/dom"
	"github.com/npillmayer/styledom/dom/domdbg"
	"github.com/npillmayer/styledom/dom/htmladapter"
	"github.com/npillmayer/styledom/dom/markup"
	"github.com/npillmayer/styledom/dom/style/cssom"
	"github.com/npillmayer/styledom/dom/style/cssom/cssparser"
	"github.com/npillmayer/styledom/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/styledom/dom/styledtree"
	"golang.org/x/net/html"
)

// style runs the pipeline: parse the markup and the stylesheet, build the
// styled tree and write it to w.
func style(cfg *Config, w io.Writer) error {
	if cfg.Markup == "" {
		return fmt.Errorf("no markup file given")
	}
	root, embedded, err := loadDocument(cfg.Markup)
	if err != nil {
		return err
	}
	sheet := &cssom.Stylesheet{}
	if cfg.Stylesheet != "" {
		text, err := os.ReadFile(cfg.Stylesheet)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet: %w", err)
		}
		if sheet, err = cssparser.Parse(string(text)); err != nil {
			return fmt.Errorf("stylesheet '%s': %w", cfg.Stylesheet, err)
		}
	}
	// embedded <style> elements come after the external sheet
	for _, s := range embedded {
		sheet.AppendRules(s)
	}
	tracer().Infof("styling %d element(s) with %d rule(s)", dom.ElementCount(root), len(sheet.Rules))
	sn := styledtree.BuildStyleTree(root, sheet)
	switch cfg.Format {
	case FormatDot:
		return domdbg.ToGraphViz(sn, w, nil)
	default:
		_, err = io.WriteString(w, sn.PrettyPrint())
		return err
	}
}

// loadDocument parses a markup file. Files with an HTML extension are read
// with the HTML5 parser, and their <style> elements are returned as well.
func loadDocument(fname string) (*dom.Node, []*cssom.Stylesheet, error) {
	text, err := os.ReadFile(fname)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read markup: %w", err)
	}
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".html", ".htm":
		doc, err := html.Parse(bytes.NewReader(text))
		if err != nil {
			return nil, nil, fmt.Errorf("markup '%s': %w", fname, err)
		}
		sheets, err := douceuradapter.ExtractStyleElements(doc)
		if err != nil {
			return nil, nil, fmt.Errorf("markup '%s', style element: %w", fname, err)
		}
		root, err := htmladapter.FromHTML(doc)
		return root, sheets, err
	}
	root, err := markup.Parse(string(text))
	if err != nil {
		return nil, nil, fmt.Errorf("markup '%s': %w", fname, err)
	}
	return root, nil, nil
}
