package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))
	return fname
}

func TestLoadConfiguration(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, FormatTree, cfg.Format)
	assert.Equal(t, "error", cfg.Trace)
	//
	dir := t.TempDir()
	fname := writeFile(t, dir, "stylo.yaml", "markup: doc.xml\nstylesheet: doc.css\nformat: dot\ntrace: debug\n")
	cfg, err = LoadConfiguration(fname)
	require.NoError(t, err)
	assert.Equal(t, &Config{Markup: "doc.xml", Stylesheet: "doc.css", Trace: "debug", Format: FormatDot}, cfg)
}

func TestLoadConfigurationInvalid(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfiguration(writeFile(t, dir, "a.yaml", "format: pdf\n"))
	assert.Error(t, err)
	_, err = LoadConfiguration(writeFile(t, dir, "b.yaml", "trace: verbose\n"))
	assert.Error(t, err)
	_, err = LoadConfiguration(writeFile(t, dir, "c.yaml", "markup: [\n"))
	assert.Error(t, err)
	_, err = LoadConfiguration(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestStyleMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom.style")
	defer teardown()
	//
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.Markup = writeFile(t, dir, "doc.xml", `<div class="note"><p>Hello</p></div>`)
	cfg.Stylesheet = writeFile(t, dir, "doc.css", `div { display: block; } .note { color: red; }`)
	var buf bytes.Buffer
	require.NoError(t, style(cfg, &buf))
	out := buf.String()
	t.Logf("\n%s", out)
	assert.Contains(t, out, "display")
	assert.Contains(t, out, "red")
	//
	buf.Reset()
	cfg.Format = FormatDot
	require.NoError(t, style(cfg, &buf))
	assert.Contains(t, buf.String(), "digraph")
}

func TestStyleHTMLWithEmbeddedStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom.style")
	defer teardown()
	//
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.Markup = writeFile(t, dir, "doc.html", `<!DOCTYPE html>
<html><head><style>p { color: #0000ff; }</style></head>
<body><p>Hello</p></body></html>`)
	var buf bytes.Buffer
	require.NoError(t, style(cfg, &buf))
	assert.Contains(t, buf.String(), "#0000ff")
}

func TestStyleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom.style")
	defer teardown()
	//
	dir := t.TempDir()
	var buf bytes.Buffer
	cfg := defaultConfig()
	assert.Error(t, style(cfg, &buf), "expected missing markup to be an error")
	cfg.Markup = writeFile(t, dir, "bad.xml", `<p></q>`)
	assert.Error(t, style(cfg, &buf))
	cfg.Markup = writeFile(t, dir, "ok.xml", `<p></p>`)
	cfg.Stylesheet = writeFile(t, dir, "bad.css", `p { color red; }`)
	assert.Error(t, style(cfg, &buf))
}

func TestCommandFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgfile := writeFile(t, dir, "stylo.yaml", "format: tree\nmarkup: nonexistent.xml\n")
	doc := writeFile(t, dir, "doc.xml", `<p>x</p>`)
	cmd := newCommand()
	var seen *Config
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		cfg, err := LoadConfiguration(c.String("config"))
		if err != nil {
			return err
		}
		overrideFromFlags(cfg, c)
		seen = cfg
		return cfg.validate()
	}
	err := cmd.Run(context.Background(), []string{"stylo", "--config", cfgfile, "--html", doc, "--format", "dot"})
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, doc, seen.Markup)
	assert.Equal(t, FormatDot, seen.Format)
}
