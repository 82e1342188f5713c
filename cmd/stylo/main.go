/*
Command stylo parses a markup document and a stylesheet and prints the
styled tree.

	stylo [--config FILE] [--format tree|dot] [--trace LEVEL] --html FILE [--css FILE]

Files ending in .html or .htm are read with an HTML5 parser; their <style>
elements are applied after the stylesheet given with --css. Other files are
read with the strict markup parser of package markup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/schuko/tracing"
	cli "github.com/urfave/cli/v3"
)

// tracer traces with key 'styledom.style'.
func tracer() tracing.Trace {
	return tracing.Select("styledom.style")
}

var traceKeys = []string{"styledom.dom", "styledom.markup", "styledom.css", "styledom.style"}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "stylo",
		Usage: "resolves the styles of a markup document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "html", Usage: "markup `FILE` to style"},
			&cli.StringFlag{Name: "css", Usage: "stylesheet `FILE`"},
			&cli.StringFlag{Name: "format", Usage: "output `FORMAT` (tree or dot)"},
			&cli.StringFlag{Name: "trace", Usage: "trace `LEVEL` (error, info or debug)"},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := LoadConfiguration(cmd.String("config"))
	if err != nil {
		return err
	}
	overrideFromFlags(cfg, cmd)
	if err = cfg.validate(); err != nil {
		return err
	}
	level, _ := traceLevel(cfg.Trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return style(cfg, os.Stdout)
}

func overrideFromFlags(cfg *Config, cmd *cli.Command) {
	if s := cmd.String("html"); s != "" {
		cfg.Markup = s
	}
	if s := cmd.String("css"); s != "" {
		cfg.Stylesheet = s
	}
	if s := cmd.String("format"); s != "" {
		cfg.Format = s
	}
	if s := cmd.String("trace"); s != "" {
		cfg.Trace = s
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCommand().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stylo: %v\n", err)
		os.Exit(1)
	}
}
