package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	yaml "gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTree = "tree"
	FormatDot  = "dot"
)

// Config holds the settings of a styling run. Values set on the command
// line override values read from a configuration file.
type Config struct {
	Markup     string `yaml:"markup"`
	Stylesheet string `yaml:"stylesheet"`
	Trace      string `yaml:"trace"`
	Format     string `yaml:"format"`
}

func defaultConfig() *Config {
	return &Config{Trace: "error", Format: FormatTree}
}

// LoadConfiguration reads a YAML configuration file. An empty file name
// yields the default configuration.
func LoadConfiguration(fname string) (*Config, error) {
	cfg := defaultConfig()
	if fname == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file '%s': %w", fname, err)
	}
	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	switch cfg.Format {
	case FormatTree, FormatDot:
	default:
		return fmt.Errorf("unknown output format '%s'", cfg.Format)
	}
	if _, err := traceLevel(cfg.Trace); err != nil {
		return err
	}
	return nil
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch s {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level '%s'", s)
}
