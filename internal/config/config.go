// Package config loads docaudit settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/phobologic/docaudit/internal/lang"
	"github.com/phobologic/docaudit/internal/model"
)

// DefaultFileName is the config file looked up in the scanned root.
const DefaultFileName = ".docaudit.yaml"

// Config holds every tunable of a docaudit run.
type Config struct {
	Extensions      []string      `yaml:"extensions"`
	ExcludeSegments []string      `yaml:"exclude_segments"`
	NoIgnore        bool          `yaml:"no_ignore"` // walk hidden, VCS/build and gitignored paths too
	SourceMarker    string        `yaml:"source_marker"`
	Workers         int           `yaml:"workers"` // 0 = GOMAXPROCS
	Docs            DocsConfig    `yaml:"docs"`
	Quality         QualityConfig `yaml:"quality"`
}

// DocsConfig tunes the Documentation Classifier.
type DocsConfig struct {
	// LookaheadLines is the coverage window opened by a documentation
	// marker, counting the marker line itself.
	LookaheadLines int `yaml:"lookahead_lines"`
	// LookbackLines is how many lines above a declaration may be covered
	// for it to count as documented.
	LookbackLines int `yaml:"lookback_lines"`
}

// QualityConfig tunes the Quality Indicator Scanner.
type QualityConfig struct {
	GateCategory      model.Category `yaml:"gate_category"`
	MagicMin          int            `yaml:"magic_min"`
	LongFunctionLines int            `yaml:"long_function_lines"`
	MaxNesting        int            `yaml:"max_nesting"`
	ExampleCap        int            `yaml:"example_cap"`
}

// Default returns the settings the heuristics were calibrated with.
func Default() *Config {
	return &Config{
		Extensions:      slices.Clone(lang.Languages["cpp"].Extensions),
		ExcludeSegments: []string{"externals", "examples"},
		SourceMarker:    "source",
		Docs: DocsConfig{
			LookaheadLines: 10,
			LookbackLines:  2,
		},
		Quality: QualityConfig{
			GateCategory:      model.PoorlyDocumented,
			MagicMin:          5,
			LongFunctionLines: 100,
			MaxNesting:        6,
			ExampleCap:        5,
		},
	}
}

// Load reads the config at path. If path is empty, <root>/.docaudit.yaml is
// tried; a missing default file yields Default(). An explicitly named file
// must exist.
func Load(path, root string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, DefaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default(). Keys missing from data keep their
// defaults; explicit values, zero included, are kept and validated. An empty
// extensions list or source marker also keeps the default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	def := Default()
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = def.Extensions
	}
	if cfg.SourceMarker == "" {
		cfg.SourceMarker = def.SourceMarker
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the analyzers cannot run with.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Docs.LookaheadLines < 1 {
		return fmt.Errorf("docs.lookahead_lines must be >= 1, got %d", c.Docs.LookaheadLines)
	}
	if c.Docs.LookbackLines < 0 {
		return fmt.Errorf("docs.lookback_lines must be >= 0, got %d", c.Docs.LookbackLines)
	}
	if !c.Quality.GateCategory.Valid() {
		return fmt.Errorf("quality.gate_category: unknown category %q", c.Quality.GateCategory)
	}
	if c.Quality.MagicMin < 1 {
		return fmt.Errorf("quality.magic_min must be >= 1, got %d", c.Quality.MagicMin)
	}
	if c.Quality.ExampleCap < 0 {
		return fmt.Errorf("quality.example_cap must be >= 0, got %d", c.Quality.ExampleCap)
	}
	return nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
