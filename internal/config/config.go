package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/honeybbq/serviceast/pkg/serviceast"
)

// FileName is the per-project configuration file read by the CLI.
const FileName = ".serviceast.yaml"

// Config represents .serviceast.yaml
type Config struct {
	Backend string       `yaml:"backend"`
	Render  RenderConfig `yaml:"render"`
	Merge   MergeConfig  `yaml:"merge"`
}

// RenderConfig holds rendering defaults
type RenderConfig struct {
	Indent                  string `yaml:"indent,omitempty"`
	IncludeEmptyAnnotations bool   `yaml:"include_empty_annotations"`
	IncludeNodeIDs          bool   `yaml:"include_node_ids"`
	GenerationTag           string `yaml:"generation_tag,omitempty"`
}

// MergeConfig holds document layering settings
type MergeConfig struct {
	// Fields used to match list items between layers
	Identifiers []string `yaml:"identifiers,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Backend: "ballerina",
		Render: RenderConfig{
			Indent: serviceast.DefaultIndent,
		},
		Merge: MergeConfig{
			Identifiers: append([]string(nil), serviceast.DefaultIdentifiers...),
		},
	}
}

// Path returns the config file path inside dir
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads path over the defaults. A missing file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Backend == "" {
		cfg.Backend = "ballerina"
	}
	return cfg, nil
}

// Save writes cfg to path
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// RenderOptions maps the render section onto serviceast options
func (c *Config) RenderOptions() serviceast.RenderOptions {
	return serviceast.RenderOptions{
		Indent:                  c.Render.Indent,
		IncludeEmptyAnnotations: c.Render.IncludeEmptyAnnotations,
		IncludeNodeIDs:          c.Render.IncludeNodeIDs,
		GenerationTag:           c.Render.GenerationTag,
	}
}
