package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/rxgen/pattern"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = ".rxgen.yaml"

// Config is the on-disk configuration.
type Config struct {
	Name     string         `yaml:"name"`
	Dialects []string       `yaml:"dialects"`
	Escape   string         `yaml:"escape"`
	Color    *bool          `yaml:"color,omitempty"`
	Workers  int            `yaml:"workers,omitempty"`
	Patterns []NamedPattern `yaml:"patterns,omitempty"`
}

// NamedPattern is a pattern stored in the config together with sample
// strings it must accept and reject.
type NamedPattern struct {
	Name    string   `yaml:"name"`
	Pattern string   `yaml:"pattern"`
	Accept  []string `yaml:"accept,omitempty"`
	Reject  []string `yaml:"reject,omitempty"`
}

// Default returns the configuration used when no file exists. It renders
// python and javascript.
func Default() Config {
	return Config{
		Name:     "rxgen",
		Dialects: []string{pattern.DialectPython.String(), pattern.DialectJavaScript.String()},
		Escape:   pattern.EscapeMeta.String(),
	}
}

// Load reads path. A missing file at DefaultPath yields Default; a missing
// file anywhere else is an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return Default(), nil
		}
		return Config{}, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a configuration and validates it. Unset fields take their
// default values.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks dialect names, the escape policy and every named pattern.
func (c Config) Validate() error {
	if _, err := c.DialectList(); err != nil {
		return err
	}
	if _, err := c.Renderer(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	seen := make(map[string]bool, len(c.Patterns))
	for i, np := range c.Patterns {
		if np.Name == "" {
			return fmt.Errorf("pattern #%d: missing name", i+1)
		}
		if seen[np.Name] {
			return fmt.Errorf("pattern %q: duplicate name", np.Name)
		}
		seen[np.Name] = true
		if _, err := pattern.Parse(np.Pattern); err != nil {
			return fmt.Errorf("pattern %q: %w", np.Name, err)
		}
	}
	return nil
}

// DialectList resolves the configured dialect names.
func (c Config) DialectList() ([]pattern.Dialect, error) {
	out := make([]pattern.Dialect, 0, len(c.Dialects))
	for _, name := range c.Dialects {
		d, err := pattern.ParseDialect(name)
		if err != nil {
			return nil, fmt.Errorf("config dialects: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Renderer returns a renderer using the configured escape policy.
func (c Config) Renderer() (pattern.Renderer, error) {
	esc, err := pattern.ParseEscapePolicy(c.Escape)
	if err != nil {
		return pattern.Renderer{}, fmt.Errorf("config escape: %w", err)
	}
	return pattern.Renderer{Escape: esc}, nil
}

// ColorEnabled reports whether colored output was requested. Unset means
// enabled.
func (c Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Pattern looks up a named pattern and parses it.
func (c Config) Pattern(name string) (pattern.Spec, error) {
	for _, np := range c.Patterns {
		if np.Name == name {
			return pattern.Parse(np.Pattern)
		}
	}
	return pattern.Spec{}, fmt.Errorf("no pattern named %q", name)
}

// Write stores cfg at path, replacing any existing file.
func Write(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath
	}
	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
