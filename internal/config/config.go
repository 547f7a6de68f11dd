package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLattice     = "square"
	DefaultSegmentN    = 100
	DefaultEnergySteps = 2000
	DefaultFormat      = "csv"
	DefaultPlotHeight  = 15
	DefaultPlotWidth   = 80
)

var ErrInvalid = errors.New("config: invalid run configuration")

type Config struct {
	Lattice string       `yaml:"lattice" toml:"lattice"`
	Path    PathConfig   `yaml:"path" toml:"path"`
	DOS     DOSConfig    `yaml:"dos" toml:"dos"`
	Grid    GridConfig   `yaml:"grid" toml:"grid"`
	Output  OutputConfig `yaml:"output" toml:"output"`
}

type PathConfig struct {
	N      int    `yaml:"n" toml:"n"`
	Points string `yaml:"points" toml:"points"`
}

type DOSConfig struct {
	Steps       int  `yaml:"steps" toml:"steps"`
	Singularity bool `yaml:"singularity" toml:"singularity"`
	GDOS        bool `yaml:"gdos" toml:"gdos"`
}

// GridConfig samples the reciprocal unit cell when both sizes are positive.
type GridConfig struct {
	N1 int `yaml:"n1" toml:"n1"`
	N2 int `yaml:"n2" toml:"n2"`
}

func (g GridConfig) Enabled() bool { return g.N1 > 0 && g.N2 > 0 }

type OutputConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"`
	Plot   bool   `yaml:"plot" toml:"plot"`
	Height int    `yaml:"height" toml:"height"`
	Width  int    `yaml:"width" toml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Lattice: DefaultLattice,
		Path: PathConfig{
			N: DefaultSegmentN,
		},
		DOS: DOSConfig{
			Steps: DefaultEnergySteps,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
			Plot:   true,
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a run file. Files ending in .toml are TOML, anything else YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isTOML(path) {
		return ParseTOML(data)
	}
	return Parse(data)
}

// Parse decodes YAML over DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseTOML is Parse for TOML documents.
func ParseTOML(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	marshal := yaml.Marshal
	if isTOML(path) {
		marshal = toml.Marshal
	}
	data, err := marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks sizes and formats. Lattice names and path labels are
// resolved, and rejected, by the models they name.
func (c *Config) Validate() error {
	switch {
	case c.Lattice == "":
		return fmt.Errorf("%w: lattice is empty", ErrInvalid)
	case c.Path.N < 1:
		return fmt.Errorf("%w: path.n must be positive, got %d", ErrInvalid, c.Path.N)
	case c.DOS.Steps < 1:
		return fmt.Errorf("%w: dos.steps must be positive, got %d", ErrInvalid, c.DOS.Steps)
	case c.Grid.N1 < 0 || c.Grid.N2 < 0:
		return fmt.Errorf("%w: grid sizes must not be negative, got %dx%d", ErrInvalid, c.Grid.N1, c.Grid.N2)
	case c.Output.Format != "csv" && c.Output.Format != "json":
		return fmt.Errorf("%w: output.format must be csv or json, got %q", ErrInvalid, c.Output.Format)
	case c.Output.Plot && (c.Output.Height < 1 || c.Output.Width < 1):
		return fmt.Errorf("%w: plot size must be positive, got %dx%d", ErrInvalid, c.Output.Width, c.Output.Height)
	}
	return nil
}
