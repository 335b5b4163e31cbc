package sweep

import (
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds all parameters for a sweep run.
type Config struct {
	Set       string  `toml:"set" json:"set"`             // catalog set, "" for every entry, "-" for none
	Random    int     `toml:"random" json:"random"`       // random trees added to the run
	Generator string  `toml:"generator" json:"generator"` // building blocks for random trees
	MaxDepth  int     `toml:"max_depth" json:"max_depth"`
	Points    int     `toml:"points" json:"points"` // grid points per expression
	Step      float64 `toml:"step" json:"step"`     // relative finite-difference step
	Tolerance float64 `toml:"tolerance" json:"tolerance"`
	Seed      int64   `toml:"seed" json:"seed"`
	Workers   int     `toml:"workers" json:"workers"`
	Format    string  `toml:"format" json:"format"` // "text", "json" or "latex"
	Debug     bool    `toml:"debug" json:"-"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Set:       "",
		Random:    0,
		Generator: "moderate",
		MaxDepth:  4,
		Points:    16,
		Step:      1e-5,
		Tolerance: 1e-4,
		Seed:      0, // 0 = random
		Workers:   runtime.NumCPU(),
		Format:    "text",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("%s: unknown keys %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Points < 1:
		return errors.Errorf("points must be positive, got %d", c.Points)
	case c.Random < 0:
		return errors.Errorf("random must not be negative, got %d", c.Random)
	case c.Random > 0 && c.MaxDepth < 1:
		return errors.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	case c.Step <= 0:
		return errors.Errorf("step must be positive, got %g", c.Step)
	case c.Tolerance <= 0:
		return errors.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	switch c.Format {
	case "text", "json", "latex":
	default:
		return errors.Errorf("unknown format %q (available: text, json, latex)", c.Format)
	}
	return nil
}
