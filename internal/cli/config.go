package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/report"
)

// ErrBadConfig indicates an unreadable or inconsistent configuration.
var ErrBadConfig = errors.New("cli: bad config")

// Config holds every setting the commands read. Values come from
// DefaultConfig, then the optional YAML file, then explicitly set flags.
type Config struct {
	Input     string   `yaml:"input"`
	Output    string   `yaml:"output"`
	CSV       string   `yaml:"csv"`
	Metrics   string   `yaml:"metrics"`
	Tolerance float64  `yaml:"tolerance"`
	Seed      int64    `yaml:"seed"`
	Sizes     []string `yaml:"sizes"`
	Parallel  int      `yaml:"parallel"`
	Verify    bool     `yaml:"verify"`
	LogLevel  string   `yaml:"log_level"`
	LogFormat string   `yaml:"log_format"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Input:     "input.json",
		Output:    "output.json",
		Tolerance: report.DefaultTolerance,
		Seed:      1,
		Parallel:  1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %w", ErrBadConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be >= 0, got %g", ErrBadConfig, c.Tolerance)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be >= 1, got %d", ErrBadConfig, c.Parallel)
	}
	if _, err := c.SuiteSizes(); err != nil {
		return err
	}

	return nil
}

// SuiteSizes parses Sizes ("VxE" entries). Empty Sizes yields nil, which
// builder.Suite maps to its default suite.
func (c Config) SuiteSizes() ([]builder.SuiteSize, error) {
	if len(c.Sizes) == 0 {
		return nil, nil
	}
	out := make([]builder.SuiteSize, 0, len(c.Sizes))
	for _, s := range c.Sizes {
		var size builder.SuiteSize
		var rest string
		n, _ := fmt.Sscanf(strings.ToLower(strings.TrimSpace(s)), "%dx%d%s", &size.Vertices, &size.Edges, &rest)
		if n != 2 {
			return nil, fmt.Errorf("%w: size %q is not VxE", ErrBadConfig, s)
		}
		out = append(out, size)
	}

	return out, nil
}

// flagValues receives flag values before they are merged into Config.
type flagValues struct {
	configPath string
	verbose    bool
	Config
}

// bind registers the persistent flags on fs.
func (fv *flagValues) bind(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.StringVarP(&fv.configPath, "config", "c", "", "path to YAML config file")
	fs.BoolVarP(&fv.verbose, "verbose", "v", false, "verbose output")
	fs.StringVarP(&fv.Input, "input", "i", d.Input, "graph description file (.json, .yaml)")
	fs.StringVarP(&fv.Output, "output", "o", d.Output, "result document file (.json, .yaml)")
	fs.StringVar(&fv.CSV, "csv", d.CSV, "comparison CSV file")
	fs.StringVar(&fv.Metrics, "metrics", d.Metrics, "Prometheus textfile to write")
	fs.Float64Var(&fv.Tolerance, "tolerance", d.Tolerance, "absolute cost difference accepted as a match")
	fs.Int64Var(&fv.Seed, "seed", d.Seed, "random seed for generate")
	fs.StringSliceVar(&fv.Sizes, "sizes", d.Sizes, "graph sizes for generate, e.g. 5x10,10x40")
	fs.IntVarP(&fv.Parallel, "parallel", "p", d.Parallel, "graphs compared concurrently")
	fs.BoolVar(&fv.Verify, "verify", d.Verify, "check every result is a valid spanning forest")
	fs.StringVar(&fv.LogLevel, "log-level", d.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&fv.LogFormat, "log-format", d.LogFormat, "log format (text, json)")
}

// overrides maps a flag name to the Config field it sets.
var overrides = map[string]func(dst *Config, src Config){
	"input":      func(d *Config, s Config) { d.Input = s.Input },
	"output":     func(d *Config, s Config) { d.Output = s.Output },
	"csv":        func(d *Config, s Config) { d.CSV = s.CSV },
	"metrics":    func(d *Config, s Config) { d.Metrics = s.Metrics },
	"tolerance":  func(d *Config, s Config) { d.Tolerance = s.Tolerance },
	"seed":       func(d *Config, s Config) { d.Seed = s.Seed },
	"sizes":      func(d *Config, s Config) { d.Sizes = s.Sizes },
	"parallel":   func(d *Config, s Config) { d.Parallel = s.Parallel },
	"verify":     func(d *Config, s Config) { d.Verify = s.Verify },
	"log-level":  func(d *Config, s Config) { d.LogLevel = s.LogLevel },
	"log-format": func(d *Config, s Config) { d.LogFormat = s.LogFormat },
}

// resolve builds the effective Config: file values first, then every flag
// the user set explicitly.
func (fv *flagValues) resolve(fs *pflag.FlagSet) (Config, error) {
	cfg := fv.Config
	if fv.configPath != "" {
		var err error
		if cfg, err = LoadConfig(fv.configPath); err != nil {
			return cfg, err
		}
		fs.Visit(func(f *pflag.Flag) {
			if set, ok := overrides[f.Name]; ok {
				set(&cfg, fv.Config)
			}
		})
	}
	if fv.verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, cfg.Validate()
}
