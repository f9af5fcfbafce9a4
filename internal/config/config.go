// SPDX-License-Identifier: MIT

// Package config holds the bidirbench settings and loads them with viper
// from defaults, an optional YAML file, BIDIRBENCH_* environment variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides: graph.nodes -> BIDIRBENCH_GRAPH_NODES.
	EnvPrefix = "BIDIRBENCH"
	// FileName is the config file looked up in the working and home directories.
	FileName = ".bidirbench"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full harness configuration.
type Config struct {
	Graph     Graph     `mapstructure:"graph"`
	Search    Search    `mapstructure:"search"`
	Bench     Bench     `mapstructure:"bench"`
	Log       Log       `mapstructure:"log"`
	Telemetry Telemetry `mapstructure:"telemetry"`
}

// Graph selects the input graph. A non-empty File wins over the random model.
type Graph struct {
	Nodes     int      `mapstructure:"nodes"`
	Edges     int      `mapstructure:"edges"`
	Seed      int64    `mapstructure:"seed"` // 0 picks a time-based seed
	MinWeight float64  `mapstructure:"min_weight"`
	MaxWeight float64  `mapstructure:"max_weight"`
	File      string   `mapstructure:"file"`     // .yaml/.yml edge list or .osm/.pbf extract
	Highways  []string `mapstructure:"highways"` // OSM highway classes; empty keeps all
}

// Search mirrors the bidijkstra tuning options.
type Search struct {
	Degree          int     `mapstructure:"degree"`
	InitialCapacity int     `mapstructure:"initial_capacity"`
	LoadFactor      float64 `mapstructure:"load_factor"`
	MaxEntries      int     `mapstructure:"max_entries"`
}

// Bench controls endpoint choice and the agreement sweep.
type Bench struct {
	Source  int `mapstructure:"source"` // -1 picks the tail of the first generated edge
	Target  int `mapstructure:"target"` // -1 picks the head of edge nodes/2
	Queries int `mapstructure:"queries"`
	Workers int `mapstructure:"workers"` // 0 uses GOMAXPROCS
}

// Log selects the slog handler.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Telemetry configures OpenTelemetry export.
type Telemetry struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// Default returns the documented defaults: the 100k/500k random benchmark
// graph with weights in [0,10).
func Default() Config {
	return Config{
		Graph: Graph{Nodes: 100_000, Edges: 500_000, MinWeight: 0, MaxWeight: 10},
		Search: Search{
			Degree:          4,
			InitialCapacity: 1024,
			LoadFactor:      1.3,
		},
		Bench:     Bench{Source: -1, Target: -1},
		Log:       Log{Level: "info", Format: "text"},
		Telemetry: Telemetry{ServiceName: "bidirbench"},
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	if c.Graph.File == "" {
		check(c.Graph.Nodes >= 1, "graph.nodes=%d must be >= 1", c.Graph.Nodes)
		check(c.Graph.Edges >= 0, "graph.edges=%d must be >= 0", c.Graph.Edges)
		check(c.Graph.MinWeight >= 0, "graph.min_weight=%g must be >= 0", c.Graph.MinWeight)
		check(c.Graph.MaxWeight > c.Graph.MinWeight, "graph.max_weight=%g must exceed min_weight", c.Graph.MaxWeight)
	}
	check(c.Search.Degree >= 2, "search.degree=%d must be >= 2", c.Search.Degree)
	check(c.Search.InitialCapacity >= 0, "search.initial_capacity=%d must be >= 0", c.Search.InitialCapacity)
	check(c.Search.LoadFactor > 0 && !math.IsInf(c.Search.LoadFactor, 0),
		"search.load_factor=%g must be positive and finite", c.Search.LoadFactor)
	check(c.Search.MaxEntries >= 0, "search.max_entries=%d must be >= 0", c.Search.MaxEntries)
	check(c.Bench.Source >= -1, "bench.source=%d must be >= -1", c.Bench.Source)
	check(c.Bench.Target >= -1, "bench.target=%d must be >= -1", c.Bench.Target)
	check(c.Bench.Queries >= 0, "bench.queries=%d must be >= 0", c.Bench.Queries)
	check(c.Bench.Workers >= 0, "bench.workers=%d must be >= 0", c.Bench.Workers)

	var lvl slog.Level
	check(lvl.UnmarshalText([]byte(c.Log.Level)) == nil, "log.level=%q", c.Log.Level)
	format := strings.ToLower(c.Log.Format)
	check(format == "text" || format == "json", "log.format=%q must be text or json", c.Log.Format)

	return errors.Join(errs...)
}

// SetDefaults registers every key of Default on v so environment
// overrides resolve for keys absent from the file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("graph.nodes", d.Graph.Nodes)
	v.SetDefault("graph.edges", d.Graph.Edges)
	v.SetDefault("graph.seed", d.Graph.Seed)
	v.SetDefault("graph.min_weight", d.Graph.MinWeight)
	v.SetDefault("graph.max_weight", d.Graph.MaxWeight)
	v.SetDefault("graph.file", d.Graph.File)
	v.SetDefault("graph.highways", d.Graph.Highways)
	v.SetDefault("search.degree", d.Search.Degree)
	v.SetDefault("search.initial_capacity", d.Search.InitialCapacity)
	v.SetDefault("search.load_factor", d.Search.LoadFactor)
	v.SetDefault("search.max_entries", d.Search.MaxEntries)
	v.SetDefault("bench.source", d.Bench.Source)
	v.SetDefault("bench.target", d.Bench.Target)
	v.SetDefault("bench.queries", d.Bench.Queries)
	v.SetDefault("bench.workers", d.Bench.Workers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("telemetry.enabled", d.Telemetry.Enabled)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"nodes":            "graph.nodes",
	"edges":            "graph.edges",
	"seed":             "graph.seed",
	"min-weight":       "graph.min_weight",
	"max-weight":       "graph.max_weight",
	"graph":            "graph.file",
	"highways":         "graph.highways",
	"degree":           "search.degree",
	"initial-capacity": "search.initial_capacity",
	"load-factor":      "search.load_factor",
	"max-entries":      "search.max_entries",
	"source":           "bench.source",
	"target":           "bench.target",
	"queries":          "bench.queries",
	"workers":          "bench.workers",
	"log-level":        "log.level",
	"log-format":       "log.format",
	"telemetry":        "telemetry.enabled",
	"otlp-endpoint":    "telemetry.endpoint",
}

// RegisterFlags defines the harness flags on fs with Default values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("nodes", d.Graph.Nodes, "vertex count of the random graph")
	fs.Int("edges", d.Graph.Edges, "edge draws of the random graph")
	fs.Int64("seed", d.Graph.Seed, "random seed (0 = time based)")
	fs.Float64("min-weight", d.Graph.MinWeight, "lower bound of random edge weights")
	fs.Float64("max-weight", d.Graph.MaxWeight, "upper bound (exclusive) of random edge weights")
	fs.String("graph", d.Graph.File, "load the graph from a YAML edge list or OSM extract")
	fs.StringSlice("highways", d.Graph.Highways, "OSM highway classes to keep")
	fs.Int("degree", d.Search.Degree, "heap branching factor")
	fs.Int("initial-capacity", d.Search.InitialCapacity, "initial capacity of search structures")
	fs.Float64("load-factor", d.Search.LoadFactor, "hash map load factor")
	fs.Int("max-entries", d.Search.MaxEntries, "per-structure entry limit (0 = unbounded)")
	fs.Int("source", d.Bench.Source, "source vertex (-1 = auto)")
	fs.Int("target", d.Bench.Target, "target vertex (-1 = auto)")
	fs.Int("queries", d.Bench.Queries, "random queries for the agreement sweep")
	fs.Int("workers", d.Bench.Workers, "concurrent query workers (0 = GOMAXPROCS)")
	fs.String("log-level", d.Log.Level, "debug, info, warn or error")
	fs.String("log-format", d.Log.Format, "text or json")
	fs.Bool("telemetry", d.Telemetry.Enabled, "export traces and metrics")
	fs.String("otlp-endpoint", d.Telemetry.Endpoint, "OTLP/HTTP endpoint URL (stdout when empty)")
}

// BindFlags binds every flag of fs that RegisterFlags defined.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Load resolves the configuration. An explicit path must exist; without
// one, FileName is looked up in "." and $HOME and may be absent.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
