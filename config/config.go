// Package config loads and validates gridstar run configuration from YAML.
//
// A file only needs the keys it overrides; everything else keeps the value
// from Default. Unknown keys are rejected.
//
//	map:
//	  size: 32
//	  wall_probability: 0.4
//	  seed: 7
//	  connectivity: "4"
//	search:
//	  heuristic: manhattan
//	  frontier: heap
//	render:
//	  delay: 50ms
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridstar/frontier"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/heuristic"
	"github.com/katalvlaran/gridstar/ledger"
	"github.com/katalvlaran/gridstar/mapgen"
	"github.com/katalvlaran/gridstar/pacing"
	"github.com/katalvlaran/gridstar/search"
)

// Sentinel errors for configuration.
var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrBadLayout indicates a malformed fixed map layout.
	ErrBadLayout = errors.New("config: bad map layout")
)

// Config is the complete run configuration.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Search  SearchConfig  `yaml:"search"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// MapConfig selects a random or fixed board.
type MapConfig struct {
	Size             int     `yaml:"size"`
	WallProbability  float64 `yaml:"wall_probability"`
	Seed             int64   `yaml:"seed"`
	Connectivity     string  `yaml:"connectivity"`
	RequireReachable bool    `yaml:"require_reachable"`
	MaxAttempts      int     `yaml:"max_attempts"`
	Style            string  `yaml:"style"`
	// Layout, when set, replaces the random board: '#' wall, '.' air,
	// 'S' start and 'G' goal (both on air).
	Layout []string `yaml:"layout,omitempty"`
}

// SearchConfig tunes the engine.
type SearchConfig struct {
	Heuristic     string `yaml:"heuristic"`
	Policy        string `yaml:"policy"`
	Frontier      string `yaml:"frontier"`
	MarkExpanded  bool   `yaml:"mark_expanded"`
	MaxIterations int    `yaml:"max_iterations"`
}

// RenderConfig controls frame output.
type RenderConfig struct {
	Delay        time.Duration `yaml:"delay"`
	Color        bool          `yaml:"color"`
	Quiet        bool          `yaml:"quiet"`
	PNGDir       string        `yaml:"png_dir"`
	PNGFinalOnly bool          `yaml:"png_final_only"`
	PNGScale     int           `yaml:"png_scale"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration of the classic run: a 64×64 board, half
// walls, 8-directional moves, Manhattan, a linear frontier and 250 ms frames.
func Default() Config {
	mc := mapgen.DefaultConfig()
	return Config{
		Map: MapConfig{
			Size:            mc.Size,
			WallProbability: mc.WallProbability,
			Seed:            mc.Seed,
			Connectivity:    mc.Connectivity.String(),
			MaxAttempts:     mc.MaxAttempts,
			Style:           mc.Style.String(),
		},
		Search: SearchConfig{
			Heuristic:    "manhattan",
			Policy:       ledger.NonStrict.String(),
			Frontier:     frontier.KindList.String(),
			MarkExpanded: true,
		},
		Render: RenderConfig{
			Delay:    pacing.DefaultDelay,
			Color:    true,
			PNGScale: 8,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(c.Map.Layout) == 0 {
		mc, err := c.MapgenConfig()
		add(err)
		if err == nil {
			add(mc.Validate())
		}
	} else {
		_, err := c.layoutMap()
		add(err)
		_, err = grid.ParseConnectivity(c.Map.Connectivity)
		add(err)
	}
	_, err := heuristic.ByName(c.Search.Heuristic)
	add(err)
	_, err = ledger.ParsePolicy(c.Search.Policy)
	add(err)
	_, err = frontier.ParseKind(c.Search.Frontier)
	add(err)
	if c.Search.MaxIterations < 0 {
		add(fmt.Errorf("search.max_iterations must be >= 0, got %d", c.Search.MaxIterations))
	}
	if c.Render.Delay < 0 {
		add(fmt.Errorf("render.delay must be >= 0, got %s", c.Render.Delay))
	}
	if c.Render.PNGScale < 1 {
		add(fmt.Errorf("render.png_scale must be >= 1, got %d", c.Render.PNGScale))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		add(err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		add(fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// MapgenConfig converts the map section for mapgen.Generate.
func (c Config) MapgenConfig() (mapgen.Config, error) {
	conn, err := grid.ParseConnectivity(c.Map.Connectivity)
	if err != nil {
		return mapgen.Config{}, err
	}
	style, err := mapgen.ParseStyle(c.Map.Style)
	if err != nil {
		return mapgen.Config{}, err
	}
	return mapgen.Config{
		Size:             c.Map.Size,
		WallProbability:  c.Map.WallProbability,
		Seed:             c.Map.Seed,
		Connectivity:     conn,
		RequireReachable: c.Map.RequireReachable,
		MaxAttempts:      c.Map.MaxAttempts,
		Style:            style,
	}, nil
}

// BuildMap returns the fixed layout when one is configured, otherwise a
// generated board.
func (c Config) BuildMap() (*mapgen.Map, error) {
	if len(c.Map.Layout) > 0 {
		return c.layoutMap()
	}
	mc, err := c.MapgenConfig()
	if err != nil {
		return nil, err
	}
	return mapgen.Generate(mc)
}

// layoutMap parses Map.Layout, locating exactly one 'S' and one 'G'. Every
// border cell must be a wall.
func (c Config) layoutMap() (*mapgen.Map, error) {
	conn, err := grid.ParseConnectivity(c.Map.Connectivity)
	if err != nil {
		conn = grid.Conn4
	}
	rows := make([]string, len(c.Map.Layout))
	var start, goal []grid.Pos
	for y, row := range c.Map.Layout {
		b := []byte(row)
		for x, ch := range b {
			switch ch {
			case 'S':
				start = append(start, grid.Pos{X: x, Y: y})
				b[x] = '.'
			case 'G':
				goal = append(goal, grid.Pos{X: x, Y: y})
				b[x] = '.'
			}
		}
		rows[y] = string(b)
	}
	if len(start) != 1 || len(goal) != 1 {
		return nil, fmt.Errorf("%w: want one S and one G, got %d and %d", ErrBadLayout, len(start), len(goal))
	}
	g, err := grid.Parse(rows, grid.WithConnectivity(conn))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadLayout, err)
	}
	n := g.Size()
	for i := 0; i < n*n; i++ {
		p := g.Coordinate(i)
		onBorder := p.X == 0 || p.Y == 0 || p.X == n-1 || p.Y == n-1
		if onBorder && g.State(p) != grid.Wall {
			return nil, fmt.Errorf("%w: border cell %s is not a wall", ErrBadLayout, p)
		}
	}
	return &mapgen.Map{Grid: g, Start: start[0], Goal: goal[0], Seed: c.Map.Seed, Attempts: 1}, nil
}

// SearchOptions converts the search section into engine options.
// Renderer, pacer, logger and metrics are wired by the caller.
func (c Config) SearchOptions() ([]search.Option, error) {
	h, err := heuristic.ByName(c.Search.Heuristic)
	if err != nil {
		return nil, err
	}
	p, err := ledger.ParsePolicy(c.Search.Policy)
	if err != nil {
		return nil, err
	}
	k, err := frontier.ParseKind(c.Search.Frontier)
	if err != nil {
		return nil, err
	}
	return []search.Option{
		search.WithHeuristic(h),
		search.WithPolicy(p),
		search.WithFrontier(k),
		search.WithMarkExpanded(c.Search.MarkExpanded),
		search.WithMaxIterations(c.Search.MaxIterations),
	}, nil
}

// ParseLevel maps debug, info, warn and error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

// Logger builds the slog logger described by the log section.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(c.Log.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
