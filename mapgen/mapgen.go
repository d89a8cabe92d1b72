package mapgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gridstar/bfs"
	"github.com/katalvlaran/gridstar/grid"
)

// Sentinel errors for map generation.
var (
	// ErrBadSize indicates a board side below 1.
	ErrBadSize = errors.New("mapgen: size must be >= 1")

	// ErrBadProbability indicates a wall probability outside [0, 1].
	ErrBadProbability = errors.New("mapgen: wall probability must be within [0, 1]")

	// ErrBadAttempts indicates MaxAttempts < 1.
	ErrBadAttempts = errors.New("mapgen: max attempts must be >= 1")

	// ErrUnreachable indicates that no attempt produced a reachable goal.
	ErrUnreachable = errors.New("mapgen: goal unreachable after all attempts")
)

// Defaults used by DefaultConfig.
const (
	DefaultSize            = 64
	DefaultWallProbability = 0.5
	DefaultSeed            = 1
)

// Config drives Generate.
type Config struct {
	// Size is the board side N, border included.
	Size int
	// WallProbability is the chance that an interior cell becomes a Wall.
	WallProbability float64
	// Seed feeds the random stream; the same seed yields the same map.
	Seed int64
	// Connectivity is applied to the generated grid.
	Connectivity grid.Connectivity
	// RequireReachable retries generation until the goal is reachable from the start.
	RequireReachable bool
	// MaxAttempts bounds the retries when RequireReachable is set.
	MaxAttempts int
	// Style picks random walls or a maze. WallProbability is ignored for mazes.
	Style Style
}

// DefaultConfig returns a 64×64 board, half walls, 8-directional moves and a
// single attempt.
func DefaultConfig() Config {
	return Config{
		Size:            DefaultSize,
		WallProbability: DefaultWallProbability,
		Seed:            DefaultSeed,
		Connectivity:    grid.Conn8,
		MaxAttempts:     1,
	}
}

// Validate reports the first configuration error.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: got %d", ErrBadSize, c.Size)
	}
	if math.IsNaN(c.WallProbability) || c.WallProbability < 0 || c.WallProbability > 1 {
		return fmt.Errorf("%w: got %v", ErrBadProbability, c.WallProbability)
	}
	if c.Style == StyleMaze && c.Size < 3 {
		return fmt.Errorf("%w: a maze needs size >= 3, got %d", ErrBadSize, c.Size)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: got %d", ErrBadAttempts, c.MaxAttempts)
	}
	return nil
}

// Map is a generated board with its endpoints.
type Map struct {
	Grid  *grid.Grid
	Start grid.Pos
	Goal  grid.Pos
	// Seed is the seed of the attempt that produced this map.
	Seed int64
	// Attempts counts the boards generated, this one included.
	Attempts int
}

// Generate builds a map from cfg.
// With RequireReachable, attempt k > 0 reseeds with deriveSeed(cfg.Seed, k)
// and ErrUnreachable is returned once MaxAttempts boards were rejected.
func Generate(cfg Config) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		seed := cfg.Seed
		if attempt > 0 {
			seed = deriveSeed(cfg.Seed, uint64(attempt))
		}
		gen := generate
		if cfg.Style == StyleMaze {
			gen = generateMaze
		}
		m, err := gen(cfg, seed)
		if err != nil {
			return nil, err
		}
		m.Attempts = attempt + 1
		if !cfg.RequireReachable || bfs.Reachable(m.Grid, m.Start, m.Goal) {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%w: %d attempts from seed %d", ErrUnreachable, cfg.MaxAttempts, cfg.Seed)
}

// generate performs one attempt with the given seed.
func generate(cfg Config, seed int64) (*Map, error) {
	g, err := grid.New(cfg.Size, grid.WithConnectivity(cfg.Connectivity))
	if err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(seed))

	lo, hi := 0, cfg.Size
	if cfg.Size >= 3 {
		lo, hi = 1, cfg.Size-1
	}
	pick := func() int { return lo + r.Intn(hi-lo) }
	start := grid.Pos{X: pick(), Y: pick()}
	goal := grid.Pos{X: pick(), Y: pick()}

	for x := 1; x < cfg.Size-1; x++ {
		for y := 1; y < cfg.Size-1; y++ {
			if r.Float64() < cfg.WallProbability {
				g.SetWall(grid.Pos{X: x, Y: y}, true)
			}
		}
	}
	g.SetWall(start, false)
	g.SetWall(goal, false)

	return &Map{Grid: g, Start: start, Goal: goal, Seed: seed}, nil
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
