// Command gridstar-view animates a search in a window, one expansion per tick.
//
// Keys:
//
//	Space  pause / resume
//	N      single step while paused
//	R      new map (next seed); replays a fixed layout
//	Q, Esc quit
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/katalvlaran/gridstar/config"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/render"
	"github.com/katalvlaran/gridstar/search"
)

const (
	maxTPS     = 60
	statusRows = 3 // text lines under the board
	lineHeight = 16
	fontSize   = 12
)

// loadFace builds the status font from the embedded Go Regular TTF.
func loadFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size, Direction: text.DirectionLeftToRight}, nil
}

// session is one map and the engine searching it.
type session struct {
	engine *search.Engine
	frame  render.Frame
	seed   int64
	fixed  bool // map comes from a configured layout
}

// newSession builds the map for cfg and an engine whose frames land in the session.
func newSession(cfg config.Config, logger *slog.Logger) (*session, error) {
	m, err := cfg.BuildMap()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.SearchOptions()
	if err != nil {
		return nil, err
	}
	s := &session{seed: m.Seed, fixed: len(cfg.Map.Layout) > 0}
	opts = append(opts,
		search.WithLogger(logger),
		search.WithRenderer(render.Func(func(f render.Frame) error {
			s.frame = f
			return nil
		})),
	)
	if s.engine, err = search.New(m.Grid, m.Start, m.Goal, opts...); err != nil {
		return nil, err
	}
	s.frame = s.engine.Frame()
	return s, nil
}

// step advances the engine once unless it already finished.
func (s *session) step() error {
	if s.engine.Status().Done() {
		return nil
	}
	_, err := s.engine.Step()
	return err
}

// status renders the lines shown under the board.
func (s *session) status(paused bool) []string {
	res := s.engine.Result()
	state := res.Status.String()
	switch res.Status {
	case search.GoalReached:
		state = fmt.Sprintf("Goal reached - Steps: %d", res.Steps)
	case search.Exhausted:
		state = "Can't reach"
	}
	if paused {
		state += " (paused)"
	}
	source, keys := fmt.Sprintf("seed %d", s.seed), "space pause  n step  r new map  q quit"
	if s.fixed {
		source, keys = "layout", "space pause  n step  r replay  q quit"
	}
	return []string{
		fmt.Sprintf("%s  iteration %d  frontier %d", source, res.Iterations, s.engine.FrontierLen()),
		state,
		keys,
	}
}

// Game implements ebiten.Game.
type Game struct {
	cfg    config.Config
	logger *slog.Logger
	cell   int
	s      *session
	paused bool

	face     *text.GoTextFace
	drawOpts text.DrawOptions
}

// Update handles input and advances the search one expansion per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return err
		}
	}
	if g.paused && !inpututil.IsKeyJustPressed(ebiten.KeyN) {
		return nil
	}
	return g.s.step()
}

// restart starts a new session. Generated maps advance to the next seed; a
// fixed layout is replayed as is.
func (g *Game) restart() error {
	if !g.s.fixed {
		g.cfg.Map.Seed++
	}
	s, err := newSession(g.cfg, g.logger)
	if err != nil {
		return err
	}
	g.s = s
	return nil
}

// Draw paints one rectangle per cell and the status lines.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	f := g.s.frame
	n := f.Grid.Size()
	px := float32(g.cell)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := render.CellColor(f, grid.Pos{X: x, Y: y})
			vector.DrawFilledRect(screen, float32(x)*px, float32(y)*px, px-1, px-1, c, false)
		}
	}
	for i, line := range g.s.status(g.paused) {
		g.drawOpts.GeoM.Reset()
		g.drawOpts.GeoM.Translate(4, float64(n*g.cell+4+i*lineHeight))
		g.drawOpts.ColorScale.Reset()
		g.drawOpts.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, g.face, &g.drawOpts)
	}
}

// Layout keeps a fixed logical size; the window scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return screenSize(g.s.frame.Grid.Size(), g.cell)
}

// screenSize is the board plus room for the status lines.
func screenSize(n, cell int) (int, int) {
	w := n * cell
	if w < 320 {
		w = 320
	}
	return w, n*cell + statusRows*lineHeight + 8
}

// ticksPerSecond converts a frame delay into an ebiten TPS in [1, maxTPS].
func ticksPerSecond(delay time.Duration) int {
	if delay <= 0 {
		return maxTPS
	}
	tps := int(time.Second / delay)
	switch {
	case tps < 1:
		return 1
	case tps > maxTPS:
		return maxTPS
	}
	return tps
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "map seed")
	cell := flag.Int("cell", 10, "cell size in pixels")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	} else {
		cfg.Map.Seed = *seed
	}
	logger := cfg.Logger(os.Stderr)

	s, err := newSession(cfg, logger)
	if err != nil {
		logger.Error("new session", slog.Any("err", err))
		os.Exit(2)
	}
	face, err := loadFace(fontSize)
	if err != nil {
		logger.Error("font", slog.Any("err", err))
		os.Exit(1)
	}
	g := &Game{cfg: cfg, logger: logger, cell: *cell, s: s, face: face}

	w, h := screenSize(s.frame.Grid.Size(), *cell)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("gridstar")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticksPerSecond(cfg.Render.Delay))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer", slog.Any("err", err))
		os.Exit(1)
	}
}
