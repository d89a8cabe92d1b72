// Command gridstar generates a random obstacle map, runs A* from a random
// start to a random goal and animates every expansion in the terminal.
//
// Usage:
//
//	gridstar [-config run.yaml] [-seed 7] [-size 64] [-walls 0.5] [-conn 8] [-style random]
//	         [-heuristic manhattan] [-policy non-strict] [-frontier list]
//	         [-delay 250ms] [-quiet] [-no-color] [-png-dir frames]
//	         [-log-level info] [-metrics-addr :9090] [-verify]
//
// Flags override values loaded from -config. Exit status is 0 when the search
// finishes (goal reached or not), 2 for invalid configuration and 1 for
// runtime failures.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridstar/config"
	"github.com/katalvlaran/gridstar/dijkstra"
	"github.com/katalvlaran/gridstar/heuristic"
	"github.com/katalvlaran/gridstar/mapgen"
	"github.com/katalvlaran/gridstar/metrics"
	"github.com/katalvlaran/gridstar/pacing"
	"github.com/katalvlaran/gridstar/render"
	"github.com/katalvlaran/gridstar/render/console"
	"github.com/katalvlaran/gridstar/render/pngframe"
	"github.com/katalvlaran/gridstar/search"
)

// Exit codes.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags mirrors the overridable config keys.
type flags struct {
	configPath  string
	seed        int64
	size        int
	walls       float64
	conn        string
	reachable   bool
	style       string
	heuristic   string
	policy      string
	frontier    string
	delay       time.Duration
	quiet       bool
	noColor     bool
	pngDir      string
	pngFinal    bool
	logLevel    string
	logFormat   string
	metricsAddr string
	verify      bool
}

func parseFlags(args []string, stderr io.Writer) (flags, *flag.FlagSet, error) {
	def := config.Default()
	var f flags
	fs := flag.NewFlagSet("gridstar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.Int64Var(&f.seed, "seed", time.Now().UnixNano(), "map seed (default: current time)")
	fs.IntVar(&f.size, "size", def.Map.Size, "board side including the border")
	fs.Float64Var(&f.walls, "walls", def.Map.WallProbability, "probability that an interior cell is a wall")
	fs.StringVar(&f.conn, "conn", def.Map.Connectivity, "neighbour connectivity: 4 or 8")
	fs.StringVar(&f.style, "style", def.Map.Style, "map style: random or maze")
	fs.BoolVar(&f.reachable, "reachable", false, "regenerate until the goal is reachable")
	fs.StringVar(&f.heuristic, "heuristic", def.Search.Heuristic, "heuristic: "+strings.Join(heuristic.Names(), ", "))
	fs.StringVar(&f.policy, "policy", def.Search.Policy, "closed-set tie policy: non-strict or strict")
	fs.StringVar(&f.frontier, "frontier", def.Search.Frontier, "open-set implementation: list or heap")
	fs.DurationVar(&f.delay, "delay", def.Render.Delay, "pause between frames")
	fs.BoolVar(&f.quiet, "quiet", false, "print only the outcome")
	fs.BoolVar(&f.noColor, "no-color", false, "disable ANSI colours")
	fs.StringVar(&f.pngDir, "png-dir", "", "also write frames as PNG files into this directory")
	fs.BoolVar(&f.pngFinal, "png-final", false, "with -png-dir, write only the final frame")
	fs.StringVar(&f.logLevel, "log-level", def.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", def.Log.Format, "log format: text or json")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.BoolVar(&f.verify, "verify", false, "compare the path cost with Dijkstra's optimum")
	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}
	return f, fs, nil
}

// loadConfig reads -config (or the defaults) and applies every flag the user set.
func loadConfig(f flags, fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}
	seedSet := false
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Map.Seed, seedSet = f.seed, true
		case "size":
			cfg.Map.Size = f.size
		case "walls":
			cfg.Map.WallProbability = f.walls
		case "conn":
			cfg.Map.Connectivity = f.conn
		case "style":
			cfg.Map.Style = f.style
		case "reachable":
			cfg.Map.RequireReachable = f.reachable
			if f.reachable && cfg.Map.MaxAttempts < 100 {
				cfg.Map.MaxAttempts = 100
			}
		case "heuristic":
			cfg.Search.Heuristic = f.heuristic
		case "policy":
			cfg.Search.Policy = f.policy
		case "frontier":
			cfg.Search.Frontier = f.frontier
		case "delay":
			cfg.Render.Delay = f.delay
		case "quiet":
			cfg.Render.Quiet = f.quiet
		case "no-color":
			cfg.Render.Color = !f.noColor
		case "png-dir":
			cfg.Render.PNGDir = f.pngDir
		case "png-final":
			cfg.Render.PNGFinalOnly = f.pngFinal
		case "log-level":
			cfg.Log.Level = f.logLevel
		case "log-format":
			cfg.Log.Format = f.logFormat
		case "metrics-addr":
			cfg.Metrics.Addr = f.metricsAddr
		}
	})
	// a run without a configured seed gets a fresh map each time
	if !seedSet && f.configPath == "" {
		cfg.Map.Seed = f.seed
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}
	cfg, err := loadConfig(f, fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	logger := cfg.Logger(stderr)

	m, err := cfg.BuildMap()
	if err != nil {
		logger.Error("build map", slog.Any("err", err))
		return exitConfig
	}
	logger.Info("map ready",
		slog.Int64("seed", m.Seed),
		slog.Int("size", m.Grid.Size()),
		slog.String("connectivity", m.Grid.Connectivity().String()),
		slog.String("start", m.Start.String()),
		slog.String("goal", m.Goal.String()),
		slog.Int("attempts", m.Attempts),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(reg)
	if cfg.Metrics.Addr != "" {
		shutdown, err := serveMetrics(cfg.Metrics.Addr, reg, logger)
		if err != nil {
			logger.Error("metrics listener", slog.Any("err", err))
			return exitRuntime
		}
		defer shutdown()
	}

	var copts []console.Option
	if !cfg.Render.Color {
		copts = append(copts, console.WithNoColor())
	}
	con := console.New(stdout, copts...)

	renderers := []render.Renderer{}
	if !cfg.Render.Quiet {
		renderers = append(renderers, con)
	}
	if cfg.Render.PNGDir != "" {
		popts := []pngframe.Option{pngframe.WithScale(cfg.Render.PNGScale)}
		if cfg.Render.PNGFinalOnly {
			popts = append(popts, pngframe.FinalOnly())
		}
		pw, err := pngframe.New(cfg.Render.PNGDir, popts...)
		if err != nil {
			logger.Error("png output", slog.Any("err", err))
			return exitConfig
		}
		renderers = append(renderers, pw)
	}

	sopts, err := cfg.SearchOptions()
	if err != nil {
		logger.Error("search options", slog.Any("err", err))
		return exitConfig
	}
	var pacer search.Pacer = pacing.None{}
	if !cfg.Render.Quiet && cfg.Render.Delay > 0 {
		pacer = pacing.NewDelay(cfg.Render.Delay)
	}
	sopts = append(sopts,
		search.WithRenderer(render.Multi(renderers...)),
		search.WithPacer(pacer),
		search.WithLogger(logger),
		search.WithMetrics(rec),
	)

	// the engine marks its own copy; the generated map stays clean for -verify
	e, err := search.New(m.Grid.Snapshot(), m.Start, m.Goal, sopts...)
	if err != nil {
		logger.Error("new search", slog.Any("err", err))
		return exitConfig
	}
	res, err := e.Run(ctx)
	if err != nil {
		logger.Error("search", slog.Any("err", err), slog.String("run_id", res.RunID))
		return exitRuntime
	}

	switch res.Status {
	case search.GoalReached:
		err = con.ReportGoal(res.Steps)
	case search.Exhausted:
		err = con.ReportExhausted()
	}
	if err != nil {
		logger.Error("report", slog.Any("err", err))
		return exitRuntime
	}

	if f.verify {
		verify(logger, cfg.Search.Heuristic, m, res)
	}
	return exitOK
}

// verify logs the Dijkstra optimum next to the A* cost. An admissible
// heuristic that misses the optimum is reported as an error.
func verify(logger *slog.Logger, hname string, m *mapgen.Map, res search.Result) {
	want, err := dijkstra.Distance(m.Grid, m.Start, m.Goal)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		logger.Info("verify", slog.String("dijkstra", "unreachable"), slog.String("astar", res.Status.String()))
		return
	case err != nil:
		logger.Error("verify", slog.Any("err", err))
		return
	}
	attrs := []any{
		slog.Int("dijkstra_cost", want),
		slog.Int("astar_cost", res.Cost),
		slog.String("heuristic", hname),
		slog.Bool("admissible", heuristic.Admissible(hname)),
	}
	if heuristic.Admissible(hname) && res.Cost != want {
		logger.Error("verify: path is not optimal", attrs...)
		return
	}
	logger.Info("verify", attrs...)
}

// serveMetrics exposes reg on addr until the returned shutdown is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", slog.Any("err", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
