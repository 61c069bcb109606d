// Command routeplan loads a map and prints or serves shortest routes.
//
// Configuration comes from the environment (optionally a .env file in the
// working directory) and is overridden by flags:
//
//	ROUTEPLAN_POINTS          -points   points file
//	ROUTEPLAN_ROUTES          -routes   routes file
//	ROUTEPLAN_ADDR            -addr     listen address for -serve (default :8080)
//	ROUTEPLAN_MAX_EXPANSIONS  -max      expansion budget per search (0 = unlimited)
//
// Usage:
//
//	routeplan -points pontos.csv -routes rotas.csv -list
//	routeplan -points pontos.csv -routes rotas.csv -from '#NAT' -to '#REC'
//	routeplan -serve
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/planner"
	"github.com/katalvlaran/routeplan/server"
)

type config struct {
	points, routes string
	addr           string
	maxExpansions  int
	from, to       string
	list, serve    bool
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("ignoring .env: %v", err)
	}

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseConfig(args []string) (config, error) {
	maxExp := 0
	if v := os.Getenv("ROUTEPLAN_MAX_EXPANSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config{}, fmt.Errorf("ROUTEPLAN_MAX_EXPANSIONS: %w", err)
		}
		maxExp = n
	}

	var cfg config
	fs := flag.NewFlagSet("routeplan", flag.ContinueOnError)
	fs.StringVar(&cfg.points, "points", os.Getenv("ROUTEPLAN_POINTS"), "points file")
	fs.StringVar(&cfg.routes, "routes", os.Getenv("ROUTEPLAN_ROUTES"), "routes file")
	fs.StringVar(&cfg.addr, "addr", envOr("ROUTEPLAN_ADDR", ":8080"), "listen address for -serve")
	fs.IntVar(&cfg.maxExpansions, "max", maxExp, "expansion budget per search (0 = unlimited)")
	fs.StringVar(&cfg.from, "from", "", "origin point id, e.g. #NAT")
	fs.StringVar(&cfg.to, "to", "", "destination point id")
	fs.BoolVar(&cfg.list, "list", false, "print points and routes")
	fs.BoolVar(&cfg.serve, "serve", false, "serve the HTTP API")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.points == "" || cfg.routes == "" {
		return config{}, errors.New("routeplan: -points and -routes (or ROUTEPLAN_POINTS/ROUTEPLAN_ROUTES) are required")
	}
	if (cfg.from == "") != (cfg.to == "") {
		return config{}, errors.New("routeplan: -from and -to go together")
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	p := planner.New(astar.WithMaxExpansions(cfg.maxExpansions))
	if err := p.Load(cfg.points, cfg.routes); err != nil {
		return err
	}
	log.Printf("loaded %d points, %d routes", p.Graph().PointCount(), p.Graph().RouteCount())

	if cfg.list {
		if err := p.WritePoints(out); err != nil {
			return err
		}
		if err := p.WriteRoutes(out); err != nil {
			return err
		}
	}
	if cfg.from != "" {
		res, err := p.PlanContext(ctx, cfg.from, cfg.to)
		if err != nil && !errors.Is(err, astar.ErrNoPath) {
			return err
		}
		if err := planner.WritePath(out, res); err != nil {
			return err
		}
	}
	if cfg.serve {
		return server.New(p).Run(ctx, cfg.addr)
	}

	return nil
}
