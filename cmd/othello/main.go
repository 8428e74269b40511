package main

/*
Othello command line program

Modes:
  - play:     human against the engine, moves are read from stdin (e.g. "d3")
  - selfplay: engine against itself
  - random:   engine against a random mover
  - board:    print the position given by -position and its legal moves

Search limits come from flags, or from a JSON file given with -limits:

	{"depth": 8, "movetime": 2000, "threads": 4}
*/

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-othello/pkg/game"
	"github.com/IlikeChooros/go-othello/pkg/negamax"
	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/render"
)

type config struct {
	mode       string
	depth      int
	movetime   int
	nodes      uint64
	threads    int
	strategy   string
	color      string
	position   string
	svgPath    string
	limitsPath string
	logLevel   string
	seed       uint64
}

func parseFlags() config {
	var c config
	flag.StringVar(&c.mode, "mode", "play", "play, selfplay, random or board")
	flag.IntVar(&c.depth, "depth", negamax.DefaultDepth, "search depth in plies")
	flag.IntVar(&c.movetime, "movetime", negamax.DefaultMovetimeLimit, "time per move in ms, negative for no limit")
	flag.Uint64Var(&c.nodes, "nodes", negamax.DefaultNodeLimit, "node limit per move")
	flag.IntVar(&c.threads, "threads", 1, "goroutines searching the root moves")
	flag.StringVar(&c.strategy, "strategy", negamax.StrategyPVS.String(), "pvs, alphabeta or minimax")
	flag.StringVar(&c.color, "color", "black", "human's color in play mode")
	flag.StringVar(&c.position, "position", othello.StartingPosition, "starting position notation, black to move")
	flag.StringVar(&c.svgPath, "svg", "", "write the final board as SVG to this file")
	flag.StringVar(&c.limitsPath, "limits", "", "JSON file with search limits, overrides the limit flags")
	flag.StringVar(&c.logLevel, "log-level", "info", "trace, debug, info, warn or error")
	flag.Uint64Var(&c.seed, "seed", uint64(time.Now().UnixNano()), "seed of the random player")
	flag.Parse()
	return c
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}

func loadLimits(c config) (*negamax.Limits, error) {
	if c.limitsPath == "" {
		return negamax.DefaultLimits().
			SetDepth(c.depth).
			SetMovetime(c.movetime).
			SetNodes(c.nodes).
			SetThreads(c.threads), nil
	}

	f, err := os.Open(c.limitsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return negamax.LoadLimits(f)
}

func newEngine(c config, limits *negamax.Limits, log zerolog.Logger) (*negamax.Engine, error) {
	strategy, err := negamax.ParseStrategy(c.strategy)
	if err != nil {
		return nil, err
	}

	engine := negamax.NewEngine(negamax.WithStrategy(strategy), negamax.WithLogger(log))
	engine.SetLimits(limits)

	listener := negamax.NewStatsListener()
	listener.OnStop(func(stats negamax.ListenerStats) {
		log.Info().
			Int("depth", stats.Depth).
			Uint64("nodes", stats.Nodes).
			Uint64("nps", stats.Nps).
			Int("time", stats.TimeMs).
			Str("stop", stats.StopReason.String()).
			Msg("search")
	})
	engine.SetListener(listener)
	return engine, nil
}

func writeSVG(path string, pos othello.Position, whiteToMove bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.NewSVG(f).Render(pos, whiteToMove, 0)
}

func run(c config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start, err := othello.ParseNotation(c.position)
	if err != nil {
		return err
	}

	console := render.NewConsole(os.Stdout)
	if c.mode == "board" {
		if err := console.Render(start, false, start.LegalMoves()); err != nil {
			return err
		}
		fmt.Println(start.Notation())
		if c.svgPath != "" {
			return writeSVG(c.svgPath, start, false)
		}
		return nil
	}

	limits, err := loadLimits(c)
	if err != nil {
		return err
	}
	log.Debug().Str("limits", limits.String()).Msg("config")

	engine, err := newEngine(c, limits, log)
	if err != nil {
		return err
	}

	var black, white game.Player
	switch c.mode {
	case "play":
		human := game.NewHumanPlayer("human", os.Stdin, os.Stdout)
		black, white = human, game.NewEnginePlayer(engine)
		if c.color == "white" {
			black, white = white, black
		}
	case "selfplay":
		other, err := newEngine(c, limits, log)
		if err != nil {
			return err
		}
		black, white = game.NewEnginePlayer(engine), game.NewEnginePlayer(other)
	case "random":
		black, white = game.NewEnginePlayer(engine), game.NewRandomPlayer(c.seed)
	default:
		return fmt.Errorf("unknown mode %q", c.mode)
	}

	g := game.New(black, white,
		game.WithPosition(start, game.Black),
		game.WithRenderer(console),
		game.WithLogger(log),
	)

	outcome, err := g.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(outcome)
	fmt.Println(outcome.Record())
	if c.svgPath != "" {
		return writeSVG(c.svgPath, outcome.Position, outcome.ToMove == game.White)
	}
	return nil
}

func main() {
	c := parseFlags()

	log, err := newLogger(c.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(c, log); err != nil {
		log.Error().Err(err).Msg("othello")
		os.Exit(1)
	}
}
