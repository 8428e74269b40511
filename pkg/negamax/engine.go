package negamax

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Engine picks a move by searching every root move to a fixed depth.
// It's not safe for concurrent use, create one engine per goroutine.
type Engine struct {
	Limiter  LimiterLike
	listener StatsListener
	strategy Strategy
	evaluate Evaluator
	log      zerolog.Logger
	nodes    atomic.Uint64
	result   Result
}

type Option func(*Engine)

func WithStrategy(strategy Strategy) Option {
	return func(e *Engine) { e.strategy = strategy }
}

// Replace the static evaluation (othello.Heuristic by default)
func WithEvaluator(evaluate Evaluator) Option {
	return func(e *Engine) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Limiter:  NewLimiter(),
		listener: NewStatsListener(),
		strategy: StrategyPVS,
		evaluate: othello.Heuristic,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result of a root search
type Result struct {
	Best       othello.Position // position after the chosen move
	Move       othello.Square
	Score      int // from the searched position's mover perspective
	Depth      int
	Nodes      uint64
	TimeMs     uint32
	Nps        uint64
	StopReason StopReason
	Lines      []Line // scored root moves, in increasing square order
}

func (r Result) String() string {
	return fmt.Sprintf("move %s score %d depth %d nodes %d nps %d time %dms stop %s",
		r.Move, r.Score, r.Depth, r.Nodes, r.Nps, r.TimeMs, r.StopReason)
}

// Whether all root moves were searched
func (r Result) Complete() bool {
	return r.StopReason == StopNone
}

func (e *Engine) SetLimits(limits *Limits) {
	e.Limiter.SetLimits(limits)
}

func (e *Engine) Limits() *Limits {
	return e.Limiter.Limits()
}

// Adds custom context to the limiter, enabling cancellation through it
func (e *Engine) SetContext(ctx context.Context) {
	e.Limiter.SetContext(ctx)
}

func (e *Engine) SetListener(listener StatsListener) {
	e.listener = listener
}

func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Stop the running search, it will return the best of the fully searched moves
func (e *Engine) Stop() {
	e.Limiter.SetStop(true)
}

// Result of the last search
func (e *Engine) LastResult() Result {
	return e.result
}

// Choose the best move, returns the position after it.
// Fails with ErrNoLegalMoves if the mover has to pass.
func (e *Engine) ChooseMove(p othello.Position) (othello.Position, error) {
	result, err := e.Search(p)
	if err != nil {
		return p, err
	}
	return result.Best, nil
}

func (e *Engine) newSearcher() *searcher {
	return &searcher{
		strategy: e.strategy,
		evaluate: e.evaluate,
		limiter:  e.Limiter,
		shared:   &e.nodes,
	}
}

// Score of a root move, 'done' is false if the search was interrupted
type rootScore struct {
	score int
	nodes uint64
	done  bool
}

// Search every root move with the full window and pick the highest score,
// ties keep the move with the lowest square index
func (e *Engine) Search(p othello.Position) (Result, error) {
	moves := p.LegalMoves().Squares()
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoLegalMoves, p.Notation())
	}

	children := p.Children()
	limits := e.Limiter.Limits()
	depth := max(limits.Depth, 1)

	e.Limiter.Reset()
	e.nodes.Store(0)

	var scores []rootScore
	if limits.NThreads > 1 && len(children) > 1 {
		scores = e.searchParallel(children, moves, depth, limits.NThreads)
	} else {
		scores = e.searchSequential(children, moves, depth)
	}

	result := Result{
		Best:  children[0],
		Move:  moves[0],
		Score: -Infinity,
		Depth: depth,
		Lines: make([]Line, 0, len(children)),
	}

	best, interrupted := -1, false
	for i, s := range scores {
		result.Nodes += s.nodes
		if !s.done {
			interrupted = true
			continue
		}

		result.Lines = append(result.Lines, Line{Move: moves[i], Score: s.score, Nodes: s.nodes})
		if best < 0 || s.score > result.Score {
			best = i
			result.Best, result.Move, result.Score = children[i], moves[i], s.score
		}
	}

	if interrupted {
		e.Limiter.EvaluateStopReason(e.nodes.Load())
	}
	result.StopReason = e.Limiter.StopReason()
	result.TimeMs = e.Limiter.Elapsed()
	result.Nps = result.Nodes * 1000 / uint64(max(result.TimeMs, 1))
	if best < 0 {
		// Interrupted before any move was searched, fall back to the first one
		result.Score = 0
	}

	e.result = result
	e.listener.invoke(e.listener.onStop, e.stats(result.Lines, result.Nodes))
	e.log.Debug().
		Str("move", result.Move.String()).
		Int("score", result.Score).
		Int("depth", depth).
		Uint64("nodes", result.Nodes).
		Uint64("nps", result.Nps).
		Str("stop", result.StopReason.String()).
		Msg("search-done")

	return result, nil
}

func (e *Engine) searchSequential(children []othello.Position, moves []othello.Square, depth int) []rootScore {
	scores := make([]rootScore, len(children))
	s := e.newSearcher()
	lines := make([]Line, 0, len(children))
	var total uint64

	for i, child := range children {
		before := s.nodes
		v := -s.search(child, -Infinity, Infinity, depth-1)
		scores[i].nodes = s.nodes - before
		total += scores[i].nodes
		if s.stopped {
			break
		}

		scores[i].score, scores[i].done = v, true
		lines = append(lines, Line{Move: moves[i], Score: v, Nodes: scores[i].nodes})
		e.logChild(i, len(children), lines[len(lines)-1])
		e.listener.invoke(e.listener.onChild, e.stats(lines, total))
	}

	return scores
}

// Every root move is searched on its own goroutine (at most 'threads' at once),
// listener and logs are invoked in root move order after all of them finish
func (e *Engine) searchParallel(children []othello.Position, moves []othello.Square, depth, threads int) []rootScore {
	scores := make([]rootScore, len(children))
	g := errgroup.Group{}
	g.SetLimit(threads)

	for i, child := range children {
		g.Go(func() error {
			if !e.Limiter.Ok(e.nodes.Load()) {
				return nil
			}
			s := e.newSearcher()
			v := -s.search(child, -Infinity, Infinity, depth-1)
			scores[i] = rootScore{score: v, nodes: s.nodes, done: !s.stopped}
			return nil
		})
	}
	_ = g.Wait()

	lines := make([]Line, 0, len(children))
	var total uint64
	for i, m := range moves {
		total += scores[i].nodes
		if !scores[i].done {
			continue
		}
		lines = append(lines, Line{Move: m, Score: scores[i].score, Nodes: scores[i].nodes})
		e.logChild(i, len(children), lines[len(lines)-1])
		e.listener.invoke(e.listener.onChild, e.stats(lines, total))
	}

	return scores
}

func (e *Engine) logChild(i, n int, line Line) {
	e.log.Debug().
		Int("child", i+1).
		Int("of", n).
		Str("move", line.Move.String()).
		Int("score", line.Score).
		Uint64("nodes", line.Nodes).
		Msg("root-move")
}

func (e *Engine) stats(lines []Line, nodes uint64) ListenerStats {
	timeMs := int(e.Limiter.Elapsed())
	return ListenerStats{
		Depth:      max(e.Limiter.Limits().Depth, 1),
		Nodes:      nodes,
		TimeMs:     timeMs,
		Nps:        nodes * 1000 / uint64(max(timeMs, 1)),
		Lines:      lines,
		StopReason: e.Limiter.StopReason(),
	}
}
