package negamax

import (
	"cmp"
	"slices"
	"sync/atomic"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Static evaluation used at the horizon and for move ordering,
// from the mover's perspective
type Evaluator func(othello.Position) int

// Single-goroutine search state, the node counter is local to it
type searcher struct {
	strategy Strategy
	evaluate Evaluator
	limiter  LimiterLike
	shared   *atomic.Uint64 // nodes of all searchers, used by the node limit
	nodes    uint64
	stopped  bool
}

// Value of the position from its mover's perspective, searched 'depth' plies deep
// within (alpha, beta), fail-hard. Returns the number of visited nodes as well.
func Value(p othello.Position, alpha, beta, depth int, strategy Strategy) (int, uint64) {
	s := &searcher{strategy: strategy, evaluate: othello.Heuristic}
	return s.search(p, alpha, beta, depth), s.nodes
}

func (s *searcher) search(p othello.Position, alpha, beta, depth int) int {
	switch s.strategy {
	case StrategyAlphaBeta:
		return s.alphabeta(p, alpha, beta, depth)
	case StrategyMinimax:
		return s.minimax(p, depth)
	}
	return s.pvs(p, alpha, beta, depth)
}

// Count the node and check the limiter, true if the search must unwind
func (s *searcher) enter() bool {
	s.nodes++
	if s.limiter != nil && s.nodes&checkMask == 0 {
		total := s.shared.Add(checkInterval)
		s.stopped = !s.limiter.Ok(total)
	}
	return s.stopped
}

// Leaf and pass handling shared by all strategies. Returns (value, true) when
// the node is resolved without looking at its children.
func (s *searcher) leaf(p othello.Position, alpha, beta, depth int, children []othello.Position) (int, bool) {
	if len(children) != 0 {
		return 0, false
	}

	passed := p.Pass()
	if !passed.HasMoves() {
		return othello.TerminalValue(p), true
	}

	// Passing doesn't consume depth
	return -s.search(passed, -beta, -alpha, depth), true
}

func (s *searcher) horizon(p othello.Position) int {
	if p.IsTerminal() {
		return othello.TerminalValue(p)
	}
	return s.evaluate(p)
}

type orderedChild struct {
	pos othello.Position
	key int
}

// Sort children by their static value, lowest first (best for us, since it's
// the opponent's perspective)
func (s *searcher) order(children []othello.Position) []orderedChild {
	ordered := make([]orderedChild, len(children))
	for i, child := range children {
		ordered[i] = orderedChild{pos: child, key: s.evaluate(child)}
	}
	slices.SortStableFunc(ordered, func(a, b orderedChild) int {
		return cmp.Compare(a.key, b.key)
	})
	return ordered
}

func (s *searcher) pvs(p othello.Position, alpha, beta, depth int) int {
	if s.enter() {
		return 0
	}

	if depth == 0 {
		return s.horizon(p)
	}

	children := p.Children()
	if v, ok := s.leaf(p, alpha, beta, depth, children); ok {
		return v
	}

	for i, child := range s.order(children) {
		var v int
		if i == 0 {
			v = -s.pvs(child.pos, -beta, -alpha, depth-1)
		} else {
			// Null window probe, re-search only if it beats alpha
			v = -s.pvs(child.pos, -alpha-1, -alpha, depth-1)
			if v > alpha && v < beta {
				v = -s.pvs(child.pos, -beta, -v, depth-1)
			}
		}

		if s.stopped {
			return 0
		}

		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}

	return alpha
}

func (s *searcher) alphabeta(p othello.Position, alpha, beta, depth int) int {
	if s.enter() {
		return 0
	}

	if depth == 0 {
		return s.horizon(p)
	}

	children := p.Children()
	if v, ok := s.leaf(p, alpha, beta, depth, children); ok {
		return v
	}

	for _, child := range s.order(children) {
		v := -s.alphabeta(child.pos, -beta, -alpha, depth-1)
		if s.stopped {
			return 0
		}

		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}

	return alpha
}

func (s *searcher) minimax(p othello.Position, depth int) int {
	if s.enter() {
		return 0
	}

	if depth == 0 {
		return s.horizon(p)
	}

	children := p.Children()
	if v, ok := s.leaf(p, -Infinity, Infinity, depth, children); ok {
		return v
	}

	best := -Infinity - 1
	for _, child := range children {
		best = max(best, -s.minimax(child, depth-1))
	}

	if s.stopped {
		return 0
	}
	return best
}
