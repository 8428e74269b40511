package negamax

import "errors"

var ErrNoLegalMoves = errors.New("negamax: position has no legal moves")

// Search window bound, larger than any reachable score (1000 * 64)
const Infinity = 64000

// Default search depth, in plies
const DefaultDepth = 6

// The limiter is consulted once every 'checkInterval' nodes
const (
	checkInterval uint64 = 1024
	checkMask            = checkInterval - 1
)

type Strategy int

const (
	// Alpha-beta with principal variation search (null window probes after
	// the first child), the default
	StrategyPVS Strategy = iota

	// Plain fail-hard alpha-beta, every child searched with the full window
	StrategyAlphaBeta

	// Unpruned negamax, visits every node up to the depth.
	// Reference implementation, way too slow for real games
	StrategyMinimax
)

func (s Strategy) String() string {
	switch s {
	case StrategyPVS:
		return "pvs"
	case StrategyAlphaBeta:
		return "alphabeta"
	case StrategyMinimax:
		return "minimax"
	}
	return "unknown"
}

// Parse strategy by its name, as returned by String
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{StrategyPVS, StrategyAlphaBeta, StrategyMinimax} {
		if s.String() == name {
			return s, nil
		}
	}
	return StrategyPVS, errors.New("negamax: unknown strategy " + name)
}
