package othello

import "errors"

var (
	ErrInvalidMove      = errors.New("othello: move captures no discs")
	ErrOverlappingDiscs = errors.New("othello: square occupied by both sides")
	ErrInvalidSquare    = errors.New("othello: invalid square")
	ErrInvalidNotation  = errors.New("othello: invalid notation")
	ErrInvalidDiscCount = errors.New("othello: disc count must be between 4 and 64")
)

var ErrNoMoves = errors.New("othello: no legal moves")
