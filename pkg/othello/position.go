package othello

import (
	"fmt"
	"strings"
)

// Position is an immutable othello position, always seen from the side to move:
// 'mover' are the discs of the player to act, 'opponent' the discs of the other one.
// Every move returns a new position, already from the next player's perspective.
type Position struct {
	mover    Bitboard
	opponent Bitboard
}

// Create the starting position, black (the mover) on e4 and d5, white on d4 and e5
func NewPosition() Position {
	return Position{
		mover:    SquareE4.Bitboard() | SquareD5.Bitboard(),
		opponent: SquareD4.Bitboard() | SquareE5.Bitboard(),
	}
}

// Create position from given discs, returns ErrOverlappingDiscs if any square
// belongs to both sides
func NewPositionFrom(mover, opponent Bitboard) (Position, error) {
	if mover&opponent != 0 {
		return Position{}, fmt.Errorf("%w: %s", ErrOverlappingDiscs, (mover & opponent).First())
	}
	return Position{mover: mover, opponent: opponent}, nil
}

func (p Position) Mover() Bitboard {
	return p.mover
}

func (p Position) Opponent() Bitboard {
	return p.opponent
}

func (p Position) Occupied() Bitboard {
	return p.mover | p.opponent
}

func (p Position) Empty() Bitboard {
	return ^(p.mover | p.opponent)
}

func (p Position) CountDiscs() int {
	return p.Occupied().Count()
}

// Make a move on given square, flipping the captured discs and handing the turn
// to the other side. Returns ErrInvalidMove if the square captures nothing.
func (p Position) Apply(sq Square) (Position, error) {
	captured := p.Captures(sq)
	if captured == 0 {
		return p, fmt.Errorf("%w: %s", ErrInvalidMove, sq)
	}
	return p.apply(sq, captured), nil
}

func (p Position) apply(sq Square, captured Bitboard) Position {
	return Position{
		mover:    p.opponent ^ captured,
		opponent: (p.mover ^ captured) | sq.Bitboard(),
	}
}

// Generate all positions reachable with one move, ordered by increasing square index
func (p Position) Children() []Position {
	moves := p.LegalMoves()
	children := make([]Position, 0, moves.Count())
	for moves != 0 {
		sq := moves.First()
		children = append(children, p.apply(sq, p.Captures(sq)))
		moves &= moves - 1
	}
	return children
}

// Hand the turn to the other side without placing a disc
func (p Position) Pass() Position {
	return Position{mover: p.opponent, opponent: p.mover}
}

func (p Position) HasMoves() bool {
	return p.LegalMoves() != 0
}

// Neither side can move, the game is over
func (p Position) IsTerminal() bool {
	return !p.HasMoves() && !p.Pass().HasMoves()
}

// Disc differential of a finished game from the mover's perspective,
// the leader is credited with all the empty squares
func (p Position) ExactScore() int {
	m, o := p.mover.Count(), p.opponent.Count()
	switch {
	case m > o:
		return NumSquares - 2*o
	case m < o:
		return -NumSquares + 2*m
	}
	return 0
}

func (p Position) CornerDifference() int {
	return (p.mover & CornersBB).Count() - (p.opponent & CornersBB).Count()
}

// Number of empty squares next to opponent's discs minus the number
// of empty squares next to mover's discs
func (p Position) PotentialMovesDifference() int {
	empty := p.Empty()
	return potentialMoves(p.opponent, empty).Count() - potentialMoves(p.mover, empty).Count()
}

// Empty squares 8-adjacent to any of given discs
func potentialMoves(discs, empty Bitboard) Bitboard {
	around := (discs & NotFileHBB) << 1
	around |= (discs & NotFileABB) >> 1
	around |= (discs & NotFileHBB) << 9
	around |= (discs & NotFileABB) >> 9
	around |= (discs & NotFileABB) << 7
	around |= (discs & NotFileHBB) >> 7
	around |= discs << 8
	around |= discs >> 8
	return around & empty
}

// 8x8 grid, rank 1 on top: 'x' mover, 'o' opponent, '.' empty
func (p Position) String() string {
	builder := strings.Builder{}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sq := NewSquare(file, rank)
			switch {
			case p.mover.Occupied(sq):
				builder.WriteByte('x')
			case p.opponent.Occupied(sq):
				builder.WriteByte('o')
			default:
				builder.WriteByte('.')
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
