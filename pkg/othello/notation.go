package othello

import (
	"fmt"
	"strconv"
	"strings"
)

const StartingPosition = "startpos"

// Position as 32 hex digits: 16 for the mover's discs, then 16 for the opponent's
func (p Position) Notation() string {
	return fmt.Sprintf("%016x%016x", uint64(p.mover), uint64(p.opponent))
}

// Parse the position from its hex notation, "startpos" gives the starting position
func ParseNotation(notation string) (Position, error) {
	notation = strings.TrimSpace(notation)
	if notation == StartingPosition {
		return NewPosition(), nil
	}

	if len(notation) != 32 {
		return Position{}, fmt.Errorf("%w: expected 32 hex digits, got %d characters", ErrInvalidNotation, len(notation))
	}

	mover, err := strconv.ParseUint(notation[:16], 16, 64)
	if err != nil {
		return Position{}, fmt.Errorf("%w: mover: %v", ErrInvalidNotation, err)
	}

	opponent, err := strconv.ParseUint(notation[16:], 16, 64)
	if err != nil {
		return Position{}, fmt.Errorf("%w: opponent: %v", ErrInvalidNotation, err)
	}

	return NewPositionFrom(Bitboard(mover), Bitboard(opponent))
}
