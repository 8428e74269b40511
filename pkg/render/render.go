package render

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

var ErrInconsistentBoard = errors.New("render: inconsistent board")

// Renderer draws the board, 'moves' are marked as playable squares
type Renderer interface {
	Render(pos othello.Position, whiteToMove bool, moves othello.Bitboard) error
}

// Split the position into black and white discs, validating the move mask
func colors(pos othello.Position, whiteToMove bool, moves othello.Bitboard) (black, white othello.Bitboard, err error) {
	black, white = pos.Mover(), pos.Opponent()
	if whiteToMove {
		black, white = white, black
	}

	if black&white != 0 {
		return 0, 0, fmt.Errorf("%w: two discs on %v", ErrInconsistentBoard, (black & white).First())
	}
	if (black|white)&moves != 0 {
		return 0, 0, fmt.Errorf("%w: move on occupied square %v", ErrInconsistentBoard, ((black | white) & moves).First())
	}
	return black, white, nil
}
