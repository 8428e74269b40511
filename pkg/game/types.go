package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

var (
	ErrIllegalPlay = errors.New("game: player returned a position that isn't a legal child")
	ErrNoInput     = errors.New("game: input closed")
)

type Color int8

const (
	Draw  Color = iota - 1 // used only as a winner
	Black                  // moves first
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "draw"
}

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Outcome of a finished (or interrupted) game
type Outcome struct {
	Black    int // disc counts
	White    int
	Winner   Color
	Moves    []othello.Square // othello.SquarePass marks a pass
	Position othello.Position
	ToMove   Color // side to move in the final position
}

func newOutcome(pos othello.Position, toMove Color, moves []othello.Square) Outcome {
	mover, opponent := pos.Mover().Count(), pos.Opponent().Count()
	o := Outcome{Moves: moves, Position: pos, ToMove: toMove, Winner: Draw}

	if toMove == Black {
		o.Black, o.White = mover, opponent
	} else {
		o.Black, o.White = opponent, mover
	}

	switch {
	case o.Black > o.White:
		o.Winner = Black
	case o.White > o.Black:
		o.Winner = White
	}
	return o
}

// Winner's score as reported by the engine: 64 - 2*loser's discs
func (o Outcome) Margin() int {
	score := o.Position.ExactScore()
	if score < 0 {
		return -score
	}
	return score
}

// Move record, e.g. "d3 c5 pass f6"
func (o Outcome) Record() string {
	moves := make([]string, len(o.Moves))
	for i, m := range o.Moves {
		moves[i] = m.String()
	}
	return strings.Join(moves, " ")
}

func (o Outcome) String() string {
	if o.Winner == Draw {
		return fmt.Sprintf("black %d - white %d, draw", o.Black, o.White)
	}
	return fmt.Sprintf("black %d - white %d, %s wins", o.Black, o.White, o.Winner)
}
