package othello

import (
	"fmt"
	"strings"
)

// Index of a square on the board, bit i of a bitboard is square i,
// file (a-h) is i%8 and rank (1-8) is i/8 + 1
type Square uint8

const (
	NumSquares = 64
	BoardSize  = 8
)

// Squares of the starting position and the 4 opening moves
const (
	SquareD3 Square = 19
	SquareC4 Square = 26
	SquareD4 Square = 27
	SquareE4 Square = 28
	SquareD5 Square = 35
	SquareE5 Square = 36
	SquareF5 Square = 37
	SquareE6 Square = 44
)

// Used in move records for a turn where the side had no legal move
const SquarePass Square = 255

func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

func (s Square) File() int {
	return int(s) % BoardSize
}

func (s Square) Rank() int {
	return int(s) / BoardSize
}

func (s Square) Valid() bool {
	return s < NumSquares
}

func (s Square) Bitboard() Bitboard {
	return Bitboard(1) << s
}

func (s Square) String() string {
	if s == SquarePass {
		return "pass"
	}
	if !s.Valid() {
		return "??"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// Parse square in algebraic notation, like "d3" (case insensitive)
func ParseSquare(str string) (Square, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "pass" {
		return SquarePass, nil
	}
	if len(str) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, str)
	}

	file, rank := int(str[0])-'a', int(str[1])-'1'
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, str)
	}
	return NewSquare(file, rank), nil
}
