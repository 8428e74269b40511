package othello

import (
	"math/bits"
	"strings"
)

// Bitboard represents a set of squares, one bit per square
type Bitboard uint64

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB

	CornersBB Bitboard = 1<<0 | 1<<7 | 1<<56 | 1<<63

	// Every file but 'h', shifting these left (towards higher files) can't wrap
	NotFileHBB Bitboard = 0x7F7F7F7F7F7F7F7F
	// Every file but 'a', shifting these right can't wrap
	NotFileABB Bitboard = 0xFEFEFEFEFEFEFEFE
	// Files b-g, squares that can be flanked horizontally or diagonally
	InnerFilesBB Bitboard = NotFileHBB & NotFileABB
)

func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

func (b Bitboard) Occupied(sq Square) bool {
	return b&sq.Bitboard() != 0
}

func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bitboard()
}

func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bitboard()
}

// Lowest set square, only valid for non-empty bitboards
func (b Bitboard) First() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares in increasing index order
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.Count())
	for b != 0 {
		squares = append(squares, b.First())
		b &= b - 1
	}
	return squares
}

// 8x8 grid, rank 1 on top, 'x' for set squares
func (b Bitboard) String() string {
	builder := strings.Builder{}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Occupied(NewSquare(file, rank)) {
				builder.WriteByte('x')
			} else {
				builder.WriteByte('.')
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
