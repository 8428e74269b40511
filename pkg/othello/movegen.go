package othello

import "github.com/IlikeChooros/go-othello/pkg/bits"

// Line axes used by the parallel move generator: horizontal, both diagonals, vertical.
// Opponent's discs on the 'a' and 'h' files can't be flanked along the first 3 axes.
var (
	axisShifts = [4]uint{1, 7, 9, 8}
	axisMasks  = [4]Bitboard{InnerFilesBB, InnerFilesBB, InnerFilesBB, FullBB}
)

// Rays of every direction, for square 63 going down and for square 0 going up;
// shifting them by the square index gives the rays of any square.
// Order: vertical, horizontal, diagonal (+-7), diagonal (+-9)
var (
	descendingRays = [4]Bitboard{0x0080808080808080, 0x7F00000000000000, 0x0102040810204000, 0x0040201008040201}
	ascendingRays  = [4]Bitboard{0x0101010101010100, 0x00000000000000FE, 0x0002040810204080, 0x8040201008040200}
	rayMasks       = [4]Bitboard{FullBB, InnerFilesBB, InnerFilesBB, InnerFilesBB}
)

// Get all squares the mover can play on
func (p Position) LegalMoves() Bitboard {
	var moves Bitboard

	for i, shift := range axisShifts {
		opp := p.opponent & axisMasks[i]

		// Opponent's runs adjacent to mover's discs, 1 and then 2 squares long
		flipL := opp & (p.mover << shift)
		flipR := opp & (p.mover >> shift)
		flipL |= opp & (flipL << shift)
		flipR |= opp & (flipR >> shift)

		// Pairs of adjacent opponent's discs, extend the runs by 2 squares twice (up to 6)
		preL := opp & (opp << shift)
		preR := preL >> shift
		shift2 := shift << 1
		flipL |= preL & (flipL << shift2)
		flipR |= preR & (flipR >> shift2)
		flipL |= preL & (flipL << shift2)
		flipR |= preR & (flipR >> shift2)

		// One step past the run
		moves |= flipL<<shift | flipR>>shift
	}

	return moves & p.Empty()
}

// Get the discs flipped by playing on given square, 0 if the square is occupied
// or the move is illegal
func (p Position) Captures(sq Square) Bitboard {
	if !sq.Valid() || p.Occupied().Occupied(sq) {
		return 0
	}

	var captured, ray, outflank Bitboard
	for i := range rayMasks {
		opp := p.opponent & rayMasks[i]

		// Nearest non-opponent square below, all ray squares above it are flipped
		ray = descendingRays[i] >> (63 - sq)
		outflank = Bitboard(bits.HighBit(uint64(^opp&ray))) & p.mover
		captured |= (-outflank << 1) & ray

		// Nearest non-opponent square above, found by carry propagation
		ray = ascendingRays[i] << sq
		outflank = ray & ((opp | ^ray) + 1) & p.mover
		captured |= (outflank - Bitboard(bits.NonZero(uint64(outflank)))) & ray
	}

	return captured
}
