package othello

// Straightforward per-square, per-direction implementations used as the
// reference for the bitboard move generator

func naiveCaptures(p Position, sq Square) Bitboard {
	if p.Occupied().Occupied(sq) {
		return 0
	}

	var captured Bitboard
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}

			var run Bitboard
			for s := 1; ; s++ {
				file, rank := sq.File()+s*df, sq.Rank()+s*dr
				if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
					break
				}

				cur := NewSquare(file, rank)
				if p.opponent.Occupied(cur) {
					run = run.Set(cur)
					continue
				}

				if p.mover.Occupied(cur) && run != 0 {
					captured |= run
				}
				break
			}
		}
	}
	return captured
}

func naiveLegalMoves(p Position) Bitboard {
	var moves Bitboard
	for sq := Square(0); sq < NumSquares; sq++ {
		if naiveCaptures(p, sq) != 0 {
			moves = moves.Set(sq)
		}
	}
	return moves
}

func naiveApply(p Position, sq Square) Position {
	captured := naiveCaptures(p, sq)
	return Position{
		mover:    p.opponent &^ captured,
		opponent: p.mover | captured | sq.Bitboard(),
	}
}

func naiveChildren(p Position) map[Position]bool {
	children := make(map[Position]bool)
	for sq := Square(0); sq < NumSquares; sq++ {
		if naiveCaptures(p, sq) != 0 {
			children[naiveApply(p, sq)] = true
		}
	}
	return children
}

func naiveExactScore(p Position) int {
	m, o := 0, 0
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.mover.Occupied(sq) {
			m++
		}
		if p.opponent.Occupied(sq) {
			o++
		}
	}

	if m > o {
		return 64 - 2*o
	} else if o > m {
		return -64 + 2*m
	}
	return 0
}

func naiveCornerDifference(p Position) int {
	diff := 0
	for _, sq := range []Square{0, 7, 56, 63} {
		if p.mover.Occupied(sq) {
			diff++
		}
		if p.opponent.Occupied(sq) {
			diff--
		}
	}
	return diff
}

// Empty squares around 'discs'
func naivePotentialMoves(discs, occupied Bitboard) Bitboard {
	var around Bitboard
	for sq := Square(0); sq < NumSquares; sq++ {
		if !discs.Occupied(sq) {
			continue
		}

		for dr := -1; dr <= 1; dr++ {
			for df := -1; df <= 1; df++ {
				file, rank := sq.File()+df, sq.Rank()+dr
				if (df == 0 && dr == 0) || file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
					continue
				}
				around = around.Set(NewSquare(file, rank))
			}
		}
	}
	return around &^ occupied
}

func naivePotentialMovesDifference(p Position) int {
	occupied := p.Occupied()
	return naivePotentialMoves(p.opponent, occupied).Count() - naivePotentialMoves(p.mover, occupied).Count()
}

func testCorpus() []Position {
	return append(LineCorpus(), NewSampler(42).Corpus(10)...)
}
