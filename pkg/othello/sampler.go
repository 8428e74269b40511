package othello

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/frand"
)

const (
	MinDiscs = 4
	MaxDiscs = NumSquares
)

// Sampler generates reachable positions by playing random legal moves.
// It's deterministic for a given seed and not safe for concurrent use.
type Sampler struct {
	rng *frand.RNG
}

func NewSampler(seed uint64) *Sampler {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return &Sampler{rng: frand.NewCustom(key, 1024, 12)}
}

// Uniformly random number in [0, n)
func (s *Sampler) Intn(n int) int {
	return s.rng.Intn(n)
}

// Play a random legal move, ErrNoMoves if there are none
func (s *Sampler) RandomMove(p Position) (Position, Square, error) {
	moves := p.LegalMoves()
	if moves == 0 {
		return p, SquarePass, ErrNoMoves
	}

	// Pick the n-th set bit
	for n := s.Intn(moves.Count()); n > 0; n-- {
		moves &= moves - 1
	}

	sq := moves.First()
	return p.apply(sq, p.Captures(sq)), sq, nil
}

// Get a random reachable position with exactly 'discs' discs on the board.
// Games that end before reaching that count are thrown away.
func (s *Sampler) Random(discs int) (Position, error) {
	if discs < MinDiscs || discs > MaxDiscs {
		return Position{}, fmt.Errorf("%w: got %d", ErrInvalidDiscCount, discs)
	}

	pos := NewPosition()
	passes := 0
	for pos.CountDiscs() != discs {
		if passes == 2 {
			pos = NewPosition()
			passes = 0
			continue
		}

		if !pos.HasMoves() {
			passes++
			pos = pos.Pass()
			continue
		}

		passes = 0
		pos, _, _ = s.RandomMove(pos)
	}

	return pos, nil
}

// Get 'perCount' random positions for every disc count from 4 to 64
func (s *Sampler) Corpus(perCount int) []Position {
	corpus := make([]Position, 0, perCount*(MaxDiscs-MinDiscs+1))
	for i := 0; i < perCount; i++ {
		for discs := MinDiscs; discs <= MaxDiscs; discs++ {
			pos, _ := s.Random(discs)
			corpus = append(corpus, pos)
		}
	}
	return corpus
}

// Hand-built edge and corner configurations: a single mover's disc followed,
// in every direction, by 1 to 6 opponent's discs with room for one more square.
// Includes the starting position.
func LineCorpus() []Position {
	positions := make([]Position, 0, 2048)

	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			mover := NewSquare(file, rank).Bitboard()

			for dr := -1; dr <= 1; dr++ {
				for df := -1; df <= 1; df++ {
					if dr == 0 && df == 0 {
						continue
					}

					var opponent Bitboard
					for d := 1; d < 7; d++ {
						// The square after the run must stay on the board
						r, f := rank+(d+1)*dr, file+(d+1)*df
						if r < 0 || r >= BoardSize || f < 0 || f >= BoardSize {
							break
						}

						opponent |= NewSquare(file+d*df, rank+d*dr).Bitboard()
						positions = append(positions, Position{mover: mover, opponent: opponent})
					}
				}
			}
		}
	}

	return append(positions, NewPosition())
}
