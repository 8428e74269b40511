package othello

import (
	"errors"
	"testing"
)

func TestSamplerDiscCount(t *testing.T) {
	sampler := NewSampler(7)

	for discs := MinDiscs; discs <= MaxDiscs; discs++ {
		pos, err := sampler.Random(discs)
		if err != nil {
			t.Fatal(err)
		}

		if pos.CountDiscs() != discs {
			t.Fatalf("Random(%d) has %d discs", discs, pos.CountDiscs())
		}

		if pos.Mover()&pos.Opponent() != 0 {
			t.Fatalf("Random(%d) has overlapping discs", discs)
		}
	}

	for _, discs := range []int{0, 3, 65} {
		if _, err := sampler.Random(discs); !errors.Is(err, ErrInvalidDiscCount) {
			t.Errorf("Random(%d): err=%v, want=%v", discs, err, ErrInvalidDiscCount)
		}
	}
}

func TestSamplerDeterministic(t *testing.T) {
	a, b := NewSampler(123).Corpus(2), NewSampler(123).Corpus(2)
	if len(a) != len(b) || len(a) != 2*(MaxDiscs-MinDiscs+1) {
		t.Fatalf("Corpus sizes %d, %d", len(a), len(b))
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Corpus differs at %d: %s vs %s", i, a[i].Notation(), b[i].Notation())
		}
	}
}

func TestSamplerRandomMove(t *testing.T) {
	sampler := NewSampler(5)
	pos := NewPosition()

	children := make(map[Position]bool)
	for _, child := range pos.Children() {
		children[child] = true
	}

	for i := 0; i < 50; i++ {
		child, sq, err := sampler.RandomMove(pos)
		if err != nil {
			t.Fatal(err)
		}
		if !children[child] {
			t.Fatalf("RandomMove gave a non-child position (%s)", sq)
		}
		if want, _ := pos.Apply(sq); want != child {
			t.Fatalf("RandomMove square %s doesn't match the position", sq)
		}
	}

	full, _ := NewPositionFrom(FullBB, 0)
	if _, sq, err := sampler.RandomMove(full); !errors.Is(err, ErrNoMoves) || sq != SquarePass {
		t.Errorf("RandomMove on full board: sq=%s err=%v", sq, err)
	}
}

func TestLineCorpus(t *testing.T) {
	corpus := LineCorpus()
	if len(corpus) == 0 || corpus[len(corpus)-1] != NewPosition() {
		t.Fatal("Line corpus should end with the starting position")
	}

	// Every line configuration has exactly one legal move
	for _, pos := range corpus[:len(corpus)-1] {
		if pos.Mover().Count() != 1 {
			t.Fatalf("%s: expected a single mover's disc", pos.Notation())
		}
		if c := pos.LegalMoves().Count(); c != 1 {
			t.Fatalf("%s: expected 1 legal move, got %d", pos.Notation(), c)
		}
	}
}

func TestSamplerIntn(t *testing.T) {
	sampler := NewSampler(11)
	seen := make([]bool, 4)
	for i := 0; i < 200; i++ {
		n := sampler.Intn(4)
		if n < 0 || n >= 4 {
			t.Fatalf("Intn(4)=%d", n)
		}
		seen[n] = true
	}

	// Every opening move shows up
	pos := NewPosition()
	played := make(map[Square]bool)
	for i := 0; i < 200; i++ {
		_, sq, _ := sampler.RandomMove(pos)
		played[sq] = true
	}
	if len(played) != 4 {
		t.Errorf("RandomMove played %d distinct opening moves, want 4", len(played))
	}
	for n, ok := range seen {
		if !ok {
			t.Errorf("Intn(4) never returned %d", n)
		}
	}
}
