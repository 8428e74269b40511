package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-othello/pkg/negamax"
	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/render"
)

// Always passes, even with legal moves
type cheater struct{}

func (cheater) Name() string { return "cheater" }
func (cheater) Play(_ context.Context, pos othello.Position) (othello.Position, error) {
	return pos.Pass(), nil
}

func TestRandomGame(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		g := New(NewRandomPlayer(seed), NewRandomPlayer(seed+100))
		outcome, err := g.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}

		if !outcome.Position.IsTerminal() {
			t.Fatalf("seed=%d: game ended in a non-terminal position", seed)
		}
		if outcome.Black+outcome.White != outcome.Position.CountDiscs() {
			t.Errorf("seed=%d: %d+%d discs, want %d", seed, outcome.Black, outcome.White, outcome.Position.CountDiscs())
		}

		played := 0
		for _, m := range outcome.Moves {
			if m != othello.SquarePass {
				played++
			}
		}
		if played+4 != outcome.Position.CountDiscs() {
			t.Errorf("seed=%d: %d moves for %d discs", seed, played, outcome.Position.CountDiscs())
		}

		switch {
		case outcome.Black > outcome.White && outcome.Winner != Black,
			outcome.White > outcome.Black && outcome.Winner != White,
			outcome.White == outcome.Black && outcome.Winner != Draw:
			t.Errorf("seed=%d: wrong winner %v for %s", seed, outcome.Winner, outcome)
		}
	}
}

func TestEngineGame(t *testing.T) {
	engine := negamax.NewEngine()
	engine.SetLimits(negamax.DefaultLimits().SetDepth(2))

	buf := bytes.Buffer{}
	g := New(NewEnginePlayer(engine), NewRandomPlayer(1), WithRenderer(render.NewPlainConsole(&buf)))

	plies := 0
	g.onPly = func(Color, othello.Square, othello.Position) { plies++ }

	outcome, err := g.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if plies != len(outcome.Moves) {
		t.Errorf("Ply callback called %d times, want %d", plies, len(outcome.Moves))
	}

	// Board before every ply plus the final one, each with two frame lines
	if frames := strings.Count(buf.String(), "+-----------------+"); frames != 2*(plies+1) {
		t.Errorf("Got %d frame lines, want %d", frames, 2*(plies+1))
	}
}

func TestHumanPlayer(t *testing.T) {
	in := strings.NewReader("zz\n\nd4\npass\nd3\n")
	out := bytes.Buffer{}
	human := NewHumanPlayer("human", in, &out)

	pos := othello.NewPosition()
	next, err := human.Play(context.Background(), pos)
	if err != nil {
		t.Fatal(err)
	}

	if want, _ := pos.Apply(othello.SquareD3); next != want {
		t.Errorf("Got %s, want d3", next.Notation())
	}
	if n := strings.Count(out.String(), "move> "); n != 5 {
		t.Errorf("Prompted %d times, want 5", n)
	}
	if !strings.Contains(out.String(), "illegal move d4") {
		t.Errorf("Missing illegal move message:\n%s", out.String())
	}

	if _, err := human.Play(context.Background(), next); !errors.Is(err, ErrNoInput) {
		t.Errorf("err=%v, want=%v", err, ErrNoInput)
	}
}

func TestIllegalPlay(t *testing.T) {
	g := New(cheater{}, NewRandomPlayer(0))
	if _, err := g.Run(context.Background()); !errors.Is(err, ErrIllegalPlay) {
		t.Errorf("err=%v, want=%v", err, ErrIllegalPlay)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := New(NewRandomPlayer(0), NewRandomPlayer(1))
	outcome, err := g.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err=%v, want=%v", err, context.Canceled)
	}
	if len(outcome.Moves) != 0 {
		t.Errorf("Cancelled game played %d moves", len(outcome.Moves))
	}
}

func TestForcedPass(t *testing.T) {
	var start othello.Position
	found := false
	for _, pos := range othello.NewSampler(5).Corpus(2) {
		if !pos.HasMoves() && !pos.IsTerminal() {
			start, found = pos, true
			break
		}
	}
	if !found {
		t.Skip("no forced pass in the sampled positions")
	}

	g := New(cheater{}, NewRandomPlayer(0), WithPosition(start, White))
	if err := g.Step(context.Background()); err != nil {
		t.Fatal(err)
	}

	if g.ToMove() != Black || g.Position() != start.Pass() {
		t.Errorf("Expected a pass, got %v to move at %s", g.ToMove(), g.Position().Notation())
	}
	if moves := g.Outcome().Moves; len(moves) != 1 || moves[0] != othello.SquarePass {
		t.Errorf("Record=%v, want [pass]", moves)
	}
}

func TestOutcomeColors(t *testing.T) {
	// 3 discs for the mover, 1 for the opponent
	pos, _ := othello.NewPositionFrom(0b111, 1<<63)

	if o := newOutcome(pos, Black, nil); o.Black != 3 || o.White != 1 || o.Winner != Black {
		t.Errorf("Black to move: %s", o)
	}
	if o := newOutcome(pos, White, nil); o.Black != 1 || o.White != 3 || o.Winner != White {
		t.Errorf("White to move: %s", o)
	}
	if o := newOutcome(pos, White, nil); o.Margin() != 62 {
		t.Errorf("Margin=%d, want=62", o.Margin())
	}
}

func TestOutcomeRecord(t *testing.T) {
	o := Outcome{Moves: []othello.Square{othello.SquareD3, othello.SquarePass, othello.SquareC4}}
	if got := o.Record(); got != "d3 pass c4" {
		t.Errorf("Record=%q, want=%q", got, "d3 pass c4")
	}
}

func TestPlayerByColor(t *testing.T) {
	black, white := NewRandomPlayer(0), NewRandomPlayer(1)
	g := New(black, white)

	if g.Player(Black) != Player(black) || g.Player(White) != Player(white) {
		t.Error("Players don't match their colors")
	}
	if p := g.Player(Draw); p != nil {
		t.Errorf("Player(Draw)=%v, want nil", p)
	}
}
