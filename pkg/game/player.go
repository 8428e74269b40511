package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-othello/pkg/negamax"
	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Player chooses the next position, it's asked only if the mover has a legal move
type Player interface {
	Name() string
	Play(ctx context.Context, pos othello.Position) (othello.Position, error)
}

type EnginePlayer struct {
	Engine *negamax.Engine
}

func NewEnginePlayer(engine *negamax.Engine) *EnginePlayer {
	return &EnginePlayer{Engine: engine}
}

func (p *EnginePlayer) Name() string {
	limits := p.Engine.Limits()
	return fmt.Sprintf("negamax-%s-d%d", p.Engine.Strategy(), limits.Depth)
}

func (p *EnginePlayer) Play(ctx context.Context, pos othello.Position) (othello.Position, error) {
	p.Engine.SetContext(ctx)
	return p.Engine.ChooseMove(pos)
}

// Plays uniformly random legal moves
type RandomPlayer struct {
	sampler *othello.Sampler
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{sampler: othello.NewSampler(seed)}
}

func (p *RandomPlayer) Name() string {
	return "random"
}

func (p *RandomPlayer) Play(_ context.Context, pos othello.Position) (othello.Position, error) {
	next, _, err := p.sampler.RandomMove(pos)
	return next, err
}

// Reads moves like "d3" line by line, asking again until a legal one is given
type HumanPlayer struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

func NewHumanPlayer(name string, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{name: name, in: bufio.NewScanner(in), out: out}
}

func (p *HumanPlayer) Name() string {
	return p.name
}

func (p *HumanPlayer) Play(ctx context.Context, pos othello.Position) (othello.Position, error) {
	for {
		if err := ctx.Err(); err != nil {
			return pos, err
		}

		fmt.Fprint(p.out, "move> ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return pos, fmt.Errorf("%w: %w", ErrNoInput, err)
			}
			return pos, ErrNoInput
		}

		line := strings.TrimSpace(p.in.Text())
		if line == "" {
			continue
		}

		sq, err := othello.ParseSquare(line)
		if err == nil && sq == othello.SquarePass {
			err = errors.New("you have a legal move, passing is not allowed")
		}
		if err != nil {
			fmt.Fprintf(p.out, "invalid move %q: %v\n", line, err)
			continue
		}

		next, err := pos.Apply(sq)
		if err != nil {
			fmt.Fprintf(p.out, "illegal move %s, legal: %v\n", sq, pos.LegalMoves().Squares())
			continue
		}
		return next, nil
	}
}
