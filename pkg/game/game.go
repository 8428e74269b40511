package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/render"
)

// Called after every ply, 'move' is othello.SquarePass for passes
type PlyFunc func(color Color, move othello.Square, pos othello.Position)

// Game between two players, from the initial layout unless WithPosition is given
type Game struct {
	players  [2]Player // black, white
	pos      othello.Position
	toMove   Color
	moves    []othello.Square
	renderer render.Renderer
	onPly    PlyFunc
	log      zerolog.Logger
}

type Option func(*Game)

// Render the board before every ply and once at the end
func WithRenderer(r render.Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

// Start from the given position, 'toMove' owns the position's mover discs
func WithPosition(pos othello.Position, toMove Color) Option {
	return func(g *Game) {
		g.pos = pos
		g.toMove = toMove
	}
}

func WithPlyFunc(f PlyFunc) Option {
	return func(g *Game) { g.onPly = f }
}

func New(black, white Player, opts ...Option) *Game {
	g := &Game{
		players: [2]Player{black, white},
		pos:     othello.NewPosition(),
		toMove:  Black,
		moves:   make([]othello.Square, 0, othello.NumSquares),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Position() othello.Position {
	return g.pos
}

func (g *Game) ToMove() Color {
	return g.toMove
}

// Player of the given color, nil for Draw
func (g *Game) Player(c Color) Player {
	if c != Black && c != White {
		return nil
	}
	return g.players[c]
}

func (g *Game) Finished() bool {
	return g.pos.IsTerminal()
}

func (g *Game) Outcome() Outcome {
	return newOutcome(g.pos, g.toMove, g.moves)
}

// Play a single ply: a move if the mover has one, a pass otherwise
func (g *Game) Step(ctx context.Context) error {
	if g.Finished() {
		return nil
	}

	if err := g.render(); err != nil {
		return err
	}

	color, player := g.toMove, g.players[g.toMove]
	move := othello.SquarePass
	next := g.pos.Pass()

	if g.pos.HasMoves() {
		played, err := player.Play(ctx, g.pos)
		if err != nil {
			return fmt.Errorf("game: %s (%s): %w", player.Name(), color, err)
		}

		if move, err = g.validate(played); err != nil {
			return fmt.Errorf("%w: %s (%s) played %s", err, player.Name(), color, played.Notation())
		}
		next = played
	}

	g.pos = next
	g.toMove = color.Other()
	g.moves = append(g.moves, move)

	black, white := g.discs()
	g.log.Debug().
		Int("ply", len(g.moves)).
		Str("player", player.Name()).
		Str("color", color.String()).
		Str("move", move.String()).
		Int("black", black).
		Int("white", white).
		Msg("ply")

	if g.onPly != nil {
		g.onPly(color, move, g.pos)
	}
	return nil
}

// Play until neither side can move or the context is done
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	for !g.Finished() {
		if err := ctx.Err(); err != nil {
			return g.Outcome(), err
		}
		if err := g.Step(ctx); err != nil {
			return g.Outcome(), err
		}
	}

	if err := g.render(); err != nil {
		return g.Outcome(), err
	}

	outcome := g.Outcome()
	g.log.Info().
		Str("black", g.players[Black].Name()).
		Str("white", g.players[White].Name()).
		Str("result", outcome.String()).
		Int("plies", len(outcome.Moves)).
		Msg("game-over")
	return outcome, nil
}

// The square of the played move, the resulting position must be a legal child
func (g *Game) validate(played othello.Position) (othello.Square, error) {
	placed := played.Opponent() &^ g.pos.Occupied()
	if placed.Count() != 1 {
		return othello.SquarePass, ErrIllegalPlay
	}

	sq := placed.First()
	if want, err := g.pos.Apply(sq); err != nil || want != played {
		return othello.SquarePass, ErrIllegalPlay
	}
	return sq, nil
}

func (g *Game) discs() (black, white int) {
	black, white = g.pos.Mover().Count(), g.pos.Opponent().Count()
	if g.toMove == White {
		black, white = white, black
	}
	return black, white
}

func (g *Game) render() error {
	if g.renderer == nil {
		return nil
	}

	var moves othello.Bitboard
	if !g.pos.IsTerminal() {
		moves = g.pos.LegalMoves()
	}
	return g.renderer.Render(g.pos, g.toMove == White, moves)
}
