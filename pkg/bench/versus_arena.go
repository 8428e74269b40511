package bench

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-othello/pkg/game"
	"github.com/IlikeChooros/go-othello/pkg/othello"
)

/*
Arena benchmark subpackage, plays a series of games between two
player configurations.
*/

var ErrInvalidOpening = errors.New("bench: no playable opening with that many discs")

// Random openings that end the game are thrown away, up to this many times
const maxOpeningAttempts = 1000

// Creates a new player, called once per worker so that players
// (engines especially) are never shared between goroutines
type PlayerFactory func() game.Player

type VersusArena struct {
	VersusArenaStats
	Player1  PlayerFactory
	Player2  PlayerFactory
	NGames   int
	NWorkers int

	// Games start from a random position with this many discs,
	// both colors are played from the same opening
	OpeningDiscs int
	Seed         uint64
	ctx          context.Context
}

func NewVersusArena(player1, player2 PlayerFactory) *VersusArena {
	return &VersusArena{
		Player1:      player1,
		Player2:      player2,
		NGames:       100,
		NWorkers:     2,
		OpeningDiscs: othello.MinDiscs,
		ctx:          context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames, nWorkers, openingDiscs int) {
	va.NGames = nGames
	va.NWorkers = max(nWorkers, 1)
	va.OpeningDiscs = openingDiscs
}

// Opening of the game pair 'pair', deterministic for a given seed
func (va *VersusArena) opening(pair int) (othello.Position, error) {
	if va.OpeningDiscs <= othello.MinDiscs {
		return othello.NewPosition(), nil
	}

	// A full board is always a finished game
	if va.OpeningDiscs >= othello.MaxDiscs {
		return othello.Position{}, fmt.Errorf("%w: %d", ErrInvalidOpening, va.OpeningDiscs)
	}

	sampler := othello.NewSampler(va.Seed + uint64(pair))
	for range maxOpeningAttempts {
		pos, err := sampler.Random(va.OpeningDiscs)
		if err != nil {
			return pos, fmt.Errorf("bench: opening: %w", err)
		}
		if !pos.IsTerminal() {
			return pos, nil
		}
	}
	return othello.Position{}, fmt.Errorf("%w: %d, every sampled game was over", ErrInvalidOpening, va.OpeningDiscs)
}

// Play all games and wait for them, the listener may be called from many
// goroutines at once. Returns the first player error, if any.
func (va *VersusArena) Run(listener ListenerLike) (VersusSummaryInfo, error) {
	if listener == nil {
		listener = DefaultListener{}
	}

	g, ctx := errgroup.WithContext(va.ctx)
	workers := max(va.NWorkers, 1)
	nGames := va.NGames / workers
	rest := va.NGames % workers

	for id := 0; id < workers; id++ {
		// Games id, id + workers, id + 2*workers, ...
		count := nGames
		if id < rest {
			count++
		}

		g.Go(func() error {
			return va.worker(ctx, id, count, workers, listener)
		})
	}

	err := g.Wait()
	summary := va.summary()
	listener.Summary(summary)
	return summary, err
}

func (va *VersusArena) summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          max(va.NWorkers, 1),
		OpeningDiscs:     va.OpeningDiscs,
		P1Name:           va.Player1().Name(),
		P2Name:           va.Player2().Name(),
	}
}

func (va *VersusArena) worker(ctx context.Context, id, nGames, stride int, listener ListenerLike) error {
	p1, p2 := va.Player1(), va.Player2()
	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   p1.Name(),
		P2Name:   p2.Name(),
	}

	for i := 0; i < nGames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Player 1 is black in even games
		index := id + i*stride
		p1First := index%2 == 0

		result, outcome, err := va.playGame(ctx, index, p1First, p1, p2, &info, listener)
		if err != nil {
			return err
		}

		va.add(result, outcome.Winner)
		info.Result = result
		info.Outcome = outcome
		info.FinishedGames = va.Total()
		info.P1Wins, info.P2Wins, info.Draws = va.P1Wins(), va.P2Wins(), va.Draws()
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(info)
	return nil
}

func (va *VersusArena) playGame(
	ctx context.Context, index int, p1First bool, p1, p2 game.Player,
	info *VersusWorkerInfo, listener ListenerLike,
) (VersusMatchResult, game.Outcome, error) {
	start, err := va.opening(index / 2)
	if err != nil {
		return VersusDraw, game.Outcome{}, err
	}

	black, white := p1, p2
	if !p1First {
		black, white = p2, p1
	}

	// Fresh slice per game, listeners may keep the previous game's moves
	info.Moves = make([]othello.Square, 0, othello.NumSquares)
	g := game.New(black, white,
		game.WithPosition(start, game.Black),
		game.WithPlyFunc(func(_ game.Color, move othello.Square, _ othello.Position) {
			info.Moves = append(info.Moves, move)
			info.GameMoveNum = len(info.Moves)
			listener.OnMoveMade(*info)
		}),
	)

	outcome, err := g.Run(ctx)
	if err != nil {
		return VersusDraw, outcome, fmt.Errorf("bench: game %d: %w", index, err)
	}
	return toAgentResult(outcome, p1First), outcome, nil
}
