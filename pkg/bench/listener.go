package bench

import (
	"github.com/rs/zerolog"
)

// Arena events, called concurrently by the workers. VersusWorkerInfo.Moves
// belongs to a single game and is never modified after that game ends.
type ListenerLike interface {
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
}

// Ignores every event
type DefaultListener struct{}

func (DefaultListener) OnMoveMade(VersusWorkerInfo)     {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}

// Logs the arena progress, moves are logged at trace level
type LogListener struct {
	log zerolog.Logger
}

func NewLogListener(log zerolog.Logger) *LogListener {
	return &LogListener{log: log}
}

func (l *LogListener) OnMoveMade(info VersusWorkerInfo) {
	l.log.Trace().
		Int("worker", info.WorkerID).
		Int("ply", info.GameMoveNum).
		Str("move", info.Moves[len(info.Moves)-1].String()).
		Msg("move")
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	l.log.Info().
		Int("worker", info.WorkerID).
		Int("finished", info.FinishedGames).
		Str("winner", info.Result.String()).
		Str("score", info.Outcome.String()).
		Int("p1-wins", info.P1Wins).
		Int("p2-wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("game")
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.log.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.NGames).
		Msg("worker-done")
}

func (l *LogListener) Summary(summary VersusSummaryInfo) {
	l.log.Info().
		Str("player1", summary.P1Name).
		Str("player2", summary.P2Name).
		Int("games", summary.TotalGames).
		Int("p1-wins", summary.P1Wins).
		Int("p2-wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Int("black-wins", summary.FirstToMoveWins).
		Int("white-wins", summary.SecondToMoveWins).
		Float64("p1-score", summary.P1Score()).
		Msg("summary")
}
