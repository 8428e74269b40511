package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-othello/pkg/game"
	"github.com/IlikeChooros/go-othello/pkg/othello"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

type VersusArenaStats struct {
	p1Wins           atomic.Uint32
	p2Wins           atomic.Uint32
	draws            atomic.Uint32
	firstToMoveWins  atomic.Uint32
	secondToMoveWins atomic.Uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(vas.p1Wins.Load())
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(vas.p2Wins.Load())
}

func (vas *VersusArenaStats) Draws() int {
	return int(vas.draws.Load())
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(vas.firstToMoveWins.Load())
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(vas.secondToMoveWins.Load())
}

func (vas *VersusArenaStats) add(result VersusMatchResult, winner game.Color) {
	switch result {
	case VersusPl1Win:
		vas.p1Wins.Add(1)
	case VersusPl2Win:
		vas.p2Wins.Add(1)
	default:
		vas.draws.Add(1)
	}

	switch winner {
	case game.Black:
		vas.firstToMoveWins.Add(1)
	case game.White:
		vas.secondToMoveWins.Add(1)
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int // assigned to this worker
	FinishedGames int // by all workers
	GameMoveNum   int
	Moves         []othello.Square
	Result        VersusMatchResult // of the last finished game
	Outcome       game.Outcome
	P1Wins        int
	P2Wins        int
	Draws         int
	P1Name        string
	P2Name        string
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	OpeningDiscs     int    `json:"opening_discs"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

// Player 1's score, wins count as 1 and draws as 0.5
func (s VersusSummaryInfo) P1Score() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return (float64(s.P1Wins) + 0.5*float64(s.Draws)) / float64(s.TotalGames)
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(outcome game.Outcome, p1WentFirst bool) VersusMatchResult {
	if outcome.Winner == game.Draw {
		return VersusDraw
	}

	if p1WentFirst == (outcome.Winner == game.Black) {
		return VersusPl1Win
	}
	return VersusPl2Win
}
