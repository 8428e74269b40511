package negamax

import "github.com/IlikeChooros/go-othello/pkg/othello"

// Score of a single root move
type Line struct {
	Move  othello.Square `json:"move"`
	Score int            `json:"score"`
	Nodes uint64         `json:"nodes"`
}

type ListenerStats struct {
	Depth      int
	Nodes      uint64
	TimeMs     int
	Nps        uint64
	Lines      []Line
	StopReason StopReason
}

// Listener function callback, receives current search statistics
type ListenerFunc func(ListenerStats)

type StatsListener struct {
	// called after each root move is scored, the last line is the new one
	onChild ListenerFunc

	// called when the search stops (either by finishing, limiter or 'stop' signal)
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach new 'root move scored' callback, with root parallelism it's invoked
// after all goroutines finish, in the root move order
func (listener *StatsListener) OnChild(onChild ListenerFunc) *StatsListener {
	listener.onChild = onChild
	return listener
}

// Attach 'on search end' callback, called once per search,
// makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invoke(f ListenerFunc, stats ListenerStats) {
	if f != nil {
		f(stats)
	}
}
