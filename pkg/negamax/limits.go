package negamax

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

type Limits struct {
	Depth    int    `json:"depth"`
	Nodes    uint64 `json:"nodes"`
	Movetime int    `json:"movetime"`
	NThreads int    `json:"threads"`
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultNodeLimit     uint64 = math.MaxUint64
	DefaultMovetimeLimit int    = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepth,
		Nodes:    DefaultNodeLimit,
		Movetime: DefaultMovetimeLimit,
		NThreads: 1,
	}
}

// Read limits from JSON, missing fields keep their default values
func LoadLimits(r io.Reader) (*Limits, error) {
	limits := DefaultLimits()
	if err := json.NewDecoder(r).Decode(limits); err != nil {
		return nil, fmt.Errorf("negamax: decoding limits: %w", err)
	}
	limits.SetDepth(limits.Depth).SetThreads(limits.NThreads)
	return limits, nil
}

// Set the search depth in plies, at least 1
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = max(depth, 1)
	return l
}

// Set the maximum number of nodes engine can go through, the search is
// interrupted after reaching it
func (l *Limits) SetNodes(nodes uint64) *Limits {
	l.Nodes = nodes
	return l
}

// Set the maximum time for engine to think, in milliseconds
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	return l
}

// Number of goroutines searching the root moves
func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}
