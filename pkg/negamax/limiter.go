package negamax

import (
	"context"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            = 1 // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime             = 2 // Time limit reached
	StopNodes                = 4 // Node limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopNodes, "Nodes"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

type LimiterLike interface {
	SetContext(ctx context.Context)
	// Set the limits
	SetLimits(*Limits)
	// Get the limits
	Limits() *Limits
	// Get elapsed time in ms (from the last 'Reset' call)
	Elapsed() uint32
	// Set the stop signal, will cause to exit search if set to true
	SetStop(bool)
	// Get the stop signal
	Stop() bool
	// Reset the limiter's flags, called on search setup
	Reset()
	// Whether the search may continue, given the number of nodes visited so far
	Ok(nodes uint64) bool
	// Get the reason why the search was stopped, valid after search ends
	StopReason() StopReason
	// Evaluate stop reason based on current state, and set it internally,
	// called once after all search goroutines are done
	EvaluateStopReason(nodes uint64)
}

type Limiter struct {
	limits *Limits
	Timer  *_Timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
		ctx:    context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.Timer.Movetime(l.limits.Movetime)
	l.Timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) EvaluateStopReason(nodes uint64) {
	l.reason = StopReason(l.LimitMask(nodes))
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() uint32 {
	return uint32(l.Timer.Deltatime())
}

func toMask(val bool, flag StopReason) int {
	if val {
		return int(flag)
	}
	return 0
}

// Bitmask of the reached limits, same bits as StopReason
func (l *Limiter) LimitMask(nodes uint64) int {
	return toMask(l.Stop(), StopInterrupt) |
		toMask(l.Timer.IsEnd(), StopMovetime) |
		toMask(l.limits.Nodes <= nodes, StopNodes)
}

func (l *Limiter) Ok(nodes uint64) bool {
	return l.LimitMask(nodes) == 0
}
