package negamax

import (
	"context"
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := LimiterLike(NewLimiter())

	if !limiter.Ok(1000000) {
		t.Error("Default limiter should search infinitely")
	}

	limiter.SetLimits(DefaultLimits().SetNodes(100))
	limiter.Reset()
	if ok := limiter.Ok(101); ok {
		t.Errorf("<Nodes=%d: ok=%v, want=%v", 101, ok, !ok)
	}

	if ok := limiter.Ok(99); !ok {
		t.Errorf(">Nodes=%d: ok=%v, want=%v", 99, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(100))
	limiter.Reset()
	time.Sleep(time.Millisecond * 101)

	if ok := limiter.Ok(1); ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}

	limiter.Reset()
	if ok := limiter.Ok(1); !ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterStop(t *testing.T) {
	limiter := LimiterLike(NewLimiter())

	limiter.SetStop(true)
	if limiter.Ok(1) {
		t.Error("Stopped limiter should not allow the search")
	}

	limiter.Reset()
	if !limiter.Ok(1) {
		t.Error("Reset should clear the stop signal")
	}

	ctx, cancel := context.WithCancel(context.Background())
	limiter.SetContext(ctx)
	cancel()

	if limiter.Ok(1) {
		t.Error("Cancelled context should stop the limiter")
	}

	limiter.EvaluateStopReason(1)
	if limiter.StopReason() != StopInterrupt {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), StopInterrupt)
	}
}

func TestLimiterCombos(t *testing.T) {
	limiter := LimiterLike(NewLimiter())

	limiter.SetLimits(DefaultLimits().SetNodes(100).SetMovetime(50))
	limiter.Reset()

	if !limiter.Ok(99) {
		t.Error(">Nodes+Time failed")
	}

	time.Sleep(time.Millisecond * 51)
	limiter.EvaluateStopReason(101)
	if want := StopReason(StopNodes | StopMovetime); limiter.StopReason() != want {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), want)
	}
}

func TestStopReasonString(t *testing.T) {
	cases := []struct {
		reason StopReason
		want   string
	}{
		{StopNone, "None"},
		{StopInterrupt, "Interrupt"},
		{StopMovetime | StopNodes, "Movetime|Nodes"},
	}

	for _, c := range cases {
		if got := c.reason.String(); got != c.want {
			t.Errorf("String()=%q, want=%q", got, c.want)
		}
	}
}
