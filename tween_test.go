package tween

import (
	"math"
	"reflect"
	"testing"
)

func TestTweenDelay(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	e.To(n, 1, NewConfig().Float("x", 10, false).SetDelay(0.5))
	e.Tick(Update, 0.25)
	if n.X != 0 {
		t.Fatalf("X moved during delay: %v", n.X)
	}
	e.Tick(Update, 0.5)
	if !approx(n.X, 2.5) {
		t.Errorf("X = %v, want 2.5 (leftover delta carried over)", n.X)
	}
}

func TestTweenLoopRestart(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")
	var iterStarts, iterEnds, completes int

	tw := e.To(n, 1, NewConfig().
		Float("x", 10, false).
		SetIterations(2).
		SetLoopType(LoopRestartFromBeginning).
		OnIterationStart(func(Tweener) { iterStarts++ }).
		OnIterationEnd(func(Tweener) { iterEnds++ }).
		OnComplete(func(Tweener) { completes++ }))

	e.Tick(Update, 0.5)
	e.Tick(Update, 1)
	if !approx(n.X, 5) {
		t.Errorf("second iteration midway X = %v, want 5", n.X)
	}
	if tw.CompletedIterations() != 1 {
		t.Errorf("CompletedIterations = %d, want 1", tw.CompletedIterations())
	}
	e.Tick(Update, 0.5)
	if n.X != 10 {
		t.Errorf("end X = %v, want 10", n.X)
	}
	if iterStarts != 2 || iterEnds != 2 || completes != 1 {
		t.Errorf("callbacks: starts %d ends %d completes %d, want 2 2 1", iterStarts, iterEnds, completes)
	}
	if tw.State() != StateDestroyed || e.Len() != 0 {
		t.Errorf("state %v Len %d, want destroyed and removed", tw.State(), e.Len())
	}
}

func TestTweenPingPongReturnsToStart(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	e.To(n, 1, NewConfig().Float("x", 10, false).SetIterations(2).SetLoopType(LoopPingPong))
	e.Tick(Update, 1)
	if n.X != 10 {
		t.Errorf("after first leg X = %v, want 10", n.X)
	}
	e.Tick(Update, 0.5)
	if !approx(n.X, 5) {
		t.Errorf("halfway back X = %v, want 5", n.X)
	}
	e.Tick(Update, 0.5)
	if n.X != 0 {
		t.Errorf("after second leg X = %v, want 0", n.X)
	}
}

func TestTweenReverseCompletesAtZero(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	tw := e.To(n, 1, NewConfig().Float("x", 10, false).SetAutoRemove(false))
	e.Tick(Update, 0.5)
	tw.Reverse()
	if !tw.IsReversed() {
		t.Fatal("IsReversed should be true")
	}
	e.Tick(Update, 0.25)
	if !approx(n.X, 2.5) {
		t.Errorf("reversing X = %v, want 2.5", n.X)
	}
	e.Tick(Update, 0.5)
	if n.X != 0 {
		t.Errorf("X = %v, want 0", n.X)
	}
	if tw.State() != StateComplete {
		t.Errorf("state = %v, want complete", tw.State())
	}
	if e.Len() != 1 {
		t.Errorf("tween without auto-remove was removed")
	}
}

func TestTweenPauseAndPlay(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	tw := e.To(n, 1, NewConfig().Float("x", 10, false))
	e.Tick(Update, 0.5)
	tw.Pause()
	e.Tick(Update, 0.25)
	if !approx(n.X, 5) || tw.State() != StatePaused {
		t.Errorf("paused: X = %v state %v", n.X, tw.State())
	}
	tw.Play()
	e.Tick(Update, 0.25)
	if !approx(n.X, 7.5) {
		t.Errorf("resumed X = %v, want 7.5", n.X)
	}
}

func TestTweenStartPaused(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	tw := e.To(n, 1, NewConfig().Float("x", 10, false).StartPaused())
	e.Tick(Update, 1)
	if n.X != 0 {
		t.Errorf("paused tween moved X to %v", n.X)
	}
	tw.Play()
	e.Tick(Update, 1)
	if n.X != 10 {
		t.Errorf("X = %v, want 10", n.X)
	}
}

func TestTweenRewindAndRestart(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")
	begins := 0

	tw := e.To(n, 1, NewConfig().Float("x", 10, false).
		SetAutoRemove(false).
		OnBegin(func(Tweener) { begins++ }))
	e.Tick(Update, 0.5)

	tw.Rewind()
	if n.X != 0 || tw.State() != StatePaused {
		t.Errorf("after Rewind: X = %v state %v", n.X, tw.State())
	}

	e.Tick(Update, 1)
	tw.Restart()
	if tw.State() != StateRunning {
		t.Errorf("after Restart state = %v", tw.State())
	}
	e.Tick(Update, 1)
	if n.X != 10 || tw.State() != StateComplete {
		t.Errorf("after Restart and full tick: X = %v state %v", n.X, tw.State())
	}
	tw.Restart()
	if n.X != 0 {
		t.Errorf("Restart of completed tween X = %v, want 0", n.X)
	}
	if begins != 3 {
		t.Errorf("OnBegin fired %d times, want 3", begins)
	}
}

func TestTweenCompleteAndGoTo(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")
	completed := false

	tw := e.To(n, 2, NewConfig().Float("x", 10, false).
		OnComplete(func(Tweener) { completed = true }))
	tw.GoTo(1.5)
	if !approx(n.X, 7.5) || tw.State() != StateRunning {
		t.Errorf("GoTo: X = %v state %v", n.X, tw.State())
	}
	tw.Complete()
	if n.X != 10 || !completed {
		t.Errorf("Complete: X = %v completed %v", n.X, completed)
	}
	e.Tick(Update, 0.1)
	if e.Len() != 0 || tw.State() != StateDestroyed {
		t.Errorf("manually completed tween not removed: Len %d state %v", e.Len(), tw.State())
	}
}

func TestTweenCallbackOrder(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")
	var got []string
	rec := func(name string) func(Tweener) {
		return func(Tweener) { got = append(got, name) }
	}

	e.To(n, 1, NewConfig().Float("x", 1, false).
		OnInit(rec("init")).
		OnBegin(rec("begin")).
		OnIterationStart(rec("iterationStart")).
		OnUpdate(rec("update")).
		OnIterationEnd(rec("iterationEnd")).
		OnComplete(rec("complete")))
	e.Tick(Update, 0.5)
	e.Tick(Update, 0.5)

	want := []string{"init", "begin", "iterationStart", "update", "update", "iterationEnd", "complete"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("callbacks = %v, want %v", got, want)
	}
}

func TestTweenDestroyFromOnComplete(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	tw := e.To(n, 1, NewConfig().Float("x", 1, false).
		SetAutoRemove(false).
		OnComplete(func(tw Tweener) { tw.Destroy() }))
	e.Tick(Update, 1)
	if tw.State() != StateDestroyed {
		t.Errorf("state = %v, want destroyed", tw.State())
	}
	if e.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.Len())
	}
}

func TestTweenDestroyFromOnUpdate(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	e.To(n, 1, NewConfig().Float("x", 10, false).
		OnUpdate(func(tw Tweener) { tw.Destroy() }))
	e.Tick(Update, 0.5)
	if e.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.Len())
	}
	e.Tick(Update, 0.5)
	if !approx(n.X, 5) {
		t.Errorf("X = %v, destroyed tween kept writing", n.X)
	}
}

func TestTweenTargetDisposed(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	tw := e.To(n, 1, NewConfig().Float("x", 10, false))
	e.Tick(Update, 0.25)
	n.Dispose()
	e.Tick(Update, 0.25)
	if tw.State() != StateDestroyed || e.Len() != 0 {
		t.Errorf("state %v Len %d, want destroyed and removed", tw.State(), e.Len())
	}
	if !approx(n.X, 2.5) {
		t.Errorf("X = %v, disposed target written", n.X)
	}
}

func TestTweenNilTarget(t *testing.T) {
	e := newTestEngine()
	tw := e.To(nil, 1, NewConfig().Float("x", 10, false))
	if tw.IsValid() || e.Len() != 0 {
		t.Errorf("nil target: valid %v Len %d", tw.IsValid(), e.Len())
	}
}

func TestTweenRemoveLastPropertyDestroys(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	tw := e.To(n, 1, NewConfig().Float("x", 10, false).Float("y", 10, false))
	props := tw.AllProperties()
	if !tw.RemoveProperty(props[0]) {
		t.Fatal("RemoveProperty returned false")
	}
	if tw.State() == StateDestroyed {
		t.Fatal("tween destroyed with a property left")
	}
	if tw.RemoveProperty(props[0]) {
		t.Error("removing twice should report false")
	}
	tw.RemoveProperty(props[1])
	if tw.State() != StateDestroyed {
		t.Errorf("state = %v, want destroyed", tw.State())
	}
}

func TestTweenInfinite(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	tw := e.To(n, 0.5, NewConfig().Float("x", 10, false).SetIterations(-1))
	for range 100 {
		e.Tick(Update, 0.1)
	}
	if tw.State() != StateRunning {
		t.Errorf("state = %v, want running", tw.State())
	}
	if !math.IsInf(float64(tw.TotalDuration()), 1) {
		t.Errorf("TotalDuration = %v, want +Inf", tw.TotalDuration())
	}
	tw.Reverse()
	if tw.IsReversed() {
		t.Error("infinite tween should not reverse")
	}
	tw.Complete()
	if tw.State() != StateRunning {
		t.Error("infinite tween should not complete")
	}
}

func TestTweenTimeScale(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	tw := e.To(n, 1, NewConfig().Float("x", 10, false).SetTimeScale(2))
	e.Tick(Update, 0.25)
	if !approx(n.X, 5) {
		t.Errorf("X = %v, want 5", n.X)
	}
	tw.SetTimeScale(0)
	e.Tick(Update, 0.25)
	if !approx(n.X, 5) {
		t.Errorf("X = %v, zero time scale should freeze", n.X)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")

	e.To(n, 0, NewConfig().Float("x", 10, false))
	e.Tick(Update, 0.016)
	if n.X != 10 || e.Len() != 0 {
		t.Errorf("X = %v Len %d, want 10 and removed", n.X, e.Len())
	}
}

func TestTweenDefaultsFromSettings(t *testing.T) {
	s := DefaultSettings()
	s.LogLevel = LogSilent
	s.DefaultUpdateType = LateUpdate
	s.DefaultLoopType = LoopPingPong
	e := NewEngine(s)
	n := NewNode("n")

	tw := e.To(n, 1, NewConfig().Float("x", 10, false).SetIterations(2))
	if tw.UpdateType() != LateUpdate {
		t.Errorf("UpdateType = %v, want lateUpdate", tw.UpdateType())
	}
	e.Tick(Update, 1)
	if n.X != 0 {
		t.Errorf("tween ticked by the wrong phase")
	}
	e.Tick(LateUpdate, 2)
	if n.X != 0 || tw.State() != StateDestroyed {
		t.Errorf("ping-pong default not applied: X = %v state %v", n.X, tw.State())
	}
}

func TestTweenInfiniteKeepsPrecision(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")
	tw := e.To(n, 1, NewConfig().Float("x", 10, false).SetIterations(-1))

	// Three days of play.
	tw.GoTo(3 * 24 * 3600)
	if tw.TotalElapsed() >= 1 {
		t.Fatalf("TotalElapsed = %v, want it folded below one iteration", tw.TotalElapsed())
	}
	if got := tw.CompletedIterations(); got != 259200 {
		t.Errorf("CompletedIterations = %d, want 259200", got)
	}
	e.Tick(Update, 1.0/60)
	if !approx(n.X, 10.0/60) {
		t.Errorf("X = %v after one frame, want %v", n.X, 10.0/60)
	}
}

func TestTweenInfinitePingPongWraps(t *testing.T) {
	e := newTestEngine()
	n := NewNode("n")
	tw := e.To(n, 1, NewConfig().Float("x", 10, false).SetIterations(-1).SetLoopType(LoopPingPong))

	e.Tick(Update, 2.5)
	if !approx(n.X, 5) || tw.CompletedIterations() != 2 || tw.TotalElapsed() >= 2 {
		t.Fatalf("X %v iterations %d elapsed %v", n.X, tw.CompletedIterations(), tw.TotalElapsed())
	}
	e.Tick(Update, 1)
	if !approx(n.X, 5) || tw.CompletedIterations() != 3 {
		t.Errorf("backward leg: X %v iterations %d", n.X, tw.CompletedIterations())
	}
	e.Tick(Update, 0.25)
	if !approx(n.X, 2.5) {
		t.Errorf("X = %v, want 2.5 on the backward leg", n.X)
	}
}
