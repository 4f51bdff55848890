package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func newEngine() *tween.Engine {
	s := tween.DefaultSettings()
	s.LogLevel = tween.LogSilent
	e := tween.NewEngine(s)
	RegisterAccessors(e.Accessors())
	return e
}

func TestEntityTarget_Valid(t *testing.T) {
	world := donburi.NewWorld()
	target := NewTransformEntity(world)
	if !target.Valid() {
		t.Fatal("new entity should be valid")
	}
	world.Remove(target.Entity)
	if target.Valid() {
		t.Error("removed entity should be invalid")
	}
	if (EntityTarget{}).Valid() {
		t.Error("zero EntityTarget should be invalid")
	}
}

func TestNewTransformEntity_Defaults(t *testing.T) {
	world := donburi.NewWorld()
	target := NewTransformEntity(world)
	d := Transform.Get(world.Entry(target.Entity))
	if d.ScaleX != 1 || d.ScaleY != 1 || d.Alpha != 1 {
		t.Errorf("defaults = %+v", *d)
	}
}

func TestTweenEntityPosition(t *testing.T) {
	world := donburi.NewWorld()
	e := newEngine()
	target := NewTransformEntity(world)

	tw := e.To(target, 1, tween.NewConfig().Vec2("position", tween.Vec2{X: 100, Y: 50}, false))
	if !tw.IsValid() {
		t.Fatal("tween on entity should be valid")
	}
	e.Tick(tween.Update, 0.5)
	d := Transform.Get(world.Entry(target.Entity))
	if math.Abs(d.X-50) > 1e-3 || math.Abs(d.Y-25) > 1e-3 {
		t.Errorf("halfway = (%v, %v), want (50, 25)", d.X, d.Y)
	}
	e.Tick(tween.Update, 0.5)
	if d := Transform.Get(world.Entry(target.Entity)); d.X != 100 || d.Y != 50 {
		t.Errorf("end = (%v, %v), want (100, 50)", d.X, d.Y)
	}
}

func TestTweenEntityFloatFields(t *testing.T) {
	world := donburi.NewWorld()
	e := newEngine()
	target := NewTransformEntity(world)

	e.To(target, 1, tween.NewConfig().
		Float("alpha", 0, false).
		Float("rotation", math.Pi, false).
		Vec2("scale", tween.Vec2{X: 2, Y: 3}, false))
	e.Tick(tween.Update, 1)

	d := Transform.Get(world.Entry(target.Entity))
	if d.Alpha != 0 || math.Abs(d.Rotation-math.Pi) > 1e-6 || d.ScaleX != 2 || d.ScaleY != 3 {
		t.Errorf("after tween = %+v", *d)
	}
}

func TestUnknownEntityPropertyIsInvalid(t *testing.T) {
	world := donburi.NewWorld()
	e := newEngine()
	target := NewTransformEntity(world)

	tw := e.To(target, 1, tween.NewConfig().Float("depth", 1, false))
	if tw.IsValid() {
		t.Error("unregistered property should make the tween invalid")
	}
	if e.Len() != 0 {
		t.Errorf("invalid tween was scheduled, Len = %d", e.Len())
	}
}

func TestPublishOnComplete(t *testing.T) {
	world := donburi.NewWorld()
	e := newEngine()
	target := NewTransformEntity(world)

	var received []TweenCompletedEvent
	TweenCompletedEventType.Subscribe(world, func(w donburi.World, ev TweenCompletedEvent) {
		received = append(received, ev)
	})

	cfg := tween.NewConfig().Float("x", 10, false).SetTag("slide").SetID(7)
	e.To(target, 0.5, PublishOnComplete(cfg, target))
	e.Tick(tween.Update, 0.25)
	events.ProcessAllEvents(world)
	if len(received) != 0 {
		t.Fatalf("event published before completion: %+v", received)
	}

	e.Tick(tween.Update, 0.25)
	events.ProcessAllEvents(world)
	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if ev := received[0]; ev.Entity != target.Entity || ev.Tag != "slide" || ev.ID != 7 {
		t.Errorf("event = %+v", ev)
	}
}

func TestRemoveEntity(t *testing.T) {
	world := donburi.NewWorld()
	e := newEngine()
	a := NewTransformEntity(world)
	b := NewTransformEntity(world)

	ta := e.To(a, 1, tween.NewConfig().Float("x", 10, false))
	tb := e.To(b, 1, tween.NewConfig().Float("x", 10, false))

	RemoveEntity(e, a)
	if ta.State() != tween.StateDestroyed {
		t.Errorf("tween on removed entity state = %v", ta.State())
	}
	if world.Valid(a.Entity) {
		t.Error("entity should be removed")
	}
	if tb.State() != tween.StateRunning || e.Len() != 1 {
		t.Errorf("other tween affected: state %v, Len %d", tb.State(), e.Len())
	}
}

func TestEntityRemovedMidTween(t *testing.T) {
	world := donburi.NewWorld()
	e := newEngine()
	target := NewTransformEntity(world)

	tw := e.To(target, 1, tween.NewConfig().Float("x", 10, false))
	e.Tick(tween.Update, 0.25)
	world.Remove(target.Entity)
	e.Tick(tween.Update, 0.25)
	if tw.State() != tween.StateDestroyed {
		t.Errorf("state = %v, want destroyed", tw.State())
	}
	if e.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.Len())
	}
}
