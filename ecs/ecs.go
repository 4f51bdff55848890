package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransformData is the tweenable state of an entity.
type TransformData struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	Alpha          float64
}

// Transform is the component the registered accessors read and write.
var Transform = donburi.NewComponentType[TransformData]()

// TweenCompletedEvent reports that a tween on an entity finished.
type TweenCompletedEvent struct {
	Entity donburi.Entity
	Tag    string
	ID     int
}

// TweenCompletedEventType is the Donburi event type for finished tweens.
var TweenCompletedEventType = events.NewEventType[TweenCompletedEvent]()

// EntityTarget addresses an entity as a tween target. It is comparable, so
// two handles for the same entity select the same tweens.
type EntityTarget struct {
	World  donburi.World
	Entity donburi.Entity
}

// Valid reports whether the entity still exists and has a Transform.
func (t EntityTarget) Valid() bool {
	if t.World == nil || !t.World.Valid(t.Entity) {
		return false
	}
	return t.World.Entry(t.Entity).HasComponent(Transform)
}

// transform fetches the component on every access; archetype changes move
// component storage, so pointers are not kept.
func (t EntityTarget) transform() *TransformData {
	return Transform.Get(t.World.Entry(t.Entity))
}

// NewTransformEntity creates an entity with an identity Transform.
func NewTransformEntity(world donburi.World) EntityTarget {
	e := world.Create(Transform)
	Transform.SetValue(world.Entry(e), TransformData{ScaleX: 1, ScaleY: 1, Alpha: 1})
	return EntityTarget{World: world, Entity: e}
}

var transformFloats = map[string]func(*TransformData) *float64{
	"x":        func(d *TransformData) *float64 { return &d.X },
	"y":        func(d *TransformData) *float64 { return &d.Y },
	"scaleX":   func(d *TransformData) *float64 { return &d.ScaleX },
	"scaleY":   func(d *TransformData) *float64 { return &d.ScaleY },
	"rotation": func(d *TransformData) *float64 { return &d.Rotation },
	"alpha":    func(d *TransformData) *float64 { return &d.Alpha },
}

// RegisterAccessors registers the Transform fields for EntityTarget on r:
// float64 "x", "y", "scaleX", "scaleY", "rotation", "alpha" and Vec2
// "position", "scale".
func RegisterAccessors(r *tween.Registry) {
	for name, field := range transformFloats {
		tween.RegisterAccessor[float64](r, name, func(target tween.Target) (tween.Accessor[float64], bool) {
			t, ok := target.(EntityTarget)
			if !ok {
				return tween.Accessor[float64]{}, false
			}
			return tween.Accessor[float64]{
				Get: func() float64 { return *field(t.transform()) },
				Set: func(v float64) { *field(t.transform()) = v },
			}, true
		})
	}

	tween.RegisterAccessor[tween.Vec2](r, "position", func(target tween.Target) (tween.Accessor[tween.Vec2], bool) {
		t, ok := target.(EntityTarget)
		if !ok {
			return tween.Accessor[tween.Vec2]{}, false
		}
		return tween.Accessor[tween.Vec2]{
			Get: func() tween.Vec2 {
				d := t.transform()
				return tween.Vec2{X: d.X, Y: d.Y}
			},
			Set: func(v tween.Vec2) {
				d := t.transform()
				d.X, d.Y = v.X, v.Y
			},
		}, true
	})

	tween.RegisterAccessor[tween.Vec2](r, "scale", func(target tween.Target) (tween.Accessor[tween.Vec2], bool) {
		t, ok := target.(EntityTarget)
		if !ok {
			return tween.Accessor[tween.Vec2]{}, false
		}
		return tween.Accessor[tween.Vec2]{
			Get: func() tween.Vec2 {
				d := t.transform()
				return tween.Vec2{X: d.ScaleX, Y: d.ScaleY}
			},
			Set: func(v tween.Vec2) {
				d := t.transform()
				d.ScaleX, d.ScaleY = v.X, v.Y
			},
		}, true
	})
}

// PublishOnComplete sets cfg's OnComplete to publish a TweenCompletedEvent
// for target. It replaces any OnComplete already set.
func PublishOnComplete(cfg *tween.TweenConfig, target EntityTarget) *tween.TweenConfig {
	return cfg.OnComplete(func(tw tween.Tweener) {
		TweenCompletedEventType.Publish(target.World, TweenCompletedEvent{
			Entity: target.Entity,
			Tag:    tw.Tag(),
			ID:     tw.ID(),
		})
	})
}

// RemoveEntity kills every tween on target and removes the entity.
func RemoveEntity(e *tween.Engine, target EntityTarget) {
	e.KillAllTweensWithTarget(target)
	if target.World != nil && target.World.Valid(target.Entity) {
		target.World.Remove(target.Entity)
	}
}
