// Package ecs lets tweens animate [Donburi] entities.
//
// Entities are addressed with [EntityTarget], a comparable (world, entity)
// handle that stops being valid when the entity is removed. Register the
// [Transform] accessors on an engine once, then tween entities by name:
//
//	ecs.RegisterAccessors(engine.Accessors())
//	target := ecs.NewTransformEntity(world)
//	engine.To(target, 1, ecs.PublishOnComplete(tween.NewConfig().
//		Float("alpha", 0, false), target))
//
// Completion is published as a [TweenCompletedEventType] event; subscribe to
// it in your ECS systems and process it with events.ProcessAllEvents.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
