// Package tween is a tweening engine for [Ebitengine] games.
//
// A tween animates named properties of a target (a position, a scale, a
// color, an int counter) from one value to another over time, shaped by an
// easing function. Tweens can be delayed, looped, ping-ponged, reversed,
// paused and grouped into sequences and parallel collections.
//
// # Quick start
//
// Create an [Engine] and hand it to a [Driver], which implements
// [ebiten.Game] and ticks every update phase for you:
//
//	engine := tween.NewEngine(tween.DefaultSettings())
//	node := tween.NewNode("hero")
//
//	engine.To(node, 0.5, tween.NewConfig().
//		Vec2("position", tween.Vec2{X: 200, Y: 120}, false).
//		SetEaseType(tween.EaseQuadOut))
//
//	ebiten.RunGame(tween.NewDriver(engine))
//
// For full control, call [Engine.Tick] for each phase from your own game loop:
//
//	func (g *Game) Update() error {
//		g.engine.Tick(tween.Update, 1.0/60)
//		g.engine.TickIndependent()
//		return nil
//	}
//
// # Targets and properties
//
// The engine never inspects targets with reflection. Property names are bound
// to getter/setter pairs registered in the engine's [Registry] with
// [RegisterAccessor]. [Node] accessors are registered out of the box; other
// types register their own:
//
//	tween.RegisterAccessor[float64](engine.Accessors(), "volume",
//		func(t tween.Target) (tween.Accessor[float64], bool) {
//			m, ok := t.(*Music)
//			if !ok {
//				return tween.Accessor[float64]{}, false
//			}
//			return tween.Accessor[float64]{
//				Get: func() float64 { return m.Volume },
//				Set: func(v float64) { m.Volume = v },
//			}, true
//		})
//
// A target implementing [Validator] is checked for liveness; a tween whose
// target dies is destroyed.
//
// # Collections
//
// [Engine.NewSequence] plays children one after another and
// [Engine.NewParallel] plays them together. Collections are tweeners
// themselves and support the same loops and controls.
//
// # Settings
//
// [Settings] carry the engine-wide defaults and named presets. They can be
// loaded from YAML with [LoadSettings] and reloaded while the game runs with
// [WatchSettings].
//
// Tweens and the engine are not safe for concurrent use. Everything,
// including callbacks, runs on the goroutine that calls Tick.
//
// [Ebitengine]: https://ebitengine.org
package tween
