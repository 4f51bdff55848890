package tween

import "testing"

// setupBenchEngine schedules n long-running tweens, one per node, with a mix
// of property kinds.
func setupBenchEngine(n int) (*Engine, []*Node) {
	e := newTestEngine()
	nodes := make([]*Node, n)
	for i := range nodes {
		node := NewNode("bench")
		nodes[i] = node
		cfg := NewConfig().SetIterations(-1).SetLoopType(LoopPingPong)
		switch i % 4 {
		case 0:
			cfg.Float("x", 100, true)
		case 1:
			cfg.Vec2("position", Vec2{X: 50, Y: 50}, false)
		case 2:
			cfg.Rotation("rotation", 3, false)
		case 3:
			cfg.Color("color", Color{R: 0, G: 0, B: 0, A: 1}, false)
		}
		e.To(node, 1, cfg.SetEaseType(EaseQuadInOut))
	}
	return e, nodes
}

// --- Engine tick benchmarks ---

func BenchmarkTick_1000Tweens(b *testing.B) {
	e, _ := setupBenchEngine(1000)
	e.Tick(Update, 1.0/60) // warmup binds start values

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Tick(Update, 1.0/60)
	}
}

func BenchmarkTick_10000Tweens(b *testing.B) {
	e, _ := setupBenchEngine(10000)
	e.Tick(Update, 1.0/60)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Tick(Update, 1.0/60)
	}
}

func BenchmarkTick_10000Tweens_OtherPhase(b *testing.B) {
	e, _ := setupBenchEngine(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Nothing is scheduled in LateUpdate; measures the skip cost.
		e.Tick(LateUpdate, 1.0/60)
	}
}

func BenchmarkSequence_100Children(b *testing.B) {
	e := newTestEngine()
	n := NewNode("bench")
	seq := e.NewSequence(NewConfig().SetIterations(-1))
	for i := 0; i < 100; i++ {
		seq.Append(e.NewTween(n, 0.1, NewConfig().Float("x", float64(i), false)))
	}
	e.AddTween(seq)
	e.Tick(Update, 1.0/60)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Tick(Update, 1.0/60)
	}
}

// --- Scheduling benchmarks ---

func BenchmarkTo_WithDuplicateCheck(b *testing.B) {
	e, nodes := setupBenchEngine(1000)
	e.SetDuplicatePropertyRule(DuplicateRemoveRunningProperty)
	cfg := NewConfig().Float("alpha", 0, false)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.To(nodes[i%len(nodes)], 1, cfg)
	}
}

func BenchmarkPathPointAt(b *testing.B) {
	p := NewPolyline(Vec2{0, 0}, Vec2{10, 0}, Vec2{10, 10}, Vec2{0, 10}, Vec2{0, 0})
	p.BuildPath()
	length := p.Length()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.PointAt(float64(i%100) / 100 * length)
	}
}
