// Tweenbench drives many tweens through the engine without a window and
// records an allocation profile.
//
// Profiling:
// go build ./cmd/tweenbench
// go tool pprof -http=":8000" -nodefraction=0.001 ./tweenbench mem.pprof

package main

import (
	"flag"
	"log"
	"time"

	"github.com/phanxgames/tween"
	"github.com/pkg/profile"
)

func main() {
	nodes := flag.Int("nodes", 2000, "tweened nodes per round")
	frames := flag.Int("frames", 600, "frames per round")
	rounds := flag.Int("rounds", 10, "rounds")
	cpu := flag.Bool("cpu", false, "record a CPU profile instead of allocations")
	flag.Parse()

	mode := profile.MemProfileAllocs
	if *cpu {
		mode = profile.CPUProfile
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook)
	start := time.Now()
	ticks := run(*rounds, *frames, *nodes)
	p.Stop()

	elapsed := time.Since(start)
	log.Printf("[tweenbench] %d tween ticks in %v (%.1f ns/tick)",
		ticks, elapsed, float64(elapsed.Nanoseconds())/float64(max(ticks, 1)))
}

func run(rounds, frames, numNodes int) int {
	s := tween.DefaultSettings()
	s.LogLevel = tween.LogSilent
	e := tween.NewEngine(s)

	path := tween.NewPolyline(
		tween.Vec2{X: 0, Y: 0},
		tween.Vec2{X: 100, Y: 40},
		tween.Vec2{X: 200, Y: 0},
	)

	ticks := 0
	const dt = float32(1.0 / 60)
	for range rounds {
		nodes := make([]*tween.Node, numNodes)
		for i := range nodes {
			nodes[i] = tween.NewNode("bench")
			n := nodes[i]
			switch i % 4 {
			case 0:
				e.To(n, 2, tween.NewConfig().
					Vec2("position", tween.Vec2{X: 300, Y: 200}, false).
					SetEaseType(tween.EaseQuadInOut).
					SetLoopType(tween.LoopPingPong).
					SetIterations(-1))
			case 1:
				e.From(n, 1.5, tween.NewConfig().
					Float("alpha", 0, false).
					ColorHCL("color", tween.Color{R: 1, G: 0.2, B: 0.4, A: 1}).
					SetIterations(-1))
			case 2:
				e.ToPath(n, path, 120, tween.NewConfig().SetIterations(-1))
			case 3:
				seq := e.NewSequence(tween.NewConfig().SetIterations(-1))
				seq.Append(e.NewTween(n, 0.5, tween.NewConfig().Rotation("rotation", 3, true)))
				seq.Append(e.NewTween(n, 0.5, tween.NewConfig().Vec2("scale", tween.Vec2{X: 2, Y: 2}, false)))
				e.AddTween(seq)
			}
		}
		for range frames {
			e.Tick(tween.FixedUpdate, dt)
			e.Tick(tween.Update, dt)
			e.Tick(tween.LateUpdate, dt)
			ticks += e.Len()
		}
		e.Shutdown()
	}
	return ticks
}
