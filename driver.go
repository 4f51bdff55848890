package tween

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultFixedStep is the FixedUpdate timestep used when Driver.FixedStep is
// zero.
const DefaultFixedStep = float32(1.0 / 50.0)

// Driver runs an Engine from an ebiten game loop. It implements ebiten.Game,
// so it can be passed to ebiten.RunGame directly, or its Update and Draw can
// be called from a game's own methods.
//
// Each Update runs the phases in order: FixedUpdate (zero or more steps of
// FixedStep), Update, the time-scale-independent phase, the host's
// OnUpdate callback, then LateUpdate.
type Driver struct {
	Engine *Engine

	// FixedStep is the simulated interval of one FixedUpdate tick.
	FixedStep float32

	// Watcher, when set, is polled every frame and its settings applied.
	Watcher *SettingsWatcher

	OnUpdate func(dt float32) error
	OnDraw   func(screen *ebiten.Image)

	ScreenWidth, ScreenHeight int

	// Debug logs per-phase timings every frame.
	Debug bool
	// ShowStats draws an FPS, TPS and tween count overlay after OnDraw.
	ShowStats bool

	fixedAccum   float32
	scaleTween   *gween.Tween
	warnedCount  bool
	statsElapsed float32
	statsImage   *ebiten.Image
}

// NewDriver creates a driver for e with a 640x480 logical screen.
func NewDriver(e *Engine) *Driver {
	return &Driver{Engine: e, FixedStep: DefaultFixedStep, ScreenWidth: 640, ScreenHeight: 480}
}

// Update implements ebiten.Game. The delta is one tick at the current TPS.
func (d *Driver) Update() error {
	return d.step(float32(1.0 / float64(ebiten.TPS())))
}

// Draw implements ebiten.Game.
func (d *Driver) Draw(screen *ebiten.Image) {
	if d.OnDraw != nil {
		d.OnDraw(screen)
	}
	d.drawStats(screen)
}

// Layout implements ebiten.Game with a fixed logical screen size.
func (d *Driver) Layout(_, _ int) (int, int) {
	return d.ScreenWidth, d.ScreenHeight
}

// SetTimeScale eases the engine time scale to target over duration seconds
// of unscaled time. A non-positive duration applies it at once.
func (d *Driver) SetTimeScale(target, duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		d.scaleTween = nil
		d.Engine.SetTimeScale(target)
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	d.scaleTween = gween.New(d.Engine.Settings().TimeScale, target, duration, fn)
}

func (d *Driver) step(dt float32) error {
	e := d.Engine
	if d.Watcher != nil {
		if s, ok := d.Watcher.Poll(); ok {
			e.ApplySettings(s)
			e.Logger().Infof("settings reloaded")
		}
	}
	if d.scaleTween != nil {
		v, done := d.scaleTween.Update(dt)
		e.SetTimeScale(v)
		if done {
			d.scaleTween = nil
		}
	}

	step := d.FixedStep
	if step <= 0 {
		step = DefaultFixedStep
	}

	var stats debugStats
	var t0 time.Time
	if d.Debug {
		t0 = time.Now()
	}
	d.fixedAccum += dt
	for d.fixedAccum >= step {
		d.fixedAccum -= step
		e.Tick(FixedUpdate, step)
		stats.fixedSteps++
	}
	if d.Debug {
		t1 := time.Now()
		stats.fixedTime = t1.Sub(t0)
		t0 = t1
	}

	e.Tick(Update, dt)
	if d.Debug {
		t1 := time.Now()
		stats.updateTime = t1.Sub(t0)
		t0 = t1
	}

	e.TickIndependent()
	if d.Debug {
		t1 := time.Now()
		stats.independentTime = t1.Sub(t0)
	}

	if d.OnUpdate != nil {
		if err := d.OnUpdate(dt); err != nil {
			return err
		}
	}

	if d.Debug {
		t0 = time.Now()
	}
	e.Tick(LateUpdate, dt)
	if d.Debug {
		stats.lateTime = time.Since(t0)
		stats.tweens = e.Len()
		d.debugLog(stats)
		d.debugCheckTweenCount(stats.tweens)
	}
	d.updateStats(dt)
	return nil
}
