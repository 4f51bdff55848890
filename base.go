package tween

import "math"

// Tweener is implemented by *Tween and *Collection, the two things the
// engine schedules.
type Tweener interface {
	ID() int
	Tag() string
	State() State
	UpdateType() UpdateType
	TimeScale() float32
	SetTimeScale(scale float32)
	AutoRemoveOnComplete() bool
	IsValid() bool

	// Update advances by dt seconds and reports whether the tweener is
	// complete or destroyed.
	Update(dt float32) bool
	Destroy()

	Play()
	Pause()
	Rewind()
	Restart()
	Reverse()
	PlayForward()
	PlayBackwards()
	Complete()
	GoTo(t float32)

	Duration() float32
	TotalDuration() float32
	TotalElapsed() float32
	Elapsed() float32
	CompletedIterations() int
	IsReversed() bool

	core() *tweenCore
}

// driven is the part of a tweener that differs between a Tween and a
// Collection: how one iteration's elapsed time is applied.
type driven interface {
	initialize()
	apply(elapsed float32)
	destroyed()
}

// tweenCore holds the timing and state machine shared by tweens and
// collections.
type tweenCore struct {
	self   Tweener
	impl   driven
	engine *Engine
	parent *Collection

	id         int
	tag        string
	state      State
	duration   float32
	delay      float32
	iterations int
	loopType   LoopType
	updateType UpdateType
	timeScale  float32
	autoRemove bool
	reversed   bool

	delayElapsed float32
	totalElapsed float32
	elapsed      float32
	iteration    int
	iterBase     int // iterations folded out of totalElapsed on infinite loops
	didInit      bool
	didBegin     bool

	onInit           func(Tweener)
	onBegin          func(Tweener)
	onIterationStart func(Tweener)
	onUpdate         func(Tweener)
	onIterationEnd   func(Tweener)
	onComplete       func(Tweener)
}

// init copies the duration-independent options from cfg, falling back to
// the engine settings for anything cfg left unset.
func (c *tweenCore) init(self Tweener, impl driven, e *Engine, duration float32, cfg *TweenConfig) {
	s := e.settings
	c.self, c.impl, c.engine = self, impl, e
	c.duration = max(duration, 0)
	c.delay = cfg.delay
	c.iterations = cfg.iterations
	c.loopType = s.DefaultLoopType
	if cfg.loopSet {
		c.loopType = cfg.loopType
	}
	c.updateType = s.DefaultUpdateType
	if cfg.updateSet {
		c.updateType = cfg.updateType
	}
	c.timeScale = cfg.timeScale
	c.autoRemove = cfg.autoRemove
	c.id, c.tag = cfg.id, cfg.tag
	c.state = StateRunning
	if cfg.paused {
		c.state = StatePaused
	}
	c.onInit, c.onBegin, c.onUpdate, c.onComplete = cfg.onInit, cfg.onBegin, cfg.onUpdate, cfg.onComplete
	c.onIterationStart, c.onIterationEnd = cfg.onIterationStart, cfg.onIterationEnd
}

func (c *tweenCore) core() *tweenCore { return c }

// ID returns the id set with TweenConfig.SetID.
func (c *tweenCore) ID() int { return c.id }

// Tag returns the tag set with TweenConfig.SetTag.
func (c *tweenCore) Tag() string { return c.tag }

// State returns the current lifecycle state.
func (c *tweenCore) State() State { return c.state }

// UpdateType returns the phase that advances this tweener.
func (c *tweenCore) UpdateType() UpdateType { return c.updateType }

// TimeScale returns the per-tweener delta multiplier.
func (c *tweenCore) TimeScale() float32 { return c.timeScale }

// SetTimeScale changes the per-tweener delta multiplier.
func (c *tweenCore) SetTimeScale(scale float32) { c.timeScale = scale }

// AutoRemoveOnComplete reports whether the engine destroys it on completion.
func (c *tweenCore) AutoRemoveOnComplete() bool { return c.autoRemove }

// Duration returns the length of one iteration in seconds.
func (c *tweenCore) Duration() float32 { return c.duration }

// TotalDuration returns the length of all iterations, excluding the delay.
// Infinite tweens report +Inf.
func (c *tweenCore) TotalDuration() float32 {
	if c.iterations < 0 {
		return float32(math.Inf(1))
	}
	return c.duration * float32(c.iterations)
}

// TotalElapsed returns the time played across all iterations. Infinite
// tweeners report it within the current loop period.
func (c *tweenCore) TotalElapsed() float32 { return c.totalElapsed }

// Elapsed returns the time within the current iteration, as applied to the
// properties (reflected on the backward leg of a ping-pong).
func (c *tweenCore) Elapsed() float32 { return c.elapsed }

// CompletedIterations returns how many full iterations have been played.
func (c *tweenCore) CompletedIterations() int {
	if c.state == StateComplete && !c.reversed {
		return c.iterations
	}
	return c.iteration
}

// IsReversed reports whether the tweener plays backwards.
func (c *tweenCore) IsReversed() bool { return c.reversed }

// span is the time a parent collection needs to play this tweener through.
func (c *tweenCore) span() float32 { return c.delay + c.TotalDuration() }

// fire runs cb and reports whether the tweener survived it.
func (c *tweenCore) fire(cb func(Tweener)) bool {
	if cb != nil {
		cb(c.self)
	}
	return c.state != StateDestroyed
}

func (c *tweenCore) ensureInit() bool {
	if c.didInit {
		return true
	}
	c.didInit = true
	if !c.fire(c.onInit) {
		return false
	}
	c.impl.initialize()
	return c.state != StateDestroyed
}

// locate maps a total elapsed time onto an iteration and the time within it.
func (c *tweenCore) locate(t float32) (int, float32) {
	d := c.duration
	if d <= 0 {
		return max(c.iterations-1, 0), 0
	}
	iter := int(t / d)
	el := t - float32(iter)*d
	if c.iterations >= 0 && iter >= c.iterations {
		iter, el = c.iterations-1, d
	}
	if c.loopType == LoopPingPong && iter%2 == 1 {
		el = d - el
	}
	return iter, el
}

// Update advances by dt seconds (already scaled by the caller) and reports
// whether the tweener is complete or destroyed. Paused tweeners do not move.
func (c *tweenCore) Update(dt float32) bool {
	switch c.state {
	case StateDestroyed, StateComplete:
		return true
	case StatePaused:
		return false
	}
	if !c.reversed && c.delayElapsed < c.delay {
		c.delayElapsed += dt
		if c.delayElapsed < c.delay {
			return false
		}
		dt = c.delayElapsed - c.delay
		c.delayElapsed = c.delay
	}
	if c.reversed {
		return c.advance(c.totalElapsed-dt, true)
	}
	return c.advance(c.totalElapsed+dt, false)
}

// advance moves to total elapsed time t, applies the values and fires the
// callbacks. backwards marks a reversed play, which completes at zero.
func (c *tweenCore) advance(t float32, backwards bool) bool {
	if c.state == StateDestroyed {
		return true
	}
	total := c.TotalDuration()
	t = min(max(t, 0), total)
	if !c.ensureInit() {
		return true
	}

	if c.iterations < 0 && c.duration > 0 {
		t = c.wrap(t)
	}

	prev := c.iteration
	c.totalElapsed = t
	c.iteration, c.elapsed = c.locate(t)
	c.iteration += c.iterBase
	finished := t >= total
	if backwards {
		finished = t <= 0
	}

	if !c.didBegin {
		c.didBegin = true
		if !c.fire(c.onBegin) || !c.fire(c.onIterationStart) {
			return true
		}
	} else if c.iteration != prev {
		if !c.fire(c.onIterationEnd) || !c.fire(c.onIterationStart) {
			return true
		}
	}

	c.impl.apply(c.elapsed)
	if !c.fire(c.onUpdate) {
		return true
	}

	if finished {
		if c.state != StateComplete {
			c.state = StateComplete
			if !c.fire(c.onIterationEnd) {
				return true
			}
			c.fire(c.onComplete)
		}
		return true
	}
	if c.state == StateComplete {
		c.state = StateRunning
	}
	return false
}

// wrap folds whole loop periods out of t so an infinite tweener's clock
// keeps float32 precision however long it runs. A ping-pong period is two
// iterations, keeping the leg direction intact.
func (c *tweenCore) wrap(t float32) float32 {
	period, iters := c.duration, 1
	if c.loopType == LoopPingPong {
		period, iters = 2*c.duration, 2
	}
	if t < period {
		return t
	}
	n := int(t / period)
	c.iterBase += n * iters
	return max(t-float32(n)*period, 0)
}

// seek moves a child of a collection to local time t, which includes the
// child's delay. Children complete at the end of their span regardless of
// direction.
func (c *tweenCore) seek(t float32) bool {
	if c.state == StateDestroyed {
		return true
	}
	c.delayElapsed = min(t, c.delay)
	if t < c.delay && !c.didBegin {
		return false
	}
	return c.advance(t-c.delay, false)
}

// applyStart writes the time-zero values without moving the clock or firing
// anything but OnInit. Used for from tweens when they are scheduled.
func (c *tweenCore) applyStart() {
	if c.state == StateDestroyed || !c.ensureInit() {
		return
	}
	_, el := c.locate(0)
	c.impl.apply(el)
}

// Play resumes a paused tweener, or a completed one that can still move in
// its current direction.
func (c *tweenCore) Play() {
	switch c.state {
	case StatePaused:
		c.state = StateRunning
	case StateComplete:
		if (c.reversed && c.totalElapsed > 0) || (!c.reversed && c.totalElapsed < c.TotalDuration()) {
			c.state = StateRunning
		}
	}
}

// Pause stops a running tweener in place.
func (c *tweenCore) Pause() {
	if c.state == StateRunning {
		c.state = StatePaused
	}
}

// Rewind moves back to the start, applies the start values and pauses.
func (c *tweenCore) Rewind() {
	if c.state == StateDestroyed {
		return
	}
	c.delayElapsed = 0
	c.iterBase = 0
	c.advance(0, false)
	if c.state != StateDestroyed {
		c.state = StatePaused
	}
}

// Restart plays again from the start (or from the end when reversed),
// including the delay and OnBegin.
func (c *tweenCore) Restart() {
	if c.state == StateDestroyed {
		return
	}
	c.delayElapsed = 0
	c.iterBase = 0
	c.didBegin = false
	c.state = StateRunning
	if c.reversed {
		c.advance(c.TotalDuration(), true)
	} else {
		c.advance(0, false)
	}
	if c.state == StateComplete && c.TotalDuration() > 0 {
		c.state = StateRunning
	}
}

// Reverse flips the play direction. Infinite tweeners cannot be reversed.
func (c *tweenCore) Reverse() {
	if c.iterations < 0 {
		c.engine.log.Warnf("cannot reverse an infinitely looping tween")
		return
	}
	c.reversed = !c.reversed
	c.Play()
}

// PlayForward plays toward the end.
func (c *tweenCore) PlayForward() {
	c.reversed = false
	c.Play()
}

// PlayBackwards plays toward the start.
func (c *tweenCore) PlayBackwards() {
	if c.iterations < 0 {
		c.engine.log.Warnf("cannot play an infinitely looping tween backwards")
		return
	}
	c.reversed = true
	c.Play()
}

// Complete jumps to the end of the final iteration in the current direction.
func (c *tweenCore) Complete() {
	if c.iterations < 0 {
		c.engine.log.Warnf("cannot complete an infinitely looping tween")
		return
	}
	if c.state == StateDestroyed {
		return
	}
	c.delayElapsed = c.delay
	if c.reversed {
		c.advance(0, true)
	} else {
		c.advance(c.TotalDuration(), false)
	}
}

// GoTo jumps to total elapsed time t, skipping any remaining delay.
func (c *tweenCore) GoTo(t float32) {
	if c.state == StateDestroyed {
		return
	}
	c.delayElapsed = c.delay
	c.iterBase = 0
	c.advance(t, c.reversed)
}

// Destroy stops the tweener for good. The engine drops it on its next sweep.
// Safe to call at any time, including from the tweener's own callbacks.
func (c *tweenCore) Destroy() {
	if c.state == StateDestroyed {
		return
	}
	c.state = StateDestroyed
	c.impl.destroyed()
}
