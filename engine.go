package tween

import (
	"fmt"
	"slices"
	"time"
)

// Engine owns the registry of scheduled tweens and advances them when the
// host calls Tick for each update phase. It replaces a process-wide
// singleton: create one at startup, pass it where tweens are made, and call
// Shutdown when done. An Engine is not safe for concurrent use; all calls,
// including tween callbacks, happen on the host's frame thread.
type Engine struct {
	settings  Settings
	accessors *Registry
	log       *Logger

	tweens  []Tweener
	enabled bool

	// dispatching is set while Tick sweeps the registry; cursor is the index
	// being visited so removals below it can shift it.
	dispatching bool
	cursor      int

	independentRunning bool
	lastIndependent    time.Time

	// Clock supplies wall time for the time-scale-independent phase.
	Clock func() time.Time
}

// NewEngine creates an idle engine with the Node accessors registered.
func NewEngine(settings Settings) *Engine {
	if settings.TimeScale == 0 {
		settings.TimeScale = 1
	}
	return &Engine{
		settings:  settings,
		accessors: NewRegistry(),
		log:       NewLogger(nil, settings.LogLevel),
		Clock:     time.Now,
	}
}

// Settings returns a copy of the current settings.
func (e *Engine) Settings() Settings { return e.settings }

// ApplySettings replaces the settings. Tweens already built keep the
// defaults they were constructed with; the duplicate rule, log level, target
// validation and time scale take effect immediately.
func (e *Engine) ApplySettings(s Settings) {
	if s.TimeScale == 0 {
		s.TimeScale = 1
	}
	e.settings = s
	e.log.Level = s.LogLevel
}

// SetTimeScale scales the delta of every phase except the
// time-scale-independent one.
func (e *Engine) SetTimeScale(scale float32) { e.settings.TimeScale = scale }

// SetDuplicatePropertyRule changes the rule applied to future AddTween calls.
func (e *Engine) SetDuplicatePropertyRule(rule DuplicatePropertyRule) {
	e.settings.DuplicatePropertyRule = rule
}

// Accessors returns the registry used to bind property names on targets.
func (e *Engine) Accessors() *Registry { return e.accessors }

// Logger returns the engine's diagnostic logger.
func (e *Engine) Logger() *Logger { return e.log }

// Enabled reports whether the dispatcher is active. It turns off whenever
// the registry empties and back on when a tween is added.
func (e *Engine) Enabled() bool { return e.enabled }

// IndependentRunning reports whether the time-scale-independent phase is
// being driven.
func (e *Engine) IndependentRunning() bool { return e.independentRunning }

// Len returns the number of scheduled top-level tweeners.
func (e *Engine) Len() int { return len(e.tweens) }

// Tweens returns a copy of the registry in insertion order.
func (e *Engine) Tweens() []Tweener { return slices.Clone(e.tweens) }

// To creates and schedules a tween from the target's current values to the
// configured ones.
func (e *Engine) To(target Target, duration float32, cfg *TweenConfig) *Tween {
	if cfg == nil {
		cfg = NewConfig()
	}
	cfg.setIsTo()
	tw := e.NewTween(target, duration, cfg)
	e.AddTween(tw)
	return tw
}

// From creates and schedules a tween from the configured values to the
// target's current ones. Unless the tween starts paused, the target jumps to
// the configured values before From returns.
func (e *Engine) From(target Target, duration float32, cfg *TweenConfig) *Tween {
	if cfg == nil {
		cfg = NewConfig()
	}
	cfg.setIsFrom()
	tw := e.NewTween(target, duration, cfg)
	e.AddTween(tw)
	return tw
}

// ToPath moves target along path at speed units per second. The duration is
// the path length divided by speed. If cfg has no PositionPath property for
// path, one driving the "position" accessor is added.
func (e *Engine) ToPath(target Target, path Path, speed float64, cfg *TweenConfig) *Tween {
	if cfg == nil {
		cfg = NewConfig()
	}
	cfg.setIsTo()
	return e.pathTween(target, path, speed, cfg)
}

// FromPath is ToPath travelled from the end of the path back to its start.
func (e *Engine) FromPath(target Target, path Path, speed float64, cfg *TweenConfig) *Tween {
	if cfg == nil {
		cfg = NewConfig()
	}
	cfg.setIsFrom()
	return e.pathTween(target, path, speed, cfg)
}

func (e *Engine) pathTween(target Target, path Path, speed float64, cfg *TweenConfig) *Tween {
	path.BuildPath()
	if !cfg.hasPathProperty(path) {
		withPath := *cfg
		withPath.properties = slices.Clone(cfg.properties)
		cfg = withPath.PositionPath("position", path, false)
	}
	var duration float32
	if speed > 0 {
		duration = float32(path.Length() / speed)
	} else {
		e.log.Warnf("path speed %v is not positive; completing immediately", speed)
	}
	tw := e.NewTween(target, duration, cfg)
	e.AddTween(tw)
	return tw
}

// AddTween schedules tw. It refuses invalid, destroyed or already scheduled
// tweeners, children of a collection, and simple tweens rejected by the
// duplicate property rule, and reports whether tw was scheduled.
func (e *Engine) AddTween(tw Tweener) bool {
	if tw == nil {
		return false
	}
	if tw.State() == StateDestroyed {
		e.log.Warnf("refusing to schedule a destroyed tween")
		return false
	}
	if !tw.IsValid() {
		e.log.Warnf("refusing to schedule an invalid tween")
		return false
	}
	if tw.core().parent != nil {
		e.log.Warnf("refusing to schedule a tween owned by a collection")
		return false
	}
	if e.index(tw) >= 0 {
		return false
	}
	if simple, ok := tw.(*Tween); ok && e.settings.DuplicatePropertyRule != DuplicateNone {
		if e.handleDuplicateProperties(simple) || !simple.IsValid() {
			e.log.Infof("tween on %T not scheduled: duplicate property", simple.target)
			return false
		}
	}

	e.tweens = append(e.tweens, tw)
	e.enabled = true

	if simple, ok := tw.(*Tween); ok && simple.isFrom && simple.state != StatePaused {
		simple.applyStart()
	}
	if !e.independentRunning && tw.UpdateType() == TimeScaleIndependentUpdate {
		e.independentRunning = true
		e.lastIndependent = e.Clock()
	}
	return true
}

// handleDuplicateProperties applies the duplicate rule against every
// registered tween on the same target and reports whether tw must be
// refused. Under RemoveRunningProperty every colliding property is stripped,
// not only the first one found.
func (e *Engine) handleDuplicateProperties(tw *Tween) bool {
	for _, existing := range e.TweensWithTarget(tw.target, false) {
		if existing == tw {
			continue
		}
		for _, p := range tw.properties {
			for _, q := range existing.AllProperties() {
				if !collides(p, q) {
					continue
				}
				if e.settings.DuplicatePropertyRule == DuplicateDontAddCurrentProperty {
					return true
				}
				existing.RemoveProperty(q)
			}
		}
	}
	return false
}

func (e *Engine) index(tw Tweener) int {
	for i, t := range e.tweens {
		if t == tw {
			return i
		}
	}
	return -1
}

// RemoveTween unschedules tw without destroying it and reports whether it
// was scheduled.
func (e *Engine) RemoveTween(tw Tweener) bool {
	i := e.index(tw)
	if i < 0 {
		return false
	}
	e.tweens = slices.Delete(e.tweens, i, i+1)
	if e.dispatching && i < e.cursor {
		e.cursor--
	}
	if len(e.tweens) == 0 {
		e.enabled = false
	}
	return true
}

// RemoveTweensWithTag unschedules every top-level tweener tagged tag.
func (e *Engine) RemoveTweensWithTag(tag string) {
	for _, tw := range e.TweensWithTag(tag) {
		e.RemoveTween(tw)
	}
}

// TweensWithTag returns the scheduled tweeners tagged tag, or nil.
func (e *Engine) TweensWithTag(tag string) []Tweener {
	var out []Tweener
	for _, tw := range e.tweens {
		if tw.Tag() == tag {
			out = append(out, tw)
		}
	}
	return out
}

// TweensWithID returns the scheduled tweeners with the given id, or nil.
func (e *Engine) TweensWithID(id int) []Tweener {
	var out []Tweener
	for _, tw := range e.tweens {
		if tw.ID() == id {
			out = append(out, tw)
		}
	}
	return out
}

// TweensWithTarget returns the scheduled tweens animating target. With
// traverseCollections set, tweens inside scheduled collections are included.
func (e *Engine) TweensWithTarget(target Target, traverseCollections bool) []*Tween {
	var out []*Tween
	for _, tw := range e.tweens {
		switch t := tw.(type) {
		case *Tween:
			if t.target == target {
				out = append(out, t)
			}
		case *Collection:
			if traverseCollections {
				out = append(out, t.TweensWithTarget(target)...)
			}
		}
	}
	return out
}

// KillAllTweensWithTarget destroys every tween animating target, including
// those inside collections, and unschedules the top-level ones.
func (e *Engine) KillAllTweensWithTarget(target Target) {
	for _, tw := range e.TweensWithTarget(target, true) {
		tw.Destroy()
		e.RemoveTween(tw)
	}
}

// KillAll destroys and unschedules everything.
func (e *Engine) KillAll() {
	for _, tw := range slices.Clone(e.tweens) {
		tw.Destroy()
		e.RemoveTween(tw)
	}
	e.independentRunning = false
}

// Shutdown kills every tween and leaves the engine idle. The engine can be
// reused afterwards.
func (e *Engine) Shutdown() {
	e.KillAll()
	e.enabled = false
}

// Tick advances every running tweener of phase by dt seconds. The host
// calls it once per phase per frame. Scaled phases multiply dt by the engine
// time scale; TimeScaleIndependentUpdate uses dt as given.
func (e *Engine) Tick(phase UpdateType, dt float32) {
	if !e.enabled {
		return
	}
	if phase != TimeScaleIndependentUpdate {
		dt *= e.settings.TimeScale
	}
	e.handleUpdateOfType(phase, dt)
}

// TickIndependent drives the time-scale-independent phase with the wall
// time elapsed since its previous tick. It runs only while a tween of that
// phase is scheduled and stops itself once none remain.
func (e *Engine) TickIndependent() {
	if !e.independentRunning {
		return
	}
	now := e.Clock()
	dt := float32(now.Sub(e.lastIndependent).Seconds())
	e.lastIndependent = now
	e.handleUpdateOfType(TimeScaleIndependentUpdate, dt)
	if !slices.ContainsFunc(e.tweens, func(tw Tweener) bool {
		return tw.UpdateType() == TimeScaleIndependentUpdate
	}) {
		e.independentRunning = false
	}
}

// handleUpdateOfType sweeps the registry from the end so that removal of the
// visited tweener, or of any tweener during its callbacks, keeps indices valid.
func (e *Engine) handleUpdateOfType(phase UpdateType, dt float32) {
	e.dispatching = true
	defer func() { e.dispatching = false }()

	for e.cursor = len(e.tweens) - 1; e.cursor >= 0; e.cursor-- {
		if e.cursor >= len(e.tweens) {
			continue
		}
		tw := e.tweens[e.cursor]
		if tw.State() == StateDestroyed {
			e.RemoveTween(tw)
			continue
		}
		// Completed outside a tick, e.g. by Complete or GoTo.
		if tw.State() == StateComplete && tw.AutoRemoveOnComplete() {
			e.RemoveTween(tw)
			tw.Destroy()
			continue
		}
		if tw.UpdateType() != phase || tw.State() != StateRunning {
			continue
		}
		if tw.Update(dt*tw.TimeScale()) && (tw.State() == StateDestroyed || tw.AutoRemoveOnComplete()) {
			e.RemoveTween(tw)
			tw.Destroy()
		}
	}
}

// Preset builds a config from a preset defined in the settings.
func (e *Engine) Preset(name string) (*TweenConfig, error) {
	p, ok := e.settings.Presets[name]
	if !ok {
		return nil, fmt.Errorf("preset %q: %w", name, ErrInvalidSettings)
	}
	return p.Config()
}
