package tween

// Tween animates the properties of one target. Create tweens with
// Engine.To/From (scheduled immediately) or Engine.NewTween (for collections
// or manual scheduling with AddTween).
type Tween struct {
	tweenCore

	target     Target
	properties []Property
	ease       EaseFunc
	isFrom     bool
	valid      bool
}

// NewTween builds a tween without scheduling it. Options not set on cfg are
// read from the engine settings now. Properties that do not resolve on target
// make the tween invalid; an invalid tween is never scheduled.
func (e *Engine) NewTween(target Target, duration float32, cfg *TweenConfig) *Tween {
	if cfg == nil {
		cfg = NewConfig()
	}
	tw := &Tween{target: target, isFrom: cfg.isFrom, valid: true}
	tw.tweenCore.init(tw, tw, e, duration, cfg)

	switch {
	case cfg.easeSet && cfg.ease != nil:
		tw.ease = cfg.ease
	case cfg.easeSet:
		tw.ease = cfg.easeType.Func()
	default:
		tw.ease = e.settings.DefaultEaseType.Func()
	}

	if !targetValid(target) {
		e.log.Errorf("tween target %T is invalid", target)
		tw.valid = false
		return tw
	}

	tw.properties = make([]Property, 0, len(cfg.properties))
	for _, p := range cfg.properties {
		p = p.clone()
		b := p.base()
		b.owner = tw
		b.relative = b.relative || cfg.relative
		if err := p.bind(e.accessors); err != nil {
			e.log.Errorf("property %q: %v", p.Name(), err)
			tw.valid = false
			continue
		}
		tw.properties = append(tw.properties, p)
	}
	return tw
}

// Target returns the animated object.
func (tw *Tween) Target() Target { return tw.target }

// IsFrom reports whether the tween animates from its configured values to
// the target's current ones.
func (tw *Tween) IsFrom() bool { return tw.isFrom }

// IsValid reports whether every property resolved and the target is alive.
func (tw *Tween) IsValid() bool {
	return tw.valid && tw.state != StateDestroyed && targetValid(tw.target)
}

// AllProperties returns a copy of the tween's properties.
func (tw *Tween) AllProperties() []Property {
	return append([]Property(nil), tw.properties...)
}

// ContainsProperty reports whether the tween drives a property that collides
// with p (same name, overlapping channels).
func (tw *Tween) ContainsProperty(p Property) bool {
	for _, q := range tw.properties {
		if collides(p, q) {
			return true
		}
	}
	return false
}

// RemoveProperty stops the tween from driving p. A tween left with no
// properties is destroyed.
func (tw *Tween) RemoveProperty(p Property) bool {
	for i, q := range tw.properties {
		if q != p {
			continue
		}
		copy(tw.properties[i:], tw.properties[i+1:])
		tw.properties[len(tw.properties)-1] = nil
		tw.properties = tw.properties[:len(tw.properties)-1]
		if len(tw.properties) == 0 {
			tw.Destroy()
		}
		return true
	}
	return false
}

func (tw *Tween) initialize() {
	if !targetValid(tw.target) {
		tw.engine.log.Warnf("tween target %T is invalid at start; destroying tween", tw.target)
		tw.Destroy()
		return
	}
	for _, p := range tw.properties {
		p.prepare()
	}
}

func (tw *Tween) apply(elapsed float32) {
	if tw.engine.settings.ValidateTargetsEachTick && !targetValid(tw.target) {
		tw.engine.log.Warnf("tween target %T became invalid; destroying tween", tw.target)
		tw.Destroy()
		return
	}
	for _, p := range tw.properties {
		p.tick(elapsed)
	}
}

func (tw *Tween) destroyed() {}
