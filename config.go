package tween

// TweenConfig collects everything about a tween except its target and
// duration. Build one with NewConfig and chained setters, then pass it to
// Engine.To or Engine.From. Options left unset take the engine's settings at
// the moment the tween is constructed. A config may be reused; each tween
// gets its own copies of the properties.
type TweenConfig struct {
	properties []Property

	ease       EaseFunc
	easeType   EaseType
	easeSet    bool
	loopType   LoopType
	loopSet    bool
	updateType UpdateType
	updateSet  bool

	iterations int
	delay      float32
	timeScale  float32
	tag        string
	id         int
	relative   bool
	paused     bool
	autoRemove bool
	isFrom     bool

	onInit           func(Tweener)
	onBegin          func(Tweener)
	onIterationStart func(Tweener)
	onUpdate         func(Tweener)
	onIterationEnd   func(Tweener)
	onComplete       func(Tweener)
}

// NewConfig creates a config for one iteration at normal speed that is
// removed from the engine when it completes.
func NewConfig() *TweenConfig {
	return &TweenConfig{
		iterations: 1,
		timeScale:  1,
		autoRemove: true,
	}
}

// Properties returns the configured properties. The slice MUST NOT be mutated.
func (c *TweenConfig) Properties() []Property { return c.properties }

// AddProperty appends a property.
func (c *TweenConfig) AddProperty(p Property) *TweenConfig {
	c.properties = append(c.properties, p)
	return c
}

// Float tweens a float64 accessor.
func (c *TweenConfig) Float(name string, value float64, relative bool) *TweenConfig {
	return c.AddProperty(NewFloatProperty(name, value, relative))
}

// Int tweens an int accessor.
func (c *TweenConfig) Int(name string, value int, relative bool) *TweenConfig {
	return c.AddProperty(NewIntProperty(name, value, relative))
}

// Rotation tweens an angle in radians along the shorter arc.
func (c *TweenConfig) Rotation(name string, angle float64, relative bool) *TweenConfig {
	return c.AddProperty(NewRotationProperty(name, angle, relative, true))
}

// Vec2 tweens a Vec2 accessor.
func (c *TweenConfig) Vec2(name string, value Vec2, relative bool) *TweenConfig {
	return c.AddProperty(NewVec2Property(name, value, relative))
}

// Vec2X tweens the X component of a Vec2 accessor.
func (c *TweenConfig) Vec2X(name string, value float64, relative bool) *TweenConfig {
	return c.AddProperty(NewVec2ChannelProperty(name, ChannelX, value, relative))
}

// Vec2Y tweens the Y component of a Vec2 accessor.
func (c *TweenConfig) Vec2Y(name string, value float64, relative bool) *TweenConfig {
	return c.AddProperty(NewVec2ChannelProperty(name, ChannelY, value, relative))
}

// Vec3 tweens a Vec3 accessor.
func (c *TweenConfig) Vec3(name string, value Vec3, relative bool) *TweenConfig {
	return c.AddProperty(NewVec3Property(name, value, relative))
}

// Vec3X tweens the X component of a Vec3 accessor.
func (c *TweenConfig) Vec3X(name string, value float64, relative bool) *TweenConfig {
	return c.AddProperty(NewVec3ChannelProperty(name, ChannelX, value, relative))
}

// Vec3Y tweens the Y component of a Vec3 accessor.
func (c *TweenConfig) Vec3Y(name string, value float64, relative bool) *TweenConfig {
	return c.AddProperty(NewVec3ChannelProperty(name, ChannelY, value, relative))
}

// Vec3Z tweens the Z component of a Vec3 accessor.
func (c *TweenConfig) Vec3Z(name string, value float64, relative bool) *TweenConfig {
	return c.AddProperty(NewVec3ChannelProperty(name, ChannelZ, value, relative))
}

// Color tweens a Color accessor channel by channel.
func (c *TweenConfig) Color(name string, value Color, relative bool) *TweenConfig {
	return c.AddProperty(NewColorProperty(name, value, relative, BlendRGB))
}

// ColorHCL tweens a Color accessor through HCL space.
func (c *TweenConfig) ColorHCL(name string, value Color) *TweenConfig {
	return c.AddProperty(NewColorProperty(name, value, false, BlendHCL))
}

// PositionPath moves a Vec2 accessor along path.
func (c *TweenConfig) PositionPath(name string, path Path, relative bool) *TweenConfig {
	return c.AddProperty(NewPathProperty(name, path, relative))
}

// SetEaseType selects a preset easing function.
func (c *TweenConfig) SetEaseType(e EaseType) *TweenConfig {
	c.easeType, c.ease, c.easeSet = e, nil, true
	return c
}

// SetEase uses a custom easing function.
func (c *TweenConfig) SetEase(fn EaseFunc) *TweenConfig {
	c.ease, c.easeSet = fn, fn != nil
	return c
}

// SetLoopType sets how iterations after the first are played.
func (c *TweenConfig) SetLoopType(l LoopType) *TweenConfig {
	c.loopType, c.loopSet = l, true
	return c
}

// SetIterations sets the number of iterations. -1 loops forever.
func (c *TweenConfig) SetIterations(n int) *TweenConfig {
	if n == 0 || n < -1 {
		n = 1
	}
	c.iterations = n
	return c
}

// SetDelay waits seconds before the first iteration starts.
func (c *TweenConfig) SetDelay(seconds float32) *TweenConfig {
	c.delay = max(seconds, 0)
	return c
}

// SetUpdateType sets the phase that advances the tween.
func (c *TweenConfig) SetUpdateType(u UpdateType) *TweenConfig {
	c.updateType, c.updateSet = u, true
	return c
}

// SetTimeScale multiplies every delta the tween receives.
func (c *TweenConfig) SetTimeScale(scale float32) *TweenConfig {
	c.timeScale = scale
	return c
}

// SetTag labels the tween for TweensWithTag and RemoveTweensWithTag.
func (c *TweenConfig) SetTag(tag string) *TweenConfig {
	c.tag = tag
	return c
}

// SetID sets a numeric id for TweensWithID.
func (c *TweenConfig) SetID(id int) *TweenConfig {
	c.id = id
	return c
}

// SetRelative marks every property of the tween relative, in addition to
// properties created relative.
func (c *TweenConfig) SetRelative(relative bool) *TweenConfig {
	c.relative = relative
	return c
}

// StartPaused creates the tween in the Paused state.
func (c *TweenConfig) StartPaused() *TweenConfig {
	c.paused = true
	return c
}

// SetAutoRemove controls whether the engine removes and destroys the tween
// when it completes. A tween kept after completion can be restarted.
func (c *TweenConfig) SetAutoRemove(auto bool) *TweenConfig {
	c.autoRemove = auto
	return c
}

// OnInit is called once, right before the first tick reads start values.
func (c *TweenConfig) OnInit(fn func(Tweener)) *TweenConfig { c.onInit = fn; return c }

// OnBegin is called the first time the tween moves.
func (c *TweenConfig) OnBegin(fn func(Tweener)) *TweenConfig { c.onBegin = fn; return c }

// OnIterationStart is called whenever an iteration begins.
func (c *TweenConfig) OnIterationStart(fn func(Tweener)) *TweenConfig {
	c.onIterationStart = fn
	return c
}

// OnUpdate is called after every tick that wrote values.
func (c *TweenConfig) OnUpdate(fn func(Tweener)) *TweenConfig { c.onUpdate = fn; return c }

// OnIterationEnd is called whenever an iteration ends.
func (c *TweenConfig) OnIterationEnd(fn func(Tweener)) *TweenConfig {
	c.onIterationEnd = fn
	return c
}

// OnComplete is called when the final iteration ends. It is safe to destroy
// the tween or start new ones from inside the callback.
func (c *TweenConfig) OnComplete(fn func(Tweener)) *TweenConfig { c.onComplete = fn; return c }

func (c *TweenConfig) setIsTo()   { c.isFrom = false }
func (c *TweenConfig) setIsFrom() { c.isFrom = true }

// hasPathProperty reports whether a PathProperty follows path.
func (c *TweenConfig) hasPathProperty(path Path) bool {
	for _, p := range c.properties {
		if pp, ok := p.(*PathProperty); ok && pp.path == path {
			return true
		}
	}
	return false
}
