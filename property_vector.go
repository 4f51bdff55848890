package tween

// Vec2Property tweens both components of a Vec2 accessor.
type Vec2Property struct {
	propertyBase
	value Vec2

	start, end, diff Vec2
	acc              Accessor[Vec2]
}

// NewVec2Property creates a property driving the named Vec2 accessor.
func NewVec2Property(name string, value Vec2, relative bool) *Vec2Property {
	return &Vec2Property{
		propertyBase: propertyBase{name: name, relative: relative, channels: ChannelX | ChannelY},
		value:        value,
	}
}

func (p *Vec2Property) clone() Property {
	c := *p
	c.owner = nil
	return &c
}

func (p *Vec2Property) bind(r *Registry) (err error) {
	p.acc, err = ResolveAccessor[Vec2](r, p.target(), p.name)
	return err
}

func (p *Vec2Property) prepare() {
	p.start, p.end, p.diff = endpoints(p.acc.Get(), p.value, p.relative, p.owner.isFrom, addVec2, subVec2)
}

func (p *Vec2Property) tick(t float32) {
	fn, d := p.ease(), p.duration()
	p.acc.Set(Vec2{
		X: evaluate(fn, t, d, p.start.X, p.diff.X, p.end.X),
		Y: evaluate(fn, t, d, p.start.Y, p.diff.Y, p.end.Y),
	})
}

// Vec2ChannelProperty tweens a single component of a Vec2 accessor and
// leaves the other component as the target currently has it.
type Vec2ChannelProperty struct {
	propertyBase
	value float64

	start, end, diff float64
	acc              Accessor[Vec2]
}

// NewVec2ChannelProperty creates a property for channel ChannelX or ChannelY
// of the named Vec2 accessor.
func NewVec2ChannelProperty(name string, channel Channel, value float64, relative bool) *Vec2ChannelProperty {
	return &Vec2ChannelProperty{
		propertyBase: propertyBase{name: name, relative: relative, channels: channel},
		value:        value,
	}
}

func (p *Vec2ChannelProperty) clone() Property {
	c := *p
	c.owner = nil
	return &c
}

func (p *Vec2ChannelProperty) bind(r *Registry) (err error) {
	p.acc, err = ResolveAccessor[Vec2](r, p.target(), p.name)
	return err
}

func (p *Vec2ChannelProperty) component(v Vec2) float64 {
	if p.channels == ChannelY {
		return v.Y
	}
	return v.X
}

func (p *Vec2ChannelProperty) prepare() {
	p.start, p.end, p.diff = endpoints(p.component(p.acc.Get()), p.value, p.relative, p.owner.isFrom, addFloat, subFloat)
}

func (p *Vec2ChannelProperty) tick(t float32) {
	v := p.acc.Get()
	x := evaluate(p.ease(), t, p.duration(), p.start, p.diff, p.end)
	if p.channels == ChannelY {
		v.Y = x
	} else {
		v.X = x
	}
	p.acc.Set(v)
}

// Vec3Property tweens all components of a Vec3 accessor.
type Vec3Property struct {
	propertyBase
	value Vec3

	start, end, diff Vec3
	acc              Accessor[Vec3]
}

// NewVec3Property creates a property driving the named Vec3 accessor.
func NewVec3Property(name string, value Vec3, relative bool) *Vec3Property {
	return &Vec3Property{
		propertyBase: propertyBase{name: name, relative: relative, channels: ChannelX | ChannelY | ChannelZ},
		value:        value,
	}
}

func (p *Vec3Property) clone() Property {
	c := *p
	c.owner = nil
	return &c
}

func (p *Vec3Property) bind(r *Registry) (err error) {
	p.acc, err = ResolveAccessor[Vec3](r, p.target(), p.name)
	return err
}

func (p *Vec3Property) prepare() {
	p.start, p.end, p.diff = endpoints(p.acc.Get(), p.value, p.relative, p.owner.isFrom, addVec3, subVec3)
}

func (p *Vec3Property) tick(t float32) {
	fn, d := p.ease(), p.duration()
	p.acc.Set(Vec3{
		X: evaluate(fn, t, d, p.start.X, p.diff.X, p.end.X),
		Y: evaluate(fn, t, d, p.start.Y, p.diff.Y, p.end.Y),
		Z: evaluate(fn, t, d, p.start.Z, p.diff.Z, p.end.Z),
	})
}

// Vec3ChannelProperty tweens a single component of a Vec3 accessor.
type Vec3ChannelProperty struct {
	propertyBase
	value float64

	start, end, diff float64
	acc              Accessor[Vec3]
}

// NewVec3ChannelProperty creates a property for channel ChannelX, ChannelY
// or ChannelZ of the named Vec3 accessor.
func NewVec3ChannelProperty(name string, channel Channel, value float64, relative bool) *Vec3ChannelProperty {
	return &Vec3ChannelProperty{
		propertyBase: propertyBase{name: name, relative: relative, channels: channel},
		value:        value,
	}
}

func (p *Vec3ChannelProperty) clone() Property {
	c := *p
	c.owner = nil
	return &c
}

func (p *Vec3ChannelProperty) bind(r *Registry) (err error) {
	p.acc, err = ResolveAccessor[Vec3](r, p.target(), p.name)
	return err
}

func (p *Vec3ChannelProperty) component(v *Vec3) *float64 {
	switch p.channels {
	case ChannelY:
		return &v.Y
	case ChannelZ:
		return &v.Z
	default:
		return &v.X
	}
}

func (p *Vec3ChannelProperty) prepare() {
	v := p.acc.Get()
	p.start, p.end, p.diff = endpoints(*p.component(&v), p.value, p.relative, p.owner.isFrom, addFloat, subFloat)
}

func (p *Vec3ChannelProperty) tick(t float32) {
	v := p.acc.Get()
	*p.component(&v) = evaluate(p.ease(), t, p.duration(), p.start, p.diff, p.end)
	p.acc.Set(v)
}
