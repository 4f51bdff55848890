package tween

import "math"

// FloatProperty tweens a float64 accessor.
type FloatProperty struct {
	propertyBase
	value float64

	start, end, diff float64
	acc              Accessor[float64]
}

// NewFloatProperty creates a property driving the named float64 accessor
// toward value (or by value when relative).
func NewFloatProperty(name string, value float64, relative bool) *FloatProperty {
	return &FloatProperty{
		propertyBase: propertyBase{name: name, relative: relative, channels: ChannelAll},
		value:        value,
	}
}

func (p *FloatProperty) clone() Property {
	c := *p
	c.owner = nil
	return &c
}

func (p *FloatProperty) bind(r *Registry) (err error) {
	p.acc, err = ResolveAccessor[float64](r, p.target(), p.name)
	return err
}

func (p *FloatProperty) prepare() {
	p.start, p.end, p.diff = endpoints(p.acc.Get(), p.value, p.relative, p.owner.isFrom, addFloat, subFloat)
}

func (p *FloatProperty) tick(t float32) {
	p.acc.Set(evaluate(p.ease(), t, p.duration(), p.start, p.diff, p.end))
}

// IntProperty tweens an int accessor, rounding the eased value.
type IntProperty struct {
	propertyBase
	value int

	start, end, diff float64
	acc              Accessor[int]
}

// NewIntProperty creates a property driving the named int accessor.
func NewIntProperty(name string, value int, relative bool) *IntProperty {
	return &IntProperty{
		propertyBase: propertyBase{name: name, relative: relative, channels: ChannelAll},
		value:        value,
	}
}

func (p *IntProperty) clone() Property {
	c := *p
	c.owner = nil
	return &c
}

func (p *IntProperty) bind(r *Registry) (err error) {
	p.acc, err = ResolveAccessor[int](r, p.target(), p.name)
	return err
}

func (p *IntProperty) prepare() {
	p.start, p.end, p.diff = endpoints(float64(p.acc.Get()), float64(p.value), p.relative, p.owner.isFrom, addFloat, subFloat)
}

func (p *IntProperty) tick(t float32) {
	p.acc.Set(int(math.Round(evaluate(p.ease(), t, p.duration(), p.start, p.diff, p.end))))
}

// RotationProperty tweens an angle in radians. With ShortestPath set, an
// absolute target angle is approached through the smaller arc.
type RotationProperty struct {
	FloatProperty
	ShortestPath bool
}

// NewRotationProperty creates a rotation property for the named float64 accessor.
func NewRotationProperty(name string, angle float64, relative, shortestPath bool) *RotationProperty {
	return &RotationProperty{
		FloatProperty: *NewFloatProperty(name, angle, relative),
		ShortestPath:  shortestPath,
	}
}

func (p *RotationProperty) clone() Property {
	c := *p
	c.owner = nil
	return &c
}

func (p *RotationProperty) prepare() {
	p.FloatProperty.prepare()
	if !p.ShortestPath || p.relative {
		return
	}
	d := math.Remainder(p.diff, 2*math.Pi)
	if p.owner.isFrom {
		p.start = p.end - d
	} else {
		p.end = p.start + d
	}
	p.diff = d
}
