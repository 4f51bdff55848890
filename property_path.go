package tween

// PathProperty moves a Vec2 accessor along a Path. The eased fraction of the
// iteration picks the distance travelled. A relative path is offset by the
// target's position when the tween starts; a from tween travels it backwards.
type PathProperty struct {
	propertyBase
	path Path

	offset Vec2
	length float64
	acc    Accessor[Vec2]
}

// NewPathProperty creates a path-following property for the named Vec2 accessor.
func NewPathProperty(name string, path Path, relative bool) *PathProperty {
	return &PathProperty{
		propertyBase: propertyBase{name: name, relative: relative, channels: ChannelX | ChannelY},
		path:         path,
	}
}

// Path returns the followed path.
func (p *PathProperty) Path() Path { return p.path }

func (p *PathProperty) clone() Property {
	c := *p
	c.owner = nil
	return &c
}

func (p *PathProperty) bind(r *Registry) (err error) {
	p.acc, err = ResolveAccessor[Vec2](r, p.target(), p.name)
	return err
}

func (p *PathProperty) prepare() {
	p.path.BuildPath()
	p.length = p.path.Length()
	p.offset = Vec2{}
	if p.relative {
		p.offset = p.acc.Get().Sub(p.path.PointAt(0))
	}
}

func (p *PathProperty) tick(t float32) {
	f := progress(p.ease(), t, p.duration())
	if p.owner.isFrom {
		f = 1 - f
	}
	p.acc.Set(p.path.PointAt(f * p.length).Add(p.offset))
}
