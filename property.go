package tween

// Property is one animated value on a tween's target. Properties are created
// through TweenConfig, owned by exactly one Tween, bound to the target when
// the tween is built and prepared (start values read) on its first tick.
type Property interface {
	// Name is the accessor name the property writes through.
	Name() string
	// Channels reports which components of the named value it writes.
	Channels() Channel
	// Relative reports whether the configured value is an offset.
	Relative() bool

	base() *propertyBase
	clone() Property
	bind(r *Registry) error
	prepare()
	tick(t float32)
}

type propertyBase struct {
	name     string
	relative bool
	channels Channel
	owner    *Tween
}

func (p *propertyBase) Name() string        { return p.name }
func (p *propertyBase) Channels() Channel   { return p.channels }
func (p *propertyBase) Relative() bool      { return p.relative }
func (p *propertyBase) base() *propertyBase { return p }

func (p *propertyBase) ease() EaseFunc     { return p.owner.ease }
func (p *propertyBase) duration() float32  { return p.owner.duration }
func (p *propertyBase) target() Target     { return p.owner.target }
func (p *propertyBase) registry() *Registry { return p.owner.engine.accessors }

// collides reports whether a and b write the same component of the same value.
func collides(a, b Property) bool {
	return a.Name() == b.Name() && a.Channels()&b.Channels() != 0
}

// endpoints resolves start, end and diff for the current target value cur and
// the configured value. A relative "to" property keeps diff equal to the
// configured offset; everything else uses end - start.
func endpoints[T any](cur, value T, relative, from bool, add, sub func(a, b T) T) (start, end, diff T) {
	switch {
	case from && relative:
		start, end = add(cur, value), cur
	case from:
		start, end = value, cur
	case relative:
		return cur, add(cur, value), value
	default:
		start, end = cur, value
	}
	return start, end, sub(end, start)
}

func addFloat(a, b float64) float64 { return a + b }
func subFloat(a, b float64) float64 { return a - b }
func addVec2(a, b Vec2) Vec2        { return a.Add(b) }
func subVec2(a, b Vec2) Vec2        { return a.Sub(b) }
func addVec3(a, b Vec3) Vec3        { return a.Add(b) }
func subVec3(a, b Vec3) Vec3        { return a.Sub(b) }
