package tween

import "github.com/lucasb-eyer/go-colorful"

// ColorBlend selects the space colors are interpolated in.
type ColorBlend uint8

const (
	BlendRGB ColorBlend = iota // each channel eased independently
	BlendHCL                   // hue/chroma/luminance blend, alpha eased linearly in value
)

// ColorProperty tweens a Color accessor.
type ColorProperty struct {
	propertyBase
	value Color
	Blend ColorBlend

	start, end, diff Color
	acc              Accessor[Color]
	hclStart, hclEnd colorful.Color
}

// NewColorProperty creates a property driving the named Color accessor. A
// relative color is added channel by channel.
func NewColorProperty(name string, value Color, relative bool, blend ColorBlend) *ColorProperty {
	return &ColorProperty{
		propertyBase: propertyBase{name: name, relative: relative, channels: ChannelAll},
		value:        value,
		Blend:        blend,
	}
}

func addColor(a, b Color) Color { return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A} }
func subColor(a, b Color) Color { return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A} }

func toColorful(c Color) colorful.Color { return colorful.Color{R: c.R, G: c.G, B: c.B} }

func (p *ColorProperty) clone() Property {
	c := *p
	c.owner = nil
	return &c
}

func (p *ColorProperty) bind(r *Registry) (err error) {
	p.acc, err = ResolveAccessor[Color](r, p.target(), p.name)
	return err
}

func (p *ColorProperty) prepare() {
	p.start, p.end, p.diff = endpoints(p.acc.Get(), p.value, p.relative, p.owner.isFrom, addColor, subColor)
	p.hclStart, p.hclEnd = toColorful(p.start), toColorful(p.end)
}

func (p *ColorProperty) tick(t float32) {
	fn, d := p.ease(), p.duration()
	a := evaluate(fn, t, d, p.start.A, p.diff.A, p.end.A)
	if p.Blend == BlendHCL {
		switch {
		case t >= d:
			p.acc.Set(p.end)
		case t <= 0:
			p.acc.Set(p.start)
		default:
			c := p.hclStart.BlendHcl(p.hclEnd, progress(fn, t, d)).Clamped()
			p.acc.Set(Color{c.R, c.G, c.B, a})
		}
		return
	}
	p.acc.Set(Color{
		R: evaluate(fn, t, d, p.start.R, p.diff.R, p.end.R),
		G: evaluate(fn, t, d, p.start.G, p.diff.G, p.end.G),
		B: evaluate(fn, t, d, p.start.B, p.diff.B, p.end.B),
		A: a,
	})
}
