package tween

// Path is a curve that a PositionPath property moves a target along.
type Path interface {
	// BuildPath precomputes whatever Length and PointAt need. It is called
	// before Length is read and may be called more than once.
	BuildPath()
	// Length returns the arc length of the path.
	Length() float64
	// PointAt returns the position at the given distance from the start,
	// clamped to [0, Length].
	PointAt(distance float64) Vec2
}

// Polyline is a Path made of straight segments between points.
type Polyline struct {
	Points []Vec2

	cumulative []float64
	length     float64
}

// NewPolyline creates a polyline through points.
func NewPolyline(points ...Vec2) *Polyline {
	return &Polyline{Points: points}
}

// BuildPath implements Path.
func (p *Polyline) BuildPath() {
	p.cumulative = p.cumulative[:0]
	p.length = 0
	for i := range p.Points {
		if i > 0 {
			p.length += p.Points[i].Sub(p.Points[i-1]).Len()
		}
		p.cumulative = append(p.cumulative, p.length)
	}
}

// Length implements Path.
func (p *Polyline) Length() float64 {
	if len(p.cumulative) != len(p.Points) {
		p.BuildPath()
	}
	return p.length
}

// PointAt implements Path.
func (p *Polyline) PointAt(distance float64) Vec2 {
	if len(p.Points) == 0 {
		return Vec2{}
	}
	if len(p.cumulative) != len(p.Points) {
		p.BuildPath()
	}
	if distance <= 0 {
		return p.Points[0]
	}
	last := len(p.Points) - 1
	if distance >= p.length {
		return p.Points[last]
	}
	for i := 1; i <= last; i++ {
		if distance > p.cumulative[i] {
			continue
		}
		seg := p.cumulative[i] - p.cumulative[i-1]
		if seg == 0 {
			return p.Points[i]
		}
		f := (distance - p.cumulative[i-1]) / seg
		a, b := p.Points[i-1], p.Points[i]
		return Vec2{a.X + (b.X-a.X)*f, a.Y + (b.Y-a.Y)*f}
	}
	return p.Points[last]
}
