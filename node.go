package tween

// nodeIDCounter is a plain counter (no atomic, the engine is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a ready-made tween target: a flat struct of the fields games
// usually animate, arranged in a simple tree. Any other type can be tweened
// by registering accessors for it.
type Node struct {
	ID   uint32
	Name string

	Parent   *Node
	children []*Node

	X, Y     float64
	Depth    float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians
	Alpha    float64
	Color    Color
	ZIndex   int
	Visible  bool

	UserData any

	transformDirty bool
	disposed       bool
}

// NewNode creates a node with identity scale, full alpha and a white tint.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Color:          ColorWhite,
		Visible:        true,
		transformDirty: true,
	}
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("tween: AddChild called with nil child")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	child.MarkDirty()
}

// RemoveChild detaches child from this node. No-op if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.Parent != n {
		return
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	child.MarkDirty()
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Tweens on a disposed node stop
// on their next tick when target validation is enabled.
func (n *Node) Dispose() {
	if n.Parent != nil {
		n.Parent.removeChildByPtr(n)
		n.Parent = nil
	}
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, c := range n.children {
		c.Parent = nil
		c.dispose()
	}
	n.children = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// Valid implements Validator.
func (n *Node) Valid() bool {
	return n != nil && !n.disposed
}

// MarkDirty flags the node's transform for recomputation.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// Dirty reports whether the transform changed since the last ClearDirty.
func (n *Node) Dirty() bool {
	return n.transformDirty
}

// ClearDirty resets the dirty flag, typically after the host redraws.
func (n *Node) ClearDirty() {
	n.transformDirty = false
}

// nodeFloatFields maps float64 property names onto Node fields.
var nodeFloatFields = map[string]func(*Node) *float64{
	"x":        func(n *Node) *float64 { return &n.X },
	"y":        func(n *Node) *float64 { return &n.Y },
	"depth":    func(n *Node) *float64 { return &n.Depth },
	"scaleX":   func(n *Node) *float64 { return &n.ScaleX },
	"scaleY":   func(n *Node) *float64 { return &n.ScaleY },
	"rotation": func(n *Node) *float64 { return &n.Rotation },
	"alpha":    func(n *Node) *float64 { return &n.Alpha },
}

// registerNodeAccessors exposes Node fields under these property names:
// float64 x, y, depth, scaleX, scaleY, rotation, alpha; int zIndex;
// Vec2 position, scale; Vec3 position; Color color.
func registerNodeAccessors(r *Registry) {
	for name, field := range nodeFloatFields {
		RegisterAccessor[float64](r, name, func(t Target) (Accessor[float64], bool) {
			n, ok := t.(*Node)
			if !ok {
				return Accessor[float64]{}, false
			}
			p := field(n)
			return Accessor[float64]{
				Get: func() float64 { return *p },
				Set: func(v float64) { *p = v; n.MarkDirty() },
			}, true
		})
	}

	RegisterAccessor[int](r, "zIndex", func(t Target) (Accessor[int], bool) {
		n, ok := t.(*Node)
		if !ok {
			return Accessor[int]{}, false
		}
		return Accessor[int]{
			Get: func() int { return n.ZIndex },
			Set: func(v int) { n.ZIndex = v },
		}, true
	})

	RegisterAccessor[Vec2](r, "position", func(t Target) (Accessor[Vec2], bool) {
		n, ok := t.(*Node)
		if !ok {
			return Accessor[Vec2]{}, false
		}
		return Accessor[Vec2]{
			Get: func() Vec2 { return Vec2{n.X, n.Y} },
			Set: func(v Vec2) { n.X, n.Y = v.X, v.Y; n.MarkDirty() },
		}, true
	})

	RegisterAccessor[Vec2](r, "scale", func(t Target) (Accessor[Vec2], bool) {
		n, ok := t.(*Node)
		if !ok {
			return Accessor[Vec2]{}, false
		}
		return Accessor[Vec2]{
			Get: func() Vec2 { return Vec2{n.ScaleX, n.ScaleY} },
			Set: func(v Vec2) { n.ScaleX, n.ScaleY = v.X, v.Y; n.MarkDirty() },
		}, true
	})

	RegisterAccessor[Vec3](r, "position", func(t Target) (Accessor[Vec3], bool) {
		n, ok := t.(*Node)
		if !ok {
			return Accessor[Vec3]{}, false
		}
		return Accessor[Vec3]{
			Get: func() Vec3 { return Vec3{n.X, n.Y, n.Depth} },
			Set: func(v Vec3) { n.X, n.Y, n.Depth = v.X, v.Y, v.Z; n.MarkDirty() },
		}, true
	})

	RegisterAccessor[Color](r, "color", func(t Target) (Accessor[Color], bool) {
		n, ok := t.(*Node)
		if !ok {
			return Accessor[Color]{}, false
		}
		return Accessor[Color]{
			Get: func() Color { return n.Color },
			Set: func(v Color) { n.Color = v; n.MarkDirty() },
		}, true
	})
}
